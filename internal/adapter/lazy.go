package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/logger"
	adaptererrors "github.com/alexisbeaulieu97/adapterkit/pkg/errors"
)

// ErrNoLoader is returned by Load for a library without a loader.
var ErrNoLoader = errors.New("no loader for library")

// Loader produces an implementation asynchronously.
type Loader func(ctx context.Context) (Component, error)

// LoadedMsg is delivered to a bubbletea program when a lazy load settles.
type LoadedMsg struct {
	Name    string
	Library library.ID
	Err     error
}

type loadStatus int

const (
	statusIdle loadStatus = iota
	statusLoading
	statusLoaded
	statusFailed
)

type loadState struct {
	status    loadStatus
	component Component
	err       error
}

// LazyComponent renders implementations that are loaded on first use.
// Loads are deduplicated per library and successful results are kept for
// the component's lifetime. A failed load behaves like a missing loader
// until Retry is called.
type LazyComponent struct {
	name    string
	loaders map[library.ID]Loader
	opts    Options
	logger  *logger.Logger

	group singleflight.Group

	mu     sync.Mutex
	states map[library.ID]*loadState
}

// CreateLazyAdapter registers a definition whose implementations load
// through loaders, and returns the lazy wrapper.
func (f *Factory) CreateLazyAdapter(name string, loaders map[library.ID]Loader, opts Options) (*LazyComponent, error) {
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = DefaultLoadTimeout
	}

	lc := &LazyComponent{
		name:    name,
		loaders: make(map[library.ID]Loader, len(loaders)),
		opts:    opts,
		logger:  f.logger,
		states:  make(map[library.ID]*loadState),
	}

	impls := make(map[library.ID]Component, len(loaders))
	for id, loader := range loaders {
		if loader == nil {
			continue
		}
		lc.loaders[id] = loader
		impls[id] = lazyImpl{lc: lc, id: id}
	}

	def := Definition{
		Name:            name,
		Implementations: impls,
		DefaultLibrary:  opts.DefaultAdapter,
		Fallback:        opts.Fallback,
	}
	if err := f.registry.Register(def); err != nil {
		return nil, err
	}
	return lc, nil
}

// Name returns the component name.
func (lc *LazyComponent) Name() string {
	return lc.name
}

// Render renders the loaded implementation, the loading view while a load
// is in flight, or the fallback/placeholder when nothing can load.
func (lc *LazyComponent) Render(ctx RenderContext, props Props) string {
	res := lc.Resolve(ctx, props)
	return renderResolution(ctx, res, props.Forwarded())
}

// Resolve reports what Render would show and starts a background load if
// none has been attempted for the library yet.
func (lc *LazyComponent) Resolve(_ RenderContext, props Props) Resolution {
	id := props.Adapter.Or(lc.opts.DefaultAdapter).Or(library.Primary)
	return lc.resolveLibrary(id, true)
}

func (lc *LazyComponent) resolveLibrary(id library.ID, start bool) Resolution {
	if _, ok := lc.loaders[id]; !ok {
		return lc.unavailable(id, reasonMissingLazy)
	}

	lc.mu.Lock()
	state := lc.stateLocked(id)
	status, component := state.status, state.component
	if status == statusIdle && start {
		state.status = statusLoading
	}
	lc.mu.Unlock()

	switch status {
	case statusLoaded:
		return Resolution{
			Outcome:   Resolved,
			Source:    SourceExact,
			Name:      lc.name,
			Requested: id,
			Library:   id,
			Component: component,
		}
	case statusFailed:
		return lc.unavailable(id, reasonLoadFailed)
	case statusIdle:
		if start {
			go func() {
				_ = lc.Load(context.Background(), id)
			}()
		}
	}

	return Resolution{
		Outcome:   Pending,
		Source:    SourceNone,
		Name:      lc.name,
		Requested: id,
		Library:   id,
		Component: lc.loadingView(),
	}
}

func (lc *LazyComponent) unavailable(id library.ID, reason string) Resolution {
	if lc.opts.Fallback != nil {
		return Resolution{
			Outcome:   Resolved,
			Source:    SourceFallback,
			Name:      lc.name,
			Requested: id,
			Component: lc.opts.Fallback,
		}
	}
	return missing(lc.name, id, reason)
}

func (lc *LazyComponent) loadingView() Component {
	if lc.opts.Loading != nil {
		return lc.opts.Loading
	}
	name := lc.name
	return ComponentFunc(func(ctx RenderContext, _ Props) string {
		if ctx.Accessibility.ReducedMotion {
			return fmt.Sprintf("Loading %s...", name)
		}
		return fmt.Sprintf("%s Loading %s...", spinnerFrame(spinner.Dot, time.Now()), name)
	})
}

// spinnerFrame picks the frame of s shown at now. A program that redraws on
// its own ticks therefore sees the indicator advance between renders.
func spinnerFrame(s spinner.Spinner, now time.Time) string {
	if len(s.Frames) == 0 {
		return ""
	}
	fps := s.FPS
	if fps <= 0 {
		fps = time.Second / 10
	}
	step := now.UnixNano() / int64(fps)
	return s.Frames[step%int64(len(s.Frames))]
}

func (lc *LazyComponent) stateLocked(id library.ID) *loadState {
	state, ok := lc.states[id]
	if !ok {
		state = &loadState{}
		lc.states[id] = state
	}
	return state
}

// Load loads the implementation for id and blocks until it settles.
// Concurrent calls for the same library share one loader invocation.
func (lc *LazyComponent) Load(ctx context.Context, id library.ID) error {
	loader, ok := lc.loaders[id]
	if !ok {
		return fmt.Errorf("%s: %w %q", lc.name, ErrNoLoader, id)
	}

	_, err, _ := lc.group.Do(id.String(), func() (any, error) {
		lc.mu.Lock()
		state := lc.stateLocked(id)
		if state.status == statusLoaded {
			lc.mu.Unlock()
			return state.component, nil
		}
		state.status = statusLoading
		lc.mu.Unlock()

		component, err := lc.invoke(ctx, id, loader)

		lc.mu.Lock()
		if err != nil {
			state.status = statusFailed
			state.err = err
		} else {
			state.status = statusLoaded
			state.component = component
			state.err = nil
		}
		lc.mu.Unlock()

		return component, err
	})
	return err
}

func (lc *LazyComponent) invoke(ctx context.Context, id library.ID, loader Loader) (Component, error) {
	loadID := uuid.NewString()
	log := lc.logger.ForComponent(lc.name, "", id.String()).With(logger.FieldLoadID, loadID)

	ctx, cancel := context.WithTimeout(ctx, lc.opts.LoadTimeout)
	defer cancel()

	type result struct {
		component Component
		err       error
	}
	done := make(chan result, 1)
	started := time.Now()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("loader panicked: %v", r)}
			}
		}()
		component, err := loader(ctx)
		if err == nil && component == nil {
			err = errors.New("loader returned no component")
		}
		done <- result{component: component, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		res = result{err: ctx.Err()}
	}
	if res.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.err = fmt.Errorf("%w after %s", adaptererrors.ErrLoadTimeout, lc.opts.LoadTimeout)
	}

	elapsed := time.Since(started)
	if res.err != nil {
		err := adaptererrors.NewLoadError(lc.name, id.String(), elapsed, res.err)
		log.Error(err, "lazy adapter load failed")
		return nil, err
	}

	log.With("duration_ms", elapsed.Milliseconds()).Debug("lazy adapter loaded")
	return res.component, nil
}

// LoadCmd returns a bubbletea command that loads id and reports the result
// as a LoadedMsg, so an interactive program re-renders once it settles.
func (lc *LazyComponent) LoadCmd(id library.ID) tea.Cmd {
	return func() tea.Msg {
		err := lc.Load(context.Background(), id)
		return LoadedMsg{Name: lc.name, Library: id, Err: err}
	}
}

// Preload loads every library concurrently and returns the first error.
// One failing library does not cancel the others.
func (lc *LazyComponent) Preload(ctx context.Context) error {
	var g errgroup.Group
	for id := range lc.loaders {
		id := id
		g.Go(func() error {
			return lc.Load(ctx, id)
		})
	}
	return g.Wait()
}

// Loaded reports whether id finished loading successfully.
func (lc *LazyComponent) Loaded(id library.ID) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	state, ok := lc.states[id]
	return ok && state.status == statusLoaded
}

// Err returns the last load error for id.
func (lc *LazyComponent) Err(id library.ID) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if state, ok := lc.states[id]; ok {
		return state.err
	}
	return nil
}

// Retry forgets a failed load so the next render or Load tries again.
func (lc *LazyComponent) Retry(id library.ID) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if state, ok := lc.states[id]; ok && state.status == statusFailed {
		state.status = statusIdle
		state.err = nil
	}
}

// lazyImpl is what the registry stores for a lazily loaded library.
type lazyImpl struct {
	lc *LazyComponent
	id library.ID
}

func (l lazyImpl) Render(ctx RenderContext, props Props) string {
	res := l.lc.resolveLibrary(l.id, true)
	return renderResolution(ctx, res, props)
}
