package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
	"github.com/alexisbeaulieu97/adapterkit/internal/config"
	"github.com/alexisbeaulieu97/adapterkit/internal/hooks"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/logger"
	"github.com/alexisbeaulieu97/adapterkit/internal/widgets"
)

const (
	defaultWidth   = 80
	preloadTimeout = 5 * time.Second
)

// appContext bundles the services a command works with.
type appContext struct {
	log      *logger.Logger
	store    *config.Store
	hooks    *hooks.Hooks
	registry *adapter.Registry
	widgets  *widgets.Set
}

func newAppContext(errOut io.Writer, flags *rootFlags, opts widgets.Options) (*appContext, error) {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: errOut})
	if err != nil {
		return nil, newCommandError("start", "configuring diagnostics", err, "Use one of debug, info, warn or error for --log-level.")
	}

	cfg := config.Default()
	if path := strings.TrimSpace(flags.configPath); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, newCommandError("start", "loading configuration", err, "Check the file against the adapter configuration schema.")
		}
		cfg = *loaded
	}

	store, err := config.NewStore(cfg)
	if err != nil {
		return nil, newCommandError("start", "validating configuration", err, "Fix the reported field and try again.")
	}

	h := hooks.New(store)
	reg := adapter.NewRegistry(adapter.WithLogger(log), adapter.WithHooks(h))
	if err := reg.ApplyConfig(store.Load()); err != nil {
		return nil, newCommandError("start", "applying configuration", err, "Set primary_adapter to primary, headless or custom.")
	}
	store.Subscribe(func(next *config.AdapterConfig) {
		if err := reg.ApplyConfig(next); err != nil {
			log.Error(err, "configuration change rejected")
		}
	})

	set, err := widgets.Install(adapter.NewFactory(reg), opts)
	if err != nil {
		return nil, newCommandError("start", "registering widgets", err, "This is a bug; please report it.")
	}

	log.WithFields(map[string]any{
		"primary":  store.Load().PrimaryAdapter.String(),
		"fallback": store.Load().FallbackAdapter.String(),
		"adapters": len(reg.RegisteredAdapters()),
	}).Debug("adapter registry ready")

	return &appContext{log: log, store: store, hooks: h, registry: reg, widgets: set}, nil
}

func (a *appContext) renderContext(width int) adapter.RenderContext {
	return adapter.ContextFromConfig(a.store.Load(), width)
}

// component returns the installed wrapper for name, or a registry wrapper
// that renders the placeholder for unknown names.
func (a *appContext) component(name string) adapter.Component {
	if comp, ok := a.widgets.Lookup(name); ok {
		return comp
	}
	return a.registry.CreateComponent(name, library.Unset)
}

// preload settles every lazy widget so one-shot commands print final output.
func (a *appContext) preload(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, preloadTimeout)
	defer cancel()
	for _, lc := range a.widgets.Lazy() {
		if err := lc.Preload(ctx); err != nil {
			a.log.With("component", lc.Name()).Warn("lazy adapter preload incomplete")
		}
	}
}

func terminalWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}
