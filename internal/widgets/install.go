package widgets

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

// Component names registered by Install.
const (
	Button   = "Button"
	Input    = "Input"
	Card     = "Card"
	Modal    = "Modal"
	Select   = "Select"
	Alert    = "Alert"
	Progress = "Progress"
)

// NarrowWidth is the column count below which Select switches to the
// headless list.
const NarrowWidth = 60

// Options tune Install.
type Options struct {
	// LoadDelay simulates bundle latency for the lazily loaded widgets.
	LoadDelay time.Duration
	// LoadTimeout bounds each lazy load; zero uses the adapter default.
	LoadTimeout time.Duration
}

// Set holds the wrappers Install created.
type Set struct {
	Button   adapter.Component
	Input    adapter.Component
	Card     adapter.Component
	Alert    adapter.Component
	Select   adapter.Component
	Modal    *adapter.LazyComponent
	Progress *adapter.LazyComponent
}

// Lazy returns the lazily loaded wrappers.
func (s *Set) Lazy() []*adapter.LazyComponent {
	return []*adapter.LazyComponent{s.Modal, s.Progress}
}

// Lookup returns the wrapper registered under name.
func (s *Set) Lookup(name string) (adapter.Component, bool) {
	switch name {
	case Button:
		return s.Button, true
	case Input:
		return s.Input, true
	case Card:
		return s.Card, true
	case Alert:
		return s.Alert, true
	case Select:
		return s.Select, true
	case Modal:
		return s.Modal, true
	case Progress:
		return s.Progress, true
	default:
		return nil, false
	}
}

// Names lists the installed component names in display order.
func Names() []string {
	return []string{Button, Input, Select, Card, Alert, Progress, Modal}
}

// Install registers the console's component set on f's registry.
//
//   - Button is themed so variants are renamed for the custom library.
//   - Input, Card and Alert are plain adapters.
//   - Select picks its library from the terminal width and contrast settings.
//   - Modal and Progress load lazily.
func Install(f *adapter.Factory, opts Options) (*Set, error) {
	var (
		set Set
		err error
	)

	set.Button, err = f.CreateThemedAdapter(Button, map[library.ID]adapter.Component{
		library.Primary:  PrimaryButton{},
		library.Headless: HeadlessButton{},
		library.Custom:   CustomButton{},
	}, adapter.VariantMapper(map[library.ID]map[string]string{
		library.Custom: {"danger": "alarm", "error": "alarm", "secondary": "muted", "ghost": "muted"},
	}))
	if err != nil {
		return nil, err
	}

	set.Input, err = f.CreateAdapter(Input, map[library.ID]adapter.Component{
		library.Primary:  PrimaryInput{},
		library.Headless: HeadlessInput{},
		library.Custom:   CustomInput{},
	}, adapter.Options{})
	if err != nil {
		return nil, err
	}

	set.Card, err = f.CreateAdapter(Card, map[library.ID]adapter.Component{
		library.Primary:  PrimaryCard{},
		library.Headless: HeadlessCard{},
	}, adapter.Options{})
	if err != nil {
		return nil, err
	}

	set.Alert, err = f.CreateAdapter(Alert, map[library.ID]adapter.Component{
		library.Primary: PrimaryAlert{},
	}, adapter.Options{Fallback: HeadlessAlert{}})
	if err != nil {
		return nil, err
	}

	set.Select, err = f.CreateSmartAdapter(Select, map[library.ID]adapter.Component{
		library.Primary:  PrimarySelect{},
		library.Headless: HeadlessSelect{},
	}, adapter.AccessibilityDetector(library.Headless,
		adapter.WidthDetector(NarrowWidth, library.Headless, library.Primary)))
	if err != nil {
		return nil, err
	}

	set.Modal, err = f.CreateLazyAdapter(Modal, map[library.ID]adapter.Loader{
		library.Primary:  delayed(PrimaryModal{}, opts.LoadDelay),
		library.Headless: delayed(HeadlessModal{}, opts.LoadDelay),
	}, adapter.Options{Fallback: HeadlessModal{}, LoadTimeout: opts.LoadTimeout})
	if err != nil {
		return nil, err
	}

	set.Progress, err = f.CreateLazyAdapter(Progress, map[library.ID]adapter.Loader{
		library.Custom:   delayed(CustomProgress{}, opts.LoadDelay),
		library.Headless: delayed(HeadlessProgress{}, opts.LoadDelay),
	}, adapter.Options{DefaultAdapter: library.Custom, LoadTimeout: opts.LoadTimeout})
	if err != nil {
		return nil, err
	}

	return &set, nil
}

// delayed returns a loader that yields c after d, honouring cancellation.
func delayed(c adapter.Component, d time.Duration) adapter.Loader {
	return func(ctx context.Context) (adapter.Component, error) {
		if d <= 0 {
			return c, nil
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return c, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
