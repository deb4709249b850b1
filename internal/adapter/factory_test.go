package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

func TestCreateAdapterEndToEnd(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	f := NewFactory(reg)

	implA, implB := newRecorder("ImplA"), newRecorder("ImplB")
	button, err := f.CreateAdapter("Button", map[library.ID]Component{
		library.Primary: implA,
		library.Custom:  implB,
	}, Options{DefaultAdapter: library.Custom})
	require.NoError(t, err)

	out := button.Render(DefaultContext(), P("variant", "primary"))
	require.Equal(t, "<ImplB variant=primary>", out)
	require.Equal(t, "primary", implB.lastProps().String("variant"))
	require.Zero(t, implA.callCount())
	require.True(t, reg.IsAdapterAvailable("Button", library.Custom))
}

func TestCreateAdapterFallbackOption(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	fallback := newRecorder("fallback")
	comp, err := NewFactory(reg).CreateAdapter("Modal", nil, Options{Fallback: fallback})
	require.NoError(t, err)

	require.Equal(t, "<fallback variant=>body", comp.Render(DefaultContext(), Props{Children: "body"}))
}

func TestCreateAdapterRejectsInvalid(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	comp, err := NewFactory(reg).CreateAdapter("", map[library.ID]Component{library.Primary: newRecorder("x")}, Options{})
	require.Error(t, err)
	require.Nil(t, comp)
}

func TestWrapperResolveReportsSource(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	comp, err := NewFactory(reg).CreateAdapter("Card", map[library.ID]Component{
		library.Headless: newRecorder("headless"),
	}, Options{})
	require.NoError(t, err)

	resolver, ok := comp.(Resolver)
	require.True(t, ok)

	res := resolver.Resolve(DefaultContext(), Props{})
	require.Equal(t, Resolved, res.Outcome)
	require.Equal(t, SourceSubstitute, res.Source)
	require.Equal(t, library.Headless, res.Library)
}

func TestSmartAdapterUsesDetector(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	primary, headless := newRecorder("primary"), newRecorder("headless")
	comp, err := NewFactory(reg).CreateSmartAdapter("Select", map[library.ID]Component{
		library.Primary:  primary,
		library.Headless: headless,
	}, WidthDetector(60, library.Headless, library.Primary))
	require.NoError(t, err)

	require.Equal(t, "<primary variant=>", comp.Render(DefaultContext().WithWidth(100), Props{}))
	require.Equal(t, "<headless variant=>", comp.Render(DefaultContext().WithWidth(40), Props{}))
	require.Equal(t, "<primary variant=>", comp.Render(DefaultContext().WithWidth(0), Props{}))
}

func TestSmartAdapterPropOverridesDetector(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	primary, custom := newRecorder("primary"), newRecorder("custom")
	comp, err := NewFactory(reg).CreateSmartAdapter("Select", map[library.ID]Component{
		library.Primary: primary,
		library.Custom:  custom,
	}, FixedDetector(library.Primary))
	require.NoError(t, err)

	require.Equal(t, "<custom variant=>", comp.Render(DefaultContext(), Props{Adapter: library.Custom}))
	require.Equal(t, library.Unset, custom.lastProps().Adapter)
}

func TestSmartAdapterFirstPresentWhenDetectedMissing(t *testing.T) {
	t.Parallel()

	reg, sink := newTestRegistry(t)
	custom := newRecorder("custom")
	comp, err := NewFactory(reg).CreateSmartAdapter("Select", map[library.ID]Component{
		library.Custom: custom,
	}, FixedDetector(library.Headless))
	require.NoError(t, err)

	require.Equal(t, "<custom variant=>", comp.Render(DefaultContext(), Props{}))
	_, ok := sink.find(t, "adapter library substituted")
	require.True(t, ok)
}

func TestSmartAdapterUndecidedDetectorSkipsRegistryDefault(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	require.NoError(t, reg.SetDefaultAdapter(library.Custom))

	headless, custom := newRecorder("headless"), newRecorder("custom")
	comp, err := NewFactory(reg).CreateSmartAdapter("Select", map[library.ID]Component{
		library.Headless: headless,
		library.Custom:   custom,
	}, AccessibilityDetector(library.Headless, nil))
	require.NoError(t, err)

	require.Equal(t, "<headless variant=>", comp.Render(DefaultContext(), Props{}))
	require.Zero(t, custom.callCount())

	res := comp.(Resolver).Resolve(DefaultContext(), Props{})
	require.Equal(t, library.Headless, res.Library)
	require.Equal(t, SourceExact, res.Source)
}

func TestSmartAdapterNilDetectorDefaultsToPrimary(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	comp, err := NewFactory(reg).CreateSmartAdapter("Select", map[library.ID]Component{
		library.Primary:  newRecorder("primary"),
		library.Headless: newRecorder("headless"),
	}, nil)
	require.NoError(t, err)

	require.Equal(t, "<primary variant=>", comp.Render(DefaultContext(), Props{}))
}

func TestAccessibilityDetector(t *testing.T) {
	t.Parallel()

	detect := AccessibilityDetector(library.Headless, FixedDetector(library.Primary))

	ctx := DefaultContext()
	require.Equal(t, library.Primary, detect(ctx))

	ctx.Accessibility.HighContrast = true
	require.Equal(t, library.Headless, detect(ctx))

	require.Equal(t, library.Unset, AccessibilityDetector(library.Custom, nil)(DefaultContext()))
}

func TestThemedAdapterMapsProps(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	primary, custom := newRecorder("primary"), newRecorder("custom")
	comp, err := NewFactory(reg).CreateThemedAdapter("Button", map[library.ID]Component{
		library.Primary: primary,
		library.Custom:  custom,
	}, VariantMapper(map[library.ID]map[string]string{
		library.Custom: {"danger": "error"},
	}))
	require.NoError(t, err)

	require.Equal(t, "<primary variant=danger>", comp.Render(DefaultContext(), P("variant", "danger")))
	require.Equal(t, "<custom variant=error>", comp.Render(DefaultContext(), P("variant", "danger").WithAdapter(library.Custom)))
	require.Equal(t, "<custom variant=ghost>", comp.Render(DefaultContext(), P("variant", "ghost").WithAdapter(library.Custom)))
}

func TestThemedAdapterIgnoresRegistryDefault(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t, WithDefaultLibrary(library.Headless))
	comp, err := NewFactory(reg).CreateThemedAdapter("Button", map[library.ID]Component{
		library.Primary:  newRecorder("primary"),
		library.Headless: newRecorder("headless"),
	}, nil)
	require.NoError(t, err)

	require.Equal(t, "<primary variant=>", comp.Render(DefaultContext(), Props{}))
}

func TestThemedAdapterMapperSeesSubstitutedLibrary(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)
	var seen library.ID
	comp, err := NewFactory(reg).CreateThemedAdapter("Button", map[library.ID]Component{
		library.Headless: newRecorder("headless"),
	}, func(id library.ID, props Props) Props {
		seen = id
		return props
	})
	require.NoError(t, err)

	comp.Render(DefaultContext(), Props{})
	require.Equal(t, library.Headless, seen)
}

func TestNewFactoryUsesDefaultRegistry(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	f := NewFactory(nil)
	require.Same(t, Default(), f.Registry())

	_, err := CreateAdapter("Toast", map[library.ID]Component{library.Primary: newRecorder("toast")}, Options{})
	require.NoError(t, err)
	require.NotNil(t, Get("Toast", library.Unset))
	require.NoError(t, Register(Definition{Name: "Badge", Fallback: newRecorder("badge")}))
	require.Equal(t, []string{"Badge", "Toast"}, Default().RegisteredAdapters())
}
