package hooks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/adapterkit/internal/config"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

func newStore(t *testing.T) *config.Store {
	t.Helper()

	cfg := config.Default()
	cfg.ComponentOverrides = map[string]config.ComponentOverride{
		"JogControl": {Adapter: library.Custom, DefaultProps: map[string]any{"units": "mm"}},
		"Modal":      {DefaultProps: map[string]any{"closable": true}},
	}
	cfg.Theme.Mode = config.ThemeModeDark
	cfg.Accessibility.ReducedMotion = true

	store, err := config.NewStore(cfg)
	require.NoError(t, err)
	return store
}

func TestAdapterPrefersOverride(t *testing.T) {
	t.Parallel()

	h := New(newStore(t))
	require.Equal(t, library.Custom, h.Adapter("JogControl"))
	require.Equal(t, library.Primary, h.Adapter("Modal"), "override without adapter falls back to primary")
	require.Equal(t, library.Primary, h.Adapter("Button"))
}

func TestAdapterPropsDefaultsToEmpty(t *testing.T) {
	t.Parallel()

	h := New(newStore(t))
	require.Equal(t, map[string]any{"units": "mm"}, h.AdapterProps("JogControl"))

	props := h.AdapterProps("Button")
	require.NotNil(t, props)
	require.Empty(t, props)
}

func TestAdapterPropsReturnsCopies(t *testing.T) {
	t.Parallel()

	h := New(newStore(t))
	props := h.AdapterProps("Modal")
	props["closable"] = false

	require.Equal(t, true, h.AdapterProps("Modal")["closable"])
}

func TestMemoInvalidatedOnReplace(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	h := New(store)
	require.Equal(t, library.Primary, h.Adapter("Button"))

	next := *store.Load()
	next = next.Clone()
	next.PrimaryAdapter = library.Headless
	next.FallbackAdapter = library.Primary
	require.NoError(t, store.Replace(next))

	require.Equal(t, library.Headless, h.Adapter("Button"))
	require.Equal(t, library.Custom, h.Adapter("JogControl"))
}

func TestThemeProjections(t *testing.T) {
	t.Parallel()

	h := New(newStore(t))
	require.True(t, h.DarkMode())
	require.Equal(t, config.ThemeModeDark, h.Theme().Mode)
	require.True(t, h.Accessibility().ReducedMotion)
	require.Equal(t, library.Headless, h.FallbackAdapter())
}

func TestNilStoreUsesDefaults(t *testing.T) {
	t.Parallel()

	h := New(nil)
	require.Equal(t, library.Primary, h.Adapter("Anything"))
	require.False(t, h.DarkMode())
}
