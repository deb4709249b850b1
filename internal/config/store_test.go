package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

func TestStoreReplaceChangesIdentity(t *testing.T) {
	t.Parallel()

	store := NewDefaultStore()
	first := store.Load()
	require.Equal(t, library.Primary, first.PrimaryAdapter)

	next := Default()
	next.PrimaryAdapter = library.Custom
	require.NoError(t, store.Replace(next))

	second := store.Load()
	require.NotSame(t, first, second)
	require.Equal(t, library.Custom, second.PrimaryAdapter)
	require.Equal(t, library.Primary, first.PrimaryAdapter, "old snapshot must stay untouched")
}

func TestStoreCopiesInput(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.ComponentOverrides = map[string]ComponentOverride{
		"Button": {Adapter: library.Headless, DefaultProps: map[string]any{"size": "lg"}},
	}
	store, err := NewStore(cfg)
	require.NoError(t, err)

	cfg.ComponentOverrides["Button"].DefaultProps["size"] = "sm"
	cfg.ComponentOverrides["Card"] = ComponentOverride{Adapter: library.Custom}

	snapshot := store.Load()
	require.Equal(t, "lg", snapshot.ComponentOverrides["Button"].DefaultProps["size"])
	_, ok := snapshot.Override("Card")
	require.False(t, ok)
}

func TestStoreRejectsInvalidReplacement(t *testing.T) {
	t.Parallel()

	store := NewDefaultStore()
	before := store.Load()

	bad := Default()
	bad.Theme.Mode = "neon"
	require.Error(t, store.Replace(bad))
	require.Same(t, before, store.Load())
}

func TestStoreNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	store := NewDefaultStore()
	var seen []library.ID
	store.Subscribe(func(cfg *AdapterConfig) {
		seen = append(seen, cfg.PrimaryAdapter)
	})

	next := Default()
	next.PrimaryAdapter = library.Headless
	next.FallbackAdapter = library.Primary
	require.NoError(t, store.Replace(next))
	require.Equal(t, []library.ID{library.Headless}, seen)
}

func TestOverrideOnNilConfig(t *testing.T) {
	t.Parallel()

	var cfg *AdapterConfig
	_, ok := cfg.Override("Button")
	require.False(t, ok)
}
