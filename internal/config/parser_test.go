package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	adaptererrors "github.com/alexisbeaulieu97/adapterkit/pkg/errors"
)

const sampleConfig = `
primary_adapter: primary
fallback_adapter: headless
component_overrides:
  JogControl:
    adapter: custom
    default_props:
      step: 0.1
      units: mm
  Modal:
    default_props:
      closable: true
theme:
  mode: dark
  name: shop-floor
  density: compact
accessibility:
  high_contrast: true
  min_touch_target: 48
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adapters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFileParsesAllSections(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	require.Equal(t, library.Primary, cfg.PrimaryAdapter)
	require.Equal(t, library.Headless, cfg.FallbackAdapter)

	jog, ok := cfg.Override("JogControl")
	require.True(t, ok)
	require.Equal(t, library.Custom, jog.Adapter)
	require.Equal(t, "mm", jog.DefaultProps["units"])
	require.InDelta(t, 0.1, jog.DefaultProps["step"], 1e-9)

	modal, ok := cfg.Override("Modal")
	require.True(t, ok)
	require.Equal(t, library.Unset, modal.Adapter)
	require.Equal(t, true, modal.DefaultProps["closable"])

	require.Equal(t, ThemeModeDark, cfg.Theme.Mode)
	require.Equal(t, DensityCompact, cfg.Theme.Density)
	require.True(t, cfg.Accessibility.HighContrast)
	require.Equal(t, 48, cfg.Accessibility.MinTouchTarget)
}

func TestParseAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("inline", []byte("component_overrides:\n  Button:\n    adapter: headless\n"))
	require.NoError(t, err)
	require.Equal(t, library.Primary, cfg.PrimaryAdapter)
	require.Equal(t, ThemeModeAuto, cfg.Theme.Mode)
	require.Equal(t, DensityComfortable, cfg.Theme.Density)
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("empty", nil)
	require.NoError(t, err)
	require.Equal(t, library.Primary, cfg.PrimaryAdapter)
}

func TestParseRejectsUnknownLibrary(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad", []byte("primary_adapter: mui\n"))
	require.Error(t, err)

	var parseErr *adaptererrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, library.ErrUnknown)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad", []byte("primary_adapter: primary\nrender_mode: ssr\n"))

	var parseErr *adaptererrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)
}

func TestParseValidatesThemeMode(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad", []byte("theme:\n  mode: neon\n"))

	var validationErr *adaptererrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme.mode", validationErr.Field)
}

func TestValidateRejectsFallbackEqualToPrimary(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.FallbackAdapter = library.Primary

	var validationErr *adaptererrors.ValidationError
	require.ErrorAs(t, Validate(&cfg), &validationErr)
	require.Equal(t, "fallback_adapter", validationErr.Field)
}

func TestValidateRejectsOutOfRangeLibrary(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.ComponentOverrides = map[string]ComponentOverride{"Input": {Adapter: library.ID(9)}}

	var validationErr *adaptererrors.ValidationError
	require.ErrorAs(t, Validate(&cfg), &validationErr)
	require.Equal(t, "component_overrides[Input].adapter", validationErr.Field)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTripsLibraries(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.ComponentOverrides = map[string]ComponentOverride{"Select": {Adapter: library.Custom}}

	out, err := Marshal(cfg)
	require.NoError(t, err)
	require.Contains(t, string(out), "primary_adapter: primary")
	require.Contains(t, string(out), "adapter: custom")
}
