package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	adaptererrors "github.com/alexisbeaulieu97/adapterkit/pkg/errors"
)

func TestValidateAcceptsDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(&cfg))
}

func TestValidateNil(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)

	var validationErr *adaptererrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "config", validationErr.Field)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AdapterConfig)
		field  string
	}{
		{
			name:   "missing primary",
			mutate: func(c *AdapterConfig) { c.PrimaryAdapter = library.Unset },
			field:  "primary_adapter",
		},
		{
			name:   "unknown primary",
			mutate: func(c *AdapterConfig) { c.PrimaryAdapter = library.ID(9) },
			field:  "primary_adapter",
		},
		{
			name:   "fallback equals primary",
			mutate: func(c *AdapterConfig) { c.FallbackAdapter = c.PrimaryAdapter },
			field:  "fallback_adapter",
		},
		{
			name: "unknown override library",
			mutate: func(c *AdapterConfig) {
				c.ComponentOverrides = map[string]ComponentOverride{"Button": {Adapter: library.ID(7)}}
			},
			field: "component_overrides",
		},
		{
			name: "empty override name",
			mutate: func(c *AdapterConfig) {
				c.ComponentOverrides = map[string]ComponentOverride{"": {Adapter: library.Custom}}
			},
			field: "component_overrides",
		},
		{
			name:   "theme mode",
			mutate: func(c *AdapterConfig) { c.Theme.Mode = "neon" },
			field:  "theme.mode",
		},
		{
			name:   "density",
			mutate: func(c *AdapterConfig) { c.Theme.Density = "sparse" },
			field:  "theme.density",
		},
		{
			name:   "touch target",
			mutate: func(c *AdapterConfig) { c.Accessibility.MinTouchTarget = 8 },
			field:  "accessibility.min_touch_target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := Validate(&cfg)
			require.Error(t, err)

			var validationErr *adaptererrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Contains(t, validationErr.Field, tt.field)
		})
	}
}

func TestValidateUnknownLibraryMessage(t *testing.T) {
	cfg := Default()
	cfg.PrimaryAdapter = library.ID(9)

	err := Validate(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a known library")
}

func TestValidatorIsShared(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}
