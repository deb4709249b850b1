package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	adaptererrors "github.com/alexisbeaulieu97/adapterkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("library", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.Int {
				return false
			}
			return library.ID(field.Int()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// Validator returns the shared validator with the library tag registered.
func Validator() *validator.Validate {
	return validatorInstance()
}

// Validate performs schema validation on a configuration.
func Validate(cfg *AdapterConfig) error {
	if cfg == nil {
		return adaptererrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.FallbackAdapter.IsSet() && cfg.FallbackAdapter == cfg.PrimaryAdapter {
		return adaptererrors.NewValidationError(
			"fallback_adapter",
			fmt.Sprintf("fallback library %q must differ from the primary library", cfg.FallbackAdapter),
			nil,
		)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "library" {
			msg = fmt.Sprintf("%s: %v is not a known library", field, ve.Value())
		}
		return adaptererrors.NewValidationError(field, msg, err)
	}

	return adaptererrors.NewValidationError("config", err.Error(), err)
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
