package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/adapterkit/internal/config"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	adaptererrors "github.com/alexisbeaulieu97/adapterkit/pkg/errors"
)

// Definition names a capability and lists its implementation per library.
type Definition struct {
	Name            string                   `validate:"required"`
	Implementations map[library.ID]Component `validate:"omitempty,dive,keys,library,endkeys,required"`
	DefaultLibrary  library.ID               `validate:"omitempty,library"`
	Fallback        Component                `validate:"-"`
}

// Validate checks the definition before it is stored. A definition without
// any implementation and without a fallback can never render anything.
func (d Definition) Validate() error {
	if err := config.Validator().Struct(d); err != nil {
		return definitionError(d.Name, err)
	}
	if len(d.Implementations) == 0 && d.Fallback == nil {
		return adaptererrors.NewValidationError(
			fieldPath(d.Name, "implementations"),
			"at least one implementation or a fallback is required",
			nil,
		)
	}
	return nil
}

// Libraries returns the libraries with an implementation, in declaration order.
func (d Definition) Libraries() []library.ID {
	out := make([]library.ID, 0, len(d.Implementations))
	for _, id := range library.All() {
		if _, ok := d.Implementations[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// firstAvailable returns the first implementation in declaration order.
func (d Definition) firstAvailable() (library.ID, Component, bool) {
	for _, id := range library.All() {
		if impl, ok := d.Implementations[id]; ok {
			return id, impl, true
		}
	}
	return library.Unset, nil, false
}

func (d Definition) clone() Definition {
	out := d
	out.Implementations = make(map[library.ID]Component, len(d.Implementations))
	for id, impl := range d.Implementations {
		out.Implementations[id] = impl
	}
	return out
}

func definitionError(name string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fe.Field()
		if ns := fe.Namespace(); strings.Contains(ns, ".") {
			field = ns[strings.Index(ns, ".")+1:]
		}
		msg := fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
		switch fe.Tag() {
		case "library":
			msg = fmt.Sprintf("%v is not a known library", fe.Value())
		case "required":
			msg = "is required"
		}
		return adaptererrors.NewValidationError(fieldPath(name, strings.ToLower(field)), msg, err)
	}
	return adaptererrors.NewValidationError(fieldPath(name, ""), err.Error(), err)
}

func fieldPath(name, field string) string {
	if name == "" {
		name = "<unnamed>"
	}
	if field == "" {
		return "adapter " + name
	}
	return "adapter " + name + ": " + field
}
