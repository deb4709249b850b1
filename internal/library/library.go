// Package library enumerates the UI libraries an adapter can be backed by.
package library

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a library identifier is not part of the set.
var ErrUnknown = errors.New("unknown library")

// ID identifies a concrete UI library. The zero value means "not specified".
type ID int

const (
	Unset ID = iota
	Primary
	Headless
	Custom
)

// All returns the libraries in declaration order. Every "first available"
// fallback scans in this order.
func All() []ID {
	return []ID{Primary, Headless, Custom}
}

// String returns the identifier as used in configuration files.
func (id ID) String() string {
	switch id {
	case Unset:
		return ""
	case Primary:
		return "primary"
	case Headless:
		return "headless"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("library(%d)", int(id))
	}
}

// Valid reports whether id names a concrete library.
func (id ID) Valid() bool {
	return id >= Primary && id <= Custom
}

// IsSet reports whether id carries a choice at all.
func (id ID) IsSet() bool {
	return id != Unset
}

// Or returns id when set, otherwise fallback.
func (id ID) Or(fallback ID) ID {
	if id.IsSet() {
		return id
	}
	return fallback
}

// Parse converts a configuration string into an ID. An empty string yields
// Unset without error.
func Parse(s string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unset, nil
	case "primary":
		return Primary, nil
	case "headless":
		return Headless, nil
	case "custom":
		return Custom, nil
	default:
		return Unset, fmt.Errorf("%w %q (expected primary, headless or custom)", ErrUnknown, s)
	}
}

// MustParse is Parse for constant input; it panics on error.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if id != Unset && !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, int(id))
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so YAML and flag values
// are rejected at the boundary.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Set implements pflag.Value.
func (id *ID) Set(s string) error {
	return id.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (id *ID) Type() string {
	return "library"
}
