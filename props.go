package yew

import (
	"fmt"
	"strings"
)

// MissingPropsError is returned by a derived builder's Build when required
// fields were not set.
type MissingPropsError struct {
	Props  string   // properties type name
	Fields []string // unset required fields, in declaration order
}

func (e *MissingPropsError) Error() string {
	noun := "field"
	if len(e.Fields) != 1 {
		noun = "fields"
	}
	return fmt.Sprintf("%s: missing required %s %s", e.Props, noun, strings.Join(e.Fields, ", "))
}

// MustProps returns props, panicking if err is non-nil. Generated code
// wraps props!(...) literals with it.
func MustProps[P any](props P, err error) P {
	if err != nil {
		panic("yew: " + err.Error())
	}
	return props
}

// Defaulter is implemented by types with a custom default value, used for
// fields marked prop_or_default.
type Defaulter[T any] interface {
	Default() T
}

// Default returns the default value of T: the result of its Default method
// when T (or *T) implements Defaulter[T], otherwise the zero value.
func Default[T any]() T {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}
	if d, ok := any(&zero).(Defaulter[T]); ok {
		return d.Default()
	}
	return zero
}
