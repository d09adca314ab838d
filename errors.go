package hxinject

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for component operations.
var (
	ErrMissingProperty = errors.New("hxinject: missing required property")
	ErrInvalidProps    = errors.New("hxinject: invalid props")
	ErrUnknownPage     = errors.New("hxinject: unknown page")
)

// MissingPropertyError is returned when a component is rendered without all
// of its required props, after fixed and supplied props have been merged.
type MissingPropertyError struct {
	// Component is the name of the component that could not render.
	Component string

	// Fields lists the missing prop names in declaration order.
	Fields []string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("hxinject: %s: missing required props: %s", e.Component, strings.Join(e.Fields, ", "))
}

// Is matches ErrMissingProperty.
func (e *MissingPropertyError) Is(target error) bool {
	return target == ErrMissingProperty
}

// IsMissingProperty checks if err is a missing-property error.
func IsMissingProperty(err error) bool {
	return errors.Is(err, ErrMissingProperty)
}

// IsInvalidProps checks if err is an invalid-props error.
func IsInvalidProps(err error) bool {
	return errors.Is(err, ErrInvalidProps)
}

// MissingFields returns the missing prop names carried by err, or nil when
// err is not a *MissingPropertyError.
func MissingFields(err error) []string {
	var mpe *MissingPropertyError
	if errors.As(err, &mpe) {
		return mpe.Fields
	}
	return nil
}
