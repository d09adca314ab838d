package hxinject

import (
	"errors"
	"fmt"

	"github.com/pthm/hxinject/lib/props"
)

// Record is an alias for props.Record for convenience.
type Record = props.Record

// Field is an alias for props.Field for convenience.
type Field = props.Field

// Encodable is implemented by props types that encode themselves.
type Encodable = props.Encodable

// Decodable is implemented by props types that decode themselves.
type Decodable = props.Decodable

// RequiredLister is implemented by props types that list their required props.
type RequiredLister = props.RequiredLister

// wrapPropsError maps props package errors onto ErrInvalidProps.
func wrapPropsError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, props.ErrUnsupported) || errors.Is(err, props.ErrDecode) {
		return fmt.Errorf("%w: %v", ErrInvalidProps, err)
	}
	return err
}
