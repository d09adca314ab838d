package props

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

// TagName is the struct tag read for prop names and options.
//
//	type HeaderProps struct {
//	    WelcomeMessage string `prop:"welcomeMessage,required"`
//	}
//
// A non-empty msgpack tag on the same field decides the name, falling back
// to the Go field name when it holds only options. The prop tag then only
// contributes its options.
const TagName = "prop"

var (
	// ErrUnsupported is returned when a value cannot be turned into a
	// Record, usually because it is not a struct or holds a field msgpack
	// cannot encode (funcs, channels).
	ErrUnsupported = errors.New("props: unsupported props value")

	// ErrDecode is returned when a Record cannot be decoded into the
	// target props type.
	ErrDecode = errors.New("props: decode failed")
)

// Encodable is implemented by props types that can produce their Record
// without reflection. Generated code implements this interface.
type Encodable interface {
	PropsEncode() Record
}

// Decodable is implemented by props types that can fill themselves from a
// Record without reflection. Generated code implements this interface.
type Decodable interface {
	PropsDecode(Record) error
}

// Encode converts a props value into a Record.
//
// Fields holding their zero value are left out of the Record: an absent
// prop and a zero prop are the same thing. Field order follows the struct
// declaration. Integers are held as int64, or as uint64 when they do not
// fit.
func Encode(v any) (Record, error) {
	if enc, ok := v.(Encodable); ok {
		return enc.PropsEncode(), nil
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(TagName)
	enc.SetOmitEmpty(true)
	if err := enc.Encode(v); err != nil {
		return Record{}, fmt.Errorf("%w: %T: %v", ErrUnsupported, v, err)
	}

	dec := msgpack.NewDecoder(&buf)
	n, err := dec.DecodeMapLen()
	if err != nil {
		return Record{}, fmt.Errorf("%w: %T: %v", ErrUnsupported, v, err)
	}

	var r Record
	// n is -1 for a nil pointer
	for i := 0; i < n; i++ {
		name, err := dec.DecodeString()
		if err != nil {
			return Record{}, fmt.Errorf("%w: %T: %v", ErrUnsupported, v, err)
		}
		value, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return Record{}, fmt.Errorf("%w: %T field %q: %v", ErrUnsupported, v, name, err)
		}
		// a zero nested struct still encodes as an empty map
		if isEmptyMap(value) {
			continue
		}
		r.set(name, normalize(value))
	}
	return r, nil
}

// Decode fills v, which must be a pointer, from r. Names in r that v does
// not declare are ignored.
func Decode(r Record, v any) error {
	if dec, ok := v.(Decodable); ok {
		if err := dec.PropsDecode(r); err != nil {
			return fmt.Errorf("%w: %T: %v", ErrDecode, v, err)
		}
		return nil
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeMapLen(len(r.fields)); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for _, f := range r.fields {
		if err := enc.EncodeString(f.Name); err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if err := enc.Encode(f.Value); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrDecode, f.Name, err)
		}
	}

	dec := msgpack.NewDecoder(&buf)
	dec.SetCustomStructTag(TagName)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %T: %v", ErrDecode, v, err)
	}
	return nil
}

func isEmptyMap(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Len() == 0
}

// DecodeAs is Decode into a fresh value of type P.
func DecodeAs[P any](r Record) (P, error) {
	var p P
	if err := Decode(r, &p); err != nil {
		return p, err
	}
	return p, nil
}
