package props

import (
	"reflect"
	"sync"

	"github.com/vmihailenco/tagparser/v2"
)

// RequiredLister is implemented by props types that list their required
// props themselves. Generated code implements this interface.
type RequiredLister interface {
	RequiredProps() []string
}

// requiredCache holds the required names per struct type.
var requiredCache sync.Map // map[reflect.Type][]string

// Required returns the names of the props of v that must be present before
// a component taking v can render.
//
// A field is required when its prop tag carries the required option:
//
//	Year int `prop:"year,required"`
func Required(v any) []string {
	if rl, ok := v.(RequiredLister); ok {
		return rl.RequiredProps()
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	return RequiredOf(t)
}

// RequiredFor is Required for the props type P.
func RequiredFor[P any]() []string {
	var p P
	if rl, ok := any(p).(RequiredLister); ok {
		return rl.RequiredProps()
	}
	return RequiredOf(reflect.TypeOf((*P)(nil)).Elem())
}

// RequiredOf returns the required prop names declared by the struct type t.
// Pointers are dereferenced; non-struct types have no required props.
func RequiredOf(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	if cached, ok := requiredCache.Load(t); ok {
		return cached.([]string)
	}
	names := requiredFields(t)
	requiredCache.Store(t, names)
	return names
}

func requiredFields(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() && !f.Anonymous {
			continue
		}

		name, tag := fieldName(f)
		if name == "-" {
			continue
		}

		// embedded structs without a name are inlined by msgpack
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				names = append(names, requiredFields(ft)...)
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if tag != nil && tag.HasOption("required") {
			names = append(names, name)
		}
	}
	return names
}

// fieldName resolves the record name for f the way msgpack does. A set
// msgpack tag decides the name even when it holds only options, in which
// case the Go field name is used. The parsed prop tag is returned for its
// options.
func fieldName(f reflect.StructField) (string, *tagparser.Tag) {
	var tag *tagparser.Tag
	if raw, ok := f.Tag.Lookup(TagName); ok {
		tag = tagparser.Parse(raw)
	}
	if raw := f.Tag.Get("msgpack"); raw != "" {
		return tagparser.Parse(raw).Name, tag
	}
	if tag != nil {
		return tag.Name, tag
	}
	return "", nil
}
