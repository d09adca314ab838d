package props

import (
	"fmt"
	"strings"
)

// Field is a single named value in a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered mapping of prop names to values.
//
// Records are treated as immutable once built: Merge and With always return
// a new Record and never touch their inputs. The zero Record is empty and
// ready to use.
type Record struct {
	fields []Field
}

// NewRecord builds a Record from fields. Later fields with the same name
// replace earlier ones but keep the earlier position.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.set(f.Name, f.Value)
	}
	return r
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	i := r.index(name)
	if i < 0 {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Has reports whether name is present.
func (r Record) Has(name string) bool {
	return r.index(name) >= 0
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Fields returns a copy of the record's fields in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// With returns a copy of r with name set to value.
func (r Record) With(name string, value any) Record {
	out := r.clone()
	out.set(name, value)
	return out
}

// Without returns a copy of r with the named fields removed.
func (r Record) Without(names ...string) Record {
	var out Record
	for _, f := range r.fields {
		if contains(names, f.Name) {
			continue
		}
		out.fields = append(out.fields, f)
	}
	return out
}

// Missing returns the names from required that r does not hold, in the
// order they were given.
func (r Record) Missing(required []string) []string {
	var missing []string
	for _, name := range required {
		if !r.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// String renders the record as {name: value, ...} for logs and test output.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", f.Name, f.Value)
	}
	b.WriteByte('}')
	return b.String()
}

// Merge flattens records into one, left to right. When a name appears in
// more than one record the rightmost value wins; the field keeps the
// position where it first appeared. The merge is one level deep: nested
// values are replaced wholesale.
func Merge(records ...Record) Record {
	var out Record
	for _, r := range records {
		for _, f := range r.fields {
			out.set(f.Name, f.Value)
		}
	}
	return out
}

func (r Record) index(name string) int {
	for i, f := range r.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func (r *Record) set(name string, value any) {
	if i := r.index(name); i >= 0 {
		r.fields[i].Value = value
		return
	}
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

func (r Record) clone() Record {
	if len(r.fields) == 0 {
		return Record{}
	}
	fields := make([]Field, len(r.fields))
	copy(fields, r.fields)
	return Record{fields: fields}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
