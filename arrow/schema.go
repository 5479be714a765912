// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrow

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// Schema is an immutable, ordered sequence of fields. Operations that
// "change" a schema return a new one.
type Schema struct {
	fields []Field
	index  map[string][]int
	hash   uint64
}

// NewSchema returns a schema made of the provided fields. Field names are
// not required to be unique; lookups by name resolve to the first match.
//
// NewSchema panics if a field has a nil DataType.
func NewSchema(fields []Field) *Schema {
	sc := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string][]int, len(fields)),
	}
	for _, f := range fields {
		if f.Type == nil {
			panic("arrow: field with nil DataType")
		}
		sc.index[f.Name] = append(sc.index[f.Name], len(sc.fields))
		sc.fields = append(sc.fields, f)
	}
	sc.hash = xxh3.HashString(sc.Fingerprint())
	return sc
}

// Fields returns a copy of the schema's fields.
func (sc *Schema) Fields() []Field {
	if sc == nil {
		return nil
	}
	f := make([]Field, len(sc.fields))
	copy(f, sc.fields)
	return f
}

func (sc *Schema) Field(i int) Field { return sc.fields[i] }

func (sc *Schema) NumFields() int {
	if sc == nil {
		return 0
	}
	return len(sc.fields)
}

// FieldIndices returns the positions of every field named n, in order.
func (sc *Schema) FieldIndices(n string) []int {
	return sc.index[n]
}

// FieldsByName returns every field named n, in order.
func (sc *Schema) FieldsByName(n string) ([]Field, bool) {
	indices, ok := sc.index[n]
	if !ok {
		return nil, false
	}
	fields := make([]Field, 0, len(indices))
	for _, v := range indices {
		fields = append(fields, sc.fields[v])
	}
	return fields, true
}

// FieldByName returns the first field named n.
func (sc *Schema) FieldByName(n string) (Field, error) {
	indices, ok := sc.index[n]
	if !ok {
		return Field{}, fmt.Errorf("%w: no field named %q", ErrSchemaMismatch, n)
	}
	return sc.fields[indices[0]], nil
}

func (sc *Schema) HasField(n string) bool { return len(sc.FieldIndices(n)) > 0 }

// Project returns a new schema holding the fields at indices, in the order
// given. Duplicates and reordering are allowed.
func (sc *Schema) Project(indices []int) (*Schema, error) {
	fields := make([]Field, len(indices))
	for k, i := range indices {
		if i < 0 || i >= sc.NumFields() {
			return nil, fmt.Errorf("%w: project index %d for schema with %d fields", ErrIndexOutOfRange, i, sc.NumFields())
		}
		fields[k] = sc.fields[i]
	}
	return NewSchema(fields), nil
}

// AddField returns a new schema with field inserted at position i.
// i may equal NumFields to append.
func (sc *Schema) AddField(i int, field Field) (*Schema, error) {
	if i < 0 || i > sc.NumFields() {
		return nil, fmt.Errorf("%w: cannot add field at %d to schema with %d fields", ErrIndexOutOfRange, i, sc.NumFields())
	}
	if field.Type == nil {
		return nil, fmt.Errorf("%w: field %q has no type", ErrInvalid, field.Name)
	}

	fields := make([]Field, 0, sc.NumFields()+1)
	fields = append(fields, sc.fields[:i]...)
	fields = append(fields, field)
	fields = append(fields, sc.fields[i:]...)
	return NewSchema(fields), nil
}

// RemoveField returns a new schema without the field at position i.
func (sc *Schema) RemoveField(i int) (*Schema, error) {
	if i < 0 || i >= sc.NumFields() {
		return nil, fmt.Errorf("%w: cannot remove field %d from schema with %d fields", ErrIndexOutOfRange, i, sc.NumFields())
	}

	fields := make([]Field, 0, sc.NumFields()-1)
	fields = append(fields, sc.fields[:i]...)
	fields = append(fields, sc.fields[i+1:]...)
	return NewSchema(fields), nil
}

// Equal returns whether two schema are equal.
func (sc *Schema) Equal(o *Schema) bool {
	switch {
	case sc == o:
		return true
	case sc == nil || o == nil:
		return false
	case sc.hash != o.hash || len(sc.fields) != len(o.fields):
		return false
	}

	for i := range sc.fields {
		if !sc.fields[i].Equal(o.fields[i]) {
			return false
		}
	}
	return true
}

func (sc *Schema) String() string {
	o := new(strings.Builder)
	fmt.Fprintf(o, "schema:\n  fields: %d\n", sc.NumFields())
	for i, f := range sc.fields {
		if i > 0 {
			o.WriteString("\n")
		}
		fmt.Fprintf(o, "    - %v", f)
	}
	return o.String()
}

func (sc *Schema) Fingerprint() string {
	if sc == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("S{")
	for _, f := range sc.fields {
		fieldFingerprint := f.Fingerprint()
		if fieldFingerprint == "" {
			return ""
		}

		b.WriteString(fieldFingerprint)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// Hash returns the xxh3 hash of the schema fingerprint, computed when the
// schema is created. Equal schemas hash to the same value.
func (sc *Schema) Hash() uint64 {
	if sc == nil {
		return 0
	}
	return sc.hash
}
