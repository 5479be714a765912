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
)

// StructType describes a nested type parameterized by an ordered sequence
// of relative types, called its fields.
type StructType struct {
	fields []Field
	index  map[string][]int
	hash   uint64
}

// StructOf returns the struct type with fields fs.
//
// StructOf panics if a field has a nil DataType.
func StructOf(fs ...Field) *StructType {
	t := &StructType{
		fields: make([]Field, len(fs)),
		index:  make(map[string][]int, len(fs)),
	}
	for i, f := range fs {
		if f.Type == nil {
			panic("arrow: field with nil DataType")
		}
		t.fields[i] = f
		t.index[f.Name] = append(t.index[f.Name], i)
	}
	t.hash = HashType(0, t)
	return t
}

func (*StructType) ID() Type     { return STRUCT }
func (*StructType) Name() string { return "struct" }

func (t *StructType) String() string {
	o := new(strings.Builder)
	o.WriteString("struct<")
	for i, f := range t.fields {
		if i > 0 {
			o.WriteString(", ")
		}
		o.WriteString(fmt.Sprintf("%s: %v", f.Name, f.Type))
	}
	o.WriteString(">")
	return o.String()
}

// Fields returns a copy of the struct's fields.
func (t *StructType) Fields() []Field {
	fields := make([]Field, len(t.fields))
	copy(fields, t.fields)
	return fields
}

func (t *StructType) NumFields() int    { return len(t.fields) }
func (t *StructType) Field(i int) Field { return t.fields[i] }

// FieldByName returns the first field named name.
func (t *StructType) FieldByName(name string) (Field, bool) {
	i, ok := t.FieldIdx(name)
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// FieldIdx returns the position of the first field named name.
func (t *StructType) FieldIdx(name string) (int, bool) {
	indices, ok := t.index[name]
	if !ok {
		return -1, false
	}
	return indices[0], true
}

func (t *StructType) Fingerprint() string {
	var b strings.Builder
	b.WriteString(typeFingerprint(t))
	b.WriteByte('{')
	for _, c := range t.fields {
		child := c.Fingerprint()
		if len(child) == 0 {
			return ""
		}
		b.WriteString(child)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// Field describes one named column of a schema or one child of a struct.
// Nullable is descriptive: nothing rejects nulls in a non-nullable field.
type Field struct {
	Name     string   // Field name
	Type     DataType // The field's data type
	Nullable bool     // Fields can be nullable
}

func (f Field) Fingerprint() string {
	typeFingerprint := f.Type.Fingerprint()
	if typeFingerprint == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('F')
	if f.Nullable {
		b.WriteByte('n')
	} else {
		b.WriteByte('N')
	}
	b.WriteString(f.Name)
	b.WriteByte('{')
	b.WriteString(typeFingerprint)
	b.WriteByte('}')
	return b.String()
}

func (f Field) Equal(o Field) bool {
	switch {
	case f.Name != o.Name:
		return false
	case f.Nullable != o.Nullable:
		return false
	default:
		return TypeEqual(f.Type, o.Type)
	}
}

func (f Field) String() string {
	nullable := ""
	if f.Nullable {
		nullable = ", nullable"
	}
	return fmt.Sprintf("%s: type=%v%v", f.Name, f.Type, nullable)
}

var (
	_ DataType = (*StructType)(nil)
)
