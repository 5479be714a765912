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

package array

import (
	"fmt"
	"strings"

	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/bitutil"
	"github.com/minarrow/minarrow/arrow/memory"
)

// Struct represents an ordered sequence of relative types.
type Struct struct {
	array
	fields []Interface
}

// NewStructData returns a new Struct array value from data.
func NewStructData(data *Data) *Struct {
	a := &Struct{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewStructFromArrays assembles a Struct from existing child arrays without
// copying them. valid holds the struct-level validity, nil meaning every row
// is valid. The struct retains each child.
func NewStructFromArrays(fields []arrow.Field, children []Interface, valid []bool) (*Struct, error) {
	if len(fields) != len(children) {
		return nil, fmt.Errorf("arrow/array: %w: %d fields for %d children", arrow.ErrSchemaMismatch, len(fields), len(children))
	}

	length := len(valid)
	if len(children) > 0 {
		length = children[0].Len()
	}

	childData := make([]*Data, len(children))
	for i, child := range children {
		if child.Len() != length {
			return nil, fmt.Errorf("arrow/array: %w: child %q has length %d, want %d",
				arrow.ErrLengthMismatch, fields[i].Name, child.Len(), length)
		}
		if !arrow.TypeEqual(fields[i].Type, child.DataType()) {
			return nil, fmt.Errorf("arrow/array: %w: child %q is %s, field declares %s",
				arrow.ErrTypeMismatch, fields[i].Name, child.DataType(), fields[i].Type)
		}
		childData[i] = child.Data()
	}

	var (
		bitmap *memory.Buffer
		nulls  int
	)
	if valid != nil {
		if len(valid) != length {
			return nil, fmt.Errorf("arrow/array: %w: %d validity flags for %d rows", arrow.ErrLengthMismatch, len(valid), length)
		}
		bm := make([]byte, bitutil.BytesForBits(length))
		for i, v := range valid {
			bitutil.SetBitTo(bm, i, v)
			if !v {
				nulls++
			}
		}
		bitmap = memory.NewBufferBytes(bm)
	}

	data := NewData(arrow.StructOf(fields...), length, []*memory.Buffer{bitmap}, childData, nulls)
	defer data.Release()
	return NewStructData(data), nil
}

func (a *Struct) NumField() int                 { return len(a.fields) }
func (a *Struct) Field(i int) Interface         { return a.fields[i] }
func (a *Struct) Fields() []Interface           { return a.fields }
func (a *Struct) structType() *arrow.StructType { return a.data.dtype.(*arrow.StructType) }

// FieldByName returns the first child named name, or ErrSchemaMismatch.
func (a *Struct) FieldByName(name string) (Interface, error) {
	idx, ok := a.structType().FieldIdx(name)
	if !ok {
		return nil, fmt.Errorf("arrow/array: %w: struct has no field %q", arrow.ErrSchemaMismatch, name)
	}
	return a.fields[idx], nil
}

func (a *Struct) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for j, f := range a.fields {
		if j > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.ValueStr(i))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (a *Struct) String() string { return arrayString(a) }

// Release decreases the reference count by 1. The last release also
// releases the child arrays.
func (a *Struct) Release() {
	if a.release() {
		for _, f := range a.fields {
			f.Release()
		}
		a.fields = nil
	}
}

func (a *Struct) setData(data *Data) {
	a.array.setData(data)
	a.fields = make([]Interface, len(data.childData))
	for i, child := range data.childData {
		a.fields[i] = MakeFromData(child)
	}
}

func (a *Struct) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}

	tmp := make(map[string]interface{})
	fieldList := a.structType().Fields()
	for j, d := range a.fields {
		tmp[fieldList[j].Name] = d.GetOneForMarshal(i)
	}
	return tmp
}

func (a *Struct) MarshalJSON() ([]byte, error) { return arrayMarshalJSON(a) }
