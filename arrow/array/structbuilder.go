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
	"sync/atomic"

	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/internal/debug"
	"github.com/minarrow/minarrow/arrow/memory"
)

// StructBuilder builds a Struct array. It owns one child builder per field.
//
// Rows are appended either atomically with AppendRow, or through the
// low-level pair of appending to every FieldBuilder and then calling Append
// with the row validity. NewStructArray rejects a builder whose children
// went out of step.
type StructBuilder struct {
	builder

	dtype  *arrow.StructType
	fields []Builder
}

// NewStructBuilder returns a builder, using the provided memory allocator.
func NewStructBuilder(mem memory.Allocator, dtype *arrow.StructType) *StructBuilder {
	b := &StructBuilder{
		builder: builder{refCount: 1, mem: mem},
		dtype:   dtype,
		fields:  make([]Builder, dtype.NumFields()),
	}
	for i, f := range dtype.Fields() {
		b.fields[i] = NewBuilder(b.mem, f.Type)
	}
	return b
}

func (b *StructBuilder) Type() arrow.DataType { return b.dtype }

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
// Release may be called simultaneously from multiple goroutines.
func (b *StructBuilder) Release() {
	debug.Assert(atomic.LoadInt64(&b.refCount) > 0, "too many releases")

	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.nullBitmap != nil {
			b.nullBitmap.Release()
			b.nullBitmap = nil
		}
		for _, f := range b.fields {
			f.Release()
		}
	}
}

// Append records the validity of the next row. The caller appends the
// row's values to every FieldBuilder separately.
func (b *StructBuilder) Append(v bool) {
	b.Reserve(1)
	b.UnsafeAppendBoolToBitmap(v)
}

// AppendValues records the validity of len(valids) rows.
func (b *StructBuilder) AppendValues(valids []bool) {
	b.Reserve(len(valids))
	b.unsafeAppendBoolsToBitmap(valids, len(valids))
}

// AppendNull appends a null row: a null in every child and a false row
// validity.
func (b *StructBuilder) AppendNull() {
	for _, f := range b.fields {
		f.AppendNull()
	}
	b.Append(false)
}

// AppendRow appends one valid row holding one value per field, in field
// order. A nil value appends a null; a struct child takes a nested []any.
// Values must carry the exact Go type of their field (int32, int64, uint64,
// float32, float64, bool, string). Every value is checked before anything is
// appended, so a failing call leaves the builder unchanged.
func (b *StructBuilder) AppendRow(values ...interface{}) error {
	if err := b.checkRow(values); err != nil {
		return err
	}
	b.appendRow(values)
	return nil
}

func (b *StructBuilder) checkRow(values []interface{}) error {
	if len(values) != len(b.fields) {
		return fmt.Errorf("arrow/array: %w: row has %d values for %d fields", arrow.ErrLengthMismatch, len(values), len(b.fields))
	}
	for i, f := range b.fields {
		if err := f.checkValue(values[i]); err != nil {
			return fmt.Errorf("field %q: %w", b.dtype.Field(i).Name, err)
		}
	}
	return nil
}

func (b *StructBuilder) appendRow(values []interface{}) {
	for i, f := range b.fields {
		f.appendValue(values[i])
	}
	b.Append(true)
}

func (b *StructBuilder) checkValue(v interface{}) error {
	if v == nil {
		return nil
	}
	row, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("arrow/array: %w: cannot append %T to %s builder", arrow.ErrTypeMismatch, v, b.dtype)
	}
	return b.checkRow(row)
}

func (b *StructBuilder) appendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.appendRow(v.([]interface{}))
}

// Reserve ensures there is enough space for appending n elements
// by checking the capacity and calling Resize if necessary.
func (b *StructBuilder) Reserve(n int) {
	b.builder.reserve(n, b.Resize)
}

// Resize adjusts the space allocated by b to n elements. If n is greater than b.Cap(),
// additional memory will be allocated. If n is smaller, the allocated memory may reduced.
func (b *StructBuilder) Resize(n int) {
	if n < minBuilderCapacity {
		n = minBuilderCapacity
	}

	if b.capacity == 0 {
		b.builder.init(n)
	} else {
		b.builder.resize(n, b.builder.init)
	}
}

func (b *StructBuilder) NumField() int { return len(b.fields) }

// FieldBuilder returns the builder of the i-th child.
func (b *StructBuilder) FieldBuilder(i int) Builder { return b.fields[i] }

// NewArray creates a Struct array from the memory buffers used by the builder and resets the StructBuilder
// so it can be used to build a new array. NewArray panics when the children
// are out of step; use NewStructArray to get an error instead.
func (b *StructBuilder) NewArray() Interface {
	a, err := b.NewStructArray()
	if err != nil {
		panic(err)
	}
	return a
}

// NewStructArray creates a Struct array from the memory buffers used by the builder and resets the StructBuilder
// so it can be used to build a new array. If any child, at any depth, does
// not hold exactly one value per row, it returns ErrLengthMismatch and the
// builder is left as it was.
func (b *StructBuilder) NewStructArray() (*Struct, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	data := b.newData()
	a := NewStructData(data)
	data.Release()
	return a, nil
}

func (b *StructBuilder) validate() error {
	for i, f := range b.fields {
		if f.Len() != b.length {
			return fmt.Errorf("arrow/array: %w: field %q has %d values for %d rows",
				arrow.ErrLengthMismatch, b.dtype.Field(i).Name, f.Len(), b.length)
		}
		if sb, ok := f.(*StructBuilder); ok {
			if err := sb.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *StructBuilder) newData() (data *Data) {
	children := make([]*Data, len(b.fields))
	for i, f := range b.fields {
		arr := f.NewArray()
		defer arr.Release()
		children[i] = arr.Data()
	}

	bitmap := b.finishBitmap()
	data = NewData(b.dtype, b.length, []*memory.Buffer{bitmap}, children, b.nulls)
	if bitmap != nil {
		bitmap.Release()
	}
	b.reset()

	return
}
