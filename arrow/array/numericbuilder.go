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

// NumericBuilder builds a Numeric array of T.
type NumericBuilder[T arrow.NumericType] struct {
	builder

	dtype   arrow.FixedWidthDataType
	data    *memory.Buffer
	rawData []T
}

type (
	Int32Builder   = NumericBuilder[int32]
	Int64Builder   = NumericBuilder[int64]
	Uint64Builder  = NumericBuilder[uint64]
	Float32Builder = NumericBuilder[float32]
	Float64Builder = NumericBuilder[float64]
)

func NewNumericBuilder[T arrow.NumericType](mem memory.Allocator) *NumericBuilder[T] {
	return &NumericBuilder[T]{builder: builder{refCount: 1, mem: mem}, dtype: arrow.TypeOf[T]()}
}

func NewInt32Builder(mem memory.Allocator) *Int32Builder     { return NewNumericBuilder[int32](mem) }
func NewInt64Builder(mem memory.Allocator) *Int64Builder     { return NewNumericBuilder[int64](mem) }
func NewUint64Builder(mem memory.Allocator) *Uint64Builder   { return NewNumericBuilder[uint64](mem) }
func NewFloat32Builder(mem memory.Allocator) *Float32Builder { return NewNumericBuilder[float32](mem) }
func NewFloat64Builder(mem memory.Allocator) *Float64Builder { return NewNumericBuilder[float64](mem) }

func (b *NumericBuilder[T]) Type() arrow.DataType { return b.dtype }

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
func (b *NumericBuilder[T]) Release() {
	debug.Assert(atomic.LoadInt64(&b.refCount) > 0, "too many releases")

	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.nullBitmap != nil {
			b.nullBitmap.Release()
			b.nullBitmap = nil
		}
		if b.data != nil {
			b.data.Release()
			b.data = nil
			b.rawData = nil
		}
	}
}

// Append adds a valid value.
func (b *NumericBuilder[T]) Append(v T) {
	b.Reserve(1)
	b.UnsafeAppend(v)
}

// AppendNull adds a null slot holding the zero value.
func (b *NumericBuilder[T]) AppendNull() {
	b.Reserve(1)
	b.UnsafeAppendBoolToBitmap(false)
}

func (b *NumericBuilder[T]) UnsafeAppend(v T) {
	b.rawData[b.length] = v
	b.UnsafeAppendBoolToBitmap(true)
}

func (b *NumericBuilder[T]) UnsafeAppendBoolToBitmap(isValid bool) {
	if !isValid {
		var zero T
		b.rawData[b.length] = zero
	}
	b.builder.UnsafeAppendBoolToBitmap(isValid)
}

// AppendValues appends the values in v. valid holds one validity flag per
// value; a nil valid marks every value as valid. If len(valid) differs from
// len(v), AppendValues returns ErrLengthMismatch and appends nothing.
// Slots flagged invalid store the zero value.
func (b *NumericBuilder[T]) AppendValues(v []T, valid []bool) error {
	if err := checkValidLen(len(v), valid); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}

	b.Reserve(len(v))
	out := b.rawData[b.length : b.length+len(v)]
	copy(out, v)
	for i, ok := range valid {
		if !ok {
			var zero T
			out[i] = zero
		}
	}
	b.unsafeAppendBoolsToBitmap(valid, len(v))
	return nil
}

func (b *NumericBuilder[T]) init(capacity int) {
	b.builder.init(capacity)

	b.data = memory.NewResizableBuffer(b.mem)
	b.data.Resize(capacity * arrow.SizeOf[T]())
	b.rawData = arrow.CastFromBytesTo[T](b.data.Bytes())
}

// Reserve ensures there is enough space for appending n elements
// by checking the capacity and calling Resize if necessary.
func (b *NumericBuilder[T]) Reserve(n int) {
	b.builder.reserve(n, b.Resize)
}

// Resize adjusts the space allocated by b to n elements. If n is greater than b.Cap(),
// additional memory will be allocated. If n is smaller, the allocated memory may reduced.
func (b *NumericBuilder[T]) Resize(n int) {
	nBuilder := n
	if n < minBuilderCapacity {
		n = minBuilderCapacity
	}

	if b.capacity == 0 {
		b.init(n)
	} else {
		b.builder.resize(nBuilder, b.init)
		b.data.Resize(n * arrow.SizeOf[T]())
		b.rawData = arrow.CastFromBytesTo[T](b.data.Bytes())
	}
}

// NewArray creates a Numeric array from the memory buffers used by the builder and resets the NumericBuilder
// so it can be used to build a new array.
func (b *NumericBuilder[T]) NewArray() Interface {
	return b.NewNumericArray()
}

// NewNumericArray creates a Numeric array from the memory buffers used by the builder and resets the NumericBuilder
// so it can be used to build a new array.
func (b *NumericBuilder[T]) NewNumericArray() (a *Numeric[T]) {
	data := b.newData()
	a = NewNumericData[T](data)
	data.Release()
	return
}

func (b *NumericBuilder[T]) newData() (data *Data) {
	bytesRequired := b.length * arrow.SizeOf[T]()
	if bytesRequired > 0 && bytesRequired < b.data.Len() {
		// trim buffers
		b.data.Resize(bytesRequired)
	}

	bitmap := b.finishBitmap()
	data = NewData(b.dtype, b.length, []*memory.Buffer{bitmap, b.data}, nil, b.nulls)
	if bitmap != nil {
		bitmap.Release()
	}
	b.reset()

	if b.data != nil {
		b.data.Release()
		b.data = nil
		b.rawData = nil
	}

	return
}

func (b *NumericBuilder[T]) checkValue(v interface{}) error {
	if v == nil {
		return nil
	}
	if _, ok := v.(T); !ok {
		return fmt.Errorf("arrow/array: %w: cannot append %T to %s builder", arrow.ErrTypeMismatch, v, b.dtype)
	}
	return nil
}

func (b *NumericBuilder[T]) appendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(v.(T))
}
