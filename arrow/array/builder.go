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
	"github.com/minarrow/minarrow/arrow/bitutil"
	"github.com/minarrow/minarrow/arrow/memory"
)

const (
	minBuilderCapacity = 1 << 5
)

// Builder provides an interface to build arrow arrays.
//
// A builder is owned by a single goroutine. NewArray hands the accumulated
// storage to an immutable array and leaves the builder empty and reusable.
type Builder interface {
	// Retain increases the reference count by 1.
	// Retain may be called simultaneously from multiple goroutines.
	Retain()

	// Release decreases the reference count by 1.
	Release()

	// Type returns the data type of the arrays this builder produces.
	Type() arrow.DataType

	// Len returns the number of elements in the array builder.
	Len() int

	// Cap returns the total number of elements that can be stored
	// without allocating additional memory.
	Cap() int

	// NullN returns the number of null values in the array builder.
	NullN() int

	// AppendNull adds a new null value to the array being built.
	AppendNull()

	// Reserve ensures there is enough space for appending n elements
	// by checking the capacity and calling Resize if necessary.
	Reserve(n int)

	// Resize adjusts the space allocated by b to n elements. If n is greater than b.Cap(),
	// additional memory will be allocated. If n is smaller, the allocated memory may reduced.
	Resize(n int)

	// NewArray creates a new array from the memory buffers used
	// by the builder and resets the Builder so it can be used to build
	// a new array.
	NewArray() Interface

	// checkValue reports whether v can be appended by appendValue.
	checkValue(v interface{}) error

	// appendValue appends v, nil meaning null. v must have passed checkValue.
	appendValue(v interface{})
}

// builder provides common functionality for managing the validity bitmap (nulls) when building arrays.
type builder struct {
	refCount   int64
	mem        memory.Allocator
	nullBitmap *memory.Buffer
	nulls      int
	length     int
	capacity   int
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (b *builder) Retain() {
	atomic.AddInt64(&b.refCount, 1)
}

// Len returns the number of elements in the array builder.
func (b *builder) Len() int { return b.length }

// Cap returns the total number of elements that can be stored without allocating additional memory.
func (b *builder) Cap() int { return b.capacity }

// NullN returns the number of null values in the array builder.
func (b *builder) NullN() int { return b.nulls }

func (b *builder) init(capacity int) {
	toAlloc := bitutil.CeilByte(capacity) / 8
	b.nullBitmap = memory.NewResizableBuffer(b.mem)
	b.nullBitmap.Resize(toAlloc)
	b.capacity = capacity
	clear(b.nullBitmap.Buf())
}

func (b *builder) reset() {
	if b.nullBitmap != nil {
		b.nullBitmap.Release()
		b.nullBitmap = nil
	}

	b.nulls = 0
	b.length = 0
	b.capacity = 0
}

func (b *builder) resize(newBits int, init func(int)) {
	if b.nullBitmap == nil {
		init(newBits)
		return
	}

	newBytesN := bitutil.CeilByte(newBits) / 8
	oldBytesN := b.nullBitmap.Len()
	b.nullBitmap.Resize(newBytesN)
	b.capacity = newBits
	if oldBytesN < newBytesN {
		clear(b.nullBitmap.Buf()[oldBytesN:newBytesN])
	}
	if newBits < b.length {
		b.length = newBits
		b.nulls = newBits - bitutil.CountSetBits(b.nullBitmap.Buf(), newBits)
	}
}

func (b *builder) reserve(elements int, resize func(int)) {
	if b.length+elements > b.capacity {
		newCap := bitutil.NextPowerOf2(b.length + elements)
		resize(newCap)
	}
}

// finishBitmap trims the validity bitmap to the built length and hands it
// over to the caller, who owns the returned reference.
func (b *builder) finishBitmap() *memory.Buffer {
	bm := b.nullBitmap
	if bm != nil {
		bm.Resize(bitutil.BytesForBits(b.length))
		b.nullBitmap = nil
	}
	return bm
}

// UnsafeAppendBoolToBitmap records the validity of the next element.
// The caller must have reserved room for it.
func (b *builder) UnsafeAppendBoolToBitmap(isValid bool) {
	if isValid {
		bitutil.SetBit(b.nullBitmap.Bytes(), b.length)
	} else {
		bitutil.ClearBit(b.nullBitmap.Bytes(), b.length)
		b.nulls++
	}
	b.length++
}

func (b *builder) unsafeAppendBoolsToBitmap(valid []bool, length int) {
	if len(valid) == 0 {
		b.unsafeSetValid(length)
		return
	}

	bm := b.nullBitmap.Bytes()
	for i, v := range valid {
		bitutil.SetBitTo(bm, b.length+i, v)
		if !v {
			b.nulls++
		}
	}
	b.length += length
}

func (b *builder) unsafeSetValid(length int) {
	bitutil.SetBitsTo(b.nullBitmap.Bytes(), b.length, length, true)
	b.length += length
}

func checkValidLen(values int, valid []bool) error {
	if valid != nil && values != len(valid) {
		return fmt.Errorf("arrow/array: %w: %d values, %d validity flags", arrow.ErrLengthMismatch, values, len(valid))
	}
	return nil
}

// NewBuilder returns a builder for arrays of type dtype. The switch is
// exhaustive over arrow.Type.
func NewBuilder(mem memory.Allocator, dtype arrow.DataType) Builder {
	switch dtype.ID() {
	case arrow.BOOL:
		return NewBooleanBuilder(mem)
	case arrow.INT32:
		return NewNumericBuilder[int32](mem)
	case arrow.INT64:
		return NewNumericBuilder[int64](mem)
	case arrow.UINT64:
		return NewNumericBuilder[uint64](mem)
	case arrow.FLOAT32:
		return NewNumericBuilder[float32](mem)
	case arrow.FLOAT64:
		return NewNumericBuilder[float64](mem)
	case arrow.STRING:
		return NewStringBuilder(mem)
	case arrow.STRUCT:
		return NewStructBuilder(mem, dtype.(*arrow.StructType))
	}
	panic(fmt.Errorf("arrow/array: %w: unsupported builder for %s", arrow.ErrInvalid, dtype))
}
