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
	"github.com/minarrow/minarrow/arrow/internal/debug"
	"github.com/minarrow/minarrow/arrow/memory"
)

type BooleanBuilder struct {
	builder

	data    *memory.Buffer
	rawData []byte
}

func NewBooleanBuilder(mem memory.Allocator) *BooleanBuilder {
	return &BooleanBuilder{builder: builder{refCount: 1, mem: mem}}
}

func (b *BooleanBuilder) Type() arrow.DataType { return arrow.FixedWidthTypes.Boolean }

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
// Release may be called simultaneously from multiple goroutines.
func (b *BooleanBuilder) Release() {
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

func (b *BooleanBuilder) Append(v bool) {
	b.Reserve(1)
	b.UnsafeAppend(v)
}

func (b *BooleanBuilder) AppendNull() {
	b.Reserve(1)
	b.UnsafeAppendBoolToBitmap(false)
}

func (b *BooleanBuilder) UnsafeAppend(v bool) {
	bitutil.SetBitTo(b.rawData, b.length, v)
	b.builder.UnsafeAppendBoolToBitmap(true)
}

func (b *BooleanBuilder) UnsafeAppendBoolToBitmap(isValid bool) {
	if !isValid {
		bitutil.ClearBit(b.rawData, b.length)
	}
	b.builder.UnsafeAppendBoolToBitmap(isValid)
}

// AppendValues appends v with the validity flags in valid, nil meaning all
// valid. A length mismatch returns ErrLengthMismatch and appends nothing.
func (b *BooleanBuilder) AppendValues(v []bool, valid []bool) error {
	if err := checkValidLen(len(v), valid); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}

	b.Reserve(len(v))
	for i, vv := range v {
		bitutil.SetBitTo(b.rawData, b.length+i, vv && (valid == nil || valid[i]))
	}
	b.unsafeAppendBoolsToBitmap(valid, len(v))
	return nil
}

func (b *BooleanBuilder) init(capacity int) {
	b.builder.init(capacity)

	b.data = memory.NewResizableBuffer(b.mem)
	bytesN := bitutil.BytesForBits(capacity)
	b.data.Resize(bytesN)
	b.rawData = b.data.Bytes()
	clear(b.rawData)
}

// Reserve ensures there is enough space for appending n elements
// by checking the capacity and calling Resize if necessary.
func (b *BooleanBuilder) Reserve(n int) {
	b.builder.reserve(n, b.Resize)
}

// Resize adjusts the space allocated by b to n elements. If n is greater than b.Cap(),
// additional memory will be allocated. If n is smaller, the allocated memory may reduced.
func (b *BooleanBuilder) Resize(n int) {
	if n < minBuilderCapacity {
		n = minBuilderCapacity
	}

	if b.capacity == 0 {
		b.init(n)
	} else {
		oldBytesN := b.data.Len()
		b.builder.resize(n, b.init)
		newBytesN := bitutil.BytesForBits(n)
		b.data.Resize(newBytesN)
		b.rawData = b.data.Bytes()
		if oldBytesN < newBytesN {
			clear(b.rawData[oldBytesN:])
		}
	}
}

// NewArray creates a Boolean array from the memory buffers used by the builder and resets the BooleanBuilder
// so it can be used to build a new array.
func (b *BooleanBuilder) NewArray() Interface {
	return b.NewBooleanArray()
}

// NewBooleanArray creates a Boolean array from the memory buffers used by the builder and resets the BooleanBuilder
// so it can be used to build a new array.
func (b *BooleanBuilder) NewBooleanArray() (a *Boolean) {
	data := b.newData()
	a = NewBooleanData(data)
	data.Release()
	return
}

func (b *BooleanBuilder) newData() *Data {
	bytesRequired := bitutil.BytesForBits(b.length)
	if bytesRequired > 0 && bytesRequired < b.data.Len() {
		// trim buffers
		b.data.Resize(bytesRequired)
	}

	bitmap := b.finishBitmap()
	res := NewData(arrow.FixedWidthTypes.Boolean, b.length, []*memory.Buffer{bitmap, b.data}, nil, b.nulls)
	if bitmap != nil {
		bitmap.Release()
	}
	b.reset()

	if b.data != nil {
		b.data.Release()
		b.data = nil
		b.rawData = nil
	}

	return res
}

func (b *BooleanBuilder) checkValue(v interface{}) error {
	if _, ok := v.(bool); v != nil && !ok {
		return fmt.Errorf("arrow/array: %w: cannot append %T to bool builder", arrow.ErrTypeMismatch, v)
	}
	return nil
}

func (b *BooleanBuilder) appendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(v.(bool))
}
