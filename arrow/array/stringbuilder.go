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
	"math"
	"sync/atomic"

	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/internal/debug"
	"github.com/minarrow/minarrow/arrow/memory"
)

// A StringBuilder is used to build a String array using the Append methods.
type StringBuilder struct {
	builder

	offsets    *memory.Buffer
	rawOffsets []int32
	values     *memory.Buffer
}

func NewStringBuilder(mem memory.Allocator) *StringBuilder {
	return &StringBuilder{builder: builder{refCount: 1, mem: mem}}
}

func (b *StringBuilder) Type() arrow.DataType { return arrow.BinaryTypes.String }

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
// Release may be called simultaneously from multiple goroutines.
func (b *StringBuilder) Release() {
	debug.Assert(atomic.LoadInt64(&b.refCount) > 0, "too many releases")

	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.nullBitmap != nil {
			b.nullBitmap.Release()
			b.nullBitmap = nil
		}
		b.releaseValueBuffers()
	}
}

func (b *StringBuilder) releaseValueBuffers() {
	if b.offsets != nil {
		b.offsets.Release()
		b.offsets = nil
		b.rawOffsets = nil
	}
	if b.values != nil {
		b.values.Release()
		b.values = nil
	}
}

// Append appends a valid string.
func (b *StringBuilder) Append(v string) {
	b.Reserve(1)
	b.appendNextOffset()
	b.appendBytes(v)
	b.UnsafeAppendBoolToBitmap(true)
}

// AppendNull appends a null slot holding "".
func (b *StringBuilder) AppendNull() {
	b.Reserve(1)
	b.appendNextOffset()
	b.UnsafeAppendBoolToBitmap(false)
}

// AppendValues appends the strings in v with the validity flags in valid,
// nil meaning all valid. A length mismatch returns ErrLengthMismatch and
// appends nothing. Slots flagged invalid hold "".
func (b *StringBuilder) AppendValues(v []string, valid []bool) error {
	if err := checkValidLen(len(v), valid); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}

	b.Reserve(len(v))
	for i, vv := range v {
		b.appendNextOffset()
		if valid == nil || valid[i] {
			b.appendBytes(vv)
			b.UnsafeAppendBoolToBitmap(true)
		} else {
			b.UnsafeAppendBoolToBitmap(false)
		}
	}
	return nil
}

// DataLen returns the number of value bytes appended so far.
func (b *StringBuilder) DataLen() int {
	if b.values == nil {
		return 0
	}
	return b.values.Len()
}

func (b *StringBuilder) appendNextOffset() {
	n := b.values.Len()
	debug.Assert(n <= math.MaxInt32, "arrow/array: string builder exceeds int32 offsets")
	b.rawOffsets[b.length] = int32(n)
}

func (b *StringBuilder) appendBytes(v string) {
	n := b.values.Len()
	need := n + len(v)
	if need > b.values.Cap() {
		b.values.Reserve(max(need, 2*b.values.Cap()))
	}
	b.values.ResizeNoShrink(need)
	copy(b.values.Bytes()[n:], v)
}

func (b *StringBuilder) init(capacity int) {
	b.builder.init(capacity)

	b.offsets = memory.NewResizableBuffer(b.mem)
	b.offsets.Resize(arrow.BinaryTypes.String.OffsetBytesRequired(capacity))
	b.rawOffsets = arrow.CastFromBytesTo[int32](b.offsets.Bytes())
	b.values = memory.NewResizableBuffer(b.mem)
}

// Reserve ensures there is enough space for appending n elements
// by checking the capacity and calling Resize if necessary.
func (b *StringBuilder) Reserve(n int) {
	b.builder.reserve(n, b.Resize)
}

// ReserveData ensures there is enough space for appending n value bytes.
func (b *StringBuilder) ReserveData(n int) {
	if b.capacity == 0 {
		b.Resize(minBuilderCapacity)
	}
	b.values.Reserve(b.values.Len() + n)
}

// Resize adjusts the space allocated by b to n elements. If n is greater than b.Cap(),
// additional memory will be allocated. If n is smaller, the allocated memory may reduced.
func (b *StringBuilder) Resize(n int) {
	if n < minBuilderCapacity {
		n = minBuilderCapacity
	}

	if b.capacity == 0 {
		b.init(n)
	} else {
		b.builder.resize(n, b.init)
		b.offsets.Resize(arrow.BinaryTypes.String.OffsetBytesRequired(n))
		b.rawOffsets = arrow.CastFromBytesTo[int32](b.offsets.Bytes())
	}
}

// NewArray creates a String array from the memory buffers used by the builder and resets the StringBuilder
// so it can be used to build a new array.
func (b *StringBuilder) NewArray() Interface {
	return b.NewStringArray()
}

// NewStringArray creates a String array from the memory buffers used by the builder and resets the StringBuilder
// so it can be used to build a new array.
func (b *StringBuilder) NewStringArray() (a *String) {
	data := b.newData()
	a = NewStringData(data)
	data.Release()
	return
}

func (b *StringBuilder) newData() (data *Data) {
	if b.offsets != nil {
		// closing offset
		b.rawOffsets[b.length] = int32(b.values.Len())
		b.offsets.Resize(arrow.BinaryTypes.String.OffsetBytesRequired(b.length))
	}

	bitmap := b.finishBitmap()
	data = NewData(arrow.BinaryTypes.String, b.length, []*memory.Buffer{bitmap, b.offsets, b.values}, nil, b.nulls)
	if bitmap != nil {
		bitmap.Release()
	}
	b.reset()
	b.releaseValueBuffers()

	return
}

func (b *StringBuilder) checkValue(v interface{}) error {
	if _, ok := v.(string); v != nil && !ok {
		return fmt.Errorf("arrow/array: %w: cannot append %T to utf8 builder", arrow.ErrTypeMismatch, v)
	}
	return nil
}

func (b *StringBuilder) appendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(v.(string))
}
