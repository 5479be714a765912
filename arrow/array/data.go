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
	"sync/atomic"

	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/bitutil"
	"github.com/minarrow/minarrow/arrow/internal/debug"
	"github.com/minarrow/minarrow/arrow/memory"
)

// exclusiveRefCount marks Data that is currently held through an exclusive
// handle. Retain and Release on such Data is a programming error.
const exclusiveRefCount = -1

// Data represents the memory and metadata of an array. Buffers are laid out
// as [validity, values] for fixed-width kinds, [validity, offsets, bytes]
// for strings and [validity] for structs, whose values live in childData.
type Data struct {
	refCount  int64
	dtype     arrow.DataType
	nulls     int
	length    int
	buffers   []*memory.Buffer
	childData []*Data
}

// NewData creates a Data holding a reference to every non-nil buffer and
// child. A nulls value of UnknownNullCount is resolved from the validity
// bitmap here, so the returned Data is never written again.
func NewData(dtype arrow.DataType, length int, buffers []*memory.Buffer, childData []*Data, nulls int) *Data {
	if nulls < 0 {
		nulls = 0
		if len(buffers) > 0 && buffers[0] != nil {
			nulls = length - bitutil.CountSetBits(buffers[0].Bytes(), length)
		}
	}

	for _, b := range buffers {
		if b != nil {
			b.Retain()
		}
	}

	for _, child := range childData {
		if child != nil {
			child.Retain()
		}
	}

	return &Data{
		refCount:  1,
		dtype:     dtype,
		nulls:     nulls,
		length:    length,
		buffers:   buffers,
		childData: childData,
	}
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (d *Data) Retain() {
	debug.Assert(atomic.LoadInt64(&d.refCount) > 0, "arrow/array: retain of released or exclusively held data")
	atomic.AddInt64(&d.refCount, 1)
}

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
// Release may be called simultaneously from multiple goroutines.
func (d *Data) Release() {
	debug.Assert(atomic.LoadInt64(&d.refCount) > 0, "arrow/array: too many releases")

	if atomic.AddInt64(&d.refCount, -1) == 0 {
		for _, b := range d.buffers {
			if b != nil {
				b.Release()
			}
		}

		for _, b := range d.childData {
			b.Release()
		}
		d.buffers, d.childData = nil, nil
	}
}

// acquireExclusive succeeds only when the caller holds the sole reference.
// The check and the hand-over are one compare-and-swap, so no other holder
// can appear in between.
func (d *Data) acquireExclusive() bool {
	ok := atomic.CompareAndSwapInt64(&d.refCount, 1, exclusiveRefCount)
	if !ok {
		debug.Logf("arrow/array: exclusive access refused, refcount=%d", atomic.LoadInt64(&d.refCount))
	}
	return ok
}

// releaseExclusive turns an exclusively held Data back into a shared one
// with a single reference.
func (d *Data) releaseExclusive() {
	ok := atomic.CompareAndSwapInt64(&d.refCount, exclusiveRefCount, 1)
	debug.Assert(ok, "arrow/array: data was not exclusively held")
}

// refs reports the current holder count.
func (d *Data) refs() int64 { return atomic.LoadInt64(&d.refCount) }

func (d *Data) DataType() arrow.DataType  { return d.dtype }
func (d *Data) NullN() int                { return d.nulls }
func (d *Data) Len() int                  { return d.length }
func (d *Data) Buffers() []*memory.Buffer { return d.buffers }
func (d *Data) Children() []*Data         { return d.childData }
