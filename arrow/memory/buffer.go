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

package memory

import (
	"sync/atomic"

	"github.com/minarrow/minarrow/arrow/internal/debug"
)

// Buffer is a reference counted byte slice. Buffers created by
// NewResizableBuffer return their storage to the allocator when the last
// reference is released.
type Buffer struct {
	refCount int64
	buf      []byte
	length   int
	mutable  bool
	mem      Allocator
}

// NewBufferBytes wraps data without copying. The buffer is not owned by an
// allocator, so Release never frees it.
func NewBufferBytes(data []byte) *Buffer {
	return &Buffer{refCount: 1, buf: data, length: len(data)}
}

// NewResizableBuffer creates a mutable, empty buffer backed by mem.
func NewResizableBuffer(mem Allocator) *Buffer {
	return &Buffer{refCount: 1, mutable: true, mem: mem}
}

// Retain increases the reference count by 1.
func (b *Buffer) Retain() {
	if b.mem != nil {
		atomic.AddInt64(&b.refCount, 1)
	}
}

// Release decreases the reference count by 1. When the reference count
// reaches zero the storage is returned to the allocator.
func (b *Buffer) Release() {
	if b.mem == nil {
		return
	}
	debug.Assert(atomic.LoadInt64(&b.refCount) > 0, "memory: too many releases")

	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.buf != nil {
			b.mem.Free(b.buf)
		}
		b.buf, b.length = nil, 0
	}
}

// Reset replaces the storage of b with buf. Any previous storage is left to
// its owner.
func (b *Buffer) Reset(buf []byte) {
	b.buf = buf
	b.length = len(buf)
}

// Buf returns the full allocated slice, including bytes past Len.
func (b *Buffer) Buf() []byte { return b.buf }

// Bytes returns the first Len bytes of the buffer.
func (b *Buffer) Bytes() []byte { return b.buf[:b.length] }

func (b *Buffer) Mutable() bool { return b.mutable }
func (b *Buffer) Len() int      { return b.length }
func (b *Buffer) Cap() int      { return len(b.buf) }

// Reserve grows the allocation so at least capacity bytes fit. Reserve never
// shrinks and never changes Len.
func (b *Buffer) Reserve(capacity int) {
	if capacity <= len(b.buf) {
		return
	}
	debug.Assert(b.mutable, "memory: Reserve on an immutable buffer")

	newCap := roundUpToMultipleOf64(capacity)
	if b.buf == nil {
		b.buf = b.mem.Allocate(newCap)
	} else {
		b.buf = b.mem.Reallocate(newCap, b.buf)
	}
}

// Resize changes Len to newSize, growing the allocation as needed and
// shrinking it when newSize drops well below the current capacity.
func (b *Buffer) Resize(newSize int) {
	b.resize(newSize, true)
}

// ResizeNoShrink is like Resize but keeps the existing allocation when
// newSize is smaller.
func (b *Buffer) ResizeNoShrink(newSize int) {
	b.resize(newSize, false)
}

func (b *Buffer) resize(newSize int, shrink bool) {
	if !shrink || newSize > b.length {
		b.Reserve(newSize)
		b.length = newSize
		return
	}

	debug.Assert(b.mutable, "memory: Resize on an immutable buffer")
	if newCap := roundUpToMultipleOf64(newSize); newCap < len(b.buf) {
		if newSize == 0 {
			b.mem.Free(b.buf)
			b.buf = nil
		} else {
			b.buf = b.mem.Reallocate(newCap, b.buf)
		}
	}
	b.length = newSize
}

// ReleaseBuffers releases every non-nil buffer in buffers.
func ReleaseBuffers(buffers []*Buffer) {
	for _, buff := range buffers {
		if buff != nil {
			buff.Release()
		}
	}
}
