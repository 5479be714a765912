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
)

// Numeric is an immutable array of fixed-width numeric values.
type Numeric[T arrow.NumericType] struct {
	array
	values []T
}

type (
	Int32   = Numeric[int32]
	Int64   = Numeric[int64]
	Uint64  = Numeric[uint64]
	Float32 = Numeric[float32]
	Float64 = Numeric[float64]
)

// NewNumericData returns a new array holding a reference to data.
func NewNumericData[T arrow.NumericType](data *Data) *Numeric[T] {
	a := &Numeric[T]{}
	a.refCount = 1
	a.setData(data)
	return a
}

// Value returns the value at the specified index.
func (a *Numeric[T]) Value(i int) T { return a.values[i] }

// Values returns the values. Null slots hold the zero value.
func (a *Numeric[T]) Values() []T { return a.values }

func (a *Numeric[T]) String() string { return arrayString(a) }

func (a *Numeric[T]) setData(data *Data) {
	a.array.setData(data)
	a.values = nil
	if len(data.buffers) > 1 && data.buffers[1] != nil {
		a.values = arrow.CastFromBytesTo[T](data.buffers[1].Bytes())[:data.length]
	}
}

func (a *Numeric[T]) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return fmt.Sprint(a.values[i])
}

func (a *Numeric[T]) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.values[i]
}

func (a *Numeric[T]) MarshalJSON() ([]byte, error) { return arrayMarshalJSON(a) }

// Exclusive moves the storage of a into an exclusive handle that permits
// in-place mutation. It fails with ErrOwnershipConflict unless a has a
// single holder and a is the only holder of its data. On success a is invalidated: its accessors must not be
// used and its Release does nothing.
func (a *Numeric[T]) Exclusive() (*ExclusiveNumeric[T], error) {
	if a.data == nil {
		return nil, fmt.Errorf("arrow/array: %w: array storage already moved", arrow.ErrOwnershipConflict)
	}
	if !atomic.CompareAndSwapInt64(&a.refCount, 1, 0) {
		return nil, fmt.Errorf("arrow/array: %w: %s array handle has %d holders", arrow.ErrOwnershipConflict, a.data.dtype, atomic.LoadInt64(&a.refCount))
	}
	if !a.data.acquireExclusive() {
		atomic.StoreInt64(&a.refCount, 1)
		return nil, fmt.Errorf("arrow/array: %w: %s array data has %d holders", arrow.ErrOwnershipConflict, a.data.dtype, a.data.refs())
	}

	ex := &ExclusiveNumeric[T]{data: a.data, values: a.values, nullBitmap: a.nullBitmapBytes}
	a.data, a.values, a.nullBitmapBytes = nil, nil, nil
	return ex, nil
}

// ExclusiveNumeric is the sole handle to a numeric array's storage. Its
// values may be written in place; validity is read-only. It cannot be
// retained or shared. Freeze turns it back into a shared array.
type ExclusiveNumeric[T arrow.NumericType] struct {
	data       *Data
	values     []T
	nullBitmap []byte
}

func (e *ExclusiveNumeric[T]) DataType() arrow.DataType { return e.data.dtype }
func (e *ExclusiveNumeric[T]) Len() int                 { return e.data.length }
func (e *ExclusiveNumeric[T]) NullN() int               { return e.data.nulls }

// NullBitmapBytes returns the validity bitmap, nil when every slot is valid.
func (e *ExclusiveNumeric[T]) NullBitmapBytes() []byte { return e.nullBitmap }

func (e *ExclusiveNumeric[T]) IsValid(i int) bool {
	return len(e.nullBitmap) == 0 || bitutil.BitIsSet(e.nullBitmap, i)
}

func (e *ExclusiveNumeric[T]) IsNull(i int) bool { return !e.IsValid(i) }

// Values returns the mutable values.
func (e *ExclusiveNumeric[T]) Values() []T { return e.values }

// Freeze ends exclusive access and returns an immutable array owning the
// storage. e must not be used afterwards.
func (e *ExclusiveNumeric[T]) Freeze() *Numeric[T] {
	data := e.data
	e.data, e.values, e.nullBitmap = nil, nil, nil

	data.releaseExclusive()
	a := NewNumericData[T](data)
	data.Release()
	return a
}

// Release frees the storage without producing an array. Calling Release
// after Freeze does nothing.
func (e *ExclusiveNumeric[T]) Release() {
	if e.data == nil {
		return
	}
	data := e.data
	e.data, e.values, e.nullBitmap = nil, nil, nil

	data.releaseExclusive()
	data.Release()
}
