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

	"github.com/goccy/go-json"
	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/bitutil"
	"github.com/minarrow/minarrow/arrow/internal/debug"
)

// NullValueStr is the string form of a null slot.
const NullValueStr = "(null)"

// Interface is the single handle type for every array kind. The set of
// implementations is closed: *Boolean, *Int32, *Int64, *Uint64, *Float32,
// *Float64, *String and *Struct. Use AsKind to recover the concrete kind.
type Interface interface {
	json.Marshaler
	fmt.Stringer

	// DataType returns the type metadata for this instance.
	DataType() arrow.DataType

	// NullN returns the number of null values in the array.
	NullN() int

	// Len returns the number of elements in the array.
	Len() int

	// IsNull returns true if value at index is null.
	// NOTE: IsNull will panic if NullBitmapBytes is not empty and 0 > i ≥ Len.
	IsNull(i int) bool

	// IsValid returns true if value at index is not null.
	// NOTE: IsValid will panic if NullBitmapBytes is not empty and 0 > i ≥ Len.
	IsValid(i int) bool

	Data() *Data

	// NullBitmapBytes returns the validity bitmap, or nil when the array has
	// no nulls.
	NullBitmapBytes() []byte

	// ValueStr returns the value at index i as a string, NullValueStr for
	// null slots.
	ValueStr(i int) string

	// GetOneForMarshal returns the value at index i in a form suitable for
	// JSON encoding, nil for null slots.
	GetOneForMarshal(i int) interface{}

	// Retain increases the reference count by 1.
	// Retain may be called simultaneously from multiple goroutines.
	Retain()

	// Release decreases the reference count by 1.
	// Release may be called simultaneously from multiple goroutines.
	// When the reference count goes to zero, the memory is freed.
	Release()

	sealed()
}

const (
	// UnknownNullCount specifies the NullN should be calculated from the null bitmap buffer.
	UnknownNullCount = -1
)

// array counts handle holders in refCount. The handle as a whole holds a
// single reference to data, dropped when refCount reaches zero.
type array struct {
	refCount        int64
	data            *Data
	nullBitmapBytes []byte
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (a *array) Retain() {
	debug.Assert(atomic.LoadInt64(&a.refCount) > 0, "arrow/array: retain of a released or moved array")
	atomic.AddInt64(&a.refCount, 1)
}

// Release decreases the reference count by 1.
// Release may be called simultaneously from multiple goroutines.
// When the reference count goes to zero, the memory is freed.
// Release on a handle whose storage moved to an exclusive handle does nothing.
func (a *array) Release() {
	a.release()
}

// release reports whether this call dropped the last reference.
func (a *array) release() bool {
	if a.data == nil {
		return false
	}
	debug.Assert(atomic.LoadInt64(&a.refCount) > 0, "arrow/array: too many releases")

	if atomic.AddInt64(&a.refCount, -1) == 0 {
		a.data.Release()
		a.data, a.nullBitmapBytes = nil, nil
		return true
	}
	return false
}

// DataType returns the type metadata for this instance.
func (a *array) DataType() arrow.DataType { return a.data.dtype }

// NullN returns the number of null values in the array.
func (a *array) NullN() int { return a.data.nulls }

// NullBitmapBytes returns a byte slice of the validity bitmap.
func (a *array) NullBitmapBytes() []byte { return a.nullBitmapBytes }

func (a *array) Data() *Data { return a.data }

// Len returns the number of elements in the array.
func (a *array) Len() int { return a.data.length }

// IsNull returns true if value at index is null.
// NOTE: IsNull will panic if NullBitmapBytes is not empty and 0 > i ≥ Len.
func (a *array) IsNull(i int) bool {
	return len(a.nullBitmapBytes) != 0 && bitutil.BitIsNotSet(a.nullBitmapBytes, i)
}

// IsValid returns true if value at index is not null.
// NOTE: IsValid will panic if NullBitmapBytes is not empty and 0 > i ≥ Len.
func (a *array) IsValid(i int) bool {
	return len(a.nullBitmapBytes) == 0 || bitutil.BitIsSet(a.nullBitmapBytes, i)
}

func (a *array) setData(data *Data) {
	// retain before releasing in case data is the current a.data
	data.Retain()

	if a.data != nil {
		a.data.Release()
	}

	a.nullBitmapBytes = nil
	if len(data.buffers) > 0 && data.buffers[0] != nil {
		a.nullBitmapBytes = data.buffers[0].Bytes()
	}
	a.data = data
}

func (a *array) sealed() {}

// MakeFromData constructs a strongly-typed array instance from generic Data.
// The switch is exhaustive over arrow.Type.
func MakeFromData(data *Data) Interface {
	switch data.dtype.ID() {
	case arrow.BOOL:
		return NewBooleanData(data)
	case arrow.INT32:
		return NewNumericData[int32](data)
	case arrow.INT64:
		return NewNumericData[int64](data)
	case arrow.UINT64:
		return NewNumericData[uint64](data)
	case arrow.FLOAT32:
		return NewNumericData[float32](data)
	case arrow.FLOAT64:
		return NewNumericData[float64](data)
	case arrow.STRING:
		return NewStringData(data)
	case arrow.STRUCT:
		return NewStructData(data)
	}
	panic(fmt.Errorf("arrow/array: %w: unknown type %s", arrow.ErrInvalid, data.dtype))
}

// AsKind returns arr as the concrete array kind A, or ErrTypeMismatch when
// arr holds another kind. arr is never modified.
//
//	ints, err := array.AsKind[*array.Int32](col)
func AsKind[A Interface](arr Interface) (A, error) {
	var zero A
	if arr == nil {
		return zero, fmt.Errorf("arrow/array: %w: nil array, want %T", arrow.ErrTypeMismatch, zero)
	}

	out, ok := arr.(A)
	if !ok {
		return zero, fmt.Errorf("arrow/array: %w: %s array is not %T", arrow.ErrTypeMismatch, arr.DataType(), zero)
	}
	return out, nil
}

// MustAsKind is like AsKind but panics on a mismatch. Use it only where the
// kind is already known, for instance from the table schema.
func MustAsKind[A Interface](arr Interface) A {
	out, err := AsKind[A](arr)
	if err != nil {
		panic(err)
	}
	return out
}

func arrayString(a Interface) string {
	o := make([]byte, 0, 2+a.Len()*4)
	o = append(o, '[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o = append(o, ' ')
		}
		o = append(o, a.ValueStr(i)...)
	}
	o = append(o, ']')
	return string(o)
}

func arrayMarshalJSON(a Interface) ([]byte, error) {
	vals := make([]interface{}, a.Len())
	for i := range vals {
		vals[i] = a.GetOneForMarshal(i)
	}
	return json.Marshal(vals)
}
