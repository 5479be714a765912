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

package compute

import (
	"context"
	"fmt"

	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/array"
	"github.com/minarrow/minarrow/arrow/bitutil"
	"github.com/minarrow/minarrow/arrow/internal/debug"
	"github.com/minarrow/minarrow/arrow/memory"
)

// MapSame applies fn in place to every valid value of arr and returns the
// mutated array. It requires arr to be the sole holder of its storage; if
// the array was retained, or its data is referenced by a table, a struct or
// another handle, MapSame returns ErrOwnershipConflict and arr is left
// untouched. On success arr is consumed: the caller releases the returned
// array instead.
func MapSame[T arrow.NumericType](arr *array.Numeric[T], fn func(T) T) (*array.Numeric[T], error) {
	ex, err := arr.Exclusive()
	if err != nil {
		debug.Log(err.Error())
		return nil, fmt.Errorf("compute: map in place: %w", err)
	}

	values := ex.Values()
	bitutil.VisitBitBlocks(ex.NullBitmapBytes(), ex.Len(),
		func(pos int) { values[pos] = fn(values[pos]) },
		func(int) {})

	return ex.Freeze(), nil
}

// MapCast returns a new array holding fn applied to every valid value of
// arr. The result shares the validity of arr.
func MapCast[T, U arrow.NumericType](ctx context.Context, arr *array.Numeric[T], fn func(T) U) (*array.Numeric[U], error) {
	var (
		n        = arr.Len()
		inData   = arr.Values()
		buf, out = allocValues[U](GetAllocator(ctx), n)
		def      U
	)
	defer buf.Release()

	bitutil.VisitBitBlocks(arr.NullBitmapBytes(), n,
		func(pos int) { out[pos] = fn(inData[pos]) },
		func(pos int) { out[pos] = def })

	return newNumeric[U](n, validityBuffer(arr), buf, arr.NullN()), nil
}

// ZipWith returns a new array holding fn(a[i], b[i]) for every position
// where both inputs are valid, and a null wherever either input is null.
// Inputs of different lengths fail with ErrLengthMismatch.
func ZipWith[T, U, V arrow.NumericType](ctx context.Context, a *array.Numeric[T], b *array.Numeric[U], fn func(T, U) V) (*array.Numeric[V], error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("compute: zip: %w: %d and %d values", arrow.ErrLengthMismatch, a.Len(), b.Len())
	}

	var (
		mem       = GetAllocator(ctx)
		n         = a.Len()
		aData     = a.Values()
		bData     = b.Values()
		buf, out  = allocValues[V](mem, n)
		validity  = intersectValidity(mem, a, b)
		def       V
		nullCount = array.UnknownNullCount
	)
	defer buf.Release()

	var bitmap []byte
	if validity != nil {
		defer validity.Release()
		bitmap = validity.Bytes()
	} else {
		nullCount = 0
	}

	bitutil.VisitBitBlocks(bitmap, n,
		func(pos int) { out[pos] = fn(aData[pos], bData[pos]) },
		func(pos int) { out[pos] = def })

	return newNumeric[V](n, validity, buf, nullCount), nil
}

// MapString returns a new string array holding fn applied to every valid
// value of arr.
func MapString(ctx context.Context, arr *array.String, fn func(string) string) (*array.String, error) {
	bldr := array.NewStringBuilder(GetAllocator(ctx))
	defer bldr.Release()

	bldr.Reserve(arr.Len())
	bldr.ReserveData(len(arr.ValueBytes()))
	bitutil.VisitBitBlocks(arr.NullBitmapBytes(), arr.Len(),
		func(pos int) { bldr.Append(fn(arr.Value(pos))) },
		func(int) { bldr.AppendNull() })

	return bldr.NewStringArray(), nil
}

// MapStringCast returns a new numeric array holding fn applied to every
// valid value of arr. The result shares the validity of arr.
func MapStringCast[U arrow.NumericType](ctx context.Context, arr *array.String, fn func(string) U) (*array.Numeric[U], error) {
	var (
		n        = arr.Len()
		buf, out = allocValues[U](GetAllocator(ctx), n)
		def      U
	)
	defer buf.Release()

	bitutil.VisitBitBlocks(arr.NullBitmapBytes(), n,
		func(pos int) { out[pos] = fn(arr.Value(pos)) },
		func(pos int) { out[pos] = def })

	return newNumeric[U](n, validityBuffer(arr), buf, arr.NullN()), nil
}

func allocValues[T arrow.NumericType](mem memory.Allocator, n int) (*memory.Buffer, []T) {
	buf := memory.NewResizableBuffer(mem)
	buf.Resize(n * arrow.SizeOf[T]())
	return buf, arrow.CastFromBytesTo[T](buf.Bytes())
}

// newNumeric wraps the buffers in a new array. The array takes its own
// references; the caller keeps the ones it holds.
func newNumeric[T arrow.NumericType](n int, validity, values *memory.Buffer, nulls int) *array.Numeric[T] {
	data := array.NewData(arrow.TypeOf[T](), n, []*memory.Buffer{validity, values}, nil, nulls)
	defer data.Release()
	return array.NewNumericData[T](data)
}

func validityBuffer(arr array.Interface) *memory.Buffer {
	if buffers := arr.Data().Buffers(); len(buffers) > 0 {
		return buffers[0]
	}
	return nil
}

// intersectValidity returns the combined validity of a and b, nil when both
// are all valid. The caller owns the returned reference.
func intersectValidity(mem memory.Allocator, a, b array.Interface) *memory.Buffer {
	left, right := a.NullBitmapBytes(), b.NullBitmapBytes()
	switch {
	case left == nil && right == nil:
		return nil
	case left == nil:
		buf := validityBuffer(b)
		buf.Retain()
		return buf
	case right == nil:
		buf := validityBuffer(a)
		buf.Retain()
		return buf
	}

	n := a.Len()
	buf := memory.NewResizableBuffer(mem)
	buf.Resize(bitutil.BytesForBits(n))
	bitutil.BitmapAnd(left, right, buf.Bytes(), n)
	return buf
}
