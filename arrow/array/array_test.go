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

package array_test

import (
	"testing"

	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/array"
	"github.com/minarrow/minarrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderAndMakeFromData(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	tests := []struct {
		name  string
		dtype arrow.DataType
		value interface{}
		want  string
	}{
		{"bool", arrow.FixedWidthTypes.Boolean, true, "[true (null)]"},
		{"int32", arrow.PrimitiveTypes.Int32, int32(-3), "[-3 (null)]"},
		{"int64", arrow.PrimitiveTypes.Int64, int64(1 << 40), "[1099511627776 (null)]"},
		{"uint64", arrow.PrimitiveTypes.Uint64, uint64(7), "[7 (null)]"},
		{"float32", arrow.PrimitiveTypes.Float32, float32(6.3), "[6.3 (null)]"},
		{"float64", arrow.PrimitiveTypes.Float64, 2.5, "[2.5 (null)]"},
		{"utf8", arrow.BinaryTypes.String, "hi", `["hi" (null)]`},
		{"struct", arrow.StructOf(arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int32}), []interface{}{int32(1)}, "[{1} (null)]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sb := array.NewStructBuilder(mem, arrow.StructOf(arrow.Field{Name: "x", Type: tc.dtype, Nullable: true}))
			defer sb.Release()

			require.NoError(t, sb.AppendRow(tc.value))
			require.NoError(t, sb.AppendRow(nil))

			s, err := sb.NewStructArray()
			require.NoError(t, err)
			defer s.Release()

			col := s.Field(0)
			assert.Equal(t, tc.dtype.ID(), col.DataType().ID())
			assert.Equal(t, 2, col.Len())
			assert.Equal(t, 1, col.NullN())
			assert.True(t, col.IsNull(1))
			assert.Equal(t, tc.want, col.String())

			again := array.MakeFromData(col.Data())
			defer again.Release()
			assert.True(t, array.Equal(col, again))

			b := array.NewBuilder(mem, tc.dtype)
			defer b.Release()
			assert.True(t, arrow.TypeEqual(tc.dtype, b.Type()))
		})
	}
}

func TestAsKind(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := array.NewInt32Builder(mem)
	defer b.Release()
	require.NoError(t, b.AppendValues([]int32{1, 2, 3}, nil))

	var arr array.Interface = b.NewArray()
	defer arr.Release()

	ints, err := array.AsKind[*array.Int32](arr)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, ints.Values())

	_, err = array.AsKind[*array.Float32](arr)
	assert.ErrorIs(t, err, arrow.ErrTypeMismatch)
	_, err = array.AsKind[*array.String](arr)
	assert.ErrorIs(t, err, arrow.ErrTypeMismatch)
	_, err = array.AsKind[*array.Int32](nil)
	assert.ErrorIs(t, err, arrow.ErrTypeMismatch)

	// a failed downcast leaves the array as it was
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, "[1 2 3]", arr.String())

	assert.NotPanics(t, func() { array.MustAsKind[*array.Int32](arr) })
	assert.Panics(t, func() { array.MustAsKind[*array.Uint64](arr) })
}

func TestArrayMarshalJSON(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	fb := array.NewFloat64Builder(mem)
	defer fb.Release()
	require.NoError(t, fb.AppendValues([]float64{1.5, 0, 3}, []bool{true, false, true}))
	f := fb.NewNumericArray()
	defer f.Release()

	out, err := f.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null, 3]`, string(out))

	sb := array.NewStringBuilder(mem)
	defer sb.Release()
	sb.Append("a\"b")
	sb.AppendNull()
	s := sb.NewStringArray()
	defer s.Release()

	out, err = s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["a\"b", null]`, string(out))
}

func TestArrayRetainRelease(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

	b := array.NewUint64Builder(mem)
	b.Append(1)
	arr := b.NewNumericArray()
	b.Release()

	arr.Retain()
	arr.Release()
	assert.Equal(t, []uint64{1}, arr.Values())
	assert.NotZero(t, mem.CurrentAlloc())

	arr.Release()
	mem.AssertSize(t, 0)
}
