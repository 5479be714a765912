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

func TestNumericBuilder(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ab := array.NewInt64Builder(mem)
	defer ab.Release()

	exp := []int64{0, 1, 2, 0, 4, 5, 6, 7}
	for i, v := range exp {
		if i == 0 || i == 3 {
			ab.AppendNull()
			continue
		}
		ab.Append(v)
	}

	assert.Equal(t, len(exp), ab.Len(), "unexpected Len()")
	assert.Equal(t, 2, ab.NullN(), "unexpected NullN()")

	a := ab.NewNumericArray()
	defer a.Release()

	// builder is reset
	assert.Zero(t, ab.Len(), "unexpected ArrayBuilder.Len(), NewInt64Builder did not reset state")
	assert.Zero(t, ab.Cap(), "unexpected ArrayBuilder.Cap(), NewInt64Builder did not reset state")
	assert.Zero(t, ab.NullN(), "unexpected ArrayBuilder.NullN(), NewInt64Builder did not reset state")

	assert.Equal(t, 2, a.NullN())
	assert.Equal(t, exp, a.Values(), "unexpected Int64Values()")
	assert.Equal(t, []byte{0xf6}, a.NullBitmapBytes())
	assert.Len(t, a.Values(), 8)

	// builder is reusable
	ab.Append(42)
	b := ab.NewNumericArray()
	defer b.Release()
	assert.Equal(t, []int64{42}, b.Values())
	assert.Equal(t, []int64{0, 1, 2, 0, 4, 5, 6, 7}, a.Values())
}

func TestNumericBuilder_AppendValues(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ab := array.NewFloat32Builder(mem)
	defer ab.Release()

	exp := []float32{0, 1, 2, 3}
	require.NoError(t, ab.AppendValues(exp, nil))
	require.NoError(t, ab.AppendValues([]float32{9, 8}, []bool{false, true}))
	require.NoError(t, ab.AppendValues(nil, nil))

	err := ab.AppendValues([]float32{1, 2, 3}, []bool{true})
	assert.ErrorIs(t, err, arrow.ErrLengthMismatch)
	assert.Equal(t, 6, ab.Len(), "failed AppendValues must not append")

	a := ab.NewNumericArray()
	defer a.Release()

	assert.Equal(t, []float32{0, 1, 2, 3, 0, 8}, a.Values())
	assert.True(t, a.IsNull(4))
	assert.True(t, a.IsValid(5))
	assert.Equal(t, 1, a.NullN())
}

func TestNumericBuilder_Empty(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ab := array.NewInt32Builder(mem)
	defer ab.Release()

	want := []int32{}
	require.NoError(t, ab.AppendValues(want, nil))
	a := ab.NewNumericArray()
	assert.Zero(t, a.Len())
	assert.Empty(t, a.Values())
	assert.Equal(t, "[]", a.String())
	a.Release()

	ab.Reserve(100)
	a = ab.NewNumericArray()
	assert.Zero(t, a.Len())
	a.Release()
}

func TestNumericBuilder_Resize(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ab := array.NewUint64Builder(mem)
	defer ab.Release()

	assert.Equal(t, 0, ab.Cap())
	assert.Equal(t, 0, ab.Len())

	ab.Reserve(63)
	assert.Equal(t, 64, ab.Cap())
	assert.Equal(t, 0, ab.Len())

	for i := 0; i < 63; i++ {
		ab.Append(0)
	}
	assert.Equal(t, 64, ab.Cap())
	assert.Equal(t, 63, ab.Len())

	ab.Resize(5)
	assert.Equal(t, 5, ab.Len())

	ab.Resize(32)
	assert.Equal(t, 5, ab.Len())
}

func TestNumericExclusive(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ab := array.NewInt32Builder(mem)
	defer ab.Release()
	require.NoError(t, ab.AppendValues([]int32{1, 2, 3}, []bool{true, false, true}))

	t.Run("sole holder", func(t *testing.T) {
		a := ab.NewNumericArray()
		ex, err := a.Exclusive()
		require.NoError(t, err)

		// the source handle is invalidated
		a.Release()
		_, err = a.Exclusive()
		assert.ErrorIs(t, err, arrow.ErrOwnershipConflict)

		assert.Equal(t, 3, ex.Len())
		assert.True(t, ex.IsNull(1))
		for i := range ex.Values() {
			if ex.IsValid(i) {
				ex.Values()[i] *= 10
			}
		}

		frozen := ex.Freeze()
		defer frozen.Release()
		ex.Release()
		assert.Equal(t, "[10 (null) 30]", frozen.String())
	})

	t.Run("retained handle", func(t *testing.T) {
		require.NoError(t, ab.AppendValues([]int32{1, 2}, nil))
		a := ab.NewNumericArray()
		defer a.Release()

		a.Retain()
		_, err := a.Exclusive()
		assert.ErrorIs(t, err, arrow.ErrOwnershipConflict)
		a.Release()
		assert.Equal(t, []int32{1, 2}, a.Values())
	})

	t.Run("shared data", func(t *testing.T) {
		require.NoError(t, ab.AppendValues([]int32{5}, nil))
		a := ab.NewNumericArray()
		defer a.Release()

		other := array.MakeFromData(a.Data())
		_, err := a.Exclusive()
		assert.ErrorIs(t, err, arrow.ErrOwnershipConflict)
		other.Release()

		ex, err := a.Exclusive()
		require.NoError(t, err)
		ex.Release()
	})
}
