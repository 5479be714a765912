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

func TestBooleanBuilder(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := array.NewBooleanBuilder(mem)
	defer b.Release()

	exp := []bool{true, false, true, true, false}
	for i := 0; i < 10; i++ {
		require.NoError(t, b.AppendValues(exp, nil))
	}
	b.AppendNull()
	b.Append(true)

	assert.Equal(t, 52, b.Len())
	assert.Equal(t, 1, b.NullN())

	a := b.NewBooleanArray()
	defer a.Release()

	for i := 0; i < 50; i++ {
		assert.Equal(t, exp[i%len(exp)], a.Value(i), "unexpected value at index %d", i)
	}
	assert.True(t, a.IsNull(50))
	assert.False(t, a.Value(50))
	assert.True(t, a.Value(51))
	assert.Zero(t, b.Len())

	err := b.AppendValues([]bool{true}, []bool{true, true})
	assert.ErrorIs(t, err, arrow.ErrLengthMismatch)
	assert.Zero(t, b.Len())
}

func TestNewBoolean(t *testing.T) {
	data := memory.NewBufferBytes([]byte{0x05})
	a := array.NewBoolean(3, data, nil, 0)
	defer a.Release()

	assert.Equal(t, "[true false true]", a.String())
	out, err := a.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[true,false,true]`, string(out))

	// an unknown null count is resolved when the data is created
	valid := memory.NewBufferBytes([]byte{0x03})
	b := array.NewBoolean(3, data, valid, array.UnknownNullCount)
	defer b.Release()
	assert.Equal(t, 1, b.Data().NullN())
	assert.Equal(t, "[true false (null)]", b.String())
}

func TestStringBuilder(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ab := array.NewStringBuilder(mem)
	defer ab.Release()

	want := []string{"hello", "世界", "", "bye"}

	ab.Append(want[0])
	ab.Append(want[1])
	ab.AppendNull()
	ab.Append(want[3])

	assert.Equal(t, 4, ab.Len())
	assert.Equal(t, 1, ab.NullN())
	assert.Equal(t, len("hello")+len("世界")+len("bye"), ab.DataLen())

	arr := ab.NewStringArray()
	defer arr.Release()

	require.Equal(t, 4, arr.Len())
	for i, w := range want {
		assert.Equal(t, w, arr.Value(i), "index %d", i)
	}
	assert.True(t, arr.IsNull(2))
	assert.Equal(t, []int32{0, 5, 11, 11, 14}, arr.ValueOffsets())
	assert.Equal(t, "hello世界bye", string(arr.ValueBytes()))
	assert.Equal(t, 6, arr.ValueLen(1))
	assert.Equal(t, `["hello" "世界" (null) "bye"]`, arr.String())

	// reuse after NewArray
	require.NoError(t, ab.AppendValues([]string{"x", "skip", "y"}, []bool{true, false, true}))
	err := ab.AppendValues([]string{"a"}, []bool{})
	assert.ErrorIs(t, err, arrow.ErrLengthMismatch)

	arr2 := ab.NewStringArray()
	defer arr2.Release()
	assert.Equal(t, 3, arr2.Len())
	assert.Equal(t, "", arr2.Value(1))
	assert.Equal(t, "y", arr2.Value(2))
}

func TestStringBuilder_Grow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ab := array.NewStringBuilder(mem)
	defer ab.Release()

	ab.ReserveData(8)
	for i := 0; i < 1000; i++ {
		ab.Append("0123456789")
	}

	arr := ab.NewStringArray()
	defer arr.Release()

	assert.Equal(t, 1000, arr.Len())
	assert.Equal(t, "0123456789", arr.Value(999))
	assert.Equal(t, int32(10000), arr.ValueOffsets()[1000])
}
