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

package arrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeNames(t *testing.T) {
	for _, tc := range []struct {
		dt   DataType
		id   Type
		name string
	}{
		{FixedWidthTypes.Boolean, BOOL, "bool"},
		{PrimitiveTypes.Int32, INT32, "int32"},
		{PrimitiveTypes.Int64, INT64, "int64"},
		{PrimitiveTypes.Uint64, UINT64, "uint64"},
		{PrimitiveTypes.Float32, FLOAT32, "float32"},
		{PrimitiveTypes.Float64, FLOAT64, "float64"},
		{BinaryTypes.String, STRING, "utf8"},
		{StructOf(), STRUCT, "struct"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.id, tc.dt.ID())
			assert.Equal(t, tc.name, tc.dt.Name())
			assert.NotEmpty(t, tc.dt.Fingerprint())
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "INT32", INT32.String())
	assert.Equal(t, "STRUCT", STRUCT.String())
	assert.Equal(t, "Type(99)", Type(99).String())
}

func TestBitWidth(t *testing.T) {
	assert.Equal(t, 1, FixedWidthTypes.Boolean.BitWidth())
	assert.Equal(t, 32, PrimitiveTypes.Int32.BitWidth())
	assert.Equal(t, 64, PrimitiveTypes.Uint64.BitWidth())
	assert.Equal(t, 32, PrimitiveTypes.Float32.BitWidth())
}

func TestStructType(t *testing.T) {
	st := StructOf(
		Field{Name: "a", Type: PrimitiveTypes.Uint64},
		Field{Name: "b", Type: BinaryTypes.String, Nullable: true},
		Field{Name: "a", Type: PrimitiveTypes.Int32},
	)

	assert.Equal(t, 3, st.NumFields())
	assert.Equal(t, "struct<a: uint64, b: utf8, a: int32>", st.String())

	idx, ok := st.FieldIdx("a")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	f, ok := st.FieldByName("b")
	assert.True(t, ok)
	assert.True(t, f.Nullable)

	_, ok = st.FieldByName("c")
	assert.False(t, ok)

	fields := st.Fields()
	fields[0].Name = "changed"
	assert.Equal(t, "a", st.Field(0).Name, "Fields must return a copy")

	assert.Panics(t, func() { StructOf(Field{Name: "x"}) })
}

func TestFieldFingerprint(t *testing.T) {
	f := Field{Name: "a", Type: PrimitiveTypes.Int32}
	g := Field{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true}
	assert.NotEqual(t, f.Fingerprint(), g.Fingerprint())
	assert.Equal(t, f.Fingerprint(), Field{Name: "a", Type: &Int32Type{}}.Fingerprint())
	assert.Equal(t, "a: type=int32, nullable", g.String())
	assert.Equal(t, HashType(0, PrimitiveTypes.Int32), HashType(0, &Int32Type{}))
	assert.NotEqual(t, HashType(0, PrimitiveTypes.Int32), HashType(0, PrimitiveTypes.Int64))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, INT32, TypeOf[int32]().ID())
	assert.Equal(t, INT64, TypeOf[int64]().ID())
	assert.Equal(t, UINT64, TypeOf[uint64]().ID())
	assert.Equal(t, FLOAT32, TypeOf[float32]().ID())
	assert.Equal(t, FLOAT64, TypeOf[float64]().ID())

	assert.Equal(t, 4, SizeOf[int32]())
	assert.Equal(t, 8, SizeOf[float64]())
}

func TestCastFromBytesTo(t *testing.T) {
	in := []int32{1, -2, 3}
	b := GetBytes(in)
	assert.Len(t, b, 12)

	out := CastFromBytesTo[int32](b)
	assert.Equal(t, in, out)

	out[1] = 42
	assert.Equal(t, int32(42), in[1], "casts share storage")

	assert.Nil(t, CastFromBytesTo[uint64](nil))
	assert.Nil(t, GetBytes[float32](nil))
}

func TestStructTypeHash(t *testing.T) {
	a := StructOf(Field{Name: "a", Type: PrimitiveTypes.Int32})
	b := StructOf(Field{Name: "a", Type: &Int32Type{}})
	c := StructOf(Field{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true})

	assert.Equal(t, HashType(0, a), a.hash)
	assert.Equal(t, a.hash, b.hash)
	assert.True(t, TypeEqual(a, b))

	assert.NotEqual(t, a.hash, c.hash)
	assert.False(t, TypeEqual(a, c))

	s := NewSchema([]Field{{Name: "s", Type: a}})
	assert.Equal(t, s.Hash(), NewSchema(s.Fields()).Hash())
	assert.NotEqual(t, s.Hash(), NewSchema([]Field{{Name: "s", Type: c}}).Hash())
	assert.Zero(t, (*Schema)(nil).Hash())
}
