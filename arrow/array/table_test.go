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

// newTestColumns returns col1:int32[1,2,3] and col_2:float32[1,6.3,4].
func newTestColumns(t *testing.T, mem memory.Allocator) (array.Interface, array.Interface) {
	t.Helper()

	ib := array.NewInt32Builder(mem)
	defer ib.Release()
	require.NoError(t, ib.AppendValues([]int32{1, 2, 3}, nil))

	fb := array.NewFloat32Builder(mem)
	defer fb.Release()
	require.NoError(t, fb.AppendValues([]float32{1, 6.3, 4}, nil))

	return ib.NewArray(), fb.NewArray()
}

func TestNewTable(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	col1, col2 := newTestColumns(t, mem)
	defer col1.Release()
	defer col2.Release()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "col1", Type: arrow.PrimitiveTypes.Int32},
		{Name: "col_2", Type: arrow.PrimitiveTypes.Float32},
	})

	tbl, err := array.NewTable(schema, []array.Interface{col1, col2})
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, "col_2", tbl.ColumnName(1))
	assert.True(t, tbl.Schema().Equal(schema))

	col, err := tbl.ColumnByName("col_2")
	require.NoError(t, err)
	assert.Same(t, col2, col)
	_, err = tbl.ColumnByName("nope")
	assert.ErrorIs(t, err, arrow.ErrSchemaMismatch)

	ib := array.NewInt32Builder(mem)
	defer ib.Release()
	ib.Append(1)
	short := ib.NewArray()
	defer short.Release()

	tests := []struct {
		name   string
		schema *arrow.Schema
		cols   []array.Interface
		err    error
	}{
		{"nil schema", nil, []array.Interface{col1}, arrow.ErrInvalid},
		{"column count", schema, []array.Interface{col1}, arrow.ErrSchemaMismatch},
		{"length", schema, []array.Interface{short, col2}, arrow.ErrLengthMismatch},
		{"type", schema, []array.Interface{col2, col1}, arrow.ErrTypeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := array.NewTable(tc.schema, tc.cols)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestTable_RemoveColumn(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	col1, col2 := newTestColumns(t, mem)
	defer col1.Release()
	defer col2.Release()

	tbl, err := array.NewTableFromColumns(
		array.NamedColumn{Name: "col1", Array: col1},
		array.NamedColumn{Name: "col_2", Array: col2},
	)
	require.NoError(t, err)
	defer tbl.Release()

	removed, err := tbl.RemoveColumn(0)
	require.NoError(t, err)
	defer removed.Release()

	require.Equal(t, 1, removed.Schema().NumFields())
	assert.Equal(t, "col_2", removed.Schema().Field(0).Name)
	assert.Equal(t, tbl.NumRows(), removed.NumRows())
	assert.Same(t, col2, removed.Column(0))

	// the source table is unchanged
	assert.Equal(t, 2, tbl.NumCols())

	for _, i := range []int{-1, 2} {
		_, err = tbl.RemoveColumn(i)
		assert.ErrorIs(t, err, arrow.ErrIndexOutOfRange)
	}
}

func TestTable_AddColumn(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	col1, col2 := newTestColumns(t, mem)
	defer col1.Release()
	defer col2.Release()

	tbl, err := array.NewTableFromColumns(array.NamedColumn{Name: "col1", Array: col1})
	require.NoError(t, err)
	defer tbl.Release()

	added, err := tbl.AddColumn("col2", col2)
	require.NoError(t, err)
	defer added.Release()

	assert.Equal(t, tbl.NumCols()+1, added.NumCols())
	assert.Equal(t, "col2", added.ColumnName(1))
	assert.True(t, added.Schema().Field(1).Nullable)
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Float32, added.Schema().Field(1).Type))

	sb := array.NewStringBuilder(mem)
	defer sb.Release()
	sb.Append("only one")
	short := sb.NewArray()
	defer short.Release()

	_, err = tbl.AddColumn("short", short)
	assert.ErrorIs(t, err, arrow.ErrLengthMismatch)

	empty, err := array.NewTableFromColumns()
	require.NoError(t, err)
	defer empty.Release()
	assert.Zero(t, empty.NumRows())

	adopted, err := empty.AddColumn("short", short)
	require.NoError(t, err)
	defer adopted.Release()
	assert.Equal(t, 1, adopted.NumRows())
}

func TestTable_Project(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	col1, col2 := newTestColumns(t, mem)
	defer col1.Release()
	defer col2.Release()

	tbl, err := array.NewTableFromColumns(
		array.NamedColumn{Name: "col1", Array: col1},
		array.NamedColumn{Name: "col_2", Array: col2},
	)
	require.NoError(t, err)
	defer tbl.Release()

	proj, err := tbl.Project([]int{1, 0, 1})
	require.NoError(t, err)
	defer proj.Release()

	require.Equal(t, 3, proj.NumCols())
	for k, i := range []int{1, 0, 1} {
		assert.Equal(t, tbl.ColumnName(i), proj.ColumnName(k))
		assert.Same(t, tbl.Column(i), proj.Column(k))
	}

	_, err = tbl.Project([]int{0, 2})
	assert.ErrorIs(t, err, arrow.ErrIndexOutOfRange)
}

func TestTable_StructRoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	col1, col2 := newTestColumns(t, mem)
	defer col1.Release()
	defer col2.Release()

	tbl, err := array.NewTableFromColumns(
		array.NamedColumn{Name: "col1", Array: col1},
		array.NamedColumn{Name: "col_2", Array: col2},
	)
	require.NoError(t, err)
	defer tbl.Release()

	s := array.TableToStruct(tbl)
	defer s.Release()
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, `[{1 1} {2 6.3} {3 4}]`, s.String())

	back, err := array.TableFromStruct(s, nil)
	require.NoError(t, err)
	defer back.Release()
	assert.True(t, array.TableEqual(tbl, back))

	back2, err := array.TableFromStruct(s, tbl.Schema())
	require.NoError(t, err)
	defer back2.Release()
	assert.True(t, array.TableEqual(tbl, back2))

	wrong := arrow.NewSchema([]arrow.Field{{Name: "x", Type: arrow.PrimitiveTypes.Int32}})
	_, err = array.TableFromStruct(s, wrong)
	assert.ErrorIs(t, err, arrow.ErrSchemaMismatch)
}

func TestTable_MarshalJSON(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ib := array.NewInt64Builder(mem)
	defer ib.Release()
	require.NoError(t, ib.AppendValues([]int64{1, 2}, []bool{true, false}))
	ints := ib.NewArray()
	defer ints.Release()

	bb := array.NewBooleanBuilder(mem)
	defer bb.Release()
	require.NoError(t, bb.AppendValues([]bool{true, false}, nil))
	bools := bb.NewArray()
	defer bools.Release()

	tbl, err := array.NewTableFromColumns(
		array.NamedColumn{Name: "b", Array: bools},
		array.NamedColumn{Name: "a", Array: ints},
	)
	require.NoError(t, err)
	defer tbl.Release()

	out, err := tbl.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[{"b":true,"a":1},{"b":false,"a":null}]`, string(out))
}
