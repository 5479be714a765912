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
	"bytes"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/internal/debug"
)

// NamedColumn pairs a column name with its array.
type NamedColumn struct {
	Name  string
	Array Interface
}

// Table is an immutable collection of equal-length columns described by a
// schema, in the manner of a record batch. Tables never modify their
// columns; RemoveColumn, AddColumn and Project build new tables that share
// the surviving column arrays.
type Table struct {
	refCount int64

	schema *arrow.Schema
	rows   int
	cols   []Interface
}

// NewTable returns a table over cols validated against schema: one column
// per field (ErrSchemaMismatch), a common length (ErrLengthMismatch) and a
// column type equal to its field type (ErrTypeMismatch). The table retains
// each column.
func NewTable(schema *arrow.Schema, cols []Interface) (*Table, error) {
	if schema == nil {
		return nil, fmt.Errorf("arrow/array: %w: nil schema", arrow.ErrInvalid)
	}
	if len(cols) != schema.NumFields() {
		return nil, fmt.Errorf("arrow/array: %w: %d columns for %d fields", arrow.ErrSchemaMismatch, len(cols), schema.NumFields())
	}

	rows := 0
	if len(cols) > 0 {
		rows = cols[0].Len()
	}
	for i, col := range cols {
		f := schema.Field(i)
		if col.Len() != rows {
			return nil, fmt.Errorf("arrow/array: %w: column %q has %d rows, want %d", arrow.ErrLengthMismatch, f.Name, col.Len(), rows)
		}
		if !arrow.TypeEqual(f.Type, col.DataType()) {
			return nil, fmt.Errorf("arrow/array: %w: column %q is %s, field declares %s", arrow.ErrTypeMismatch, f.Name, col.DataType(), f.Type)
		}
	}

	return newTable(schema, cols, rows), nil
}

// NewTableFromColumns builds a table whose schema is inferred from cols:
// each column gives a nullable field with the column's name and type.
func NewTableFromColumns(cols ...NamedColumn) (*Table, error) {
	fields := make([]arrow.Field, len(cols))
	arrs := make([]Interface, len(cols))
	for i, c := range cols {
		if c.Array == nil {
			return nil, fmt.Errorf("arrow/array: %w: nil array for column %q", arrow.ErrInvalid, c.Name)
		}
		fields[i] = arrow.Field{Name: c.Name, Type: c.Array.DataType(), Nullable: true}
		arrs[i] = c.Array
	}
	return NewTable(arrow.NewSchema(fields), arrs)
}

func newTable(schema *arrow.Schema, cols []Interface, rows int) *Table {
	tbl := &Table{
		refCount: 1,
		schema:   schema,
		rows:     rows,
		cols:     make([]Interface, len(cols)),
	}
	copy(tbl.cols, cols)
	for _, col := range tbl.cols {
		col.Retain()
	}
	return tbl
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (tbl *Table) Retain() {
	atomic.AddInt64(&tbl.refCount, 1)
}

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
// Release may be called simultaneously from multiple goroutines.
func (tbl *Table) Release() {
	debug.Assert(atomic.LoadInt64(&tbl.refCount) > 0, "too many releases")

	if atomic.AddInt64(&tbl.refCount, -1) == 0 {
		for _, col := range tbl.cols {
			col.Release()
		}
		tbl.cols = nil
	}
}

func (tbl *Table) Schema() *arrow.Schema { return tbl.schema }
func (tbl *Table) NumRows() int          { return tbl.rows }
func (tbl *Table) NumCols() int          { return len(tbl.cols) }

// Column returns the i-th column. The table keeps its reference.
func (tbl *Table) Column(i int) Interface  { return tbl.cols[i] }
func (tbl *Table) ColumnName(i int) string { return tbl.schema.Field(i).Name }

// Columns returns the columns in schema order.
func (tbl *Table) Columns() []Interface {
	out := make([]Interface, len(tbl.cols))
	copy(out, tbl.cols)
	return out
}

// ColumnByName returns the first column named name, or ErrSchemaMismatch.
func (tbl *Table) ColumnByName(name string) (Interface, error) {
	idx := tbl.schema.FieldIndices(name)
	if len(idx) == 0 {
		return nil, fmt.Errorf("arrow/array: %w: table has no column %q", arrow.ErrSchemaMismatch, name)
	}
	return tbl.cols[idx[0]], nil
}

// RemoveColumn returns a new table without the i-th column.
func (tbl *Table) RemoveColumn(i int) (*Table, error) {
	schema, err := tbl.schema.RemoveField(i)
	if err != nil {
		return nil, err
	}

	cols := make([]Interface, 0, len(tbl.cols)-1)
	cols = append(cols, tbl.cols[:i]...)
	cols = append(cols, tbl.cols[i+1:]...)
	return newTable(schema, cols, tbl.rows), nil
}

// AddColumn returns a new table with arr appended as a nullable column
// named name. arr must have NumRows values unless the table has no columns,
// in which case the new table takes the length of arr.
func (tbl *Table) AddColumn(name string, arr Interface) (*Table, error) {
	if arr == nil {
		return nil, fmt.Errorf("arrow/array: %w: nil array for column %q", arrow.ErrInvalid, name)
	}

	rows := tbl.rows
	if len(tbl.cols) == 0 {
		rows = arr.Len()
	}
	if arr.Len() != rows {
		return nil, fmt.Errorf("arrow/array: %w: column %q has %d rows, table has %d", arrow.ErrLengthMismatch, name, arr.Len(), rows)
	}

	schema, err := tbl.schema.AddField(len(tbl.cols), arrow.Field{Name: name, Type: arr.DataType(), Nullable: true})
	if err != nil {
		return nil, err
	}

	cols := make([]Interface, 0, len(tbl.cols)+1)
	cols = append(cols, tbl.cols...)
	cols = append(cols, arr)
	return newTable(schema, cols, rows), nil
}

// Project returns a new table holding the columns at indices, in that
// order. Indices may repeat.
func (tbl *Table) Project(indices []int) (*Table, error) {
	schema, err := tbl.schema.Project(indices)
	if err != nil {
		return nil, err
	}

	cols := make([]Interface, len(indices))
	for i, idx := range indices {
		cols[i] = tbl.cols[idx]
	}
	rows := tbl.rows
	if len(cols) == 0 {
		rows = 0
	}
	return newTable(schema, cols, rows), nil
}

func (tbl *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "table: rows=%d\n%s\n", tbl.rows, tbl.schema)
	for i, col := range tbl.cols {
		fmt.Fprintf(&sb, "  %s: %v\n", tbl.ColumnName(i), col)
	}
	return sb.String()
}

// MarshalJSON encodes the table as an array of row objects whose keys
// follow schema order.
func (tbl *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for r := 0; r < tbl.rows; r++ {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, col := range tbl.cols {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(tbl.ColumnName(i))
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(col.GetOneForMarshal(r))
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
