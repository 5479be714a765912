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

package interop

import (
	arrowlib "github.com/apache/arrow-go/v18/arrow"
	arraylib "github.com/apache/arrow-go/v18/arrow/array"
	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/array"
	"github.com/minarrow/minarrow/arrow/memory"
	"golang.org/x/xerrors"
)

// ToRecord copies tbl into a new upstream record batch allocated from mem.
// The caller releases the returned record.
func ToRecord(mem memory.Allocator, tbl *array.Table) (arrowlib.RecordBatch, error) {
	fields, err := toUpstreamFields(tbl.Schema().Fields())
	if err != nil {
		return nil, err
	}
	schema := arrowlib.NewSchema(fields, nil)

	cols := make([]arrowlib.Array, 0, tbl.NumCols())
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	for i, col := range tbl.Columns() {
		bldr := arraylib.NewBuilder(mem, fields[i].Type)
		err := appendUpstream(bldr, col)
		if err != nil {
			bldr.Release()
			return nil, xerrors.Errorf("interop: column %q: %w", tbl.ColumnName(i), err)
		}
		cols = append(cols, bldr.NewArray())
		bldr.Release()
	}

	return arraylib.NewRecordBatch(schema, cols, int64(tbl.NumRows())), nil
}

func validity(col array.Interface) []bool {
	valid := make([]bool, col.Len())
	for i := range valid {
		valid[i] = col.IsValid(i)
	}
	return valid
}

func appendNumeric[T arrow.NumericType](col array.Interface, valid []bool, appendValues func([]T, []bool)) error {
	arr, err := array.AsKind[*array.Numeric[T]](col)
	if err != nil {
		return err
	}
	appendValues(arr.Values(), valid)
	return nil
}

func appendUpstream(bldr arraylib.Builder, col array.Interface) error {
	valid := validity(col)

	switch col.DataType().ID() {
	case arrow.INT32:
		return appendNumeric[int32](col, valid, bldr.(*arraylib.Int32Builder).AppendValues)
	case arrow.INT64:
		return appendNumeric[int64](col, valid, bldr.(*arraylib.Int64Builder).AppendValues)
	case arrow.UINT64:
		return appendNumeric[uint64](col, valid, bldr.(*arraylib.Uint64Builder).AppendValues)
	case arrow.FLOAT32:
		return appendNumeric[float32](col, valid, bldr.(*arraylib.Float32Builder).AppendValues)
	case arrow.FLOAT64:
		return appendNumeric[float64](col, valid, bldr.(*arraylib.Float64Builder).AppendValues)
	case arrow.BOOL:
		arr, err := array.AsKind[*array.Boolean](col)
		if err != nil {
			return err
		}
		vals := make([]bool, arr.Len())
		for i := range vals {
			vals[i] = arr.Value(i)
		}
		bldr.(*arraylib.BooleanBuilder).AppendValues(vals, valid)
	case arrow.STRING:
		arr, err := array.AsKind[*array.String](col)
		if err != nil {
			return err
		}
		vals := make([]string, arr.Len())
		for i := range vals {
			vals[i] = arr.Value(i)
		}
		bldr.(*arraylib.StringBuilder).AppendValues(vals, valid)
	case arrow.STRUCT:
		arr, err := array.AsKind[*array.Struct](col)
		if err != nil {
			return err
		}
		sb := bldr.(*arraylib.StructBuilder)
		for i := 0; i < arr.NumField(); i++ {
			if err := appendUpstream(sb.FieldBuilder(i), arr.Field(i)); err != nil {
				return err
			}
		}
		sb.AppendValues(valid)
	default:
		return xerrors.Errorf("%w: cannot convert %s", arrow.ErrTypeMismatch, col.DataType())
	}
	return nil
}

// FromRecord copies rec into a new table. Columns are allocated from the
// allocator given with WithAllocator.
func FromRecord(rec arrowlib.RecordBatch, opts ...Option) (*array.Table, error) {
	cfg := newConfig(opts)

	fields, err := fromUpstreamFields(rec.Schema().Fields())
	if err != nil {
		return nil, err
	}

	cols := make([]array.Interface, 0, len(fields))
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	for i, col := range rec.Columns() {
		arr, err := fromUpstream(cfg.mem, col)
		if err != nil {
			return nil, xerrors.Errorf("interop: column %q: %w", fields[i].Name, err)
		}
		cols = append(cols, arr)
	}

	return array.NewTable(arrow.NewSchema(fields), cols)
}

type upstreamValues[T any] interface {
	arrowlib.Array
	Value(int) T
}

func fromNumeric[T arrow.NumericType](mem memory.Allocator, col upstreamValues[T]) (array.Interface, error) {
	vals, valid := collect[T](col)
	b := array.NewNumericBuilder[T](mem)
	defer b.Release()
	if err := b.AppendValues(vals, valid); err != nil {
		return nil, err
	}
	return b.NewArray(), nil
}

func collect[T any](col upstreamValues[T]) ([]T, []bool) {
	vals := make([]T, col.Len())
	valid := make([]bool, col.Len())
	for i := range vals {
		if col.IsValid(i) {
			vals[i] = col.Value(i)
			valid[i] = true
		}
	}
	return vals, valid
}

func fromUpstream(mem memory.Allocator, col arrowlib.Array) (array.Interface, error) {
	switch c := col.(type) {
	case *arraylib.Int32:
		return fromNumeric[int32](mem, c)
	case *arraylib.Int64:
		return fromNumeric[int64](mem, c)
	case *arraylib.Uint64:
		return fromNumeric[uint64](mem, c)
	case *arraylib.Float32:
		return fromNumeric[float32](mem, c)
	case *arraylib.Float64:
		return fromNumeric[float64](mem, c)
	case *arraylib.Boolean:
		vals, valid := collect[bool](c)
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		if err := b.AppendValues(vals, valid); err != nil {
			return nil, err
		}
		return b.NewArray(), nil
	case *arraylib.String:
		vals, valid := collect[string](c)
		b := array.NewStringBuilder(mem)
		defer b.Release()
		if err := b.AppendValues(vals, valid); err != nil {
			return nil, err
		}
		return b.NewArray(), nil
	case *arraylib.Struct:
		dt, err := fromUpstreamType(c.DataType())
		if err != nil {
			return nil, err
		}

		children := make([]array.Interface, 0, c.NumField())
		defer func() {
			for _, child := range children {
				child.Release()
			}
		}()
		for i := 0; i < c.NumField(); i++ {
			child, err := fromUpstream(mem, c.Field(i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

		valid := make([]bool, c.Len())
		for i := range valid {
			valid[i] = c.IsValid(i)
		}
		s, err := array.NewStructFromArrays(dt.(*arrow.StructType).Fields(), children, valid)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, xerrors.Errorf("%w: unsupported upstream array %s", arrow.ErrTypeMismatch, col.DataType())
}
