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
	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/memory"
)

// TableToStruct constructs a struct array from the columns of the table
// by referencing them, zero-copy. Every row of the result is valid.
func TableToStruct(tbl *Table) *Struct {
	cols := make([]*Data, tbl.NumCols())
	for i, c := range tbl.cols {
		cols[i] = c.Data()
	}

	data := NewData(arrow.StructOf(tbl.Schema().Fields()...), tbl.NumRows(), []*memory.Buffer{nil}, cols, 0)
	defer data.Release()

	return NewStructData(data)
}

// TableFromStruct is a convenience function for converting a struct array into
// a table without copying the data. If the passed in schema is nil, the fields
// of the struct will be used to define the table. Otherwise the passed in
// schema will be used to create the table, and must match the fields of the
// struct column.
//
// The top level null bitmap of the struct is dropped, so the child arrays
// keep only their own validity.
func TableFromStruct(in *Struct, schema *arrow.Schema) (*Table, error) {
	if schema == nil {
		schema = arrow.NewSchema(in.structType().Fields())
		return newTable(schema, in.fields, in.Len()), nil
	}
	return NewTable(schema, in.fields)
}
