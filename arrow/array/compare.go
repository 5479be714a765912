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

	"github.com/minarrow/minarrow/arrow"
)

// Equal reports whether left and right hold the same type, length, validity
// and values. Values in null slots are ignored.
func Equal(left, right Interface) bool {
	switch {
	case !baseArrayEqual(left, right):
		return false
	case left.Len() == 0:
		return true
	case left.NullN() == left.Len():
		return true
	}

	// at this point, we know both arrays have same type, same length, same number of nulls
	// and nulls at the same place.
	// compare the values.

	switch l := left.(type) {
	case *Boolean:
		return booleanArrayEqual(l, right.(*Boolean))
	case *Int32:
		return numericArrayEqual(l, right.(*Int32))
	case *Int64:
		return numericArrayEqual(l, right.(*Int64))
	case *Uint64:
		return numericArrayEqual(l, right.(*Uint64))
	case *Float32:
		return numericArrayEqual(l, right.(*Float32))
	case *Float64:
		return numericArrayEqual(l, right.(*Float64))
	case *String:
		return stringArrayEqual(l, right.(*String))
	case *Struct:
		return structArrayEqual(l, right.(*Struct))
	default:
		panic(fmt.Errorf("arrow/array: unknown array type %T", l))
	}
}

// TableEqual reports whether left and right have equal schemas and equal
// columns.
func TableEqual(left, right *Table) bool {
	switch {
	case left.NumRows() != right.NumRows():
		return false
	case left.NumCols() != right.NumCols():
		return false
	case !left.Schema().Equal(right.Schema()):
		return false
	}

	for i := range left.cols {
		if !Equal(left.cols[i], right.cols[i]) {
			return false
		}
	}
	return true
}

func baseArrayEqual(left, right Interface) bool {
	switch {
	case left.Len() != right.Len():
		return false
	case left.NullN() != right.NullN():
		return false
	case !arrow.TypeEqual(left.DataType(), right.DataType()):
		return false
	case !validityBitmapEqual(left, right):
		return false
	}
	return true
}

func validityBitmapEqual(left, right Interface) bool {
	n := left.Len()
	for i := 0; i < n; i++ {
		if left.IsNull(i) != right.IsNull(i) {
			return false
		}
	}
	return true
}

func booleanArrayEqual(left, right *Boolean) bool {
	for i := 0; i < left.Len(); i++ {
		if left.IsNull(i) {
			continue
		}
		if left.Value(i) != right.Value(i) {
			return false
		}
	}
	return true
}

func numericArrayEqual[T arrow.NumericType](left, right *Numeric[T]) bool {
	for i := 0; i < left.Len(); i++ {
		if left.IsNull(i) {
			continue
		}
		if left.Value(i) != right.Value(i) {
			return false
		}
	}
	return true
}

func stringArrayEqual(left, right *String) bool {
	for i := 0; i < left.Len(); i++ {
		if left.IsNull(i) {
			continue
		}
		if left.Value(i) != right.Value(i) {
			return false
		}
	}
	return true
}

func structArrayEqual(left, right *Struct) bool {
	for i, lf := range left.fields {
		if !Equal(lf, right.fields[i]) {
			return false
		}
	}
	return true
}
