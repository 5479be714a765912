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
)

func TestTypeEquals(t *testing.T) {
	tests := []struct {
		left, right DataType
		want        bool
	}{
		{
			nil, nil, false,
		},
		{
			nil, PrimitiveTypes.Int32, false,
		},
		{
			PrimitiveTypes.Float32, nil, false,
		},
		{
			PrimitiveTypes.Float64, PrimitiveTypes.Int32, false,
		},
		{
			PrimitiveTypes.Uint64, &Uint64Type{}, true,
		},
		{
			FixedWidthTypes.Boolean, FixedWidthTypes.Boolean, true,
		},
		{
			BinaryTypes.String, BinaryTypes.String, true,
		},
		{
			StructOf(), StructOf(), true,
		},
		{
			StructOf(Field{Name: "a", Type: PrimitiveTypes.Uint64}),
			StructOf(Field{Name: "a", Type: PrimitiveTypes.Uint64}),
			true,
		},
		{
			StructOf(Field{Name: "a", Type: PrimitiveTypes.Uint64}),
			StructOf(Field{Name: "b", Type: PrimitiveTypes.Uint64}),
			false,
		},
		{
			StructOf(Field{Name: "a", Type: PrimitiveTypes.Uint64}),
			StructOf(Field{Name: "a", Type: PrimitiveTypes.Uint64, Nullable: true}),
			false,
		},
		{
			StructOf(Field{Name: "a", Type: PrimitiveTypes.Uint64}),
			StructOf(Field{Name: "a", Type: PrimitiveTypes.Uint64}, Field{Name: "b", Type: BinaryTypes.String}),
			false,
		},
		{
			StructOf(Field{Name: "s", Type: StructOf(Field{Name: "x", Type: PrimitiveTypes.Int32})}),
			StructOf(Field{Name: "s", Type: StructOf(Field{Name: "x", Type: PrimitiveTypes.Int64})}),
			false,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			got := TypeEqual(test.left, test.right)
			if got != test.want {
				t.Fatalf("TypeEqual(%v, %v): got=%v, want=%v", test.left, test.right, got, test.want)
			}
		})
	}
}
