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

package compute

import (
	"context"

	"github.com/minarrow/minarrow/arrow"
	"github.com/minarrow/minarrow/arrow/array"
	"golang.org/x/exp/constraints"
)

// signedNumeric are the numeric array value types that can be negated.
type signedNumeric interface {
	arrow.NumericType
	constraints.Signed | constraints.Float
}

// Add returns a + b elementwise. Integer addition wraps on overflow.
func Add[T arrow.NumericType](ctx context.Context, a, b *array.Numeric[T]) (*array.Numeric[T], error) {
	return ZipWith(ctx, a, b, func(x, y T) T { return x + y })
}

// Subtract returns a - b elementwise. Integer subtraction wraps on overflow.
func Subtract[T arrow.NumericType](ctx context.Context, a, b *array.Numeric[T]) (*array.Numeric[T], error) {
	return ZipWith(ctx, a, b, func(x, y T) T { return x - y })
}

// Multiply returns a * b elementwise. Integer multiplication wraps on
// overflow.
func Multiply[T arrow.NumericType](ctx context.Context, a, b *array.Numeric[T]) (*array.Numeric[T], error) {
	return ZipWith(ctx, a, b, func(x, y T) T { return x * y })
}

// Negate negates arr in place, with the ownership rules of MapSame.
func Negate[T signedNumeric](arr *array.Numeric[T]) (*array.Numeric[T], error) {
	return MapSame(arr, func(x T) T { return -x })
}
