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
	"unsafe"
)

const (
	BooleanSizeBytes = 1
	Int32SizeBytes   = 4
	Int64SizeBytes   = 8
	Uint64SizeBytes  = 8
	Float32SizeBytes = 4
	Float64SizeBytes = 8
)

// NumericType is the set of Go types backing the numeric array kinds.
type NumericType interface {
	int32 | int64 | uint64 | float32 | float64
}

// TypeOf returns the DataType whose arrays store values of type T.
func TypeOf[T NumericType]() FixedWidthDataType {
	var z T
	switch any(z).(type) {
	case int32:
		return PrimitiveTypes.Int32
	case int64:
		return PrimitiveTypes.Int64
	case uint64:
		return PrimitiveTypes.Uint64
	case float32:
		return PrimitiveTypes.Float32
	case float64:
		return PrimitiveTypes.Float64
	}
	panic("arrow: unreachable numeric type")
}

// SizeOf returns the number of bytes of one T.
func SizeOf[T NumericType]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// CastFromBytesTo reinterprets the slice b as a slice of T without copying.
//
// NOTE: len(b) must be a multiple of T's size.
func CastFromBytesTo[T NumericType](b []byte) []T {
	if cap(b) == 0 {
		return nil
	}
	size := SizeOf[T]()
	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(b)))
	return unsafe.Slice(ptr, cap(b)/size)[:len(b)/size]
}

// GetBytes reinterprets the slice in as a slice of bytes without copying.
func GetBytes[T NumericType](in []T) []byte {
	if cap(in) == 0 {
		return nil
	}
	size := SizeOf[T]()
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(in)))
	return unsafe.Slice(ptr, cap(in)*size)[:len(in)*size]
}
