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
	"github.com/zeebo/xxh3"
)

// Type is the tag of a logical type. The set of tags is closed; code that
// switches over array kinds can cover every case.
type Type int

const (
	// BOOL is a 1 bit, LSB bit-packed ordering
	BOOL Type = iota

	// INT32 is a Signed 32-bit little-endian integer
	INT32

	// INT64 is a Signed 64-bit little-endian integer
	INT64

	// UINT64 is an Unsigned 64-bit little-endian integer
	UINT64

	// FLOAT32 is a 4-byte floating point value
	FLOAT32

	// FLOAT64 is an 8-byte floating point value
	FLOAT64

	// STRING is a UTF8 variable-length string
	STRING

	// STRUCT of logical types
	STRUCT
)

// DataType is the representation of a logical type.
type DataType interface {
	ID() Type
	// Name is name of the data type.
	Name() string
	Fingerprint() string
	String() string
}

// FixedWidthDataType is the representation of a type that requires a fixed
// number of bits in memory for each element.
type FixedWidthDataType interface {
	DataType
	// BitWidth returns the number of bits required to store a single element of this data type in memory.
	BitWidth() int
}

// HashType returns a 64-bit hash of the fingerprint of dt.
func HashType(seed uint64, dt DataType) uint64 {
	return xxh3.HashStringSeed(dt.Fingerprint(), seed)
}

func typeIDFingerprint(id Type) string {
	c := string(rune(int(id) + int('A')))
	return "@" + c
}

func typeFingerprint(typ DataType) string { return typeIDFingerprint(typ.ID()) }
