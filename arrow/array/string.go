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
	"strconv"
	"unsafe"

	"github.com/minarrow/minarrow/arrow"
)

// String represents an immutable sequence of variable-length UTF-8 strings.
type String struct {
	array
	offsets []int32
	values  string
}

// NewStringData constructs a new String array from data.
func NewStringData(data *Data) *String {
	a := &String{}
	a.refCount = 1
	a.setData(data)
	return a
}

// Value returns the string at index i. Null slots hold "".
func (a *String) Value(i int) string {
	return a.values[a.offsets[i]:a.offsets[i+1]]
}

// ValueOffset returns the offset of the value at index i.
func (a *String) ValueOffset(i int) int { return int(a.offsets[i]) }

// ValueLen returns the length in bytes of the value at index i.
func (a *String) ValueLen(i int) int { return int(a.offsets[i+1] - a.offsets[i]) }

func (a *String) ValueOffsets() []int32 { return a.offsets }

// ValueBytes returns the concatenated bytes of every value. They must not
// be mutated.
func (a *String) ValueBytes() []byte {
	return unsafe.Slice(unsafe.StringData(a.values), len(a.values))
}

func (a *String) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return strconv.Quote(a.Value(i))
}

func (a *String) String() string { return arrayString(a) }

func (a *String) setData(data *Data) {
	if len(data.buffers) != 3 {
		panic("arrow/array: len(data.buffers) != 3")
	}

	a.array.setData(data)
	a.offsets, a.values = nil, ""

	if vdata := data.buffers[2]; vdata != nil {
		b := vdata.Bytes()
		a.values = unsafe.String(unsafe.SliceData(b), len(b))
	}

	if offsets := data.buffers[1]; offsets != nil {
		a.offsets = arrow.CastFromBytesTo[int32](offsets.Bytes())
	}
}

func (a *String) GetOneForMarshal(i int) interface{} {
	if a.IsValid(i) {
		return a.Value(i)
	}
	return nil
}

func (a *String) MarshalJSON() ([]byte, error) { return arrayMarshalJSON(a) }
