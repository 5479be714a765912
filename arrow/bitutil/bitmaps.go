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

package bitutil

// BitmapAnd writes left AND right into out for the first length bits.
// out may alias either input.
func BitmapAnd(left, right, out []byte, length int) {
	nbytes := BytesForBits(length)
	for i := 0; i < nbytes; i++ {
		out[i] = left[i] & right[i]
	}
}

// SetBitsTo sets length bits of buf starting at bit offset start to val.
func SetBitsTo(buf []byte, start, length int, val bool) {
	for i := start; i < start+length; i++ {
		SetBitTo(buf, i, val)
	}
}

const blockBits = 64

// VisitBitBlocks calls visitValid for every set bit and visitNull for every
// unset bit among the first length bits of bitmap, in position order.
// A nil bitmap is treated as all bits set. Blocks of 64 bits that are
// entirely set or entirely unset skip the per-bit test.
func VisitBitBlocks(bitmap []byte, length int, visitValid, visitNull func(pos int)) {
	if bitmap == nil {
		for i := 0; i < length; i++ {
			visitValid(i)
		}
		return
	}

	for start := 0; start < length; start += blockBits {
		n := min(blockBits, length-start)
		popcount := CountSetBits(bitmap[start/8:], n)
		switch popcount {
		case n:
			for i := start; i < start+n; i++ {
				visitValid(i)
			}
		case 0:
			for i := start; i < start+n; i++ {
				visitNull(i)
			}
		default:
			for i := start; i < start+n; i++ {
				if BitIsSet(bitmap, i) {
					visitValid(i)
				} else {
					visitNull(i)
				}
			}
		}
	}
}
