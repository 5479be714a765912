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

// StringType is a variable-length UTF-8 string stored with 32-bit offsets.
type StringType struct{}

func (t *StringType) ID() Type            { return STRING }
func (t *StringType) Name() string        { return "utf8" }
func (t *StringType) String() string      { return "utf8" }
func (t *StringType) Fingerprint() string { return typeFingerprint(t) }

// OffsetBytesRequired returns the number of bytes of offsets needed to hold
// n strings.
func (t *StringType) OffsetBytesRequired(n int) int { return (n + 1) * Int32SizeBytes }

var (
	BinaryTypes = struct {
		String *StringType
	}{
		String: &StringType{},
	}
)
