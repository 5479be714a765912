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
	"errors"
)

// The error kinds returned by constructors, accessors and kernels. Callers
// test for them with errors.Is; the wrapped message carries the details.
var (
	// ErrTypeMismatch is returned when a value or array is not of the
	// requested or declared type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrLengthMismatch is returned when lengths that must agree do not.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrOwnershipConflict is returned when in-place mutation is requested
	// for storage that has another live holder.
	ErrOwnershipConflict = errors.New("ownership conflict")
	// ErrIndexOutOfRange is returned for a position outside [0, n).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrSchemaMismatch is returned when a name lookup finds no field, or a
	// column set does not line up with its schema.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrInvalid is returned for malformed constructor input.
	ErrInvalid = errors.New("invalid")
)
