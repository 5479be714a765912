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

/*
Package debug provides conditional runtime assertions and debug logging for
the array, memory and compute packages.

# Assertions

Build with the assert tag to turn Assert calls into checks that panic. Without
the tag Assert compiles to nothing.

# Logging

Build with the debug tag to send Log and Logf output to stderr. Reference
count underflows, exclusive-ownership probes and ownership conflicts are
reported this way.
*/
package debug
