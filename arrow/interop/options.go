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

// Package interop converts tables to and from the record batches of the
// upstream Apache Arrow Go library, and reads and writes them as Arrow IPC
// streams.
//
// Conversion copies values: a Table and the record batch made from it share
// no memory.
package interop

import (
	arrowlib "github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/minarrow/minarrow/arrow/memory"
)

// Option configures FromRecord, WriteIPC and ReadIPC.
type Option func(*config)

type config struct {
	mem   memory.Allocator
	codec ipc.Option
}

func newConfig(opts []Option) *config {
	cfg := &config{mem: memory.DefaultAllocator}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithAllocator sets the allocator used for decoded columns and IPC
// buffers.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) { cfg.mem = mem }
}

// WithZstd compresses IPC record bodies with zstd.
func WithZstd() Option {
	return func(cfg *config) { cfg.codec = ipc.WithZstd() }
}

// WithLZ4 compresses IPC record bodies with lz4 frames.
func WithLZ4() Option {
	return func(cfg *config) { cfg.codec = ipc.WithLZ4() }
}

func (cfg *config) writerOptions(schema *arrowlib.Schema) []ipc.Option {
	opts := []ipc.Option{ipc.WithSchema(schema), ipc.WithAllocator(cfg.mem)}
	if cfg.codec != nil {
		opts = append(opts, cfg.codec)
	}
	return opts
}
