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

package interop

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/minarrow/minarrow/arrow/array"
	"golang.org/x/xerrors"
)

// WriteIPC writes the tables to w as one Arrow IPC stream, one record batch
// per table. Every table must have the schema of the first one.
func WriteIPC(w io.Writer, tbls []*array.Table, opts ...Option) error {
	if len(tbls) == 0 {
		return xerrors.New("interop: write ipc: no tables")
	}
	cfg := newConfig(opts)

	first, err := ToRecord(cfg.mem, tbls[0])
	if err != nil {
		return err
	}
	defer first.Release()

	wr := ipc.NewWriter(w, cfg.writerOptions(first.Schema())...)
	defer wr.Close()

	if err := wr.Write(first); err != nil {
		return xerrors.Errorf("interop: write ipc batch 0: %w", err)
	}

	for i, tbl := range tbls[1:] {
		rec, err := ToRecord(cfg.mem, tbl)
		if err != nil {
			return err
		}
		err = wr.Write(rec)
		rec.Release()
		if err != nil {
			return xerrors.Errorf("interop: write ipc batch %d: %w", i+1, err)
		}
	}

	if err := wr.Close(); err != nil {
		return xerrors.Errorf("interop: close ipc writer: %w", err)
	}
	return nil
}

// ReadIPC reads every record batch of the Arrow IPC stream in r and
// returns them as tables. The caller releases each table.
func ReadIPC(r io.Reader, opts ...Option) ([]*array.Table, error) {
	cfg := newConfig(opts)

	rdr, err := ipc.NewReader(r, ipc.WithAllocator(cfg.mem))
	if err != nil {
		return nil, xerrors.Errorf("interop: open ipc reader: %w", err)
	}
	defer rdr.Release()

	var out []*array.Table
	for rdr.Next() {
		tbl, err := FromRecord(rdr.RecordBatch(), opts...)
		if err != nil {
			releaseTables(out)
			return nil, err
		}
		out = append(out, tbl)
	}

	if err := rdr.Err(); err != nil {
		releaseTables(out)
		return nil, xerrors.Errorf("interop: read ipc: %w", err)
	}
	return out, nil
}

func releaseTables(tbls []*array.Table) {
	for _, tbl := range tbls {
		tbl.Release()
	}
}
