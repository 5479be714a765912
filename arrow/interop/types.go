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
	arrowlib "github.com/apache/arrow-go/v18/arrow"
	"github.com/minarrow/minarrow/arrow"
	"golang.org/x/xerrors"
)

func toUpstreamType(dt arrow.DataType) (arrowlib.DataType, error) {
	switch dt.ID() {
	case arrow.BOOL:
		return arrowlib.FixedWidthTypes.Boolean, nil
	case arrow.INT32:
		return arrowlib.PrimitiveTypes.Int32, nil
	case arrow.INT64:
		return arrowlib.PrimitiveTypes.Int64, nil
	case arrow.UINT64:
		return arrowlib.PrimitiveTypes.Uint64, nil
	case arrow.FLOAT32:
		return arrowlib.PrimitiveTypes.Float32, nil
	case arrow.FLOAT64:
		return arrowlib.PrimitiveTypes.Float64, nil
	case arrow.STRING:
		return arrowlib.BinaryTypes.String, nil
	case arrow.STRUCT:
		fields, err := toUpstreamFields(dt.(*arrow.StructType).Fields())
		if err != nil {
			return nil, err
		}
		return arrowlib.StructOf(fields...), nil
	}
	return nil, xerrors.Errorf("interop: %w: no upstream type for %s", arrow.ErrTypeMismatch, dt)
}

func toUpstreamFields(fields []arrow.Field) ([]arrowlib.Field, error) {
	out := make([]arrowlib.Field, len(fields))
	for i, f := range fields {
		dt, err := toUpstreamType(f.Type)
		if err != nil {
			return nil, xerrors.Errorf("field %q: %w", f.Name, err)
		}
		out[i] = arrowlib.Field{Name: f.Name, Type: dt, Nullable: f.Nullable}
	}
	return out, nil
}

func fromUpstreamType(dt arrowlib.DataType) (arrow.DataType, error) {
	switch dt.ID() {
	case arrowlib.BOOL:
		return arrow.FixedWidthTypes.Boolean, nil
	case arrowlib.INT32:
		return arrow.PrimitiveTypes.Int32, nil
	case arrowlib.INT64:
		return arrow.PrimitiveTypes.Int64, nil
	case arrowlib.UINT64:
		return arrow.PrimitiveTypes.Uint64, nil
	case arrowlib.FLOAT32:
		return arrow.PrimitiveTypes.Float32, nil
	case arrowlib.FLOAT64:
		return arrow.PrimitiveTypes.Float64, nil
	case arrowlib.STRING:
		return arrow.BinaryTypes.String, nil
	case arrowlib.STRUCT:
		fields, err := fromUpstreamFields(dt.(*arrowlib.StructType).Fields())
		if err != nil {
			return nil, err
		}
		return arrow.StructOf(fields...), nil
	}
	return nil, xerrors.Errorf("interop: %w: unsupported upstream type %s", arrow.ErrTypeMismatch, dt)
}

func fromUpstreamFields(fields []arrowlib.Field) ([]arrow.Field, error) {
	out := make([]arrow.Field, len(fields))
	for i, f := range fields {
		dt, err := fromUpstreamType(f.Type)
		if err != nil {
			return nil, xerrors.Errorf("field %q: %w", f.Name, err)
		}
		out[i] = arrow.Field{Name: f.Name, Type: dt, Nullable: f.Nullable}
	}
	return out, nil
}
