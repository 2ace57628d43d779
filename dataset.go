// Copyright 2021 Airbus Defence and Space
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geoapi

import (
	"fmt"
	"reflect"

	"github.com/airbusgeo/godal"
)

// Dataset is the part of a GDAL raster dataset that metadata records are built
// from. *godal.Dataset implements it.
type Dataset interface {
	// Description is the free-text description, usually the dataset name
	Description() string
	// Metadata returns the metadata item for key, or "" if none
	Metadata(key string, opts ...godal.MetadataOption) string
	Structure() godal.DatasetStructure
	GeoTransform(opts ...godal.GetGeoTransformOption) ([6]float64, error)
	// Projection returns the WKT of the dataset's coordinate reference system.
	// May be empty.
	Projection() string
}

var _ Dataset = (*godal.Dataset)(nil)

// ReadChecker may be implemented by Datasets whose Description and Metadata
// lookups can fail. Err is called once those lookups are done and must return
// the first failure, if any.
type ReadChecker interface {
	Err() error
}

// AreaOrPoint is the GDAL metadata item telling whether pixel values are point
// or area samples
const AreaOrPoint = "AREA_OR_POINT"

// isNil reports whether ds is nil or holds a nil pointer of any type.
func isNil(ds Dataset) bool {
	if ds == nil {
		return true
	}
	v := reflect.ValueOf(ds)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func readErr(ds Dataset) error {
	if rc, ok := ds.(ReadChecker); ok {
		if err := rc.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
	return nil
}

// Load opens the raster dataset name, builds its RasterMetadata and closes it.
// The drivers needed to open name must have been registered, e.g. with
// godal.RegisterAll().
func Load(name string, opts ...Option) (*RasterMetadata, error) {
	ro := newRasterOpts(opts)
	ds, err := godal.Open(name, ro.openOpts()...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	md, err := NewRasterMetadata(ds, opts...)
	cerr := ds.Close(ro.closeOpts()...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if cerr != nil {
		return nil, fmt.Errorf("close %s: %w", name, cerr)
	}
	return md, nil
}
