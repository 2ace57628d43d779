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
	"github.com/airbusgeo/geoapi/referencing"
	"github.com/airbusgeo/godal"
)

// ReferenceSystem is a snapshot of a dataset's coordinate reference system.
// It keeps no GDAL handle: everything is read when it is created.
type ReferenceSystem struct {
	*referencing.Object
	wkt           string
	authorityName string
	authorityCode string
	geographic    bool
}

var _ referencing.IdentifiedObject = (*ReferenceSystem)(nil)

// rootNodes are the WKT nodes a CRS name may be found in, most specific first
var rootNodes = []string{"COMPD_CS", "PROJCS", "GEOGCS", "GEOCCS", "VERT_CS", "LOCAL_CS"}

// NewReferenceSystem parses wkt with GDAL to extract the CRS name and
// authority. Parse failures are not reported: the resulting object then has an
// empty name but still formats as wkt.
func NewReferenceSystem(wkt string, opts ...Option) *ReferenceSystem {
	ro := newRasterOpts(opts)
	rs := &ReferenceSystem{wkt: wkt}
	name := ""
	if sr, err := godal.NewSpatialRefFromWKT(wkt, ro.spatialRefOpts()...); err == nil {
		for _, node := range rootNodes {
			if v, ok := sr.AttrValue(node, 0); ok && v != "" {
				name = v
				break
			}
		}
		rs.authorityName = sr.AuthorityName("")
		rs.authorityCode = sr.AuthorityCode("")
		rs.geographic = sr.Geographic()
		sr.Close()
	}
	rs.Object = referencing.NewObject(name, rs)
	return rs
}

// WKT returns the WKT the reference system was created from
func (rs *ReferenceSystem) WKT() (string, error) {
	return rs.wkt, nil
}

// AuthorityName is the authority of the root node, e.g. "EPSG", or ""
func (rs *ReferenceSystem) AuthorityName() string {
	return rs.authorityName
}

// AuthorityCode is the code of the root node within its authority, e.g. "4326", or ""
func (rs *ReferenceSystem) AuthorityCode() string {
	return rs.authorityCode
}

// Geographic returns whether the reference system is geographic (lon/lat)
func (rs *ReferenceSystem) Geographic() bool {
	return rs.geographic
}
