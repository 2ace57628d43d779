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
	"strings"

	"github.com/airbusgeo/geoapi/metadata"
)

// RasterMetadata describes a GDAL raster dataset, assumed two-dimensional, as
// an ISO 19115 metadata record. A single value plays the roles of the record
// root, its identification, the identification's citation, the coverage
// description and the grid spatial representation.
//
// Properties GDAL cannot supply are reported as absent (see metadata.Absent).
// A RasterMetadata is immutable and holds no reference to the dataset it was
// built from.
type RasterMetadata struct {
	metadata.Absent
	GridGeometry

	// description is the dataset name, or "" if none
	description  string
	cellGeometry metadata.CellGeometry
}

var (
	_ metadata.Metadata                  = (*RasterMetadata)(nil)
	_ metadata.DataIdentification        = (*RasterMetadata)(nil)
	_ metadata.Citation                  = (*RasterMetadata)(nil)
	_ metadata.CoverageDescription       = (*RasterMetadata)(nil)
	_ metadata.GridSpatialRepresentation = (*RasterMetadata)(nil)
)

// NewRasterMetadata reads the metadata of ds. ds is not retained and stays
// owned by the caller.
//
// The returned error wraps ErrRead if ds is nil (including a typed nil
// pointer) or if ds implements ReadChecker and reports a failure.
func NewRasterMetadata(ds Dataset, opts ...Option) (*RasterMetadata, error) {
	if isNil(ds) {
		return nil, errNilDataset
	}
	ro := newRasterOpts(opts)
	description := strings.TrimSpace(ds.Description())
	areaOrPoint := ds.Metadata(AreaOrPoint)
	if err := readErr(ds); err != nil {
		return nil, err
	}
	return &RasterMetadata{
		GridGeometry: newGridGeometry(ds, ro),
		description:  description,
		cellGeometry: metadata.ParseCellGeometry(areaOrPoint),
	}, nil
}

// HierarchyLevels reports a dataset
func (rm *RasterMetadata) HierarchyLevels() []metadata.ScopeCode {
	return []metadata.ScopeCode{metadata.ScopeDataset}
}

// MetadataScopes returns a single dataset scope
func (rm *RasterMetadata) MetadataScopes() []metadata.MetadataScope {
	return metadata.ScopesFromLevels(rm.HierarchyLevels())
}

// IdentificationInfo returns rm itself
func (rm *RasterMetadata) IdentificationInfo() []metadata.Identification {
	return []metadata.Identification{rm}
}

// SpatialRepresentationInfo returns rm itself, a metadata.GridSpatialRepresentation
func (rm *RasterMetadata) SpatialRepresentationInfo() []metadata.SpatialRepresentation {
	return []metadata.SpatialRepresentation{rm}
}

// ContentInfo returns rm itself, a metadata.CoverageDescription
func (rm *RasterMetadata) ContentInfo() []metadata.ContentInformation {
	return []metadata.ContentInformation{rm}
}

// Citation returns rm itself
func (rm *RasterMetadata) Citation() metadata.Citation {
	return rm
}

// Title is the dataset description, or nil if it is empty
func (rm *RasterMetadata) Title() metadata.InternationalString {
	return metadata.Text(rm.description)
}

// CellGeometry is parsed from the AREA_OR_POINT metadata item
func (rm *RasterMetadata) CellGeometry() metadata.CellGeometry {
	return rm.cellGeometry
}
