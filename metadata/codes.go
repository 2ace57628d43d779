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

package metadata

import "strings"

// CellGeometry tells whether a raster sample represents a point measurement or
// a value over the cell area. The zero value is CellGeometryUnknown.
type CellGeometry int

const (
	// CellGeometryUnknown is used when the source does not say
	CellGeometryUnknown CellGeometry = iota
	// CellGeometryPoint each cell represents a point
	CellGeometryPoint
	// CellGeometryArea each cell represents an area
	CellGeometryArea
)

// String returns the ISO code of the cell geometry, or "" for CellGeometryUnknown
func (cg CellGeometry) String() string {
	switch cg {
	case CellGeometryPoint:
		return "point"
	case CellGeometryArea:
		return "area"
	default:
		return ""
	}
}

// ParseCellGeometry maps a GDAL AREA_OR_POINT value to a CellGeometry. The
// comparison ignores case and surrounding spaces. Any other value, including
// the empty string, yields CellGeometryUnknown.
func ParseCellGeometry(value string) CellGeometry {
	value = strings.TrimSpace(value)
	switch {
	case strings.EqualFold(value, "Point"):
		return CellGeometryPoint
	case strings.EqualFold(value, "Area"):
		return CellGeometryArea
	default:
		return CellGeometryUnknown
	}
}

// ScopeCode is the class of information to which a metadata record applies
type ScopeCode string

const (
	ScopeAttribute            ScopeCode = "attribute"
	ScopeAttributeType        ScopeCode = "attributeType"
	ScopeCollectionHardware   ScopeCode = "collectionHardware"
	ScopeCollectionSession    ScopeCode = "collectionSession"
	ScopeDataset              ScopeCode = "dataset"
	ScopeSeries               ScopeCode = "series"
	ScopeNonGeographicDataset ScopeCode = "nonGeographicDataset"
	ScopeDimensionGroup       ScopeCode = "dimensionGroup"
	ScopeFeature              ScopeCode = "feature"
	ScopeFeatureType          ScopeCode = "featureType"
	ScopePropertyType         ScopeCode = "propertyType"
	ScopeFieldSession         ScopeCode = "fieldSession"
	ScopeSoftware             ScopeCode = "software"
	ScopeService              ScopeCode = "service"
	ScopeModel                ScopeCode = "model"
	ScopeTile                 ScopeCode = "tile"
)

// DimensionNameType names a grid axis
type DimensionNameType string

const (
	DimensionRow        DimensionNameType = "row"
	DimensionColumn     DimensionNameType = "column"
	DimensionVertical   DimensionNameType = "vertical"
	DimensionTrack      DimensionNameType = "track"
	DimensionCrossTrack DimensionNameType = "crossTrack"
	DimensionLine       DimensionNameType = "line"
	DimensionSample     DimensionNameType = "sample"
	DimensionTime       DimensionNameType = "time"
)

// CoverageContentType is the type of information represented by a cell value
type CoverageContentType string

const (
	ContentImage                  CoverageContentType = "image"
	ContentThematicClassification CoverageContentType = "thematicClassification"
	ContentPhysicalMeasurement    CoverageContentType = "physicalMeasurement"
)

// CharacterSet is the name of a character encoding, e.g. "utf8"
type CharacterSet string

// TopicCategory is a high-level thematic classification
type TopicCategory string

// Progress is the status of a resource
type Progress string

// PresentationForm is the mode in which a resource is represented
type PresentationForm string

// SpatialRepresentationType is the method used to represent geographic information
type SpatialRepresentationType string

const (
	RepresentationVector SpatialRepresentationType = "vector"
	RepresentationGrid   SpatialRepresentationType = "grid"
)

// Role is the function performed by a responsible party
type Role string

// DateType is the event a citation date refers to
type DateType string
