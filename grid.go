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
	"github.com/paulmach/orb"
)

// GridGeometry is the two-dimensional grid of a raster dataset: its size, the
// geotransform mapping grid positions to CRS coordinates, and the CRS itself.
// It provides the grid part of metadata.GridSpatialRepresentation; the cell
// geometry is left to the embedding type.
type GridGeometry struct {
	sizeX, sizeY int
	gridToCRS    [6]float64
	hasTransform bool
	crs          *ReferenceSystem
}

// NewGridGeometry reads the grid geometry of ds. A dataset without a
// geotransform is not an error: TransformationParameterAvailable then
// returns false and GridToCRS the identity.
func NewGridGeometry(ds Dataset, opts ...Option) (*GridGeometry, error) {
	if isNil(ds) {
		return nil, errNilDataset
	}
	gg := newGridGeometry(ds, newRasterOpts(opts))
	return &gg, nil
}

func newGridGeometry(ds Dataset, ro rasterOpts) GridGeometry {
	st := ds.Structure()
	gg := GridGeometry{
		sizeX:     st.SizeX,
		sizeY:     st.SizeY,
		gridToCRS: identityTransform,
	}
	if gt, err := ds.GeoTransform(ro.geoTransformOpts()...); err == nil {
		gg.gridToCRS = gt
		gg.hasTransform = true
	}
	if wkt := strings.TrimSpace(ds.Projection()); wkt != "" {
		gg.crs = NewReferenceSystem(wkt, ErrLogger(ro.errorHandler))
	}
	return gg
}

// NumberOfDimensions is always 2
func (gg *GridGeometry) NumberOfDimensions() int {
	return 2
}

// AxisDimensionProperties returns the column axis followed by the row axis.
// Resolutions are set only when a geotransform is available.
func (gg *GridGeometry) AxisDimensionProperties() []metadata.Dimension {
	col := metadata.Dimension{Name: metadata.DimensionColumn, Size: gg.sizeX}
	row := metadata.Dimension{Name: metadata.DimensionRow, Size: gg.sizeY}
	if gg.hasTransform {
		col.Resolution, row.Resolution = axisResolutions(gg.gridToCRS)
	}
	return []metadata.Dimension{col, row}
}

// TransformationParameterAvailable tells whether the dataset has a geotransform
func (gg *GridGeometry) TransformationParameterAvailable() bool {
	return gg.hasTransform
}

// Size returns the number of columns and rows
func (gg *GridGeometry) Size() (int, int) {
	return gg.sizeX, gg.sizeY
}

// GridToCRS returns the geotransform coefficients
func (gg *GridGeometry) GridToCRS() [6]float64 {
	return gg.gridToCRS
}

// Envelope returns the extent of the grid in CRS coordinates. ok is false when
// the dataset has no geotransform.
func (gg *GridGeometry) Envelope() (bound orb.Bound, ok bool) {
	if !gg.hasTransform {
		return orb.Bound{}, false
	}
	return cornersBound(gg.gridToCRS, gg.sizeX, gg.sizeY), true
}

// CoordinateReferenceSystem returns the dataset CRS, or nil if it has none
func (gg *GridGeometry) CoordinateReferenceSystem() *ReferenceSystem {
	return gg.crs
}
