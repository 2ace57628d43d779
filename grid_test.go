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
	"math"
	"testing"

	"github.com/airbusgeo/geoapi/metadata"
	"github.com/airbusgeo/godal"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCornersBound(t *testing.T) {
	bnd := cornersBound([6]float64{45, 1, 0, 35, 0, -1}, 10, 10)
	assert.Equal(t, orb.Bound{Min: orb.Point{45, 25}, Max: orb.Point{55, 35}}, bnd)

	// south-up
	bnd = cornersBound([6]float64{45, 1, 0, 25, 0, 1}, 10, 10)
	assert.Equal(t, orb.Bound{Min: orb.Point{45, 25}, Max: orb.Point{55, 35}}, bnd)

	// 90° rotation: columns go south, rows go east
	bnd = cornersBound([6]float64{0, 0, 2, 0, -1, 0}, 4, 3)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, -4}, Max: orb.Point{6, 0}}, bnd)
}

func TestAxisResolutions(t *testing.T) {
	rx, ry := axisResolutions([6]float64{0, 10, 0, 0, 0, -20})
	assert.Equal(t, 10.0, rx)
	assert.Equal(t, 20.0, ry)

	rx, ry = axisResolutions([6]float64{0, 3, 4, 0, 4, -3})
	assert.InDelta(t, 5.0, rx, 1e-12)
	assert.InDelta(t, 5.0, ry, 1e-12)

	rx, ry = axisResolutions(identityTransform)
	assert.Equal(t, 1.0, rx)
	assert.Equal(t, 1.0, ry)
}

func TestGridGeometry(t *testing.T) {
	ds := newMemDataset("x", "")
	gg, err := NewGridGeometry(ds)
	require.NoError(t, err)
	assert.Equal(t, 2, gg.NumberOfDimensions())
	assert.True(t, gg.TransformationParameterAvailable())
	assert.Equal(t, ds.gt, gg.GridToCRS())
	assert.Equal(t, []metadata.Dimension{
		{Name: metadata.DimensionColumn, Size: 40, Resolution: 0.5},
		{Name: metadata.DimensionRow, Size: 20, Resolution: 0.5},
	}, gg.AxisDimensionProperties())
	bnd, ok := gg.Envelope()
	require.True(t, ok)
	assert.Equal(t, orb.Bound{Min: orb.Point{10, 40}, Max: orb.Point{30, 50}}, bnd)
	assert.Nil(t, gg.CoordinateReferenceSystem())

	ds.projection = "   "
	gg, err = NewGridGeometry(ds)
	require.NoError(t, err)
	assert.Nil(t, gg.CoordinateReferenceSystem())
}

func TestGridGeometryOfGeoTiffWithoutGeoTransform(t *testing.T) {
	fname := tempTiff(t)
	ds, err := godal.Create(godal.GTiff, fname, 1, godal.Byte, 16, 8)
	require.NoError(t, err)
	require.NoError(t, ds.Close())

	ds, err = godal.Open(fname)
	require.NoError(t, err)
	defer ds.Close()
	gg, err := NewGridGeometry(ds)
	require.NoError(t, err)
	assert.False(t, gg.TransformationParameterAvailable())
	assert.Equal(t, identityTransform, gg.GridToCRS())
	sx, sy := gg.Size()
	assert.Equal(t, 16, sx)
	assert.Equal(t, 8, sy)
	for _, d := range gg.AxisDimensionProperties() {
		assert.Zero(t, d.Resolution)
	}
}

func TestGridGeometryOfProjectedRaster(t *testing.T) {
	ds, err := godal.Create(godal.Memory, "", 1, godal.Byte, 256, 256)
	require.NoError(t, err)
	defer ds.Close()
	res := 2 * math.Pi * 6378137 / 256
	require.NoError(t, ds.SetGeoTransform([6]float64{-math.Pi * 6378137, res, 0, math.Pi * 6378137, 0, -res}))
	sr, err := godal.NewSpatialRefFromEPSG(3857)
	require.NoError(t, err)
	defer sr.Close()
	require.NoError(t, ds.SetSpatialRef(sr))

	gg, err := NewGridGeometry(ds)
	require.NoError(t, err)
	axes := gg.AxisDimensionProperties()
	assert.InDelta(t, res, axes[0].Resolution, 1e-6)
	assert.InDelta(t, res, axes[1].Resolution, 1e-6)
	crs := gg.CoordinateReferenceSystem()
	require.NotNil(t, crs)
	assert.Equal(t, "3857", crs.AuthorityCode())
	assert.False(t, crs.Geographic())
	assert.Contains(t, crs.Name().Code(), "Pseudo-Mercator")
}
