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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	godal.RegisterInternalDrivers()
}

// memDataset is a Dataset that does not need GDAL
type memDataset struct {
	description string
	items       map[string]string
	structure   godal.DatasetStructure
	gt          [6]float64
	gtErr       error
	projection  string
	err         error
}

func (m *memDataset) Description() string { return m.description }
func (m *memDataset) Metadata(key string, opts ...godal.MetadataOption) string {
	return m.items[key]
}
func (m *memDataset) Structure() godal.DatasetStructure { return m.structure }
func (m *memDataset) GeoTransform(opts ...godal.GetGeoTransformOption) ([6]float64, error) {
	return m.gt, m.gtErr
}
func (m *memDataset) Projection() string { return m.projection }
func (m *memDataset) Err() error         { return m.err }

func newMemDataset(description, areaOrPoint string) *memDataset {
	ds := &memDataset{
		description: description,
		items:       map[string]string{},
		gt:          [6]float64{10, 0.5, 0, 50, 0, -0.5},
	}
	if areaOrPoint != "" {
		ds.items[AreaOrPoint] = areaOrPoint
	}
	ds.structure.SizeX = 40
	ds.structure.SizeY = 20
	ds.structure.NBands = 1
	return ds
}

func tempTiff(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.tif")
}

func TestGodalDatasetIsADataset(t *testing.T) {
	ds, err := godal.Create(godal.Memory, "", 1, godal.Byte, 8, 4)
	require.NoError(t, err)
	defer ds.Close()
	var d Dataset = ds
	assert.Equal(t, 8, d.Structure().SizeX)
	assert.Equal(t, 4, d.Structure().SizeY)
}

func TestLoad(t *testing.T) {
	fname := tempTiff(t)
	ds, err := godal.Create(godal.GTiff, fname, 1, godal.Byte, 30, 20)
	require.NoError(t, err)
	require.NoError(t, ds.SetGeoTransform([6]float64{2, 0.1, 0, 49, 0, -0.1}))
	sr, err := godal.NewSpatialRefFromEPSG(4326)
	require.NoError(t, err)
	require.NoError(t, ds.SetSpatialRef(sr))
	sr.Close()
	require.NoError(t, ds.SetMetadata(AreaOrPoint, "Point"))
	require.NoError(t, ds.Close())

	md, err := Load(fname)
	require.NoError(t, err)
	if assert.NotNil(t, md.Title()) {
		assert.Equal(t, fname, md.Title().String())
	}
	assert.Equal(t, "point", md.CellGeometry().String())
	sx, sy := md.Size()
	assert.Equal(t, 30, sx)
	assert.Equal(t, 20, sy)
	assert.True(t, md.TransformationParameterAvailable())
	crs := md.CoordinateReferenceSystem()
	require.NotNil(t, crs)
	assert.Equal(t, "WGS 84", crs.Name().Code())

	_, err = Load(filepath.Join(t.TempDir(), "does-not-exist.tif"))
	assert.Error(t, err)

	ehc := &errCounter{}
	_, err = Load(fname, ErrLogger(ehc.handler), OpenOptions(godal.Shared()))
	assert.NoError(t, err)
}

func TestLoadNotARaster(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.txt")
	require.NoError(t, os.WriteFile(fname, []byte("not a raster"), 0o644))
	_, err := Load(fname)
	assert.Error(t, err)
}

type errCounter struct {
	errs int
}

func (e *errCounter) handler(ec godal.ErrorCategory, code int, msg string) error {
	if ec >= godal.CE_Failure {
		e.errs++
		return errors.New(msg)
	}
	return nil
}
