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
	"testing"

	"github.com/airbusgeo/geoapi/metadata"
	"github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func epsgWKT(t *testing.T, code int) string {
	t.Helper()
	sr, err := godal.NewSpatialRefFromEPSG(code)
	require.NoError(t, err)
	defer sr.Close()
	wkt, err := sr.WKT()
	require.NoError(t, err)
	return wkt
}

func TestReferenceSystem(t *testing.T) {
	wkt := epsgWKT(t, 4326)
	rs := NewReferenceSystem(wkt)
	assert.Equal(t, "WGS 84", rs.Code())
	assert.Same(t, rs.Object, rs.Name())
	assert.Equal(t, "EPSG", rs.AuthorityName())
	assert.Equal(t, "4326", rs.AuthorityCode())
	assert.True(t, rs.Geographic())
	assert.Equal(t, wkt, rs.String())
	got, err := rs.WKT()
	assert.NoError(t, err)
	assert.Equal(t, wkt, got)

	var ref metadata.ReferenceSystem = rs
	assert.Equal(t, "WGS 84", ref.ReferenceSystemIdentifier().Code())

	assert.Nil(t, rs.Alias())
	assert.Nil(t, rs.Identifiers())
	assert.Nil(t, rs.Remarks())
	assert.Nil(t, rs.Name().Authority())
	assert.Empty(t, rs.Name().CodeSpace())
	assert.Empty(t, rs.Name().Version())
}

func TestReferenceSystemUnparsable(t *testing.T) {
	ehc := &errCounter{}
	rs := NewReferenceSystem("FOOBAR[\"nope\"]", ErrLogger(ehc.handler))
	assert.Empty(t, rs.Code())
	assert.Empty(t, rs.AuthorityName())
	assert.False(t, rs.Geographic())
	assert.Equal(t, "FOOBAR[\"nope\"]", rs.String())
}

func TestReferenceSystemWithoutAuthority(t *testing.T) {
	wkt := `LOCAL_CS["engineering",UNIT["metre",1],AXIS["Easting",EAST],AXIS["Northing",NORTH]]`
	rs := NewReferenceSystem(wkt)
	assert.Equal(t, "engineering", rs.Code())
	assert.Empty(t, rs.AuthorityName())
	assert.Empty(t, rs.AuthorityCode())
}
