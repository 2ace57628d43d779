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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCellGeometry(t *testing.T) {
	tc := func(in string, exp CellGeometry) {
		t.Helper()
		assert.Equal(t, exp, ParseCellGeometry(in), "%q", in)
	}
	tc("Point", CellGeometryPoint)
	tc("point", CellGeometryPoint)
	tc("POINT", CellGeometryPoint)
	tc("  Point ", CellGeometryPoint)
	tc("Area", CellGeometryArea)
	tc("aReA", CellGeometryArea)
	tc("\tarea\n", CellGeometryArea)
	tc("", CellGeometryUnknown)
	tc("   ", CellGeometryUnknown)
	tc("Pixel", CellGeometryUnknown)
	tc("Points", CellGeometryUnknown)
	tc("Area_Or_Point", CellGeometryUnknown)
}

func TestCellGeometryString(t *testing.T) {
	assert.Equal(t, "point", CellGeometryPoint.String())
	assert.Equal(t, "area", CellGeometryArea.String())
	assert.Equal(t, "", CellGeometryUnknown.String())
	assert.Equal(t, "", CellGeometry(42).String())
	var zero CellGeometry
	assert.Equal(t, CellGeometryUnknown, zero)
}

func TestScopesFromLevels(t *testing.T) {
	assert.Nil(t, ScopesFromLevels(nil))
	scopes := ScopesFromLevels([]ScopeCode{ScopeDataset, ScopeTile})
	assert.Equal(t, []MetadataScope{
		{ResourceScope: ScopeDataset},
		{ResourceScope: ScopeTile},
	}, scopes)
}
