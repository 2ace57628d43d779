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

package referencing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCRS struct {
	*Object
	wkt string
	err error
}

func newFakeCRS(name, wkt string, err error) *fakeCRS {
	c := &fakeCRS{wkt: wkt, err: err}
	c.Object = NewObject(name, c)
	return c
}

func (c *fakeCRS) WKT() (string, error) {
	return c.wkt, c.err
}

func TestObjectIsItsOwnName(t *testing.T) {
	o := NewObject("WGS 84", nil)
	name := o.Name()
	require.NotNil(t, name)
	assert.Same(t, o, name)
	assert.Equal(t, "WGS 84", name.Code())

	var idobj IdentifiedObject = o
	assert.Same(t, o, idobj.Name())

	crs := newFakeCRS("NTF", "GEOGCS[\"NTF\"]", nil)
	assert.Same(t, crs.Object, crs.Name())
}

func TestObjectAbsentProperties(t *testing.T) {
	o := NewObject("x", nil)
	assert.Nil(t, o.Alias())
	assert.Nil(t, o.Identifiers())
	assert.Nil(t, o.Authority())
	assert.Empty(t, o.CodeSpace())
	assert.Empty(t, o.Version())
	assert.Nil(t, o.Remarks())
	assert.Nil(t, o.Description())
	assert.Same(t, o, o.ReferenceSystemIdentifier())
}

func TestObjectString(t *testing.T) {
	o := NewObject("code", nil)
	_, err := o.WKT()
	assert.ErrorIs(t, err, ErrNoWKT)
	assert.Equal(t, "code", o.String())

	crs := newFakeCRS("WGS 84", "GEOGCS[\"WGS 84\"]", nil)
	assert.Equal(t, "GEOGCS[\"WGS 84\"]", crs.String())
	assert.Equal(t, "GEOGCS[\"WGS 84\"]", fmt.Sprint(crs))
	assert.Equal(t, "GEOGCS[\"WGS 84\"]", crs.Object.String())

	crs = newFakeCRS("broken", "", errors.New("export failed"))
	assert.Equal(t, "broken", crs.String())
	_, err = crs.Object.WKT()
	assert.EqualError(t, err, "export failed")

	crs = newFakeCRS("empty", "", nil)
	assert.Equal(t, "empty", crs.String())
}
