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

	"github.com/airbusgeo/geoapi/metadata"
)

// ErrNoWKT is returned by Object.WKT when no formatter was supplied
var ErrNoWKT = errors.New("wkt formatting not available")

// WKTFormatter formats an object as Well Known Text
type WKTFormatter interface {
	WKT() (string, error)
}

// Object is the identity shared by referencing objects. It is its own name:
// Name returns the receiver. All secondary identity properties (alias,
// identifiers, authority, code space, version, remarks) are absent.
//
// Types embedding an *Object declare their own WKT method and pass themselves
// as the WKTFormatter so that String renders their WKT.
type Object struct {
	code string
	wkt  WKTFormatter
}

var (
	_ IdentifiedObject         = (*Object)(nil)
	_ NameRole                 = (*Object)(nil)
	_ metadata.ReferenceSystem = (*Object)(nil)
)

// NewObject creates an Object named code. wkt may be nil.
func NewObject(code string, wkt WKTFormatter) *Object {
	return &Object{code: code, wkt: wkt}
}

// Name returns o
func (o *Object) Name() NameRole {
	return o
}

// Code returns the name given at creation
func (o *Object) Code() string {
	return o.code
}

// WKT delegates to the formatter given at creation
func (o *Object) WKT() (string, error) {
	if o.wkt == nil {
		return "", ErrNoWKT
	}
	return o.wkt.WKT()
}

// String returns the WKT of the object, or its code when it cannot be
// formatted
func (o *Object) String() string {
	wkt, err := o.WKT()
	if err != nil || wkt == "" {
		return o.code
	}
	return wkt
}

// ReferenceSystemIdentifier returns o
func (o *Object) ReferenceSystemIdentifier() metadata.Identifier {
	return o
}

func (o *Object) Alias() []GenericName                      { return nil }
func (o *Object) Identifiers() []NameRole                   { return nil }
func (o *Object) Authority() metadata.Citation              { return nil }
func (o *Object) CodeSpace() string                         { return "" }
func (o *Object) Version() string                           { return "" }
func (o *Object) Remarks() metadata.InternationalString     { return nil }
func (o *Object) Description() metadata.InternationalString { return nil }
