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

// Package referencing holds the identity roles shared by referencing objects
// (coordinate reference systems, datums, ...) and a minimal implementation of
// them.
package referencing

import "github.com/airbusgeo/geoapi/metadata"

// GenericName is a name in a namespace, e.g. "EPSG:4326"
type GenericName interface {
	String() string
}

// ReferenceIdentifier is the identifier role of ISO 19111 (RS_Identifier)
type ReferenceIdentifier interface {
	metadata.Identifier
	CodeSpace() string
	Version() string
}

// Identifier is the generic identifier role of ISO 19115:2014 (MD_Identifier),
// which supersedes ReferenceIdentifier
type Identifier interface {
	metadata.Identifier
	CodeSpace() string
	Version() string
	Description() metadata.InternationalString
}

// IdentifiedObject is the identification of a referencing object
type IdentifiedObject interface {
	// Name is the primary name by which this object is identified
	Name() NameRole
	Alias() []GenericName
	Identifiers() []NameRole
	Remarks() metadata.InternationalString
	// WKT formats this object as Well Known Text
	WKT() (string, error)
}
