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

import "time"

// Value types referenced by the roles. They are plain data: a backend that
// cannot supply one returns nil or the zero value.

// MetadataScope is the scope of the resource a metadata record describes
type MetadataScope struct {
	ResourceScope ScopeCode
	Name          InternationalString
}

// ScopesFromLevels builds one MetadataScope per hierarchy level
func ScopesFromLevels(levels []ScopeCode) []MetadataScope {
	if len(levels) == 0 {
		return nil
	}
	scopes := make([]MetadataScope, len(levels))
	for i, l := range levels {
		scopes[i] = MetadataScope{ResourceScope: l}
	}
	return scopes
}

// Dimension describes one axis of a grid. Resolution is 0 when unknown.
type Dimension struct {
	Name       DimensionNameType
	Size       int
	Resolution float64
}

// ResponsibleParty identifies a person or organisation related to a resource
type ResponsibleParty struct {
	IndividualName   string
	OrganisationName string
	PositionName     string
	Role             Role
}

// CitationDate is a reference date and the event it refers to
type CitationDate struct {
	Date     time.Time
	DateType DateType
}

// Series is the series or aggregate a resource is part of
type Series struct {
	Name                InternationalString
	IssueIdentification string
	Page                string
}

// Extent is a geographic bounding box in decimal degrees
type Extent struct {
	Description InternationalString
	West        float64
	East        float64
	South       float64
	North       float64
}

// Keywords groups keywords drawn from the same thesaurus
type Keywords struct {
	Keywords  []InternationalString
	Type      string
	Thesaurus Citation
}

// Format is a distribution or resource format
type Format struct {
	Name    string
	Version string
}

// BrowseGraphic is an illustration of a resource
type BrowseGraphic struct {
	FileName        string
	FileDescription InternationalString
	FileType        string
}

// Usage is a specific application of a resource
type Usage struct {
	SpecificUsage             InternationalString
	UserDeterminedLimitations InternationalString
}

// Constraints are restrictions on access and use
type Constraints struct {
	UseLimitations []InternationalString
}

// AggregateInformation relates a resource to an aggregate
type AggregateInformation struct {
	AggregateDataSetName Citation
	AssociationType      string
}

// MaintenanceInformation describes the maintenance cycle of a resource
type MaintenanceInformation struct {
	MaintenanceAndUpdateFrequency string
	DateOfNextUpdate              time.Time
}

// Resolution is the level of detail of a dataset, as a scale or a ground distance
type Resolution struct {
	EquivalentScale int64
	Distance        float64
}

// Distribution describes how a resource is made available
type Distribution struct {
	Formats []Format
}

// DataQuality is a quality report for a given scope
type DataQuality struct {
	Scope     ScopeCode
	Statement InternationalString
}

// PortrayalCatalogueReference points to a portrayal catalogue
type PortrayalCatalogueReference struct {
	Citations []Citation
}

// ApplicationSchemaInformation describes the schema used to build a dataset
type ApplicationSchemaInformation struct {
	Name               Citation
	SchemaLanguage     string
	ConstraintLanguage string
}

// MetadataExtensionInformation points to an extended metadata definition
type MetadataExtensionInformation struct {
	ExtensionOnLineResource string
}

// AcquisitionInformation describes how data was acquired
type AcquisitionInformation struct {
	Platform   string
	Instrument string
}

// RangeDimension describes one range of cell values
type RangeDimension struct {
	SequenceIdentifier string
	Descriptor         InternationalString
}

// RangeElementDescription describes a range element
type RangeElementDescription struct {
	Name       InternationalString
	Definition InternationalString
}

// RecordType describes the structure of a record
type RecordType struct {
	TypeName string
	Fields   map[string]string
}
