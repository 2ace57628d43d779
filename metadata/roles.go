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
	"time"

	"golang.org/x/text/language"
)

// Optional values are reported as nil (interfaces, pointers and slices), ""
// (strings and code lists), the zero time.Time, or language.Und. A backend
// never fails for a property it does not know about.

// Identifier is a value uniquely identifying an object within a namespace
type Identifier interface {
	// Authority is the organisation responsible for the code, or nil
	Authority() Citation
	Code() string
}

// ReferenceSystem is the part of a referencing object a metadata record needs
type ReferenceSystem interface {
	ReferenceSystemIdentifier() Identifier
}

// SpatialRepresentation is the representation of spatial information in a
// dataset. Callers type-switch on the concrete role, e.g.
// GridSpatialRepresentation.
type SpatialRepresentation interface{}

// ContentInformation describes the content of a dataset. Callers type-switch
// on the concrete role, e.g. CoverageDescription.
type ContentInformation interface{}

// Metadata is the root of a metadata record (ISO 19115 MD_Metadata)
type Metadata interface {
	FileIdentifier() string
	Language() language.Tag
	CharacterSet() CharacterSet
	ParentIdentifier() string
	HierarchyLevels() []ScopeCode
	HierarchyLevelNames() []string
	MetadataScopes() []MetadataScope
	Contacts() []ResponsibleParty
	DateStamp() time.Time
	MetadataStandardName() string
	MetadataStandardVersion() string
	DataSetURI() string
	Locales() []language.Tag
	SpatialRepresentationInfo() []SpatialRepresentation
	ReferenceSystemInfo() []ReferenceSystem
	MetadataExtensionInfo() []MetadataExtensionInformation
	IdentificationInfo() []Identification
	ContentInfo() []ContentInformation
	DistributionInfo() *Distribution
	DataQualityInfo() []DataQuality
	PortrayalCatalogueInfo() []PortrayalCatalogueReference
	MetadataConstraints() []Constraints
	ApplicationSchemaInfo() []ApplicationSchemaInformation
	MetadataMaintenance() *MaintenanceInformation
	AcquisitionInformation() []AcquisitionInformation
}

// Identification is basic information about a resource (MD_Identification)
type Identification interface {
	Citation() Citation
	Abstract() InternationalString
	Purpose() InternationalString
	Credits() []string
	Status() []Progress
	PointOfContacts() []ResponsibleParty
	ResourceMaintenances() []MaintenanceInformation
	GraphicOverviews() []BrowseGraphic
	ResourceFormats() []Format
	DescriptiveKeywords() []Keywords
	ResourceSpecificUsages() []Usage
	ResourceConstraints() []Constraints
	AggregationInfo() []AggregateInformation
}

// DataIdentification is the identification of a dataset (MD_DataIdentification)
type DataIdentification interface {
	Identification
	SpatialRepresentationTypes() []SpatialRepresentationType
	SpatialResolutions() []Resolution
	Languages() []language.Tag
	CharacterSets() []CharacterSet
	TopicCategories() []TopicCategory
	EnvironmentDescription() InternationalString
	Extents() []Extent
	SupplementalInformation() InternationalString
}

// Citation is a standardized resource reference (CI_Citation)
type Citation interface {
	Title() InternationalString
	AlternateTitles() []InternationalString
	Dates() []CitationDate
	Edition() InternationalString
	EditionDate() time.Time
	Identifiers() []Identifier
	CitedResponsibleParties() []ResponsibleParty
	PresentationForms() []PresentationForm
	Series() *Series
	OtherCitationDetails() InternationalString
	CollectiveTitle() InternationalString
	ISBN() string
	ISSN() string
}

// CoverageDescription describes the content of a grid cell (MD_CoverageDescription)
type CoverageDescription interface {
	AttributeDescription() *RecordType
	ContentType() CoverageContentType
	Dimensions() []RangeDimension
	RangeElementDescriptions() []RangeElementDescription
}

// GridSpatialRepresentation describes a grid (MD_GridSpatialRepresentation)
type GridSpatialRepresentation interface {
	NumberOfDimensions() int
	AxisDimensionProperties() []Dimension
	CellGeometry() CellGeometry
	TransformationParameterAvailable() bool
}
