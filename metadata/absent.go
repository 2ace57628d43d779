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

// Absent implements Metadata, DataIdentification, Citation and
// CoverageDescription by reporting no value for every property. Backends embed
// it and only declare the accessors they can populate.
type Absent struct{}

var (
	_ Metadata            = Absent{}
	_ DataIdentification  = Absent{}
	_ Citation            = Absent{}
	_ CoverageDescription = Absent{}
)

func (Absent) FileIdentifier() string                                { return "" }
func (Absent) Language() language.Tag                                { return language.Und }
func (Absent) CharacterSet() CharacterSet                            { return "" }
func (Absent) ParentIdentifier() string                              { return "" }
func (Absent) HierarchyLevels() []ScopeCode                          { return nil }
func (Absent) HierarchyLevelNames() []string                         { return nil }
func (Absent) MetadataScopes() []MetadataScope                       { return nil }
func (Absent) Contacts() []ResponsibleParty                          { return nil }
func (Absent) DateStamp() time.Time                                  { return time.Time{} }
func (Absent) MetadataStandardName() string                          { return "" }
func (Absent) MetadataStandardVersion() string                       { return "" }
func (Absent) DataSetURI() string                                    { return "" }
func (Absent) Locales() []language.Tag                               { return nil }
func (Absent) SpatialRepresentationInfo() []SpatialRepresentation    { return nil }
func (Absent) ReferenceSystemInfo() []ReferenceSystem                { return nil }
func (Absent) MetadataExtensionInfo() []MetadataExtensionInformation { return nil }
func (Absent) IdentificationInfo() []Identification                  { return nil }
func (Absent) ContentInfo() []ContentInformation                     { return nil }
func (Absent) DistributionInfo() *Distribution                       { return nil }
func (Absent) DataQualityInfo() []DataQuality                        { return nil }
func (Absent) PortrayalCatalogueInfo() []PortrayalCatalogueReference { return nil }
func (Absent) MetadataConstraints() []Constraints                    { return nil }
func (Absent) ApplicationSchemaInfo() []ApplicationSchemaInformation { return nil }
func (Absent) MetadataMaintenance() *MaintenanceInformation          { return nil }
func (Absent) AcquisitionInformation() []AcquisitionInformation      { return nil }

func (Absent) Citation() Citation                             { return nil }
func (Absent) Abstract() InternationalString                  { return nil }
func (Absent) Purpose() InternationalString                   { return nil }
func (Absent) Credits() []string                              { return nil }
func (Absent) Status() []Progress                             { return nil }
func (Absent) PointOfContacts() []ResponsibleParty            { return nil }
func (Absent) ResourceMaintenances() []MaintenanceInformation { return nil }
func (Absent) GraphicOverviews() []BrowseGraphic              { return nil }
func (Absent) ResourceFormats() []Format                      { return nil }
func (Absent) DescriptiveKeywords() []Keywords                { return nil }
func (Absent) ResourceSpecificUsages() []Usage                { return nil }
func (Absent) ResourceConstraints() []Constraints             { return nil }
func (Absent) AggregationInfo() []AggregateInformation        { return nil }

func (Absent) SpatialRepresentationTypes() []SpatialRepresentationType { return nil }
func (Absent) SpatialResolutions() []Resolution                        { return nil }
func (Absent) Languages() []language.Tag                               { return nil }
func (Absent) CharacterSets() []CharacterSet                           { return nil }
func (Absent) TopicCategories() []TopicCategory                        { return nil }
func (Absent) EnvironmentDescription() InternationalString             { return nil }
func (Absent) Extents() []Extent                                       { return nil }
func (Absent) SupplementalInformation() InternationalString            { return nil }

func (Absent) Title() InternationalString                  { return nil }
func (Absent) AlternateTitles() []InternationalString      { return nil }
func (Absent) Dates() []CitationDate                       { return nil }
func (Absent) Edition() InternationalString                { return nil }
func (Absent) EditionDate() time.Time                      { return time.Time{} }
func (Absent) Identifiers() []Identifier                   { return nil }
func (Absent) CitedResponsibleParties() []ResponsibleParty { return nil }
func (Absent) PresentationForms() []PresentationForm       { return nil }
func (Absent) Series() *Series                             { return nil }
func (Absent) OtherCitationDetails() InternationalString   { return nil }
func (Absent) CollectiveTitle() InternationalString        { return nil }
func (Absent) ISBN() string                                { return "" }
func (Absent) ISSN() string                                { return "" }

func (Absent) AttributeDescription() *RecordType                   { return nil }
func (Absent) ContentType() CoverageContentType                    { return "" }
func (Absent) Dimensions() []RangeDimension                        { return nil }
func (Absent) RangeElementDescriptions() []RangeElementDescription { return nil }
