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

// Package report flattens metadata records into plain values that can be
// printed or stored.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/airbusgeo/geoapi"
	"github.com/airbusgeo/geoapi/metadata"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gopkg.in/yaml.v3"
)

// Axis is one dimension of a grid
type Axis struct {
	Name       string  `json:"name" yaml:"name"`
	Size       int     `json:"size" yaml:"size"`
	Resolution float64 `json:"resolution,omitempty" yaml:"resolution,omitempty"`
}

// CRS identifies a coordinate reference system
type CRS struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Authority string `json:"authority,omitempty" yaml:"authority,omitempty"`
	Code      string `json:"code,omitempty" yaml:"code,omitempty"`
	WKT       string `json:"wkt,omitempty" yaml:"wkt,omitempty"`
}

// Record is the flattened form of a metadata record. Absent properties are
// left empty and omitted from the serialized forms.
type Record struct {
	Title        string            `json:"title,omitempty" yaml:"title,omitempty"`
	Scopes       []string          `json:"scopes,omitempty" yaml:"scopes,omitempty"`
	Language     string            `json:"language,omitempty" yaml:"language,omitempty"`
	CellGeometry string            `json:"cellGeometry,omitempty" yaml:"cellGeometry,omitempty"`
	Axes         []Axis            `json:"axes,omitempty" yaml:"axes,omitempty"`
	Transform    bool              `json:"transformationParameterAvailable" yaml:"transformationParameterAvailable"`
	GeoTransform []float64         `json:"geoTransform,omitempty" yaml:"geoTransform,omitempty,flow"`
	CRS          *CRS              `json:"crs,omitempty" yaml:"crs,omitempty"`
	Envelope     []float64         `json:"envelope,omitempty" yaml:"envelope,omitempty,flow"`
	Footprint    *geojson.Geometry `json:"footprint,omitempty" yaml:"-"`
}

// Clone returns a copy of r that shares no memory with it
func (r Record) Clone() Record {
	c := r
	if r.Scopes != nil {
		c.Scopes = append([]string(nil), r.Scopes...)
	}
	if r.Axes != nil {
		c.Axes = append([]Axis(nil), r.Axes...)
	}
	if r.GeoTransform != nil {
		c.GeoTransform = append([]float64(nil), r.GeoTransform...)
	}
	if r.Envelope != nil {
		c.Envelope = append([]float64(nil), r.Envelope...)
	}
	if r.CRS != nil {
		crs := *r.CRS
		c.CRS = &crs
	}
	if r.Footprint != nil {
		c.Footprint = geojson.NewGeometry(orb.Clone(r.Footprint.Geometry()))
	}
	return c
}

type gridGeometry interface {
	GridToCRS() [6]float64
	Envelope() (orb.Bound, bool)
	CoordinateReferenceSystem() *geoapi.ReferenceSystem
}

// From flattens md. Grid specific values are filled from the first
// grid spatial representation; the geotransform, envelope and CRS are only
// known for records built by package geoapi.
func From(md metadata.Metadata) Record {
	r := Record{}
	for _, id := range md.IdentificationInfo() {
		if id == nil || id.Citation() == nil {
			continue
		}
		if title := id.Citation().Title(); title != nil {
			r.Title = title.String()
			break
		}
	}
	for _, s := range md.MetadataScopes() {
		r.Scopes = append(r.Scopes, string(s.ResourceScope))
	}
	if lang := md.Language(); !lang.IsRoot() {
		r.Language = lang.String()
	}
	for _, rep := range md.SpatialRepresentationInfo() {
		grid, ok := rep.(metadata.GridSpatialRepresentation)
		if !ok {
			continue
		}
		r.CellGeometry = grid.CellGeometry().String()
		r.Transform = grid.TransformationParameterAvailable()
		for _, d := range grid.AxisDimensionProperties() {
			r.Axes = append(r.Axes, Axis{Name: string(d.Name), Size: d.Size, Resolution: d.Resolution})
		}
		if gg, ok := rep.(gridGeometry); ok {
			fillGeometry(&r, gg)
		}
		break
	}
	return r
}

func fillGeometry(r *Record, gg gridGeometry) {
	if bnd, ok := gg.Envelope(); ok {
		gt := gg.GridToCRS()
		r.GeoTransform = gt[:]
		r.Envelope = []float64{bnd.Min.X(), bnd.Min.Y(), bnd.Max.X(), bnd.Max.Y()}
		r.Footprint = geojson.NewGeometry(bnd.ToPolygon())
	}
	if crs := gg.CoordinateReferenceSystem(); crs != nil {
		wkt, _ := crs.WKT()
		r.CRS = &CRS{
			Name:      crs.Code(),
			Authority: crs.AuthorityName(),
			Code:      crs.AuthorityCode(),
			WKT:       wkt,
		}
	}
}

// Format is a serialization format of records
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected json or yaml", name)
	}
}

// Marshal serializes v, a Record or a slice of Records, in format f
func Marshal(f Format, v interface{}) ([]byte, error) {
	switch f {
	case YAML:
		return yaml.Marshal(v)
	case JSON:
		return json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}
