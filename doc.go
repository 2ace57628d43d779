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

/*
Package geoapi exposes GDAL raster datasets as ISO 19115 metadata records and
ISO 19111 referencing objects.

A RasterMetadata is read once from a dataset and then answers the accessors of
the metadata package: the record root, its identification and citation, the
coverage description and the grid spatial representation. Properties GDAL has
no equivalent for are reported as absent.

	godal.RegisterAll()
	md, err := geoapi.Load("dem.tif", geoapi.ErrLogger(geoapi.LogErrors(log.Logger)))
	if err != nil {
		return err
	}
	grid := md.SpatialRepresentationInfo()[0].(metadata.GridSpatialRepresentation)
	fmt.Println(md.Title(), grid.CellGeometry())

Already opened datasets are described with NewRasterMetadata, which leaves
them open and owned by the caller.
*/
package geoapi
