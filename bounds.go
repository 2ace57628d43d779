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
	"math"

	"github.com/paulmach/orb"
)

// identityTransform is what GDAL reports for datasets without a geotransform
var identityTransform = [6]float64{0, 1, 0, 0, 0, 1}

// applyTransform maps the grid position col,row through the geotransform gt
func applyTransform(gt [6]float64, col, row float64) (float64, float64) {
	return gt[0] + col*gt[1] + row*gt[2],
		gt[3] + col*gt[4] + row*gt[5]
}

// cornersBound returns the envelope of the four corners of a sizeX,sizeY grid
func cornersBound(gt [6]float64, sizeX, sizeY int) orb.Bound {
	sx, sy := float64(sizeX), float64(sizeY)
	mp := make(orb.MultiPoint, 0, 4)
	for _, c := range [4][2]float64{{0, 0}, {sx, 0}, {sx, sy}, {0, sy}} {
		x, y := applyTransform(gt, c[0], c[1])
		mp = append(mp, orb.Point{x, y})
	}
	return mp.Bound()
}

// axisResolutions returns the ground size of a cell along the column and
// row axes
func axisResolutions(gt [6]float64) (float64, float64) {
	return math.Hypot(gt[1], gt[4]), math.Hypot(gt[2], gt[5])
}
