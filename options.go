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

import "github.com/airbusgeo/godal"

type rasterOpts struct {
	errorHandler godal.ErrorHandler
	open         []godal.OpenOption
}

// Option is an option that can be passed to NewRasterMetadata, NewGridGeometry
// and Load
//
// Available Options are:
//
// • ErrLogger
//
// • OpenOptions (only used by Load)
type Option interface {
	setRasterOpt(ro *rasterOpts)
}

type errLoggerOpt struct {
	fn godal.ErrorHandler
}

func (ec errLoggerOpt) setRasterOpt(ro *rasterOpts) {
	ro.errorHandler = ec.fn
}

// ErrLogger forwards fn to the godal calls made while reading a dataset, see
// godal.ErrorHandler. LogErrors builds one from a zerolog.Logger.
func ErrLogger(fn godal.ErrorHandler) Option {
	return errLoggerOpt{fn}
}

type openOpt struct {
	opts []godal.OpenOption
}

func (oo openOpt) setRasterOpt(ro *rasterOpts) {
	ro.open = append(ro.open, oo.opts...)
}

// OpenOptions are passed to godal.Open by Load, after godal.RasterOnly()
func OpenOptions(opts ...godal.OpenOption) Option {
	return openOpt{opts}
}

func newRasterOpts(opts []Option) rasterOpts {
	ro := rasterOpts{}
	for _, o := range opts {
		o.setRasterOpt(&ro)
	}
	return ro
}

func (ro rasterOpts) geoTransformOpts() []godal.GetGeoTransformOption {
	if ro.errorHandler == nil {
		return nil
	}
	// a missing geotransform must not read back as the default one
	return []godal.GetGeoTransformOption{godal.ErrLogger(failuresAsErrors(ro.errorHandler))}
}

func (ro rasterOpts) spatialRefOpts() []godal.CreateSpatialRefOption {
	if ro.errorHandler == nil {
		return nil
	}
	return []godal.CreateSpatialRefOption{godal.ErrLogger(ro.errorHandler)}
}

func (ro rasterOpts) openOpts() []godal.OpenOption {
	oo := []godal.OpenOption{godal.RasterOnly()}
	if ro.errorHandler != nil {
		oo = append(oo, godal.ErrLogger(ro.errorHandler))
	}
	return append(oo, ro.open...)
}

func (ro rasterOpts) closeOpts() []godal.CloseOption {
	if ro.errorHandler == nil {
		return nil
	}
	return []godal.CloseOption{godal.ErrLogger(ro.errorHandler)}
}
