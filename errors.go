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
	"errors"
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/rs/zerolog"
)

// ErrRead is wrapped by the errors returned when a dataset cannot supply the
// values a metadata record is built from
var ErrRead = errors.New("cannot read dataset")

var errNilDataset = fmt.Errorf("%w: nil dataset", ErrRead)

// LogErrors returns a godal.ErrorHandler that logs GDAL debug messages and
// warnings to l and only treats failures as errors. The default godal
// behavior is to treat warnings as errors as well.
func LogErrors(l zerolog.Logger) godal.ErrorHandler {
	return func(ec godal.ErrorCategory, code int, msg string) error {
		switch {
		case ec >= godal.CE_Failure:
			return errors.New(msg)
		case ec == godal.CE_Warning:
			l.Warn().Int("gdal_code", code).Msg(msg)
		default:
			l.Debug().Int("gdal_code", code).Msg(msg)
		}
		return nil
	}
}

// failuresAsErrors wraps fn so that a GDAL failure is always reported as an
// error, even when fn chooses to swallow it.
func failuresAsErrors(fn godal.ErrorHandler) godal.ErrorHandler {
	return func(ec godal.ErrorCategory, code int, msg string) error {
		err := fn(ec, code, msg)
		if err == nil && ec >= godal.CE_Failure {
			return errors.New(msg)
		}
		return err
	}
}
