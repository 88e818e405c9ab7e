/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package convert

import (
	"fmt"

	"dirpx.dev/ofx/apis"
)

var (
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = apis.ErrParse
	// ErrSourceNotString is returned when the source value is not a string.
	ErrSourceNotString = fmt.Errorf("ofx(convert): source is not a string: %w", apis.ErrInvalidArgument)
	// ErrNilConverter is returned when registering a nil converter.
	ErrNilConverter = fmt.Errorf("ofx(convert): nil converter: %w", apis.ErrInvalidArgument)
	// ErrNoConverter is returned when no registered converter accepts a conversion.
	ErrNoConverter = fmt.Errorf("ofx(convert): no converter found: %w", apis.ErrInvalidArgument)
)

// ParseError records a failed numeric parse.
type ParseError struct {
	// Input is the text that failed to parse.
	Input string
	// Kind is the destination kind.
	Kind Kind
	// Err is the underlying *strconv.NumError.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("ofx(convert): cannot parse %q as %s: %v", e.Input, e.Kind, e.Err)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
