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

package apis

import "errors"

var (
	// ErrInvalidArgument is the root of all argument validation failures.
	// Package-level errors wrap it so callers can test with errors.Is.
	ErrInvalidArgument = errors.New("ofx: invalid argument")
	// ErrParse is the root of all text parsing failures.
	ErrParse = errors.New("ofx: parse error")
)
