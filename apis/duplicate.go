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

import (
	"fmt"
	"strings"
)

// DuplicatePolicy decides what an Index does when Add is called with an
// object that is already indexed.
//
// # Values
//
//   - Ignore — keep the existing entry and its name; Add reports added=false.
//   - Rename — keep the existing entry; a non-empty new name replaces the old
//     one (last write wins). Add reports added=false.
//   - Reject — Add fails with a duplicate-object error.
//
// Identity is never affected: an object appears at most once regardless of
// the policy.
type DuplicatePolicy int

const (
	// Ignore makes re-registration an idempotent no-op.
	Ignore DuplicatePolicy = iota
	// Rename lets re-registration overwrite the display name.
	Rename
	// Reject makes re-registration an error.
	Reject
)

// String returns "ignore", "rename" or "reject". Unknown values render as
// "Unknown(<n>)" and never panic.
func (p DuplicatePolicy) String() string {
	switch p {
	case Ignore:
		return "ignore"
	case Rename:
		return "rename"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseDuplicatePolicy parses the case-insensitive tokens produced by String.
// Surrounding whitespace is trimmed. On failure it returns Ignore and an error.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Ignore, fmt.Errorf("ofx: empty duplicate policy: %w", ErrInvalidArgument)
	}

	switch strings.ToLower(trimmed) {
	case "ignore":
		return Ignore, nil
	case "rename":
		return Rename, nil
	case "reject":
		return Reject, nil
	default:
		return Ignore, fmt.Errorf("ofx: unknown duplicate policy %q: %w", s, ErrInvalidArgument)
	}
}

// MustParseDuplicatePolicy is like ParseDuplicatePolicy but panics on invalid input.
func MustParseDuplicatePolicy(s string) DuplicatePolicy {
	p, err := ParseDuplicatePolicy(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether p is one of the defined policies.
func (p DuplicatePolicy) Valid() bool {
	return p >= Ignore && p <= Reject
}

// MarshalText implements encoding.TextMarshaler.
// Unknown values are an error so that corrupted configs are not persisted.
func (p DuplicatePolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("ofx: cannot marshal duplicate policy %s: %w", p, ErrInvalidArgument)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *DuplicatePolicy) UnmarshalText(text []byte) error {
	v, err := ParseDuplicatePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
