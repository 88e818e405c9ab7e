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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dirpx.dev/ofx/apis"
)

// Format is the on-disk encoding of a configuration file.
type Format int

const (
	// FormatYAML is selected by the .yaml and .yml extensions.
	FormatYAML Format = iota + 1
	// FormatTOML is selected by the .toml extension.
	FormatTOML
)

// String returns "yaml", "toml" or "unknown".
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned when a file extension maps to no known Format.
var ErrUnsupportedFormat = fmt.Errorf("ofx(config): unsupported config format: %w", apis.ErrInvalidArgument)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the file at path and overlays it onto DefaultConfig.
// Keys missing from the file keep their default values.
func Load(path string, opts ...Option) (apis.Config, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return apis.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("ofx(config): read %s: %w", path, err)
	}
	return Parse(data, format, opts...)
}

// Parse decodes data in the given format and overlays it onto DefaultConfig.
// opts are applied after decoding.
func Parse(data []byte, format Format, opts ...Option) (apis.Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return apis.Config{}, fmt.Errorf("ofx(config): yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return apis.Config{}, fmt.Errorf("ofx(config): toml: %w", err)
		}
	default:
		return apis.Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return Sanitize(cfg), nil
}

// IsUnsupportedFormat reports whether err stems from an unknown file format.
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}
