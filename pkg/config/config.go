// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/walteh/markfix/pkg/mark"
	"github.com/walteh/markfix/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = ".markfix.yaml"

// 📚 Config represents the complete configuration
type Config struct {
	Marker          string   `json:"marker,omitempty" yaml:"marker,omitempty" toml:"marker,omitempty" hcl:"marker,optional" validate:"required"`
	Extensions      []string `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty" hcl:"extensions,optional" validate:"required,min=1,dive,startswith=.,min=2"`
	ExcludeDirs     []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty" toml:"exclude_dirs,omitempty" hcl:"exclude_dirs,optional" validate:"dive,required,excludes=/"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty" yaml:"exclude_patterns,omitempty" toml:"exclude_patterns,omitempty" hcl:"exclude_patterns,optional" validate:"dive,required,glob"`
	IncludeHidden   bool     `json:"include_hidden,omitempty" yaml:"include_hidden,omitempty" toml:"include_hidden,omitempty" hcl:"include_hidden,optional"`
	FailFast        bool     `json:"fail_fast,omitempty" yaml:"fail_fast,omitempty" toml:"fail_fast,omitempty" hcl:"fail_fast,optional"`
	Jobs            int      `json:"jobs,omitempty" yaml:"jobs,omitempty" toml:"jobs,omitempty" hcl:"jobs,optional" validate:"gte=1,lte=256"`

	location string
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Marker:      mark.DefaultMarker,
		Extensions:  append([]string(nil), walk.DefaultExtensions...),
		ExcludeDirs: append([]string(nil), walk.DefaultExcludeDirs...),
		Jobs:        1,
	}
}

// 🎯 Load loads the configuration from a file, on top of the defaults
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg := Default()
	if err := p.Parse(ctx, data, cfg); err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate fills unset values with defaults and checks the result
func (cfg *Config) Validate() error {
	// Set defaults
	if cfg.Marker == "" {
		cfg.Marker = mark.DefaultMarker
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), walk.DefaultExtensions...)
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return errors.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return errors.Errorf("validating: %w", err)
	}

	return nil
}

// WalkOptions converts the config into traversal options
func (cfg *Config) WalkOptions() walk.Options {
	return walk.Options{
		Extensions:      cfg.Extensions,
		ExcludeDirs:     cfg.ExcludeDirs,
		ExcludePatterns: cfg.ExcludePatterns,
		IncludeHidden:   cfg.IncludeHidden,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("marker=%q extensions=%v exclude_dirs=%v exclude_patterns=%v include_hidden=%t fail_fast=%t jobs=%d",
		cfg.Marker, cfg.Extensions, cfg.ExcludeDirs, cfg.ExcludePatterns, cfg.IncludeHidden, cfg.FailFast, cfg.Jobs)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their config file names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "glob":
		return fmt.Sprintf("%s: %q is not a valid glob pattern", field, fe.Value())
	case "startswith":
		return fmt.Sprintf("%s: %q must start with %q", field, fe.Value(), fe.Param())
	case "excludes":
		return fmt.Sprintf("%s: %q must not contain %q", field, fe.Value(), fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s must satisfy %s", field, fe.Tag())
	}
}
