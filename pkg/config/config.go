// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the description of a seating event from a YAML or
// JSON file, with SEATER_ environment variables layered on top.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"laptudirm.com/x/seater/pkg/seating"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// EnvPrefix is the prefix of the environment variables read by Load.
// SEATER_TABLES sets tables, SEATER_A__B would set a.b.
const EnvPrefix = "SEATER_"

// Config describes a seating event.
type Config struct {
	Tables   int    `json:"tables"`
	Capacity int    `json:"capacity"`
	Rounds   int    `json:"rounds"`
	Policy   string `json:"policy"`
	Overflow string `json:"overflow"`

	// Seed of the shuffles, nil seeds from the clock.
	Seed *int64 `json:"seed"`

	// The roster, given inline and as files to import, without anyone
	// who is excluded.
	Names   []string `json:"names"`
	Files   []string `json:"files"`
	Exclude []string `json:"exclude"`

	// Where and how the report is written, stdout if Output is empty.
	Output string `json:"output"`
	Format string `json:"format"`
}

// Load reads the config file at path, if path isn't empty, and then the
// environment. Defaults are filled in for anything left unset.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("load config: unsupported format %s", ext)
		}

		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var config Config
	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	config.SetDefaults()
	return &config, nil
}

// SetDefaults fills in the policy, overflow and format if they are empty.
func (config *Config) SetDefaults() {
	if config.Policy == "" {
		config.Policy = seating.PolicyGreedy
	}

	if config.Overflow == "" {
		config.Overflow = seating.OverflowSpread
	}

	if config.Format == "" {
		config.Format = FormatText
	}
}

// Clamp raises negative table, capacity and round counts to zero and
// returns the names of the fields it changed.
func (config *Config) Clamp() []string {
	var clamped []string

	for _, field := range []struct {
		name  string
		value *int
	}{
		{"tables", &config.Tables},
		{"capacity", &config.Capacity},
		{"rounds", &config.Rounds},
	} {
		if *field.value < 0 {
			*field.value = 0
			clamped = append(clamped, field.name)
		}
	}

	return clamped
}

// Validate checks the fields which the scheduler doesn't.
func (config *Config) Validate() error {
	switch config.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("invalid format %s", config.Format)
	}

	return nil
}

// Seating returns the scheduler's part of the config.
func (config *Config) Seating() seating.Config {
	return seating.Config{
		Tables:   config.Tables,
		Capacity: config.Capacity,
		Rounds:   config.Rounds,
		Policy:   config.Policy,
		Overflow: config.Overflow,
	}
}
