// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package config provides configuration loading and validation for the
// aggtree command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ajwerner/aggtree/internal/ingest"
)

// Sentinel validation errors.
var (
	ErrEmptyColumn    = errors.New("column name must not be empty")
	ErrInvalidComma   = errors.New("separator must be a single character")
	ErrInvalidLevel   = errors.New("unknown log level")
	ErrInvalidFormat  = errors.New("unknown log format")
	ErrDuplicateField = errors.New("columns must be distinct")
)

// Default configuration values.
const (
	DefaultCategoryColumn = "genre"
	DefaultKeyColumn      = "title"
	DefaultValueColumn    = "rating"
	DefaultComma          = ","
	DefaultStrict         = false
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config holds all configuration for the aggtree command.
type Config struct {
	CSV CSVConfig `mapstructure:"csv"`
	Log LogConfig `mapstructure:"log"`
}

// CSVConfig describes the layout of input files.
type CSVConfig struct {
	CategoryColumn string `mapstructure:"category_column"`
	KeyColumn      string `mapstructure:"key_column"`
	ValueColumn    string `mapstructure:"value_column"`
	Comma          string `mapstructure:"comma"`
	Strict         bool   `mapstructure:"strict"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"category_column": c.CSV.CategoryColumn,
		"key_column":      c.CSV.KeyColumn,
		"value_column":    c.CSV.ValueColumn,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("csv.%s: %w", name, ErrEmptyColumn)
		}
	}
	cols := []string{c.CSV.CategoryColumn, c.CSV.KeyColumn, c.CSV.ValueColumn}
	for i := range cols {
		for j := i + 1; j < len(cols); j++ {
			if strings.EqualFold(cols[i], cols[j]) {
				return fmt.Errorf("csv: %q: %w", cols[i], ErrDuplicateField)
			}
		}
	}
	if r, size := utf8.DecodeRuneInString(c.CSV.Comma); size == 0 || size != len(c.CSV.Comma) ||
		r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return fmt.Errorf("csv.comma %q: %w", c.CSV.Comma, ErrInvalidComma)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidFormat)
	}
	return nil
}

// Columns returns the ingest column mapping.
func (c CSVConfig) Columns() ingest.Columns {
	return ingest.Columns{
		Category: c.CategoryColumn,
		Key:      c.KeyColumn,
		Value:    c.ValueColumn,
	}
}

// CommaRune returns the field separator. It assumes a validated config.
func (c CSVConfig) CommaRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Comma)
	return r
}

// SlogLevel returns the configured level. It assumes a validated config.
func (c LogConfig) SlogLevel() slog.Level {
	l, _ := parseLevel(c.Level)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", s, ErrInvalidLevel)
	}
	return l, nil
}
