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

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/aggtree/internal/config"
	"github.com/ajwerner/aggtree/internal/ingest"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aggtree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ingest.Columns{Category: "genre", Key: "title", Value: "rating"}, cfg.CSV.Columns())
	assert.Equal(t, ',', cfg.CSV.CommaRune())
	assert.False(t, cfg.CSV.Strict)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
csv:
  category_column: category
  key_column: name
  value_column: score
  comma: ";"
  strict: true
log:
  level: debug
  format: json
`)
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ingest.Columns{Category: "category", Key: "name", Value: "score"}, cfg.CSV.Columns())
	assert.Equal(t, ';', cfg.CSV.CommaRune())
	assert.True(t, cfg.CSV.Strict)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("AGGTREE_CSV_KEY_COLUMN", "film")
	t.Setenv("AGGTREE_LOG_LEVEL", "warn")

	path := writeConfig(t, "csv:\n  key_column: name\n")
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "film", cfg.CSV.KeyColumn)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(writeConfig(t, "csv: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	_, err = config.LoadConfig(writeConfig(t, "log:\n  level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalidLevel)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config {
		return config.Config{
			CSV: config.CSVConfig{
				CategoryColumn: "genre",
				KeyColumn:      "title",
				ValueColumn:    "rating",
				Comma:          ",",
			},
			Log: config.LogConfig{Level: "info", Format: "text"},
		}
	}
	for _, tc := range []struct {
		name   string
		mutate func(c *config.Config)
		exp    error
	}{
		{"valid", func(*config.Config) {}, nil},
		{"tab separator", func(c *config.Config) { c.CSV.Comma = "\t" }, nil},
		{"empty key", func(c *config.Config) { c.CSV.KeyColumn = " " }, config.ErrEmptyColumn},
		{"duplicate", func(c *config.Config) { c.CSV.ValueColumn = "Title" }, config.ErrDuplicateField},
		{"long separator", func(c *config.Config) { c.CSV.Comma = ",," }, config.ErrInvalidComma},
		{"empty separator", func(c *config.Config) { c.CSV.Comma = "" }, config.ErrInvalidComma},
		{"quote separator", func(c *config.Config) { c.CSV.Comma = `"` }, config.ErrInvalidComma},
		{"level", func(c *config.Config) { c.Log.Level = "" }, config.ErrInvalidLevel},
		{"format", func(c *config.Config) { c.Log.Format = "xml" }, config.ErrInvalidFormat},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := c.Validate()
			if tc.exp == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.exp)
		})
	}
}
