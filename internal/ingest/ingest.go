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

// Package ingest loads (category, key, value) records from CSV into a
// catalog.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ajwerner/aggtree/catalog"
)

// Sentinel errors.
var (
	ErrEmptyInput    = errors.New("input has no header row")
	ErrMissingColumn = errors.New("missing column")
	ErrShortRow      = errors.New("row has too few fields")
	ErrEmptyField    = errors.New("empty field")
	ErrBadValue      = errors.New("value is not a finite number")
)

// RowError reports a malformed record.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *RowError) Unwrap() error { return e.Err }

// Columns names the header columns holding each field.
type Columns struct {
	Category string
	Key      string
	Value    string
}

// Options configures Load.
type Options struct {
	Columns Columns
	// Comma is the field separator. Zero means ','.
	Comma rune
	// Strict makes the first malformed row abort the load. Otherwise
	// malformed rows are logged and skipped.
	Strict bool
	Logger *slog.Logger
}

// Stats summarizes a load.
type Stats struct {
	Rows    int
	Loaded  int
	Skipped int
}

// Record is a parsed row.
type Record struct {
	Category string
	Key      string
	Value    float64
}

type layout struct {
	category, key, value int
	width                int
}

func (c Columns) resolve(header []string) (layout, error) {
	find := func(name string) (int, error) {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	var (
		l   layout
		err error
	)
	if l.category, err = find(c.Category); err != nil {
		return l, err
	}
	if l.key, err = find(c.Key); err != nil {
		return l, err
	}
	if l.value, err = find(c.Value); err != nil {
		return l, err
	}
	l.width = max(l.category, l.key, l.value) + 1
	return l, nil
}

func (l layout) parse(rec []string) (Record, error) {
	if len(rec) < l.width {
		return Record{}, fmt.Errorf("%w: want %d, got %d", ErrShortRow, l.width, len(rec))
	}
	r := Record{
		Category: strings.TrimSpace(rec[l.category]),
		Key:      strings.TrimSpace(rec[l.key]),
	}
	if r.Category == "" {
		return Record{}, fmt.Errorf("%w: category", ErrEmptyField)
	}
	if r.Key == "" {
		return Record{}, fmt.Errorf("%w: key", ErrEmptyField)
	}
	raw := strings.TrimSpace(rec[l.value])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Record{}, fmt.Errorf("%w: %q", ErrBadValue, raw)
	}
	r.Value = v
	return r, nil
}

// Load reads a header row followed by records from r and upserts each
// record into cat. It returns the stats gathered so far alongside any error.
func Load(ctx context.Context, r io.Reader, cat *catalog.Catalog, opts Options) (Stats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Stats{}, ErrEmptyInput
	}
	if err != nil {
		return Stats{}, fmt.Errorf("read header: %w", err)
	}
	l, err := opts.Columns.resolve(header)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var row Record
		var rowErr *RowError
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return stats, fmt.Errorf("read record: %w", err)
			}
			rowErr = &RowError{Line: perr.Line, Err: perr.Err}
		} else {
			line, _ := cr.FieldPos(0)
			if row, err = l.parse(rec); err != nil {
				rowErr = &RowError{Line: line, Err: err}
			}
		}
		stats.Rows++
		if rowErr != nil {
			if opts.Strict {
				return stats, rowErr
			}
			stats.Skipped++
			logger.WarnContext(ctx, "skipping malformed row", "line", rowErr.Line, "error", rowErr.Err)
			continue
		}
		cat.Upsert(row.Category, row.Key, row.Value)
		stats.Loaded++
	}
	logger.InfoContext(ctx, "ingest: loaded records",
		"rows", stats.Rows,
		"loaded", stats.Loaded,
		"skipped", stats.Skipped,
		"categories", cat.Len(),
	)
	return stats, nil
}
