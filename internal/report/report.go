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

// Package report renders lookup results and catalog summaries as tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ajwerner/aggtree"
	"github.com/ajwerner/aggtree/catalog"
)

const meanPrecision = 2

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Footer = text.FormatDefault
	return tbl
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', meanPrecision, 64)
}

// Entries writes one row per entry of category.
func Entries(w io.Writer, category string, entries []aggtree.Entry) error {
	tbl := newTable()
	tbl.SetTitle(category)
	tbl.AppendHeader(table.Row{"Key", "Mean", "Count", "Sum"})
	for _, e := range entries {
		tbl.AppendRow(table.Row{e.Key, formatFloat(e.Mean), humanize.Comma(int64(e.Count)), formatFloat(e.Sum)})
	}
	if len(entries) > 1 {
		tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %s entries", humanize.Comma(int64(len(entries))))})
	}
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

// Catalog writes the number of entries and the tree height of every
// category.
func Catalog(w io.Writer, cat *catalog.Catalog) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Category", "Entries", "Height"})
	var total int
	for _, name := range cat.Categories() {
		t, _ := cat.Tree(name)
		total += t.Len()
		tbl.AppendRow(table.Row{name, humanize.Comma(int64(t.Len())), t.Height()})
	}
	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d categories", cat.Len()),
		humanize.Comma(int64(total)),
	})
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
