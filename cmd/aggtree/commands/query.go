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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajwerner/aggtree"
	"github.com/ajwerner/aggtree/internal/report"
)

func newLookupCommand(a *app) *cobra.Command {
	var category, key string
	cmd := &cobra.Command{
		Use:   "lookup <csv-file>",
		Short: "Look up the aggregate of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			e, found := cat.FindExact(category, key)
			if !found {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no entry %q in category %q\n", key, category)
				return err
			}
			return report.Entries(cmd.OutOrStdout(), category, []aggtree.Entry{e})
		},
	}
	cmd.Flags().StringVarP(&category, flagCategory, "c", "", "category to search")
	cmd.Flags().StringVarP(&key, flagKey, "k", "", "key to look up")
	_ = cmd.MarkFlagRequired(flagCategory)
	_ = cmd.MarkFlagRequired(flagKey)
	return cmd
}

func newNearestCommand(a *app) *cobra.Command {
	var (
		category string
		target   float64
	)
	cmd := &cobra.Command{
		Use:   "nearest <csv-file>",
		Short: "Find the entry whose mean is closest to a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			e, found := cat.FindNearest(category, target)
			if !found {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no entries in category %q\n", category)
				return err
			}
			return report.Entries(cmd.OutOrStdout(), category, []aggtree.Entry{e})
		},
	}
	cmd.Flags().StringVarP(&category, flagCategory, "c", "", "category to search")
	cmd.Flags().Float64VarP(&target, flagTarget, "t", 0, "target mean")
	_ = cmd.MarkFlagRequired(flagCategory)
	_ = cmd.MarkFlagRequired(flagTarget)
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list <csv-file>",
		Short: "List the entries of a category in key order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			t, ok := cat.Tree(category)
			if !ok {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no entries in category %q\n", category)
				return err
			}
			entries := make([]aggtree.Entry, 0, t.Len())
			it := t.MakeIter()
			for it.First(); it.Valid(); it.Next() {
				entries = append(entries, it.Cur())
			}
			return report.Entries(cmd.OutOrStdout(), category, entries)
		},
	}
	cmd.Flags().StringVarP(&category, flagCategory, "c", "", "category to list")
	_ = cmd.MarkFlagRequired(flagCategory)
	return cmd
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <csv-file>",
		Short: "Show the number of entries and tree height per category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return report.Catalog(cmd.OutOrStdout(), cat)
		},
	}
}
