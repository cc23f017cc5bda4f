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

// Package commands implements the aggtree subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajwerner/aggtree/catalog"
	"github.com/ajwerner/aggtree/internal/config"
	"github.com/ajwerner/aggtree/internal/ingest"
)

const (
	flagCategory = "category"
	flagKey      = "key"
	flagTarget   = "target"
)

// app carries the state shared by every subcommand once the root command's
// pre-run has loaded the configuration.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the aggtree root command with all subcommands
// except version attached.
func NewRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "aggtree",
		Short: "Index CSV records by key and query their running averages",
		Long: `aggtree loads (category, key, value) records from a CSV file into one
red-black tree per category and answers queries against them.

Commands:
  lookup    exact lookup of a key
  nearest   entry whose mean is closest to a target
  list      all entries of a category in key order
  stats     entries and tree height per category`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default .aggtree.yaml in . or $HOME)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(
		newLookupCommand(a),
		newNearestCommand(a),
		newListCommand(a),
		newStatsCommand(a),
	)
	return cmd
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	level := cfg.Log.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		h = slog.NewJSONHandler(logOut, opts)
	} else {
		h = slog.NewTextHandler(logOut, opts)
	}
	a.cfg = cfg
	a.logger = slog.New(h)
	return nil
}

// load builds a catalog from the CSV file at path.
func (a *app) load(ctx context.Context, path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	a.logger.DebugContext(ctx, "loading input", "path", path)
	cat := catalog.New()
	_, err = ingest.Load(ctx, f, cat, ingest.Options{
		Columns: a.cfg.CSV.Columns(),
		Comma:   a.cfg.CSV.CommaRune(),
		Strict:  a.cfg.CSV.Strict,
		Logger:  a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cat, nil
}
