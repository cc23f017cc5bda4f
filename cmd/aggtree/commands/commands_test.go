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

package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/aggtree/cmd/aggtree/commands"
)

const ratings = `title,genre,rating
Heat,drama,8
Alien,horror,9
Heat,drama,6
Ran,drama,9
The Thing,horror,oops
`

func writeInput(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "ratings.csv")
	require.NoError(t, os.WriteFile(path, []byte(ratings), 0o600))
	return dir, path
}

// run executes the root command with an empty config file so that the
// environment of the test runner does not leak in.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "aggtree.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: warn\n"), 0o600))

	var out, errOut bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestLookup(t *testing.T) {
	t.Parallel()
	_, path := writeInput(t)

	out, logs, err := run(t, "lookup", path, "--category", "drama", "--key", "Heat")
	require.NoError(t, err)
	assert.Contains(t, out, "Heat")
	assert.Contains(t, out, "7.00")
	assert.Contains(t, logs, "skipping malformed row")

	out, _, err = run(t, "lookup", path, "-c", "drama", "-k", "Alien")
	require.NoError(t, err)
	assert.Contains(t, out, `no entry "Alien" in category "drama"`)
}

func TestNearest(t *testing.T) {
	t.Parallel()
	_, path := writeInput(t)

	out, _, err := run(t, "nearest", path, "--category", "drama", "--target", "8.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Ran")
	assert.NotContains(t, out, "Heat")

	out, _, err = run(t, "nearest", path, "-c", "western", "-t", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `no entries in category "western"`)
}

func TestListAndStats(t *testing.T) {
	t.Parallel()
	_, path := writeInput(t)

	out, _, err := run(t, "list", path, "--category", "drama")
	require.NoError(t, err)
	heat := bytes.Index([]byte(out), []byte("Heat"))
	ran := bytes.Index([]byte(out), []byte("Ran"))
	require.True(t, heat >= 0 && ran >= 0, out)
	assert.Less(t, heat, ran)

	out, _, err = run(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "drama")
	assert.Contains(t, out, "horror")
	assert.Contains(t, out, "2 categories")
}

func TestErrors(t *testing.T) {
	t.Parallel()
	dir, _ := writeInput(t)

	_, _, err := run(t, "stats", filepath.Join(dir, "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "lookup", filepath.Join(dir, "ratings.csv"), "--category", "drama")
	require.Error(t, err)

	_, _, err = run(t, "stats")
	require.Error(t, err)
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	t.Parallel()
	_, path := writeInput(t)
	cfg := filepath.Join(t.TempDir(), "aggtree.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: loud\n"), 0o600))

	execute := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := commands.NewRootCommand()
		cmd.AddCommand(commands.NewVersionCommand("1.2.3"))
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--config", cfg}, args...))
		err := cmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	_, err := execute("stats", path)
	require.Error(t, err)

	out, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "aggtree 1.2.3\n", out)
}
