// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/semrel/cmd/semrel/internal/clierr"
	"github.com/bartekus/semrel/internal/testutil/testrepo"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := bytes.NewBufferString("")
	cmd.SetOut(out)
	cmd.SetErr(bytes.NewBufferString(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIContract(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	for _, c := range []string{"completion", "help", "version"} {
		if !strings.Contains(out, c) {
			t.Errorf("expected top-level command %q in root help", c)
		}
	}
	for _, f := range []string{"--repo", "--format", "--verbose"} {
		if !strings.Contains(out, f) {
			t.Errorf("expected flag %q in root help", f)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "semrel version 0.0.0-dev")
}

func TestRunAgainstRepository(t *testing.T) {
	dir, gitRepo, hashes := testrepo.Init(t,
		"🎉 initial release",
		"✨ add X",
		"🐛 fix Y",
	)
	testrepo.AddTag(t, gitRepo, "v1.0.0", hashes[0])

	out, err := execute(t, "--repo", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "✨ add X")
	assert.Contains(t, out, "🐛 fix Y")
	assert.NotContains(t, out, "🎉 initial release")
	assert.Contains(t, out, "Action for semantic version ➡️ increment minor version")
}

func TestRunJSONFormat(t *testing.T) {
	dir, _, _ := testrepo.Init(t, "💥 break the API")

	out, err := execute(t, "--repo", dir, "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"action": "increment major version"`)
}

func TestRunUnknownFormat(t *testing.T) {
	dir, _, _ := testrepo.Init(t, "✨ add X")

	_, err := execute(t, "--repo", dir, "--format", "xml")
	assert.Error(t, err)
}

func TestRunOutsideRepositoryExitsWithCode(t *testing.T) {
	_, err := execute(t, "--repo", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, 2, clierr.ExitCodeOf(err))
}
