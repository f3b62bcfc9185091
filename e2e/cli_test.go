//go:build e2e && unix

package main

import (
	"net/http"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadlessSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, requests, err := tf.CreateTestWorkspace(http.StatusOK, listing)
	require.NoError(t, err)

	args := append([]string{"search", "two"}, tf.fixtureArgs()...)
	cmd := exec.Command(binPath, args...)
	cmd.Env = append(cmd.Environ(),
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.Contains(t, string(out), "Two Buttons")
	require.Contains(t, string(out), "About 1 results")
	require.EqualValues(t, 1, requests.Load())
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err)
	require.Contains(t, string(out), "memegrip")
	require.Contains(t, string(out), "search")
}
