package commands

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/targetcheck/internal/config"
	tcerrors "git.home.luguber.info/inful/targetcheck/internal/errors"
)

// writeFakeTool installs an executable shell script standing in for cmake.
// Tests relying on it require a Unix-like environment.
func writeFakeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts require a Unix shell")
	}

	path := filepath.Join(t.TempDir(), "cmake")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

// newProject creates a project root holding the conventional build directory.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "build"), 0o755))
	return root
}

func testConfig(binary string) *config.Config {
	cfg := config.Default()
	cfg.CMake.Binary = binary
	return cfg
}

func TestRunCheckSucceedsOnCleanListing(t *testing.T) {
	tool := writeFakeTool(t, `echo "all...Build target all"
echo "clean...Clean artifacts"
exit 0
`)

	err := RunCheck(context.Background(), testConfig(tool), newProject(t), 5*time.Second, false)
	require.NoError(t, err)
}

func TestRunCheckMissingBuildDirIsFatal(t *testing.T) {
	tool := writeFakeTool(t, `exit 0
`)

	err := RunCheck(context.Background(), testConfig(tool), t.TempDir(), 5*time.Second, false)
	require.Error(t, err)
	require.True(t, tcerrors.IsCategory(err, tcerrors.CategoryFileSystem))
}

func TestRunCheckToolFailureIsNonFatalByDefault(t *testing.T) {
	tool := writeFakeTool(t, `echo "Error: could not load cache" >&2
exit 1
`)

	err := RunCheck(context.Background(), testConfig(tool), newProject(t), 5*time.Second, false)
	require.NoError(t, err)
}

func TestRunCheckStrictPromotesToolFailure(t *testing.T) {
	tool := writeFakeTool(t, `exit 3
`)

	err := RunCheck(context.Background(), testConfig(tool), newProject(t), 5*time.Second, true)
	require.Error(t, err)
	require.True(t, tcerrors.IsCategory(err, tcerrors.CategoryTool))
}

func TestRunCheckTimeoutStaysWarningEvenUnderStrict(t *testing.T) {
	tool := writeFakeTool(t, `case "$1" in
--version) echo "cmake version 3.28.1"; exit 0;;
esac
exec sleep 5
`)

	start := time.Now()
	err := RunCheck(context.Background(), testConfig(tool), newProject(t), 100*time.Millisecond, true)
	require.NoError(t, err, "timeout is a reported conclusion, not a failure")
	require.Less(t, time.Since(start), 3*time.Second)
}

func TestRunCheckMissingBinaryIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-cmake")

	err := RunCheck(context.Background(), testConfig(missing), newProject(t), time.Second, false)
	require.Error(t, err)
	require.True(t, tcerrors.IsCategory(err, tcerrors.CategoryTool))
}
