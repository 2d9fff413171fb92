package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// CoreManifests returns the repository's real node manifests, keyed by
// harness-relative paths, so integration tests exercise the same manifests
// the shipped binary loads.
func CoreManifests(t *testing.T) map[string]string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "failed to locate caller for manifest discovery")
	modulesDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "modules")

	files := make(map[string]string)
	err := filepath.Walk(modulesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".hcl" {
			return nil
		}
		rel, err := filepath.Rel(filepath.Dir(modulesDir), path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	require.NoError(t, err, "failed to read core manifests")
	require.NotEmpty(t, files, "no manifests found under %s", modulesDir)
	return files
}
