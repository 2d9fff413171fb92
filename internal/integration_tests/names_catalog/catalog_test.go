package integration_tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/loopgridgo/internal/app"
	"github.com/vk/loopgridgo/internal/testutil"
)

const hostFixture = `{
	"KSampler": {
		"input": {
			"required": {
				"sampler_name": [["alpha", "beta"]],
				"scheduler": [["gamma"]]
			}
		}
	}
}`

func TestNamesCatalog_LiveFetchDrivesTheSweep(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(hostFixture))
	}))
	defer srv.Close()

	files := testutil.CoreManifests(t)
	files["grid/main.hcl"] = `
		loop "sampler_loop" "live" {
			arguments {}
		}
	`

	// --- Act ---
	result := testutil.RunGridWithConfig(t, files, &app.Config{Passes: 3, NamesURL: srv.URL})

	// --- Assert ---
	require.NoError(t, result.Err)
	history := result.App.Executor().History("loop.sampler_loop.live")
	require.Len(t, history, 3)
	require.Equal(t, "alpha", history[0].GetAttr("sampler").AsString())
	require.Equal(t, "beta", history[1].GetAttr("sampler").AsString())
	require.Equal(t, "alpha", history[2].GetAttr("sampler").AsString(), "two live samplers wrap after two passes")
}

func TestNamesCatalog_UnreachableHostFallsBackToBuiltin(t *testing.T) {
	t.Parallel()

	files := testutil.CoreManifests(t)
	files["grid/main.hcl"] = `
		loop "scheduler_loop" "offline" {
			arguments {}
		}
	`

	// A closed server guarantees a connection error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	result := testutil.RunGridWithConfig(t, files, &app.Config{Passes: 1, NamesURL: url})

	require.NoError(t, result.Err, "a dead host must not fail the run")
	require.Contains(t, result.LogOutput, "Failed to fetch name catalog")

	history := result.App.Executor().History("loop.scheduler_loop.offline")
	require.Len(t, history, 1)
	require.Equal(t, "normal", history[0].GetAttr("scheduler").AsString(), "builtin lists take over")
}
