package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/loopgridgo/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

func attrInt(t *testing.T, val cty.Value, name string) int64 {
	t.Helper()
	i, _ := val.GetAttr(name).AsBigFloat().Int64()
	return i
}

func attrFloat(t *testing.T, val cty.Value, name string) float64 {
	t.Helper()
	f, _ := val.GetAttr(name).AsBigFloat().Float64()
	return f
}

// A sweep across multiple passes must advance each instance one combination
// per pass.
func TestCoreExecution_SequentialSweepAcrossPasses(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := testutil.CoreManifests(t)
	files["grid/main.hcl"] = `
		loop "float_range_loop" "sweep" {
			arguments {
				cfg_start   = 1
				cfg_end     = 2
				cfg_step    = 1
				shift_start = 3
				shift_end   = 4
				shift_step  = 1
			}
		}
	`

	// --- Act ---
	result := testutil.RunGrid(t, files, 5)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertLoopRan(t, result, "float_range_loop", "sweep")

	history := result.App.Executor().History("loop.float_range_loop.sweep")
	require.Len(t, history, 5)

	var indices []int64
	for _, out := range history {
		indices = append(indices, attrInt(t, out, "current_index"))
	}
	require.Equal(t, []int64{0, 1, 2, 3, 0}, indices, "a 2x2 space wraps after four passes")

	require.Equal(t, 1.0, attrFloat(t, history[0], "cfg"))
	require.Equal(t, 3.0, attrFloat(t, history[0], "shift"))
	require.Equal(t, 4.0, attrFloat(t, history[1], "shift"), "shift is the fast axis")
	require.Equal(t, 2.0, attrFloat(t, history[2], "cfg"))
}

func TestCoreExecution_InstancesDoNotShareState(t *testing.T) {
	t.Parallel()

	files := testutil.CoreManifests(t)
	files["grid/main.hcl"] = `
		loop "scheduler_loop" "a" {
			arguments {}
		}
		loop "scheduler_loop" "b" {
			arguments {}
		}
	`

	result := testutil.RunGrid(t, files, 3)

	require.NoError(t, result.Err)
	for _, name := range []string{"a", "b"} {
		history := result.App.Executor().History("loop.scheduler_loop." + name)
		require.Len(t, history, 3)
		require.Equal(t, int64(0), attrInt(t, history[0], "current_index"),
			"instance %q must start its own walk at 0", name)
		require.Equal(t, int64(1), attrInt(t, history[1], "current_index"))
		require.Equal(t, int64(2), attrInt(t, history[2], "current_index"))
	}
}

// All six shipped node types load, validate and produce an output.
func TestCoreExecution_AllNodeTypesInvoke(t *testing.T) {
	t.Parallel()

	files := testutil.CoreManifests(t)
	files["grid/main.hcl"] = `
		loop "float_range_loop" "a" {
			arguments {}
		}
		loop "parameters_range_loop" "b" {
			arguments {}
		}
		loop "sampler_loop" "c" {
			arguments {}
		}
		loop "scheduler_loop" "d" {
			arguments {}
		}
		loop "sampler_scheduler_loop" "e" {
			arguments {}
		}
		loop "all_parameters_loop" "f" {
			arguments {}
		}
	`

	result := testutil.RunGrid(t, files, 1)

	require.NoError(t, result.Err)
	for nodeType, name := range map[string]string{
		"float_range_loop":       "a",
		"parameters_range_loop":  "b",
		"sampler_loop":           "c",
		"scheduler_loop":         "d",
		"sampler_scheduler_loop": "e",
		"all_parameters_loop":    "f",
	} {
		testutil.AssertLoopRan(t, result, nodeType, name)
		history := result.App.Executor().History("loop." + nodeType + "." + name)
		require.Len(t, history, 1, "node type %q should have one recorded output", nodeType)
		require.Equal(t, int64(0), attrInt(t, history[0], "current_index"))
	}
}

func TestCoreExecution_EmptyGridIsNotAnError(t *testing.T) {
	t.Parallel()

	files := testutil.CoreManifests(t)

	result := testutil.RunGrid(t, files, 1)

	require.NoError(t, result.Err)
	require.Contains(t, result.LogOutput, "no loop instances")
}
