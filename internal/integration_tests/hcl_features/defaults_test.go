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

func TestHCLFeatures_ManifestDefaultsApply(t *testing.T) {
	t.Parallel()

	// An empty arguments block leaves everything to the manifest defaults:
	// cfg 1..8 step 1, shift 1..3 step 0.5, 40 combinations.
	files := testutil.CoreManifests(t)
	files["grid/main.hcl"] = `
		loop "float_range_loop" "defaults" {
			arguments {}
		}
	`

	result := testutil.RunGrid(t, files, 1)

	require.NoError(t, result.Err)
	history := result.App.Executor().History("loop.float_range_loop.defaults")
	require.Len(t, history, 1)
	require.Equal(t, int64(40), attrInt(t, history[0], "total_combinations"))
	require.Equal(t, "cfg=1.00, shift=1.00", history[0].GetAttr("current_combination").AsString())
}

func TestHCLFeatures_ArgumentsOverrideDefaults(t *testing.T) {
	t.Parallel()

	files := testutil.CoreManifests(t)
	files["grid/main.hcl"] = `
		loop "parameters_range_loop" "narrow" {
			arguments {
				steps_start    = 30
				steps_end      = 30
				cfg_start      = 5
				cfg_end        = 5
				shift_start    = 2
				shift_end      = 2
			}
		}
	`

	result := testutil.RunGrid(t, files, 1)

	require.NoError(t, result.Err)
	history := result.App.Executor().History("loop.parameters_range_loop.narrow")
	require.Len(t, history, 1)
	require.Equal(t, int64(1), attrInt(t, history[0], "total_combinations"))
	require.Equal(t, "steps=30, cfg=5.00, shift=2.00", history[0].GetAttr("current_combination").AsString())
}

func TestHCLFeatures_GridAndManifestsMaySharePath(t *testing.T) {
	t.Parallel()

	// A grid file placed among the manifests still loads; discovery merges
	// every .hcl under both configured paths.
	files := testutil.CoreManifests(t)
	files["modules/extra_grid.hcl"] = `
		loop "scheduler_loop" "tucked_away" {
			arguments {}
		}
	`

	result := testutil.RunGrid(t, files, 1)

	require.NoError(t, result.Err)
	testutil.AssertLoopRan(t, result, "scheduler_loop", "tucked_away")
}

func TestHCLFeatures_ExpressionArguments(t *testing.T) {
	t.Parallel()

	// Argument values are full HCL expressions, not just literals.
	files := testutil.CoreManifests(t)
	files["grid/main.hcl"] = `
		loop "float_range_loop" "computed" {
			arguments {
				cfg_start = 1 + 1
				cfg_end   = 2 * 2
				cfg_step  = 1
				shift_start = 1
				shift_end   = 1
				shift_step  = 1
			}
		}
	`

	result := testutil.RunGrid(t, files, 1)

	require.NoError(t, result.Err)
	history := result.App.Executor().History("loop.float_range_loop.computed")
	require.Len(t, history, 1)
	require.Equal(t, int64(3), attrInt(t, history[0], "total_combinations"), "cfg 2..4 step 1")
}
