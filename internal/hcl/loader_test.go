package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeHCL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load_ManifestAndGrid(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	writeHCL(t, tempDir, "manifest.hcl", `
		node "sampler_loop" {
			description = "Cycles through sampler names."
			category    = "Samplers/Loop"

			lifecycle {
				on_invoke = "OnInvokeSamplerLoop"
			}

			input "mode" {
				type    = string
				default = "sequential"
			}
			input "seed" {
				type    = number
				default = 0
			}

			output "sampler_name" {
				type = string
			}
			output "current_index" {
				type = number
			}
		}
	`)
	writeHCL(t, tempDir, "grid.hcl", `
		loop "sampler_loop" "smoke" {
			arguments {
				mode = "ping_pong"
			}
		}
	`)

	// --- Act ---
	model, converter, err := NewLoader().Load(context.Background(), tempDir)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, converter)

	def, ok := model.Nodes["sampler_loop"]
	require.True(t, ok, "manifest node type should be present in the model")
	require.Equal(t, "Samplers/Loop", def.Category)
	require.NotNil(t, def.Lifecycle)
	require.Equal(t, "OnInvokeSamplerLoop", def.Lifecycle.OnInvoke)

	modeInput := def.Inputs["mode"]
	require.NotNil(t, modeInput)
	require.True(t, modeInput.Type.Equals(cty.String))
	require.True(t, modeInput.Optional)
	require.NotNil(t, modeInput.Default)
	require.Equal(t, "sequential", modeInput.Default.AsString())

	require.True(t, def.Outputs["current_index"].Type.Equals(cty.Number))

	require.Len(t, model.Grid.Loops, 1)
	lp := model.Grid.Loops[0]
	require.Equal(t, "sampler_loop", lp.NodeType)
	require.Equal(t, "smoke", lp.Name)
	require.Contains(t, lp.Arguments, "mode")
}

func TestLoader_Load_DuplicateNodeTypeFails(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	manifest := `
		node "sampler_loop" {
			lifecycle { on_invoke = "OnInvokeSamplerLoop" }
		}
	`
	writeHCL(t, tempDir, "a.hcl", manifest)
	writeHCL(t, tempDir, "b.hcl", manifest)

	_, _, err := NewLoader().Load(context.Background(), tempDir)

	require.Error(t, err)
	require.Contains(t, err.Error(), "defined more than once")
}

func TestLoader_Load_SyntaxErrorFails(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeHCL(t, tempDir, "broken.hcl", `loop "x" "y" {`)

	_, _, err := NewLoader().Load(context.Background(), tempDir)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoader_Load_DefaultCoercedToDeclaredType(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeHCL(t, tempDir, "manifest.hcl", `
		node "float_range_loop" {
			lifecycle { on_invoke = "OnInvokeFloatRange" }
			input "cfg_start" {
				type    = number
				default = 1
			}
		}
	`)

	model, _, err := NewLoader().Load(context.Background(), tempDir)

	require.NoError(t, err)
	def := model.Nodes["float_range_loop"]
	require.NotNil(t, def.Inputs["cfg_start"].Default)
	require.True(t, def.Inputs["cfg_start"].Default.Type().Equals(cty.Number))
}

func TestLoader_Load_InvalidDefaultFails(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeHCL(t, tempDir, "manifest.hcl", `
		node "sampler_loop" {
			lifecycle { on_invoke = "OnInvokeSamplerLoop" }
			input "seed" {
				type    = number
				default = "not-a-number"
			}
		}
	`)

	_, _, err := NewLoader().Load(context.Background(), tempDir)

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid default")
}

func TestLoader_Load_MissingPathsAreSkipped(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeHCL(t, tempDir, "grid.hcl", `
		loop "sampler_loop" "a" {
			arguments {}
		}
	`)

	model, _, err := NewLoader().Load(context.Background(), tempDir, filepath.Join(tempDir, "does-not-exist"))

	require.NoError(t, err)
	require.Len(t, model.Grid.Loops, 1)
}
