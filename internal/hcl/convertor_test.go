package hcl

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/require"
	"github.com/vk/loopgridgo/internal/config"
	"github.com/zclconf/go-cty/cty"
)

type decodeInput struct {
	Mode  string   `lgo:"mode"`
	Seed  int64    `lgo:"seed"`
	Cfg   float64  `lgo:"cfg_start"`
	Reset bool     `lgo:"reset"`
	Tags  []string `lgo:"tags"`
}

func exprFor(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), "failed to parse %q: %s", src, diags.Error())
	return expr
}

func inputDefs() map[string]*config.InputDefinition {
	strDefault := cty.StringVal("sequential")
	seedDefault := cty.NumberIntVal(0)
	return map[string]*config.InputDefinition{
		"mode":      {Name: "mode", Type: cty.String, Default: &strDefault, Optional: true},
		"seed":      {Name: "seed", Type: cty.Number, Default: &seedDefault, Optional: true},
		"cfg_start": {Name: "cfg_start", Type: cty.Number},
		"reset":     {Name: "reset", Type: cty.Bool, Optional: true},
		"tags":      {Name: "tags", Type: cty.List(cty.String), Optional: true},
	}
}

func TestDecodeBody_ProvidedArguments(t *testing.T) {
	t.Parallel()

	args := map[string]hcl.Expression{
		"mode":      exprFor(t, `"random"`),
		"seed":      exprFor(t, `42`),
		"cfg_start": exprFor(t, `1.5`),
		"reset":     exprFor(t, `true`),
		"tags":      exprFor(t, `["a", "b"]`),
	}

	var input decodeInput
	err := NewConverter().DecodeBody(context.Background(), &input, args, inputDefs(), nil)

	require.NoError(t, err)
	require.Equal(t, "random", input.Mode)
	require.Equal(t, int64(42), input.Seed)
	require.Equal(t, 1.5, input.Cfg)
	require.True(t, input.Reset)
	require.Equal(t, []string{"a", "b"}, input.Tags)
}

func TestDecodeBody_DefaultsApplied(t *testing.T) {
	t.Parallel()

	args := map[string]hcl.Expression{
		"cfg_start": exprFor(t, `2`),
	}

	var input decodeInput
	err := NewConverter().DecodeBody(context.Background(), &input, args, inputDefs(), nil)

	require.NoError(t, err)
	require.Equal(t, "sequential", input.Mode, "missing argument should take the manifest default")
	require.Equal(t, int64(0), input.Seed)
	require.False(t, input.Reset, "optional input without a default stays zero-valued")
}

func TestDecodeBody_MissingRequiredArgument(t *testing.T) {
	t.Parallel()

	var input decodeInput
	err := NewConverter().DecodeBody(context.Background(), &input, nil, inputDefs(), nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), `missing required argument "cfg_start"`)
}

func TestDecodeBody_TypeMismatch(t *testing.T) {
	t.Parallel()

	args := map[string]hcl.Expression{
		"cfg_start": exprFor(t, `"not-a-number"`),
	}

	var input decodeInput
	err := NewConverter().DecodeBody(context.Background(), &input, args, inputDefs(), nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), `failed to decode argument "cfg_start"`)
}

func TestDecodeBody_NumberToStringConversion(t *testing.T) {
	t.Parallel()

	// HCL's conversion rules allow a number literal where a string is declared.
	args := map[string]hcl.Expression{
		"mode":      exprFor(t, `42`),
		"cfg_start": exprFor(t, `1`),
	}

	var input decodeInput
	err := NewConverter().DecodeBody(context.Background(), &input, args, inputDefs(), nil)

	require.NoError(t, err)
	require.Equal(t, "42", input.Mode)
}

func TestDecodeBody_IgnoresUntaggedFields(t *testing.T) {
	t.Parallel()

	type withExtra struct {
		Cfg    float64 `lgo:"cfg_start"`
		Scrap  string
		hidden string
	}

	args := map[string]hcl.Expression{"cfg_start": exprFor(t, `3`)}

	var input withExtra
	err := NewConverter().DecodeBody(context.Background(), &input, args, inputDefs(), nil)

	require.NoError(t, err)
	require.Equal(t, float64(3), input.Cfg)
	require.Empty(t, input.Scrap)
	require.Empty(t, input.hidden)
}

func TestDecodeBody_RequiresPointer(t *testing.T) {
	t.Parallel()

	var input decodeInput
	err := NewConverter().DecodeBody(context.Background(), input, nil, inputDefs(), nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), "non-nil pointer")
}

func TestToCtyValue_OutputStruct(t *testing.T) {
	t.Parallel()

	type output struct {
		Sampler string  `cty:"sampler_name"`
		Index   int     `cty:"current_index"`
		Cfg     float64 `cty:"cfg"`
	}

	val, err := NewConverter().ToCtyValue(&output{Sampler: "euler", Index: 2, Cfg: 4.5})

	require.NoError(t, err)
	require.True(t, val.Type().IsObjectType())
	require.Equal(t, "euler", val.GetAttr("sampler_name").AsString())

	idx, _ := val.GetAttr("current_index").AsBigFloat().Int64()
	require.Equal(t, int64(2), idx)
}

func TestToCtyValue_Nil(t *testing.T) {
	t.Parallel()

	val, err := NewConverter().ToCtyValue(nil)

	require.NoError(t, err)
	require.Equal(t, cty.NilVal, val)
}
