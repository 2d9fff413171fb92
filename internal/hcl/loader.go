package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/loopgridgo/internal/config"
	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/fsutil"
	"github.com/vk/loopgridgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all possible top-level blocks from any file; manifests
// and grids may live in the same file or be split across many.
type fileRoot struct {
	Nodes  []*schema.NodeDefinition `hcl:"node,block"`
	Loops  []*schema.Loop           `hcl:"loop,block"`
	Remain hcl.Body                 `hcl:",remain"`
}

// Load discovers every .hcl file under the given paths, decodes it, and
// merges the result into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Nodes: make(map[string]*config.NodeDefinition),
		Grid:  &config.Grid{},
	}

	files, err := fsutil.FindHCLFiles(paths...)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, node := range root.Nodes {
			def, err := l.translateNodeDefinition(node)
			if err != nil {
				return nil, nil, err
			}
			if _, exists := model.Nodes[def.Type]; exists {
				return nil, nil, fmt.Errorf("node type %q defined more than once (last in %s)", def.Type, file)
			}
			model.Nodes[def.Type] = def
		}
		for _, lp := range root.Loops {
			model.Grid.Loops = append(model.Grid.Loops, l.translateLoop(lp))
		}
	}

	logger.Debug("HCL loading complete.", "node_types", len(model.Nodes), "loops", len(model.Grid.Loops))
	return model, NewConverter(), nil
}
