package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cimatrix/internal/ctxlog"
	"github.com/vk/cimatrix/internal/fsutil"
	"github.com/vk/cimatrix/internal/matrix"
	"github.com/vk/cimatrix/internal/schema"
)

// Loader reads HCL build-definition files.
type Loader struct{}

// NewLoader creates a new build-definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from paths and returns one option
// set per declared build block, in file order. Expressions in definition
// files may refer to ref.branch and ref.tag, which carry the run context
// the matrix was constructed with.
func (l *Loader) Load(ctx context.Context, branch, tag string, paths ...string) ([][]matrix.Option, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build-definition loader started.", "path_count", len(paths))

	files, err := fsutil.FindHCLFiles(paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered build-definition files.", "count", len(files))

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"ref": cty.ObjectVal(map[string]cty.Value{
				"branch": cty.StringVal(branch),
				"tag":    cty.StringVal(tag),
			}),
		},
	}

	parser := hclparse.NewParser()
	var sets [][]matrix.Option

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root schema.Root
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, b := range root.Builds {
			sets = append(sets, translateBuild(b))
		}
	}

	logger.Debug("Build definitions loaded.", "builds", len(sets))
	return sets, nil
}
