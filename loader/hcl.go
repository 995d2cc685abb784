package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const methodHCL = "ParseHCL"

// hclInstance is the decoded HCL body.
type hclInstance struct {
	N     int       `hcl:"n"`
	K     int       `hcl:"k"`
	Edges []hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	U int `hcl:"u"`
	V int `hcl:"v"`
	W int `hcl:"w"`
}

// evalContext exposes the no_edge identifier to expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"no_edge": cty.NumberIntVal(wgraph.NoEdge),
		},
	}
}

// ParseHCL reads the HCL format from src; filename is used in diagnostics.
// An edge whose weight evaluates to no_edge is absent.
func ParseHCL(src []byte, filename string) (*Instance, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s: %w", methodHCL, diags.Error(), ErrMalformed)
	}

	var doc hclInstance
	if diags = gohcl.DecodeBody(file.Body, evalContext(), &doc); diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s: %w", methodHCL, diags.Error(), ErrMalformed)
	}

	edges := make([]Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = Edge{U: e.U, V: e.V, W: e.W}
	}

	return fromEdges(methodHCL, doc.N, doc.K, wgraph.NoEdge, edges)
}
