package loader

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const methodYAML = "ParseYAML"

// yamlInstance is the on-disk YAML shape. NoEdge is a pointer so that an
// omitted key falls back to wgraph.NoEdge.
type yamlInstance struct {
	N      int    `yaml:"n"`
	K      int    `yaml:"k"`
	NoEdge *int   `yaml:"no_edge,omitempty"`
	Edges  []Edge `yaml:"edges"`
}

// ParseYAML reads the sparse YAML format. Unknown keys are rejected.
func ParseYAML(r io.Reader) (*Instance, error) {
	var doc yamlInstance
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: empty document: %w", methodYAML, ErrMalformed)
		}
		return nil, fmt.Errorf("%s: %v: %w", methodYAML, err, ErrMalformed)
	}
	noEdge := wgraph.NoEdge
	if doc.NoEdge != nil {
		noEdge = *doc.NoEdge
	}

	return fromEdges(methodYAML, doc.N, doc.K, noEdge, doc.Edges)
}

// WriteYAML encodes inst in the sparse YAML format, listing present edges only.
func WriteYAML(out io.Writer, inst *Instance) error {
	noEdge := wgraph.NoEdge
	doc := yamlInstance{N: inst.N, K: inst.K, NoEdge: &noEdge, Edges: inst.edges()}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	_, err := out.Write(buf.Bytes())

	return err
}
