package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an instance encoding.
type Format string

// Supported formats.
const (
	FormatTriangular Format = "triangular"
	FormatDense      Format = "dense"
	FormatYAML       Format = "yaml"
	FormatHCL        Format = "hcl"
)

var extFormats = map[string]Format{
	".tri":   FormatTriangular,
	".txt":   FormatTriangular,
	".dense": FormatDense,
	".mat":   FormatDense,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".hcl":   FormatHCL,
}

// FormatFromPath maps a file extension (case-insensitive) to its Format.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}

	return "", fmt.Errorf("FormatFromPath: extension %q of %s: %w", ext, path, ErrUnknownFormat)
}

// Parse decodes r in the given format. name labels HCL diagnostics.
func Parse(r io.Reader, format Format, name string) (*Instance, error) {
	switch format {
	case FormatTriangular:
		return ParseTriangular(r)
	case FormatDense:
		return ParseDense(r)
	case FormatYAML:
		return ParseYAML(r)
	case FormatHCL:
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}
		return ParseHCL(src, name)
	default:
		return nil, fmt.Errorf("Parse: format %q: %w", format, ErrUnknownFormat)
	}
}

// Load opens path and parses it in the format implied by its extension.
func Load(path string) (*Instance, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	inst, err := Parse(f, format, path)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return inst, nil
}

// Write encodes inst in format. Only the triangular and YAML encodings are
// writable.
func Write(out io.Writer, inst *Instance, format Format) error {
	switch format {
	case FormatTriangular:
		return WriteTriangular(out, inst)
	case FormatYAML:
		return WriteYAML(out, inst)
	default:
		return fmt.Errorf("Write: format %q: %w", format, ErrUnknownFormat)
	}
}
