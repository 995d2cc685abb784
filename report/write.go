package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Write renders r in format.
func Write(out io.Writer, r *Report, format Format) error {
	switch format {
	case FormatText:
		return WriteText(out, r)
	case FormatJSON:
		return WriteJSON(out, r)
	case FormatYAML:
		return WriteYAML(out, r)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

// WriteText prints a human-readable summary. Colors are emitted only when
// out is a terminal that supports them.
func WriteText(out io.Writer, r *Report) error {
	var (
		re      = lipgloss.NewRenderer(out)
		heading = re.NewStyle().Bold(true).Underline(true)
		label   = re.NewStyle().Faint(true)
		ok      = re.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
		bad     = re.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		b       strings.Builder
	)

	fmt.Fprintln(&b, heading.Render("Partition report"))
	fmt.Fprintf(&b, "%s %s\n", label.Render("run:"), r.RunID)
	if r.Source != "" {
		fmt.Fprintf(&b, "%s %s\n", label.Render("source:"), r.Source)
	}
	fmt.Fprintf(&b, "%s n=%d k=%d\n", label.Render("instance:"), r.N, r.K)
	fmt.Fprintf(&b, "Number of cliques: %d\n", len(r.Cliques))
	for i, cl := range r.Cliques {
		fmt.Fprintf(&b, "Clique %d (size %d): %s (weight: %d)\n", i, cl.Size, joinInts(cl.Members), cl.Weight)
	}
	fmt.Fprintf(&b, "Total weight: %d\n", r.Summary.TotalWeight)
	fmt.Fprintf(&b, "Total nodes: %d\n", r.N)
	fmt.Fprintf(&b, "Average weight: %.6f\n", r.Summary.AverageWeight)
	fmt.Fprintf(&b, "Uncovered edges: %d of %d\n",
		r.Summary.UncoveredEdges, r.Summary.CoveredEdges+r.Summary.UncoveredEdges)
	fmt.Fprintf(&b, "Repair: %d rounds, %d relocations, %d dropped\n",
		r.Repair.Rounds, r.Repair.Relocations, r.Repair.Dropped)
	if r.Modularity != nil {
		fmt.Fprintf(&b, "Modularity: %.4f\n", *r.Modularity)
	}
	if r.Valid {
		fmt.Fprintf(&b, "Status: %s\n", ok.Render("valid"))
	} else {
		fmt.Fprintf(&b, "Status: %s %s\n", bad.Render("INVALID"), r.Violation)
	}

	_, err := io.WriteString(out, b.String())

	return err
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(out io.Writer, r *Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteYAML encodes r as YAML.
func WriteYAML(out io.Writer, r *Report) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
