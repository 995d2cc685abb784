package builder

import "fmt"

// Edge returns a Constructor that writes the explicit weight w to {u,v},
// bypassing the configured WeightFn. Useful for pinning a single pair on
// top of a generated topology.
func Edge(u, v, w int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if err := c.SetEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: %w", MethodEdge, err)
		}

		return nil
	}
}
