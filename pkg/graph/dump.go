package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/simgraph/pkg/utils"
)

// Dump writes a human readable description of all nodes
// and edges to w. It is intended for debugging.
func (g *Graph) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w, "NODES:\n")
	if err != nil {
		return err
	}
	for _, n := range g.order {
		_, err = fmt.Fprintf(w, "- %s: %s\n", n, formatAttributes(g.nodes[n]))
		if err != nil {
			return err
		}
	}
	for _, t := range g.typeOrder {
		_, err = fmt.Fprintf(w, "EDGES: %s (%s)\n", t, g.edgeTypes[t])
		if err != nil {
			return err
		}
		a := g.fwd[t]
		for _, n := range a.keys {
			_, err = fmt.Fprintf(w, "- %s: [%s]\n", n, strings.Join(a.lists[n], ", "))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func formatAttributes(attrs Attributes) string {
	keys := utils.OrderedMapKeys(attrs)
	fields := make([]string, len(keys))
	for i, k := range keys {
		fields[i] = fmt.Sprintf("%s=%v", k, attrs[k])
	}
	return "{" + strings.Join(fields, ", ") + "}"
}
