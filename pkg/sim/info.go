package sim

import (
	"fmt"
	"io"
)

// Info writes a description of the model graph for debugging.
func (m *Model) Info(w io.Writer) error {
	_, err := fmt.Fprintf(w, "MODEL: %s\n", m.id)
	if err != nil {
		return err
	}
	err = m.graph.Dump(w)
	if err != nil {
		return err
	}
	for _, n := range m.modelOrder {
		_, err = fmt.Fprintf(w, "ATTRIBUTE: %s=%s\n", n, m.modelAttrs[n])
		if err != nil {
			return err
		}
	}
	return nil
}
