package graph

import (
	"fmt"
)

// Cardinality describes, whether the forward and reverse
// adjacency of an edge type is single or multi valued.
type Cardinality string

const (
	O2O Cardinality = "o2o" // one to one
	O2M Cardinality = "o2m" // one to many
	M2O Cardinality = "m2o" // many to one
	M2M Cardinality = "m2m" // many to many
)

func ParseCardinality(s string) (Cardinality, error) {
	switch c := Cardinality(s); c {
	case O2O, O2M, M2O, M2M:
		return c, nil
	}
	return "", fmt.Errorf("invalid cardinality %q", s)
}

// MultipleSuccessors reports whether a source node
// may have multiple targets.
func (c Cardinality) MultipleSuccessors() bool {
	return c == O2M || c == M2M
}

// MultiplePredecessors reports whether a target node
// may have multiple sources.
func (c Cardinality) MultiplePredecessors() bool {
	return c == M2O || c == M2M
}

func (c Cardinality) String() string {
	return string(c)
}
