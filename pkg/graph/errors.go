package graph

import (
	"fmt"
)

var (
	ErrDuplicateNode        = fmt.Errorf("node already exists")
	ErrUnknownNode          = fmt.Errorf("node does not exist")
	ErrDuplicateEdgeType    = fmt.Errorf("edge type already exists")
	ErrUnknownEdgeType      = fmt.Errorf("edge type does not exist")
	ErrCardinalityViolation = fmt.Errorf("cardinality violation")
)

func errNode(err error, id string) error {
	return fmt.Errorf("%w: %q", err, id)
}

func errEdgeType(err error, typ string) error {
	return fmt.Errorf("%w: %q", err, typ)
}
