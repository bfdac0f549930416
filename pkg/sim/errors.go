package sim

import (
	"fmt"
)

var (
	ErrAttributeTypeConflict   = fmt.Errorf("attribute type conflict")
	ErrInvalidCollectionMember = fmt.Errorf("invalid collection member")
	ErrUnrecognizedValueType   = fmt.Errorf("unrecognized value type")
	ErrUnknownAttribute        = fmt.Errorf("unknown attribute")
	ErrUnknownEntityType       = fmt.Errorf("unknown entity type")
	ErrInvalidEntity           = fmt.Errorf("invalid entity")
	ErrInvalidGeometry         = fmt.Errorf("invalid geometry")
)

func errEntity(id string, t ...EntityType) error {
	if len(t) > 0 {
		return fmt.Errorf("%w: %q is not of type %s", ErrInvalidEntity, id, t[0])
	}
	return fmt.Errorf("%w: %q", ErrInvalidEntity, id)
}
