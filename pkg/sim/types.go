package sim

import (
	"fmt"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"
)

// EntityType is the category of an entity.
type EntityType string

const (
	POSIS  EntityType = "posis"
	VERTS  EntityType = "verts"
	EDGES  EntityType = "edges"
	WIRES  EntityType = "wires"
	POINTS EntityType = "points"
	PLINES EntityType = "plines"
	PGONS  EntityType = "pgons"
	COLLS  EntityType = "colls"

	// MODEL addresses the flat model attributes.
	// It has no entities.
	MODEL EntityType = "model"
)

var entityTypes = []EntityType{POSIS, VERTS, EDGES, WIRES, POINTS, PLINES, PGONS, COLLS}

var prefixes = map[EntityType]string{
	POSIS:  "ps",
	VERTS:  "_v",
	EDGES:  "_e",
	WIRES:  "_w",
	POINTS: "pt",
	PLINES: "pl",
	PGONS:  "pg",
	COLLS:  "co",
}

// collMemberTypes are the entity types a collection may contain.
var collMemberTypes = sets.New[EntityType](POINTS, PLINES, PGONS, COLLS)

// EntityTypes returns the entity categories in hierarchy order.
func EntityTypes() []EntityType {
	return slices.Clone(entityTypes)
}

// ParseEntityType accepts the entity categories and MODEL.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	if t == MODEL || t.IsEntity() {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntityType, s)
}

// IsEntity reports whether t is a category of real entities.
func (t EntityType) IsEntity() bool {
	_, ok := prefixes[t]
	return ok
}

func (t EntityType) String() string {
	return string(t)
}

// DataType is the type of attribute values.
type DataType string

const (
	NUMBER  DataType = "number"
	STRING  DataType = "string"
	BOOLEAN DataType = "boolean"
	LIST    DataType = "list"
	DICT    DataType = "dict"
)

func ParseDataType(s string) (DataType, error) {
	switch t := DataType(s); t {
	case NUMBER, STRING, BOOLEAN, LIST, DICT:
		return t, nil
	}
	return "", fmt.Errorf("%w: data type %q", ErrUnrecognizedValueType, s)
}

func (t DataType) String() string {
	return string(t)
}

// graph layout
const (
	EDGE_ENTITY = "entity"
	EDGE_ATTRIB = "attrib"
	EDGE_META   = "meta"

	NODE_META       = "meta"
	NODE_ENTITY     = "ent"
	NODE_ATTRIB     = "attrib"
	NODE_ATTRIB_VAL = "attrib_val"

	ATTR_NODE_TYPE = "node_type"
	ATTR_ENT_TYPE  = "ent_type"
	ATTR_NAME      = "name"
	ATTR_DATA_TYPE = "data_type"
	ATTR_VALUE     = "value"

	// XYZ is the predefined position attribute
	// holding the coordinates.
	XYZ = "xyz"
)
