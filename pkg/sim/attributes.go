package sim

import (
	"fmt"

	"github.com/mandelsoft/simgraph/pkg/graph"
	"github.com/mandelsoft/simgraph/pkg/utils"
)

// AddAttrib defines an attribute for an entity category.
// Defining an existing attribute again with the same data type
// is a no-op, a different data type fails with ErrAttributeTypeConflict.
// Model attributes are untyped and cannot be defined.
func (m *Model) AddAttrib(t EntityType, name string, dt DataType) error {
	if err := checkEntityType(t); err != nil {
		return err
	}
	if _, err := ParseDataType(string(dt)); err != nil {
		return err
	}
	return m.addAttrib(t, name, dt)
}

func (m *Model) addAttrib(t EntityType, name string, dt DataType) error {
	n := attribNode(t, name)
	if m.graph.HasNode(n) {
		old := m.attribDataType(n)
		if old != dt {
			return fmt.Errorf("%w: %s attribute %q already defined as %s", ErrAttributeTypeConflict, t, name, old)
		}
		return nil
	}
	err := m.graph.AddNode(n, graph.Attributes{
		ATTR_NODE_TYPE: NODE_ATTRIB,
		ATTR_ENT_TYPE:  t,
		ATTR_NAME:      name,
		ATTR_DATA_TYPE: dt,
	})
	if err != nil {
		return err
	}
	m.log.Debug("attribute {{attribute}} ({{datatype}}) defined for {{category}}", "attribute", name, "datatype", dt, "category", t)
	return m.graph.AddEdge(attribsNode(t), n, EDGE_META)
}

func (m *Model) attribDataType(n string) DataType {
	dt, _ := m.graph.NodeAttrib(n, ATTR_DATA_TYPE)
	r, _ := dt.(DataType)
	return r
}

func (m *Model) attribName(n string) string {
	name, _ := m.graph.NodeAttrib(n, ATTR_NAME)
	r, _ := name.(string)
	return r
}

func (m *Model) nodeValue(n string) Value {
	v, _ := m.graph.NodeAttrib(n, ATTR_VALUE)
	r, _ := v.(Value)
	return r
}

// HasAttrib checks whether an attribute is defined for a category.
func (m *Model) HasAttrib(t EntityType, name string) bool {
	return t.IsEntity() && m.graph.HasNode(attribNode(t, name))
}

// AttribDataType returns the data type of a defined attribute.
func (m *Model) AttribDataType(t EntityType, name string) (DataType, error) {
	if err := checkEntityType(t); err != nil {
		return "", err
	}
	n := attribNode(t, name)
	if !m.graph.HasNode(n) {
		return "", fmt.Errorf("%w: %s attribute %q", ErrUnknownAttribute, t, name)
	}
	return m.attribDataType(n), nil
}

// AttribNames returns the names of the attributes defined for
// a category in definition order.
func (m *Model) AttribNames(t EntityType) ([]string, error) {
	if err := checkEntityType(t); err != nil {
		return nil, err
	}
	atts, err := m.graph.Successors(attribsNode(t), EDGE_META)
	if err != nil {
		return nil, err
	}
	return utils.TransformSlice(atts, m.attribName), nil
}

// SetAttribValue assigns a value to an entity attribute.
// The attribute must be defined for the category of the entity
// and the value must match its data type. Identical values of
// the same attribute share a single value node.
//
// Assignments are only appended, see GetAttribValue.
func (m *Model) SetAttribValue(ent string, name string, value interface{}) error {
	t, err := m.EntType(ent)
	if err != nil {
		return err
	}
	att := attribNode(t, name)
	if !m.graph.HasNode(att) {
		return fmt.Errorf("%w: %s attribute %q", ErrUnknownAttribute, t, name)
	}
	v, err := NewValue(value)
	if err != nil {
		return fmt.Errorf("%s attribute %q: %w", t, name, err)
	}
	if dt := m.attribDataType(att); v.DataType() != dt {
		return fmt.Errorf("%w: %s attribute %q requires %s, but got %s", ErrAttributeTypeConflict, t, name, dt, v.DataType())
	}
	val, err := m.addValueNode(t, name, att, v)
	if err != nil {
		return err
	}
	return m.graph.AddEdge(ent, val, EDGE_ATTRIB)
}

// addValueNode returns the value node for a value, it is created
// together with its link to the attribute definition on first use.
func (m *Model) addValueNode(t EntityType, name string, att string, v Value) (string, error) {
	n := valueNode(t, name, v)
	if m.graph.HasNode(n) {
		return n, nil
	}
	err := m.graph.AddNode(n, graph.Attributes{ATTR_NODE_TYPE: NODE_ATTRIB_VAL, ATTR_VALUE: v})
	if err != nil {
		return "", err
	}
	m.log.Trace("value node {{node}} created for {{attribute}}", "node", n, "attribute", name)
	return n, m.graph.AddEdge(n, att, EDGE_ATTRIB)
}

// GetAttribValue returns a copy of an attribute value of an entity.
// If the attribute has been set multiple times, the value assigned
// first is returned. Undefined or unset attributes are reported
// as absent.
func (m *Model) GetAttribValue(ent string, name string) (interface{}, bool, error) {
	t, err := m.EntType(ent)
	if err != nil {
		return nil, false, err
	}
	att := attribNode(t, name)
	if !m.graph.HasNode(att) {
		return nil, false, nil
	}
	vals, err := m.graph.Successors(ent, EDGE_ATTRIB)
	if err != nil {
		return nil, false, err
	}
	for _, val := range vals {
		atts, _ := m.graph.Successors(val, EDGE_ATTRIB)
		if len(atts) > 0 && atts[0] == att {
			return m.nodeValue(val).Interface(), true, nil
		}
	}
	return nil, false, nil
}
