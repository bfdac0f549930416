package sim

import (
	"fmt"

	"github.com/mandelsoft/simgraph/pkg/utils"
)

// AddPosi adds a position with the given coordinates
// stored in the xyz attribute.
func (m *Model) AddPosi(xyz []float64) (string, error) {
	if xyz == nil {
		xyz = []float64{}
	}
	v, err := NewValue(xyz)
	if err != nil {
		return "", err
	}
	posi, err := m.createEntity(POSIS)
	if err != nil {
		return "", err
	}
	return posi, m.SetAttribValue(posi, XYZ, v)
}

// AddPoint adds a point for a position.
func (m *Model) AddPoint(posi string) (string, error) {
	if err := m.checkEntity(posi, POSIS); err != nil {
		return "", err
	}
	vert, err := m.addVertex(posi)
	if err != nil {
		return "", err
	}
	point, err := m.createEntity(POINTS)
	if err != nil {
		return "", err
	}
	return point, m.link(point, vert)
}

// AddPline adds a polyline for a sequence of at least two positions.
// A closed polyline gets an additional edge from the last to the
// first vertex.
func (m *Model) AddPline(posis []string, closed bool) (string, error) {
	if len(posis) < 2 {
		return "", fmt.Errorf("%w: polyline requires at least 2 positions, but got %d", ErrInvalidGeometry, len(posis))
	}
	if err := m.checkEntities(posis, POSIS); err != nil {
		return "", err
	}
	wire, err := m.addWire(posis, closed)
	if err != nil {
		return "", err
	}
	pline, err := m.createEntity(PLINES)
	if err != nil {
		return "", err
	}
	return pline, m.link(pline, wire)
}

// AddPgon adds a polygon for a boundary and optional holes.
// Every ring is implicitly closed and requires at least
// three positions.
func (m *Model) AddPgon(posis []string, holes ...[]string) (string, error) {
	rings := append([][]string{posis}, holes...)
	for i, r := range rings {
		if len(r) < 3 {
			return "", fmt.Errorf("%w: polygon wire %d requires at least 3 positions, but got %d", ErrInvalidGeometry, i, len(r))
		}
		if err := m.checkEntities(r, POSIS); err != nil {
			return "", err
		}
	}
	wires, err := utils.TransformSliceErr(rings, func(r []string) (string, error) {
		return m.addWire(r, true)
	})
	if err != nil {
		return "", err
	}
	pgon, err := m.createEntity(PGONS)
	if err != nil {
		return "", err
	}
	for _, w := range wires {
		if err := m.link(pgon, w); err != nil {
			return "", err
		}
	}
	return pgon, nil
}

// AddColl adds an empty collection.
func (m *Model) AddColl() (string, error) {
	return m.createEntity(COLLS)
}

// AddCollEnt adds a point, polyline, polygon or collection
// to a collection. Adding a member twice is a no-op.
// A collection must not contain itself, directly or indirectly.
func (m *Model) AddCollEnt(coll string, ent string) error {
	if err := m.checkEntity(coll, COLLS); err != nil {
		return err
	}
	t, err := m.EntType(ent)
	if err != nil {
		return err
	}
	if !collMemberTypes.Has(t) {
		return fmt.Errorf("%w: %s %q", ErrInvalidCollectionMember, t, ent)
	}
	if t == COLLS && m.contains(ent, coll) {
		return fmt.Errorf("%w: collection %q contains %q", ErrInvalidCollectionMember, ent, coll)
	}
	if ok, _ := m.graph.HasEdge(coll, ent, EDGE_ENTITY); ok {
		return nil
	}
	return m.link(coll, ent)
}

// contains checks whether collection c is or
// transitively contains collection n.
func (m *Model) contains(c string, n string) bool {
	if c == n {
		return true
	}
	for _, e := range m.children(c) {
		if m.entityType(e) == COLLS && m.contains(e, n) {
			return true
		}
	}
	return false
}

func (m *Model) checkEntities(ids []string, t EntityType) error {
	for _, id := range ids {
		if err := m.checkEntity(id, t); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) addVertex(posi string) (string, error) {
	vert, err := m.createEntity(VERTS)
	if err != nil {
		return "", err
	}
	return vert, m.link(vert, posi)
}

// addWire creates a vertex per position, an edge per consecutive
// vertex pair and the wire holding the edges in order.
func (m *Model) addWire(posis []string, closed bool) (string, error) {
	verts, err := utils.TransformSliceErr(posis, m.addVertex)
	if err != nil {
		return "", err
	}
	if closed {
		verts = append(verts, verts[0])
	}
	edges := make([]string, len(verts)-1)
	for i := range edges {
		edges[i], err = m.createEntity(EDGES)
		if err != nil {
			return "", err
		}
		if err = m.link(edges[i], verts[i]); err != nil {
			return "", err
		}
		if err = m.link(edges[i], verts[i+1]); err != nil {
			return "", err
		}
	}
	wire, err := m.createEntity(WIRES)
	if err != nil {
		return "", err
	}
	for _, e := range edges {
		if err = m.link(wire, e); err != nil {
			return "", err
		}
	}
	return wire, nil
}
