package sim

import (
	"fmt"

	"github.com/mandelsoft/simgraph/pkg/utils"
)

// NumEnts returns the number of entities of a category.
func (m *Model) NumEnts(t EntityType) (int, error) {
	if err := checkEntityType(t); err != nil {
		return 0, err
	}
	return m.graph.DegreeOut(metaNode(t), EDGE_META)
}

// GetEnts returns the entities of the target category.
// For nil sources all entities of the category are returned
// in creation order. Otherwise, the target entities reachable
// from the source entities along the hierarchy are returned,
// without duplicates in order of their first occurrence.
func (m *Model) GetEnts(target EntityType, sources []string) ([]string, error) {
	if err := checkEntityType(target); err != nil {
		return nil, err
	}
	if sources == nil {
		return m.graph.Successors(metaNode(target), EDGE_META)
	}
	result := utils.NewOrderedSet[string]()
	for _, s := range sources {
		ents, err := m.navigate(target, s)
		if err != nil {
			return nil, err
		}
		result.Add(ents...)
	}
	return result.List(), nil
}

// navigate determines the entities of the target category
// related to a source entity. For adjacent ranks this is a single
// structural step returning all neighbours of the source, even
// those of another category, such as the polylines of a collection
// navigated for points. Larger distances only pass nodes ranked
// between source and target and keep nodes of the target category.
func (m *Model) navigate(target EntityType, source string) ([]string, error) {
	st, err := m.EntType(source)
	if err != nil {
		return nil, err
	}
	if st == target {
		return []string{source}, nil
	}

	table := ranksFor(target, st)
	rs, ok := table[st]
	if !ok {
		return []string{}, nil
	}
	rt, ok := table[target]
	if !ok {
		return []string{}, nil
	}

	dist := rs - rt
	step := m.children
	if dist < 0 {
		step = m.parents
	}
	if dist == 1 || dist == -1 {
		return utils.NewOrderedSet(step(source)...).List(), nil
	}
	within := func(r int) bool {
		if dist > 0 {
			return rt < r && r < rs
		}
		return rs < r && r < rt
	}

	result := utils.NewOrderedSet[string]()
	level := []string{source}
	for len(level) > 0 {
		next := utils.NewOrderedSet[string]()
		for _, n := range level {
			for _, e := range step(n) {
				et := m.entityType(e)
				r, ok := table[et]
				switch {
				case !ok:
				case et == target:
					result.Add(e)
				case within(r):
					next.Add(e)
				}
			}
		}
		level = next.List()
	}
	m.log.Trace("navigated from {{source}} to {{target}}: {{count}} entities", "source", source, "target", target, "count", result.Len())
	return result.List(), nil
}

// PointPosi returns the position of a point.
func (m *Model) PointPosi(point string) (string, error) {
	if err := m.checkEntity(point, POINTS); err != nil {
		return "", err
	}
	verts := m.children(point)
	if len(verts) == 0 {
		return "", fmt.Errorf("%w: point %q has no vertex", ErrInvalidGeometry, point)
	}
	return m.vertexPosi(verts[0]), nil
}

// PlinePosis returns the positions of a polyline in order.
// For a closed polyline the first position is repeated at the end.
func (m *Model) PlinePosis(pline string) ([]string, error) {
	if err := m.checkEntity(pline, PLINES); err != nil {
		return nil, err
	}
	edges := m.plineEdges(pline)
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: polyline %q has no edges", ErrInvalidGeometry, pline)
	}
	posis := utils.TransformSlice(edges, func(e string) string {
		return m.vertexPosi(m.children(e)[0])
	})
	last := m.children(edges[len(edges)-1])
	return append(posis, m.vertexPosi(last[len(last)-1])), nil
}

// PgonPosis returns the positions of all wires of a polygon,
// the boundary first. Positions are not repeated to close a wire.
func (m *Model) PgonPosis(pgon string) ([][]string, error) {
	if err := m.checkEntity(pgon, PGONS); err != nil {
		return nil, err
	}
	var result [][]string
	for _, w := range m.children(pgon) {
		result = append(result, utils.TransformSlice(m.children(w), func(e string) string {
			return m.vertexPosi(m.children(e)[0])
		}))
	}
	return result, nil
}

// PlineIsClosed checks whether the last edge of a polyline
// ends at the vertex the first edge starts with.
func (m *Model) PlineIsClosed(pline string) (bool, error) {
	if err := m.checkEntity(pline, PLINES); err != nil {
		return false, err
	}
	edges := m.plineEdges(pline)
	if len(edges) == 0 {
		return false, nil
	}
	start := m.children(edges[0])
	end := m.children(edges[len(edges)-1])
	return start[0] == end[len(end)-1], nil
}

func (m *Model) plineEdges(pline string) []string {
	wires := m.children(pline)
	if len(wires) == 0 {
		return nil
	}
	return m.children(wires[0])
}

func (m *Model) vertexPosi(vert string) string {
	posis := m.children(vert)
	if len(posis) == 0 {
		return ""
	}
	return posis[0]
}
