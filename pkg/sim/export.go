package sim

import (
	"fmt"

	"github.com/mandelsoft/simgraph/pkg/document"
	"github.com/mandelsoft/simgraph/pkg/utils"
)

// ToDocument exports the model. Entity ids are replaced by
// dense indices per category in creation order.
func (m *Model) ToDocument() (*document.Document, error) {
	doc := document.New()

	index := map[EntityType]map[string]int{}
	ents := map[EntityType][]string{}
	for _, t := range entityTypes {
		list, err := m.GetEnts(t, nil)
		if err != nil {
			return nil, err
		}
		ents[t] = list
		index[t] = make(map[string]int, len(list))
		for i, e := range list {
			index[t][e] = i
		}
	}
	posis := func(ids []string) []int {
		return utils.TransformSlice(ids, func(id string) int { return index[POSIS][id] })
	}

	g := &doc.Geometry
	g.NumPosis = len(ents[POSIS])
	for _, p := range ents[POINTS] {
		posi, err := m.PointPosi(p)
		if err != nil {
			return nil, err
		}
		g.Points = append(g.Points, index[POSIS][posi])
	}
	for _, p := range ents[PLINES] {
		list, err := m.PlinePosis(p)
		if err != nil {
			return nil, err
		}
		g.Plines = append(g.Plines, posis(list))
	}
	for _, p := range ents[PGONS] {
		wires, err := m.PgonPosis(p)
		if err != nil {
			return nil, err
		}
		g.Pgons = append(g.Pgons, utils.TransformSlice(wires, posis))
	}
	for _, c := range ents[COLLS] {
		members := map[EntityType][]int{POINTS: {}, PLINES: {}, PGONS: {}, COLLS: {}}
		for _, e := range m.children(c) {
			t := m.entityType(e)
			members[t] = append(members[t], index[t][e])
		}
		g.CollPoints = append(g.CollPoints, members[POINTS])
		g.CollPlines = append(g.CollPlines, members[PLINES])
		g.CollPgons = append(g.CollPgons, members[PGONS])
		g.CollColls = append(g.CollColls, members[COLLS])
	}

	for _, t := range entityTypes {
		data, err := m.attributeData(t, index[t])
		if err != nil {
			return nil, err
		}
		list, err := doc.Attributes.For(string(t))
		if err != nil {
			return nil, err
		}
		*list = data
	}
	for _, n := range m.modelOrder {
		doc.Attributes.Model = append(doc.Attributes.Model, document.ModelAttribute{
			Name:  n,
			Value: m.modelAttrs[n].Interface(),
		})
	}
	m.log.Debug("model exported")
	return doc, nil
}

func (m *Model) attributeData(t EntityType, index map[string]int) ([]document.AttributeData, error) {
	atts, err := m.graph.Successors(attribsNode(t), EDGE_META)
	if err != nil {
		return nil, err
	}
	result := []document.AttributeData{}
	for _, att := range atts {
		data := document.AttributeData{
			Name:     m.attribName(att),
			DataType: string(m.attribDataType(att)),
			Values:   []interface{}{},
			Entities: [][]int{},
		}
		vals, err := m.graph.Predecessors(att, EDGE_ATTRIB)
		if err != nil {
			return nil, err
		}
		for _, val := range vals {
			holders, err := m.graph.Predecessors(val, EDGE_ATTRIB)
			if err != nil {
				return nil, err
			}
			idxs := []int{}
			for _, e := range utils.NewOrderedSet(holders...).List() {
				i, ok := index[e]
				if !ok {
					return nil, fmt.Errorf("value node %q used by unknown %s entity %q", val, t, e)
				}
				idxs = append(idxs, i)
			}
			data.Values = append(data.Values, m.nodeValue(val).Interface())
			data.Entities = append(data.Entities, idxs)
		}
		result = append(result, data)
	}
	return result, nil
}
