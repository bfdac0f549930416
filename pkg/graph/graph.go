package graph

import (
	"maps"
	"slices"
)

// Attributes is the data attached to a graph node.
type Attributes map[string]interface{}

// adjacency keeps the edge lists of one edge type and direction.
// keys holds the nodes owning a list in order of their first edge.
type adjacency struct {
	keys  []string
	lists map[string][]string
}

func newAdjacency() *adjacency {
	return &adjacency{lists: map[string][]string{}}
}

func (a *adjacency) add(from, to string) {
	l, ok := a.lists[from]
	if !ok {
		a.keys = append(a.keys, from)
	}
	a.lists[from] = append(l, to)
}

func (a *adjacency) get(n string) []string {
	return a.lists[n]
}

// Graph is a directed multigraph. Edges are typed and every edge
// type creates its own sub graph. The cardinality of an edge type
// determines, which accessors are valid for it.
//
// For every edge type two adjacency tables are kept,
// a forward table keyed by the source node and a reverse table
// keyed by the target node, so predecessors never require a scan.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes     map[string]Attributes
	order     []string
	edgeTypes map[string]Cardinality
	typeOrder []string
	fwd       map[string]*adjacency
	rev       map[string]*adjacency
}

func New() *Graph {
	return &Graph{
		nodes:     map[string]Attributes{},
		edgeTypes: map[string]Cardinality{},
		fwd:       map[string]*adjacency{},
		rev:       map[string]*adjacency{},
	}
}

// AddNode adds a node with the given attributes.
// The attribute map is copied.
func (g *Graph) AddNode(id string, attrs Attributes) error {
	if _, ok := g.nodes[id]; ok {
		return errNode(ErrDuplicateNode, id)
	}
	if attrs == nil {
		attrs = Attributes{}
	} else {
		attrs = maps.Clone(attrs)
	}
	g.nodes[id] = attrs
	g.order = append(g.order, id)
	log.Trace("node {{node}} added", "node", id)
	return nil
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeAttribs returns a copy of the attributes of a node.
func (g *Graph) NodeAttribs(id string) (Attributes, error) {
	attrs, ok := g.nodes[id]
	if !ok {
		return nil, errNode(ErrUnknownNode, id)
	}
	return maps.Clone(attrs), nil
}

// NodeAttrib returns a single node attribute.
func (g *Graph) NodeAttrib(id string, name string) (interface{}, error) {
	attrs, ok := g.nodes[id]
	if !ok {
		return nil, errNode(ErrUnknownNode, id)
	}
	return attrs[name], nil
}

// Nodes returns all node ids in insertion order.
func (g *Graph) Nodes() []string {
	return slices.Clone(g.order)
}

func (g *Graph) NodeCount() int {
	return len(g.order)
}

func (g *Graph) AddEdgeType(typ string, c Cardinality) error {
	if _, ok := g.edgeTypes[typ]; ok {
		return errEdgeType(ErrDuplicateEdgeType, typ)
	}
	if _, err := ParseCardinality(string(c)); err != nil {
		return err
	}
	g.edgeTypes[typ] = c
	g.typeOrder = append(g.typeOrder, typ)
	g.fwd[typ] = newAdjacency()
	g.rev[typ] = newAdjacency()
	log.Trace("edge type {{type}} ({{cardinality}}) added", "type", typ, "cardinality", c)
	return nil
}

func (g *Graph) HasEdgeType(typ string) bool {
	_, ok := g.edgeTypes[typ]
	return ok
}

// EdgeTypes returns the edge types in definition order.
func (g *Graph) EdgeTypes() []string {
	return slices.Clone(g.typeOrder)
}

func (g *Graph) Cardinality(typ string) (Cardinality, error) {
	c, ok := g.edgeTypes[typ]
	if !ok {
		return "", errEdgeType(ErrUnknownEdgeType, typ)
	}
	return c, nil
}

// AddEdge adds an edge from src to dst. Cardinalities are
// not checked here, they are only enforced by the accessors.
func (g *Graph) AddEdge(src, dst string, typ string) error {
	if !g.HasNode(src) {
		return errNode(ErrUnknownNode, src)
	}
	if !g.HasNode(dst) {
		return errNode(ErrUnknownNode, dst)
	}
	if !g.HasEdgeType(typ) {
		return errEdgeType(ErrUnknownEdgeType, typ)
	}
	g.fwd[typ].add(src, dst)
	g.rev[typ].add(dst, src)
	return nil
}

// HasEdge checks for an edge from src to dst.
func (g *Graph) HasEdge(src, dst string, typ string) (bool, error) {
	if _, err := g.check(src, typ); err != nil {
		return false, err
	}
	if !g.HasNode(dst) {
		return false, errNode(ErrUnknownNode, dst)
	}
	return slices.Contains(g.fwd[typ].get(src), dst), nil
}

func (g *Graph) check(node string, typ string) (Cardinality, error) {
	if !g.HasNode(node) {
		return "", errNode(ErrUnknownNode, node)
	}
	c, ok := g.edgeTypes[typ]
	if !ok {
		return "", errEdgeType(ErrUnknownEdgeType, typ)
	}
	return c, nil
}

// Successor returns the single successor of a node.
// It fails for edge types with multiple successors.
func (g *Graph) Successor(node string, typ string) (string, bool, error) {
	c, err := g.check(node, typ)
	if err != nil {
		return "", false, err
	}
	if c.MultipleSuccessors() {
		return "", false, errEdgeType(ErrCardinalityViolation, typ)
	}
	return first(g.fwd[typ].get(node))
}

// Successors returns the successors of a node in edge order.
// It fails for edge types with a single successor.
func (g *Graph) Successors(node string, typ string) ([]string, error) {
	c, err := g.check(node, typ)
	if err != nil {
		return nil, err
	}
	if !c.MultipleSuccessors() {
		return nil, errEdgeType(ErrCardinalityViolation, typ)
	}
	return clone(g.fwd[typ].get(node)), nil
}

// Predecessor returns the single predecessor of a node.
// It fails for edge types with multiple predecessors.
func (g *Graph) Predecessor(node string, typ string) (string, bool, error) {
	c, err := g.check(node, typ)
	if err != nil {
		return "", false, err
	}
	if c.MultiplePredecessors() {
		return "", false, errEdgeType(ErrCardinalityViolation, typ)
	}
	return first(g.rev[typ].get(node))
}

// Predecessors returns the predecessors of a node in edge order.
// It fails for edge types with a single predecessor.
func (g *Graph) Predecessors(node string, typ string) ([]string, error) {
	c, err := g.check(node, typ)
	if err != nil {
		return nil, err
	}
	if !c.MultiplePredecessors() {
		return nil, errEdgeType(ErrCardinalityViolation, typ)
	}
	return clone(g.rev[typ].get(node)), nil
}

// DegreeIn counts the incoming edges of a node. For single valued
// reverse adjacencies this is 0 or 1.
func (g *Graph) DegreeIn(node string, typ string) (int, error) {
	c, err := g.check(node, typ)
	if err != nil {
		return 0, err
	}
	return degree(g.rev[typ].get(node), c.MultiplePredecessors()), nil
}

// DegreeOut counts the outgoing edges of a node. For single valued
// forward adjacencies this is 0 or 1.
func (g *Graph) DegreeOut(node string, typ string) (int, error) {
	c, err := g.check(node, typ)
	if err != nil {
		return 0, err
	}
	return degree(g.fwd[typ].get(node), c.MultipleSuccessors()), nil
}

// Degree is the sum of DegreeIn and DegreeOut.
func (g *Graph) Degree(node string, typ string) (int, error) {
	in, err := g.DegreeIn(node, typ)
	if err != nil {
		return 0, err
	}
	out, err := g.DegreeOut(node, typ)
	if err != nil {
		return 0, err
	}
	return in + out, nil
}

// NodesWithOutEdge returns the nodes with at least one outgoing
// edge of the given type, in order of their first edge.
func (g *Graph) NodesWithOutEdge(typ string) ([]string, error) {
	a, ok := g.fwd[typ]
	if !ok {
		return nil, errEdgeType(ErrUnknownEdgeType, typ)
	}
	return clone(a.keys), nil
}

// NodesWithInEdge returns the nodes with at least one incoming
// edge of the given type, in order of their first edge.
func (g *Graph) NodesWithInEdge(typ string) ([]string, error) {
	a, ok := g.rev[typ]
	if !ok {
		return nil, errEdgeType(ErrUnknownEdgeType, typ)
	}
	return clone(a.keys), nil
}

func first(l []string) (string, bool, error) {
	if len(l) == 0 {
		return "", false, nil
	}
	return l[0], true, nil
}

func clone(l []string) []string {
	if l == nil {
		return []string{}
	}
	return slices.Clone(l)
}

func degree(l []string, multi bool) int {
	switch {
	case len(l) == 0:
		return 0
	case multi:
		return len(l)
	default:
		return 1
	}
}
