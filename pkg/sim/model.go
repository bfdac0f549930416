package sim

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/mandelsoft/logging"

	"github.com/mandelsoft/simgraph/pkg/graph"
	"github.com/mandelsoft/simgraph/pkg/utils"
)

type Option interface {
	ApplyTo(opts *Options)
}

type Options struct {
	id  string
	log logging.Logger
}

type idOpt string

// WithId sets the model id. By default a random uuid is used.
func WithId(id string) Option {
	return idOpt(id)
}

func (o idOpt) ApplyTo(opts *Options) {
	opts.id = string(o)
}

type loggerOpt struct {
	log logging.Logger
}

// WithLogger sets the logger used for the model.
func WithLogger(l logging.Logger) Option {
	return loggerOpt{l}
}

func (o loggerOpt) ApplyTo(opts *Options) {
	opts.log = o.log
}

// Model is a spatial information model. Entities, attribute
// definitions and attribute values are nodes of a typed graph:
//   - entity edges describe the topology
//     (position <- vertex <- edge/point <- wire <- polyline/polygon <- collection),
//   - attrib edges link entities to value nodes and value nodes
//     to their attribute definition,
//   - meta edges link the category nodes to their members and
//     the category attribute nodes to the attribute definitions.
//
// A Model is append-only and not safe for concurrent use.
type Model struct {
	id    string
	log   logging.Logger
	graph *graph.Graph

	modelAttrs map[string]Value
	modelOrder []string
}

func New(opts ...Option) *Model {
	options := &Options{}
	for _, o := range opts {
		o.ApplyTo(options)
	}
	if options.id == "" {
		options.id = uuid.NewString()
	}
	if options.log == nil {
		options.log = log.WithValues("model", options.id)
	}

	m := &Model{
		id:         options.id,
		log:        options.log,
		graph:      graph.New(),
		modelAttrs: map[string]Value{},
	}
	// a fresh graph cannot reject the layout
	must(m.graph.AddEdgeType(EDGE_ENTITY, graph.M2M))
	must(m.graph.AddEdgeType(EDGE_ATTRIB, graph.M2M))
	must(m.graph.AddEdgeType(EDGE_META, graph.M2M))
	for _, t := range entityTypes {
		must(m.graph.AddNode(metaNode(t), graph.Attributes{ATTR_NODE_TYPE: NODE_META}))
		must(m.graph.AddNode(attribsNode(t), graph.Attributes{ATTR_NODE_TYPE: NODE_META}))
	}
	must(m.addAttrib(POSIS, XYZ, LIST))
	m.log.Debug("model created")
	return m
}

func (m *Model) Id() string {
	return m.id
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func metaNode(t EntityType) string {
	return string(t)
}

func attribsNode(t EntityType) string {
	return string(t) + "_attribs"
}

func attribNode(t EntityType, name string) string {
	return "att_" + utils.HashData([]string{string(t), name})
}

func valueNode(t EntityType, name string, v Value) string {
	return "val_" + utils.HashData(map[string]interface{}{
		ATTR_ENT_TYPE: t,
		ATTR_NAME:     name,
		ATTR_VALUE:    v,
	})
}

// createEntity adds a new entity node. The id suffix is the number
// of entities of the category before, so ids are never reused.
func (m *Model) createEntity(t EntityType) (string, error) {
	n, err := m.graph.DegreeOut(metaNode(t), EDGE_META)
	if err != nil {
		return "", err
	}
	id := prefixes[t] + strconv.Itoa(n)
	err = m.graph.AddNode(id, graph.Attributes{ATTR_NODE_TYPE: NODE_ENTITY, ATTR_ENT_TYPE: t})
	if err != nil {
		return "", err
	}
	err = m.graph.AddEdge(metaNode(t), id, EDGE_META)
	if err != nil {
		return "", err
	}
	m.log.Trace("entity {{entity}} created", "entity", id)
	return id, nil
}

func (m *Model) link(src, dst string) error {
	return m.graph.AddEdge(src, dst, EDGE_ENTITY)
}

// children returns the structural successors of a known node.
func (m *Model) children(n string) []string {
	l, _ := m.graph.Successors(n, EDGE_ENTITY)
	return l
}

// parents returns the structural predecessors of a known node.
func (m *Model) parents(n string) []string {
	l, _ := m.graph.Predecessors(n, EDGE_ENTITY)
	return l
}

// entityType returns the category of a known node, or
// the empty string, if the node is no entity.
func (m *Model) entityType(n string) EntityType {
	t, _ := m.graph.NodeAttrib(n, ATTR_ENT_TYPE)
	if et, ok := t.(EntityType); ok {
		if nt, _ := m.graph.NodeAttrib(n, ATTR_NODE_TYPE); nt == NODE_ENTITY {
			return et
		}
	}
	return ""
}

// EntType returns the category of an entity.
func (m *Model) EntType(id string) (EntityType, error) {
	if !m.graph.HasNode(id) {
		return "", errEntity(id)
	}
	t := m.entityType(id)
	if t == "" {
		return "", errEntity(id)
	}
	return t, nil
}

func (m *Model) checkEntity(id string, t EntityType) error {
	et, err := m.EntType(id)
	if err != nil {
		return err
	}
	if et != t {
		return errEntity(id, t)
	}
	return nil
}

func checkEntityType(t EntityType) error {
	if !t.IsEntity() {
		return fmt.Errorf("%w: %q", ErrUnknownEntityType, t)
	}
	return nil
}

// SetModelAttribValue sets a model attribute. Model attributes
// are kept outside the graph and are neither typed nor deduplicated.
func (m *Model) SetModelAttribValue(name string, value interface{}) error {
	v, err := NewValue(value)
	if err != nil {
		return fmt.Errorf("model attribute %q: %w", name, err)
	}
	if _, ok := m.modelAttrs[name]; !ok {
		m.modelOrder = append(m.modelOrder, name)
	}
	m.modelAttrs[name] = v
	return nil
}

// GetModelAttribValue returns a copy of a model attribute value.
func (m *Model) GetModelAttribValue(name string) (interface{}, bool) {
	v, ok := m.modelAttrs[name]
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}

// ModelAttribNames returns the model attribute names in
// the order they have been set first.
func (m *Model) ModelAttribNames() []string {
	return slices.Clone(m.modelOrder)
}
