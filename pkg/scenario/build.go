package scenario

import (
	"fmt"

	"github.com/mandelsoft/simgraph/pkg/sim"
	"github.com/mandelsoft/simgraph/pkg/utils"
)

type builder struct {
	model *sim.Model
	names Names
}

// Build creates the model described by the scenario.
// It returns the model and the ids of the named entities.
func (s *Scenario) Build(opts ...sim.Option) (*sim.Model, Names, error) {
	b := &builder{
		model: sim.New(opts...),
		names: Names{},
	}
	err := b.build(s)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("scenario built with {{count}} named entities", "count", len(b.names))
	return b.model, b.names, nil
}

func (b *builder) build(s *Scenario) error {
	for _, a := range s.Attributes {
		t, err := sim.ParseEntityType(a.Category)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		dt, err := sim.ParseDataType(a.Type)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		err = b.model.AddAttrib(t, a.Name, dt)
		if err != nil {
			return err
		}
	}

	for _, p := range s.Positions {
		err := b.add("position", p.Entity, func() (string, error) {
			return b.model.AddPosi(p.XYZ)
		})
		if err != nil {
			return err
		}
	}
	for _, p := range s.Points {
		err := b.add("point", p.Entity, func() (string, error) {
			posi, err := b.names.Id(p.Position)
			if err != nil {
				return "", err
			}
			return b.model.AddPoint(posi)
		})
		if err != nil {
			return err
		}
	}
	for _, p := range s.Plines {
		err := b.add("polyline", p.Entity, func() (string, error) {
			posis, err := b.names.Ids(p.Positions...)
			if err != nil {
				return "", err
			}
			return b.model.AddPline(posis, p.Closed)
		})
		if err != nil {
			return err
		}
	}
	for _, p := range s.Pgons {
		err := b.add("polygon", p.Entity, func() (string, error) {
			posis, err := b.names.Ids(p.Positions...)
			if err != nil {
				return "", err
			}
			holes, err := utils.TransformSliceErr(p.Holes, func(h []string) ([]string, error) {
				return b.names.Ids(h...)
			})
			if err != nil {
				return "", err
			}
			return b.model.AddPgon(posis, holes...)
		})
		if err != nil {
			return err
		}
	}

	colls := make([]string, len(s.Colls))
	for i, c := range s.Colls {
		err := b.add("collection", c.Entity, func() (string, error) {
			id, err := b.model.AddColl()
			colls[i] = id
			return id, err
		})
		if err != nil {
			return err
		}
	}
	for i, c := range s.Colls {
		members, err := b.names.Ids(c.Members...)
		if err != nil {
			return fmt.Errorf("collection %q: %w", c.Name, err)
		}
		for _, e := range members {
			err = b.model.AddCollEnt(colls[i], e)
			if err != nil {
				return fmt.Errorf("collection %q: %w", c.Name, err)
			}
		}
	}

	for _, a := range s.Model {
		err := b.model.SetModelAttribValue(a.Name, a.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// add creates an entity, registers its name and
// sets its attributes.
func (b *builder) add(kind string, e Entity, create func() (string, error)) error {
	id, err := create()
	if err != nil {
		return b.error(kind, e, err)
	}
	if e.Name != "" {
		if _, ok := b.names[e.Name]; ok {
			return b.error(kind, e, ErrDuplicateName)
		}
		b.names[e.Name] = id
	}
	for _, k := range utils.OrderedMapKeys(e.Attributes) {
		err = b.model.SetAttribValue(id, k, e.Attributes[k])
		if err != nil {
			return b.error(kind, e, err)
		}
	}
	return nil
}

func (b *builder) error(kind string, e Entity, err error) error {
	if e.Name == "" {
		return fmt.Errorf("%s: %w", kind, err)
	}
	return fmt.Errorf("%s %q: %w", kind, e.Name, err)
}
