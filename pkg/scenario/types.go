package scenario

import (
	"fmt"
)

var (
	ErrUnknownName   = fmt.Errorf("unknown entity name")
	ErrDuplicateName = fmt.Errorf("duplicate entity name")
)

// Scenario describes a model by named entities.
// Entities refer to other entities by name. Collections may
// refer to collections declared later in the list.
type Scenario struct {
	Attributes []AttributeDef   `json:"attributes,omitempty"`
	Positions  []Position       `json:"positions,omitempty"`
	Points     []Point          `json:"points,omitempty"`
	Plines     []Pline          `json:"plines,omitempty"`
	Pgons      []Pgon           `json:"pgons,omitempty"`
	Colls      []Coll           `json:"colls,omitempty"`
	Model      []ModelAttribute `json:"model,omitempty"`
}

type AttributeDef struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}

// Entity is the common part of all entity descriptions.
// The name is optional, unnamed entities cannot be referenced.
type Entity struct {
	Name       string                 `json:"name,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

type Position struct {
	Entity
	XYZ []float64 `json:"xyz"`
}

type Point struct {
	Entity
	Position string `json:"position"`
}

type Pline struct {
	Entity
	Positions []string `json:"positions"`
	Closed    bool     `json:"closed,omitempty"`
}

type Pgon struct {
	Entity
	Positions []string   `json:"positions"`
	Holes     [][]string `json:"holes,omitempty"`
}

type Coll struct {
	Entity
	Members []string `json:"members,omitempty"`
}

type ModelAttribute struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// Names maps entity names to model ids.
type Names map[string]string

// Id resolves an entity name.
func (n Names) Id(name string) (string, error) {
	id, ok := n[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return id, nil
}

// Ids resolves a list of entity names.
func (n Names) Ids(names ...string) ([]string, error) {
	ids := make([]string, len(names))
	for i, name := range names {
		id, err := n.Id(name)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
