package document

import (
	"encoding/json"
	"fmt"
)

const (
	TYPE    = "SIM"
	VERSION = "0.1"
)

// Document is the flat export representation of a model.
// Entities are referenced by their dense index within
// their category.
type Document struct {
	Type       string     `json:"type"`
	Version    string     `json:"version"`
	Geometry   Geometry   `json:"geometry"`
	Attributes Attributes `json:"attributes"`
}

func New() *Document {
	return &Document{
		Type:    TYPE,
		Version: VERSION,
		Geometry: Geometry{
			Points:     []int{},
			Plines:     [][]int{},
			Pgons:      [][][]int{},
			CollPoints: [][]int{},
			CollPlines: [][]int{},
			CollPgons:  [][]int{},
			CollColls:  [][]int{},
		},
		Attributes: Attributes{
			Posis:  []AttributeData{},
			Verts:  []AttributeData{},
			Edges:  []AttributeData{},
			Wires:  []AttributeData{},
			Points: []AttributeData{},
			Plines: []AttributeData{},
			Pgons:  []AttributeData{},
			Colls:  []AttributeData{},
			Model:  []ModelAttribute{},
		},
	}
}

// Geometry describes the topology. Polylines and polygon wires
// are lists of position indices, the coll_* lists hold the
// members of the collection with the same index.
type Geometry struct {
	NumPosis   int       `json:"num_posis"`
	Points     []int     `json:"points"`
	Plines     [][]int   `json:"plines"`
	Pgons      [][][]int `json:"pgons"`
	CollPoints [][]int   `json:"coll_points"`
	CollPlines [][]int   `json:"coll_plines"`
	CollPgons  [][]int   `json:"coll_pgons"`
	CollColls  [][]int   `json:"coll_colls"`
}

type Attributes struct {
	Posis  []AttributeData  `json:"posis"`
	Verts  []AttributeData  `json:"verts"`
	Edges  []AttributeData  `json:"edges"`
	Wires  []AttributeData  `json:"wires"`
	Points []AttributeData  `json:"points"`
	Plines []AttributeData  `json:"plines"`
	Pgons  []AttributeData  `json:"pgons"`
	Colls  []AttributeData  `json:"colls"`
	Model  []ModelAttribute `json:"model"`
}

// Categories lists the entity categories of a document in order.
var Categories = []string{"posis", "verts", "edges", "wires", "points", "plines", "pgons", "colls"}

// For returns the attribute list of an entity category.
func (a *Attributes) For(category string) (*[]AttributeData, error) {
	switch category {
	case "posis":
		return &a.Posis, nil
	case "verts":
		return &a.Verts, nil
	case "edges":
		return &a.Edges, nil
	case "wires":
		return &a.Wires, nil
	case "points":
		return &a.Points, nil
	case "plines":
		return &a.Plines, nil
	case "pgons":
		return &a.Pgons, nil
	case "colls":
		return &a.Colls, nil
	}
	return nil, fmt.Errorf("unknown category %q", category)
}

// AttributeData holds the distinct values of one attribute.
// Entities[i] lists the entity indices holding Values[i].
type AttributeData struct {
	Name     string        `json:"name"`
	DataType string        `json:"data_type"`
	Values   []interface{} `json:"values"`
	Entities [][]int       `json:"entities"`
}

// ModelAttribute is a model level attribute.
// It is encoded as a [name, value] pair.
type ModelAttribute struct {
	Name  string
	Value interface{}
}

func (a ModelAttribute) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{a.Name, a.Value})
}

func (a *ModelAttribute) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	err := json.Unmarshal(data, &pair)
	if err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("model attribute requires name and value, but got %d elements", len(pair))
	}
	err = json.Unmarshal(pair[0], &a.Name)
	if err != nil {
		return fmt.Errorf("model attribute name: %w", err)
	}
	return json.Unmarshal(pair[1], &a.Value)
}
