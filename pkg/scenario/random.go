package scenario

import (
	"fmt"
	"math/rand"

	"github.com/goombaio/namegenerator"
)

type RandomOptions struct {
	Seed   int64
	Posis  int
	Points int
	Plines int
	Pgons  int
	Colls  int
}

func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Seed:   1,
		Posis:  20,
		Points: 5,
		Plines: 5,
		Pgons:  5,
		Colls:  3,
	}
}

// Random generates a scenario with random geometry. The same seed
// always generates the same scenario. Collections get a generated
// name stored in the name attribute, they may contain geometry and
// collections generated before. Negative counts are treated as zero.
func Random(opts RandomOptions) *Scenario {
	r := rand.New(rand.NewSource(opts.Seed))
	generator := namegenerator.NewNameGenerator(opts.Seed)

	s := &Scenario{
		Attributes: []AttributeDef{{Category: "colls", Name: "name", Type: "string"}},
		Model:      []ModelAttribute{{Name: "seed", Value: opts.Seed}},
	}

	posis := make([]string, max(opts.Posis, 0))
	for i := range posis {
		posis[i] = fmt.Sprintf("ps%d", i)
		s.Positions = append(s.Positions, Position{
			Entity: Entity{Name: posis[i]},
			XYZ:    []float64{float64(r.Intn(100)), float64(r.Intn(100)), float64(r.Intn(100))},
		})
	}
	choose := func(lo, hi int) []string {
		n := lo + r.Intn(hi-lo+1)
		var result []string
		for _, i := range r.Perm(len(posis))[:n] {
			result = append(result, posis[i])
		}
		return result
	}

	var members []string
	if len(posis) > 0 {
		for i := 0; i < opts.Points; i++ {
			p := Point{Entity: Entity{Name: fmt.Sprintf("pt%d", i)}, Position: posis[r.Intn(len(posis))]}
			s.Points = append(s.Points, p)
			members = append(members, p.Name)
		}
	}
	if len(posis) >= 2 {
		for i := 0; i < opts.Plines; i++ {
			p := Pline{
				Entity:    Entity{Name: fmt.Sprintf("pl%d", i)},
				Positions: choose(2, min(5, len(posis))),
				Closed:    r.Intn(2) == 0,
			}
			s.Plines = append(s.Plines, p)
			members = append(members, p.Name)
		}
	}
	if len(posis) >= 3 {
		for i := 0; i < opts.Pgons; i++ {
			p := Pgon{
				Entity:    Entity{Name: fmt.Sprintf("pg%d", i)},
				Positions: choose(3, min(6, len(posis))),
			}
			s.Pgons = append(s.Pgons, p)
			members = append(members, p.Name)
		}
	}
	for i := 0; i < opts.Colls; i++ {
		c := Coll{
			Entity: Entity{
				Name:       fmt.Sprintf("co%d", i),
				Attributes: map[string]interface{}{"name": generator.Generate()},
			},
		}
		for _, m := range members {
			if r.Intn(3) == 0 {
				c.Members = append(c.Members, m)
			}
		}
		s.Colls = append(s.Colls, c)
		members = append(members, c.Name)
	}
	log.Debug("random scenario generated", "seed", opts.Seed)
	return s
}
