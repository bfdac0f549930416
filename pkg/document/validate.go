package document

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks the references of a document.
// All problems are reported together.
func (d *Document) Validate() error {
	var errs []error

	g := &d.Geometry
	checkIndex := func(what string, idx int, max int) {
		if idx < 0 || idx >= max {
			errs = append(errs, fmt.Errorf("%s: index %d out of range [0,%d)", what, idx, max))
		}
	}

	for i, p := range g.Points {
		checkIndex(fmt.Sprintf("point %d", i), p, g.NumPosis)
	}
	for i, l := range g.Plines {
		if len(l) < 2 {
			errs = append(errs, fmt.Errorf("polyline %d: requires at least 2 positions", i))
		}
		for _, p := range l {
			checkIndex(fmt.Sprintf("polyline %d", i), p, g.NumPosis)
		}
	}
	for i, pg := range g.Pgons {
		if len(pg) == 0 {
			errs = append(errs, fmt.Errorf("polygon %d: no wires", i))
		}
		for w, l := range pg {
			if len(l) < 3 {
				errs = append(errs, fmt.Errorf("polygon %d wire %d: requires at least 3 positions", i, w))
			}
			for _, p := range l {
				checkIndex(fmt.Sprintf("polygon %d wire %d", i, w), p, g.NumPosis)
			}
		}
	}

	colls := len(g.CollPoints)
	if len(g.CollPlines) != colls || len(g.CollPgons) != colls || len(g.CollColls) != colls {
		errs = append(errs, fmt.Errorf("collection lists differ in length"))
	} else {
		for i := 0; i < colls; i++ {
			what := fmt.Sprintf("collection %d", i)
			for _, e := range g.CollPoints[i] {
				checkIndex(what+" point", e, len(g.Points))
			}
			for _, e := range g.CollPlines[i] {
				checkIndex(what+" polyline", e, len(g.Plines))
			}
			for _, e := range g.CollPgons[i] {
				checkIndex(what+" polygon", e, len(g.Pgons))
			}
			for _, e := range g.CollColls[i] {
				checkIndex(what+" collection", e, colls)
				if e == i {
					errs = append(errs, fmt.Errorf("%s: contains itself", what))
				}
			}
		}
	}

	counts := map[string]int{
		"posis":  g.NumPosis,
		"points": len(g.Points),
		"plines": len(g.Plines),
		"pgons":  len(g.Pgons),
		"colls":  colls,
	}
	for _, c := range Categories {
		atts, _ := d.Attributes.For(c)
		var names []string
		for _, a := range *atts {
			what := fmt.Sprintf("%s attribute %q", c, a.Name)
			if slices.Contains(names, a.Name) {
				errs = append(errs, fmt.Errorf("%s: duplicate definition", what))
			}
			names = append(names, a.Name)
			if len(a.Values) != len(a.Entities) {
				errs = append(errs, fmt.Errorf("%s: %d values, but %d entity lists", what, len(a.Values), len(a.Entities)))
			}
			if max, ok := counts[c]; ok {
				for _, l := range a.Entities {
					for _, e := range l {
						checkIndex(what, e, max)
					}
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(errs...))
	}
	return nil
}
