package sim

// ranks assigns a hierarchy level to the entity categories.
// Navigation moves from higher to lower ranks along structural
// edges and backwards in the opposite direction.
type ranks map[EntityType]int

var (
	defaultRanks = ranks{POSIS: 0, VERTS: 1, EDGES: 2, WIRES: 3, POINTS: 4, PLINES: 4, PGONS: 4, COLLS: 5}
	pointRanks   = ranks{POSIS: 0, VERTS: 1, POINTS: 2, COLLS: 3}
	plineRanks   = ranks{POSIS: 0, VERTS: 1, EDGES: 2, WIRES: 3, PLINES: 4, COLLS: 5}
	pgonRanks    = ranks{POSIS: 0, VERTS: 1, EDGES: 2, WIRES: 3, PGONS: 4, COLLS: 5}
)

// ranksFor selects the rank table for a navigation between two
// categories. Points take precedence over polylines and polylines
// over polygons.
func ranksFor(target, source EntityType) ranks {
	switch {
	case target == POINTS || source == POINTS:
		return pointRanks
	case target == PLINES || source == PLINES:
		return plineRanks
	case target == PGONS || source == PGONS:
		return pgonRanks
	default:
		return defaultRanks
	}
}
