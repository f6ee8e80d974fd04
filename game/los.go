package game

import "github.com/memmaker/skirmish/engine/grid"

// HasLineOfSight reports whether a straight row or column runs from one
// tile to another with every intermediate tile free of units, obstacles
// and ledge crossings. Piercing attacks ignore the blocking rules but
// still need the shared row/column.
func HasLineOfSight(world *World, from, to grid.Int2, piercing bool) bool {
	if from.X != to.X && from.Y != to.Y {
		return false
	}
	if from == to {
		return true
	}
	if piercing {
		return true
	}
	direction := to.Sub(from).ToCardinalDirection()
	current := from
	for {
		next := current.Add(direction)
		if world.GetMap().IsLedgeBlocked(current, next) {
			return false
		}
		if next == to {
			return true
		}
		if blocksSight(world, next) {
			return false
		}
		current = next
	}
}

func blocksSight(world *World, tile grid.Int2) bool {
	if _, occupied := world.UnitAt(tile); occupied {
		return true
	}
	if obstacle, blocked := world.ObstacleAt(tile); blocked && !obstacle.IsTrap() {
		return true
	}
	return false
}

// LOSRay walks outward from origin in one cardinal direction and returns
// every tile within [minRange, maxRange] that a sight-limited attack can
// hit. The first blocking tile is included (the blocker itself can be
// hit), then the ray stops unless the attack pierces.
func LOSRay(world *World, origin, direction grid.Int2, minRange, maxRange int32, piercing bool) []grid.Int2 {
	var tiles []grid.Int2
	current := origin
	for step := int32(1); step <= maxRange; step++ {
		next := current.Add(direction)
		if !world.GetMap().ContainsGrid(next) {
			break
		}
		if !piercing && world.GetMap().IsLedgeBlocked(current, next) {
			break
		}
		if step >= minRange {
			tiles = append(tiles, next)
		}
		if !piercing && blocksSight(world, next) {
			break
		}
		current = next
	}
	return tiles
}
