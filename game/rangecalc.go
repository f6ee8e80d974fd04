package game

import (
	"fmt"
	"sort"

	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/util"
)

// DangerZone is the set of tiles threatened by at least one known,
// affordable action from at least one landable reachable position.
type DangerZone map[grid.Int2]bool

func (d DangerZone) Contains(tile grid.Int2) bool {
	return d[tile]
}

// ComputeDangerZone aggregates the threat of all of a unit's affordable
// actions over its reachable set.
//
// Phase A unions every static cycle-target footprint into one combined
// offset set and translates it once per landable tile. Phase B evaluates
// the complex actions (ground aim, procedural shapes, sight-limited rays,
// teleport strikes) individually from every landable tile.
//
// Teleport strikes can open tiles reachable only via the teleport; those
// are inserted into the passed ReachableSet as non-landable entries and
// also returned explicitly so the mutation is visible in the contract.
// They never feed back into further expansion.
func ComputeDangerZone(world *World, unit *Unit, knownActions []string, reachable ReachableSet) (DangerZone, []grid.Int2) {
	zone := make(DangerZone)
	catalog := world.GetCatalog()

	combined := make(map[grid.Int2]bool)
	var complexDefs []*ActionDefinition
	for _, name := range knownActions {
		def, known := catalog.GetAction(name)
		if !known {
			util.LogRangeError(fmt.Sprintf("[RangeCalc] unknown action %s on %s, skipping", name, unit.GetName()))
			continue
		}
		pattern, patternKnown := catalog.ResolvePattern(def)
		if !patternKnown {
			util.LogRangeError(fmt.Sprintf("[RangeCalc] unknown pattern %s for action %s, skipping", def.PatternType, def.Name))
			continue
		}
		if !unit.CanAfford(def) {
			continue
		}
		if offsets, isStatic := staticFootprint(def, pattern); isStatic {
			for _, offset := range offsets {
				combined[offset] = true
			}
		} else {
			complexDefs = append(complexDefs, def)
		}
	}

	landable := landableTiles(reachable)

	// Phase A: one union-then-translate pass for all static footprints.
	for _, position := range landable {
		for offset := range combined {
			tile := position.Add(offset)
			if world.GetMap().ContainsGrid(tile) {
				zone[tile] = true
			}
		}
	}

	// Phase B: complex actions, one landable position at a time.
	var extraReachable []grid.Int2
	for _, def := range complexDefs {
		pattern, _ := catalog.ResolvePattern(def)
		for _, position := range landable {
			proxy := unit.ProxyAt(position)
			extras := markComplexAction(world, proxy, def, pattern, zone, reachable)
			for _, tile := range extras {
				if _, present := reachable[tile]; !present {
					reachable[tile] = ReachEntry{Cost: reachable[position].Cost + 1, Landable: false}
					extraReachable = append(extraReachable, tile)
				}
			}
		}
	}
	return zone, extraReachable
}

// ComputeSingleActionRange is the same logic for one action from the
// unit's current tile only, used for pre-movement previews.
func ComputeSingleActionRange(world *World, unit *Unit, actionName string) DangerZone {
	reachable := ReachableSet{unit.GetTilePosition(): {Cost: 0, Landable: true}}
	zone, _ := ComputeDangerZone(world, unit, []string{actionName}, reachable)
	return zone
}

// staticFootprint reports whether the action resolves to a fixed set of
// relative offsets usable in Phase A.
func staticFootprint(def *ActionDefinition, pattern Pattern) ([]grid.Int2, bool) {
	if def.Style != StyleCycleTarget || def.LineOfSightOnly || def.TeleportStrike {
		return nil, false
	}
	switch p := pattern.(type) {
	case FixedPattern:
		return p, true
	case ProceduralPattern:
		return nil, false
	default:
		// no pattern type: the raw diamond range fallback
		if def.Range > 0 {
			return grid.DiamondOffsets(def.MinRange, def.Range), true
		}
		return nil, false
	}
}

func landableTiles(reachable ReachableSet) []grid.Int2 {
	var tiles []grid.Int2
	for tile, entry := range reachable {
		if entry.Landable {
			tiles = append(tiles, tile)
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})
	return tiles
}

// markComplexAction marks every tile the action threatens from the
// proxy's position. The returned tiles are teleport landing spots that
// extend the reachable set.
func markComplexAction(world *World, proxy *Unit, def *ActionDefinition, pattern Pattern, zone DangerZone, reachable ReachableSet) []grid.Int2 {
	gameMap := world.GetMap()
	origin := proxy.GetTilePosition()

	if procedural, isProcedural := pattern.(ProceduralPattern); isProcedural {
		for _, facing := range grid.CardinalDirections {
			for _, rect := range procedural(proxy, gameMap, facing) {
				for _, tile := range rect.Tiles(gameMap.TileSize()) {
					if gameMap.ContainsGrid(tile) {
						zone[tile] = true
					}
				}
			}
		}
		return nil
	}

	if def.TeleportStrike {
		var extras []grid.Int2
		for _, target := range findTargetsFrom(world, proxy, def, origin) {
			zone[target.Tile] = true
			behind := behindTile(origin, target.Tile)
			if gameMap.ContainsGrid(behind) {
				extras = append(extras, behind)
			}
		}
		return extras
	}

	switch def.Style {
	case StyleGroundAim:
		for _, offset := range grid.DiamondOffsets(def.MinRange, def.Range) {
			aimTile := origin.Add(offset)
			if !gameMap.ContainsGrid(aimTile) {
				continue
			}
			zone[aimTile] = true
			if def.AoERadius > 0 {
				for _, blastOffset := range grid.DiamondOffsets(0, def.AoERadius) {
					blastTile := aimTile.Add(blastOffset)
					if gameMap.ContainsGrid(blastTile) {
						zone[blastTile] = true
					}
				}
			}
		}
	default:
		if def.LineOfSightOnly {
			for _, direction := range grid.CardinalDirections {
				for _, tile := range LOSRay(world, origin, direction, def.MinRange, def.Range, def.Piercing) {
					zone[tile] = true
				}
			}
		} else if fixed, isFixed := pattern.(FixedPattern); isFixed {
			for _, facing := range grid.CardinalDirections {
				for _, offset := range fixed {
					tile := origin.Add(rotateOffset(offset, facing))
					if gameMap.ContainsGrid(tile) {
						zone[tile] = true
					}
				}
			}
		} else if def.Range > 0 {
			for _, offset := range grid.DiamondOffsets(def.MinRange, def.Range) {
				tile := origin.Add(offset)
				if gameMap.ContainsGrid(tile) {
					zone[tile] = true
				}
			}
		}
	}
	return nil
}

// rotateOffset turns a north-facing pattern offset into the given facing.
func rotateOffset(offset, facing grid.Int2) grid.Int2 {
	switch facing {
	case grid.EastDir:
		return grid.Int2{X: -offset.Y, Y: offset.X}
	case grid.SouthDir:
		return grid.Int2{X: -offset.X, Y: -offset.Y}
	case grid.WestDir:
		return grid.Int2{X: offset.Y, Y: -offset.X}
	default:
		return offset
	}
}

// behindTile is the tile continuing the actor-to-target direction, the
// landing spot of a teleport strike.
func behindTile(origin, target grid.Int2) grid.Int2 {
	return target.Add(target.Sub(origin).ToCardinalDirection())
}
