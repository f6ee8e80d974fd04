package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/util"
)

// Target is either a unit or, for ground aim and the social moves, a tile.
type Target struct {
	Unit *Unit
	Tile grid.Int2
}

func unitTarget(unit *Unit) Target {
	return Target{Unit: unit, Tile: unit.GetTilePosition()}
}

func tileTarget(tile grid.Int2) Target {
	return Target{Tile: tile}
}

// FindValidTargets enumerates the concrete valid targets of an action from
// the actor's current tile. Order is stable: the candidate pool iterates
// in unit insertion order, so cycle-next/previous is reproducible.
func FindValidTargets(world *World, actor *Unit, actionName string) []Target {
	def, known := world.GetCatalog().GetAction(actionName)
	if !known {
		util.LogTargetError(fmt.Sprintf("[TargetResolver] unknown action %s for %s", actionName, actor.GetName()))
		return nil
	}
	return findTargetsFrom(world, actor, def, actor.GetTilePosition())
}

func findTargetsFrom(world *World, actor *Unit, def *ActionDefinition, origin grid.Int2) []Target {
	pattern, patternKnown := world.GetCatalog().ResolvePattern(def)
	if !patternKnown {
		util.LogTargetError(fmt.Sprintf("[TargetResolver] unknown pattern %s for action %s", def.PatternType, def.Name))
		return nil
	}

	switch def.Style {
	case StyleGroundAim:
		return groundAimTargets(world, def, origin)
	case StyleNoTarget:
		return nil
	case StyleDirectionalAim:
		return directionalTargets(world, actor, def, pattern, origin)
	default:
		return unitTargets(world, actor, def, pattern, origin)
	}
}

func candidatePool(world *World, actor *Unit, affects Affects) []*Unit {
	var pool []*Unit
	for _, unit := range world.AllUnits() {
		if unit == actor || unit.UnitID() == actor.UnitID() {
			continue
		}
		if !unit.IsActive() {
			continue
		}
		sameTeam := unit.GetTeam() == actor.GetTeam()
		if affects == AffectsEnemies && sameTeam {
			continue
		}
		if affects == AffectsAllies && !sameTeam {
			continue
		}
		pool = append(pool, unit)
	}
	return pool
}

func unitTargets(world *World, actor *Unit, def *ActionDefinition, pattern Pattern, origin grid.Int2) []Target {
	var targets []Target
	for _, candidate := range candidatePool(world, actor, def.Affects) {
		if def.Healing && candidate.IsAtFullHealth() {
			continue
		}
		candidateTile := candidate.GetTilePosition()
		if fixed, isFixed := pattern.(FixedPattern); isFixed {
			if !offsetInPattern(fixed, candidateTile.Sub(origin)) {
				continue
			}
		} else {
			distance := grid.ManhattanDistance2(origin, candidateTile)
			if distance < def.MinRange || distance > def.Range {
				continue
			}
			if def.LineOfSightOnly && !HasLineOfSight(world, origin, candidateTile, def.Piercing) {
				continue
			}
		}
		if def.TeleportStrike && !teleportLandingFree(world, origin, candidateTile) {
			continue
		}
		targets = append(targets, unitTarget(candidate))
	}
	return targets
}

func offsetInPattern(pattern FixedPattern, offset grid.Int2) bool {
	for _, patternOffset := range pattern {
		if patternOffset == offset {
			return true
		}
	}
	return false
}

// teleportLandingFree checks the tile behind the candidate: the actor must
// have a legal spot to appear on.
func teleportLandingFree(world *World, origin, candidateTile grid.Int2) bool {
	behind := behindTile(origin, candidateTile)
	if !world.GetMap().ContainsGrid(behind) {
		return false
	}
	if world.GetMap().IsOccupied(behind) {
		return false
	}
	if obstacle, blocked := world.ObstacleAt(behind); blocked && !obstacle.IsTrap() {
		return false
	}
	return true
}

func groundAimTargets(world *World, def *ActionDefinition, origin grid.Int2) []Target {
	var targets []Target
	for _, offset := range grid.DiamondOffsets(def.MinRange, def.Range) {
		tile := origin.Add(offset)
		if world.GetMap().ContainsGrid(tile) {
			targets = append(targets, tileTarget(tile))
		}
	}
	return targets
}

// directionalTargets projects the footprint in all four facings from the
// actor's tile; any candidate inside any facing's shape is valid once.
func directionalTargets(world *World, actor *Unit, def *ActionDefinition, pattern Pattern, origin grid.Int2) []Target {
	shape := make(map[grid.Int2]bool)
	for _, facing := range grid.CardinalDirections {
		switch p := pattern.(type) {
		case FixedPattern:
			for _, offset := range p {
				shape[origin.Add(rotateOffset(offset, facing))] = true
			}
		case ProceduralPattern:
			proxy := actor.ProxyAt(origin)
			for _, rect := range p(proxy, world.GetMap(), facing) {
				for _, tile := range rect.Tiles(world.GetMap().TileSize()) {
					shape[tile] = true
				}
			}
		}
	}
	var targets []Target
	for _, candidate := range candidatePool(world, actor, def.Affects) {
		if shape[candidate.GetTilePosition()] {
			targets = append(targets, unitTarget(candidate))
		}
	}
	return targets
}

// AdjacentUnitTargets returns the units at Manhattan distance exactly 1
// that pass the eligibility predicate, in pool order. The social moves
// (rescue, shove, take) are all built on this.
func AdjacentUnitTargets(world *World, actor *Unit, affects Affects, eligible func(candidate *Unit) bool) []Target {
	var targets []Target
	for _, candidate := range candidatePool(world, actor, affects) {
		if grid.ManhattanDistance2(actor.GetTilePosition(), candidate.GetTilePosition()) != 1 {
			continue
		}
		if eligible != nil && !eligible(candidate) {
			continue
		}
		targets = append(targets, unitTarget(candidate))
	}
	return targets
}

// RescueTargets are adjacent allies lighter than the actor.
func RescueTargets(world *World, actor *Unit) []Target {
	if actor.Carrying() != nil {
		return nil
	}
	return AdjacentUnitTargets(world, actor, AffectsAllies, func(candidate *Unit) bool {
		return candidate.GetWeight() < actor.GetWeight() && candidate.Carrying() == nil
	})
}

// TakeTargets are adjacent allies currently carrying someone.
func TakeTargets(world *World, actor *Unit) []Target {
	if actor.Carrying() != nil {
		return nil
	}
	return AdjacentUnitTargets(world, actor, AffectsAllies, func(candidate *Unit) bool {
		return candidate.Carrying() != nil
	})
}

// ShoveTargets are adjacent units with a free, in-bounds tile beyond them.
func ShoveTargets(world *World, actor *Unit) []Target {
	return AdjacentUnitTargets(world, actor, AffectsAll, func(candidate *Unit) bool {
		destination := shoveDestination(actor, candidate)
		return isFreeTile(world, destination)
	})
}

func shoveDestination(actor, candidate *Unit) grid.Int2 {
	direction := candidate.GetTilePosition().Sub(actor.GetTilePosition())
	return candidate.GetTilePosition().Add(direction)
}

// DropTargets are the adjacent tiles the carried unit can be set down on.
func DropTargets(world *World, actor *Unit) []Target {
	if actor.Carrying() == nil {
		return nil
	}
	var targets []Target
	for _, direction := range grid.CardinalDirections {
		tile := actor.GetTilePosition().Add(direction)
		if isFreeTile(world, tile) {
			targets = append(targets, tileTarget(tile))
		}
	}
	return targets
}

func isFreeTile(world *World, tile grid.Int2) bool {
	if !world.GetMap().ContainsGrid(tile) {
		return false
	}
	if world.GetMap().IsOccupied(tile) {
		return false
	}
	if obstacle, blocked := world.ObstacleAt(tile); blocked && !obstacle.IsTrap() {
		return false
	}
	if world.GetMap().IsWaterAt(tile) {
		return false
	}
	return true
}
