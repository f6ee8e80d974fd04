package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/path"
	"github.com/memmaker/skirmish/engine/util"
)

type ReachEntry struct {
	Cost     int
	Landable bool
}

// ReachableSet maps every tile the unit can step onto this turn to its
// cost and whether the unit may end its movement there.
type ReachableSet map[grid.Int2]ReachEntry

// TilePather adapts the world's passability rules to the generic search.
type TilePather struct {
	gameMap *grid.Map
	world   *World
	unit    *Unit
}

func NewPather(world *World, unit *Unit) *TilePather {
	return &TilePather{gameMap: world.GetMap(), world: world, unit: unit}
}

func (t *TilePather) GetNeighbors(node grid.Int2) []grid.Int2 {
	return t.gameMap.GetNeighbors(node, func(neighbor grid.Int2) bool {
		return t.canPass(node, neighbor)
	})
}

// canPass checks the directional ledge first, then classifies the
// destination tile into exactly one case, in the fixed precedence
// trap > impassable > ordinary obstacle > water > occupied > empty.
func (t *TilePather) canPass(from, to grid.Int2) bool {
	if t.gameMap.IsLedgeBlocked(from, to) {
		return false
	}
	if obstacle, blocked := t.world.ObstacleAt(to); blocked {
		if obstacle.IsTrap() {
			return true
		}
		if obstacle.IsImpassable() {
			return false
		}
		return t.unit.IsFlying()
	}
	if t.gameMap.IsWaterAt(to) {
		return t.unit.IsFlying() || t.unit.IsSwimming()
	}
	if occupant, occupied := t.world.UnitAt(to); occupied {
		return t.unit.IsFlying() || occupant.GetTeam() == t.unit.GetTeam()
	}
	return true
}

// canLand reports whether the unit may end its movement on the tile. Only
// queried for tiles that already passed canPass.
func (t *TilePather) canLand(tile grid.Int2) bool {
	if t.gameMap.IsOccupiedExcept(tile, t.unit) {
		return false
	}
	if obstacle, blocked := t.world.ObstacleAt(tile); blocked {
		// traps are landable (and will trigger), anything else is not
		return obstacle.IsTrap()
	}
	if t.gameMap.IsWaterAt(tile) {
		return t.unit.IsFlying() || t.unit.IsSwimming()
	}
	return true
}

// ComputeReachable runs the budgeted breadth-first search for a unit and
// returns the reachable set plus the raw cameFrom/costSoFar maps needed
// for path reconstruction.
func ComputeReachable(world *World, unit *Unit) (ReachableSet, map[grid.Int2]grid.Int2, map[grid.Int2]int) {
	pather := NewPather(world, unit)
	start := unit.GetTilePosition()
	costSoFar, cameFrom := path.BreadthFirst[grid.Int2](start, unit.MovesLeft(), pather)

	reachable := make(ReachableSet, len(costSoFar))
	for node, cost := range costSoFar {
		if node == start {
			continue
		}
		reachable[node] = ReachEntry{Cost: cost, Landable: pather.canLand(node)}
	}
	// the unit's own tile is always in, whatever the terrain says
	reachable[start] = ReachEntry{Cost: 0, Landable: true}
	util.LogPathDebug(fmt.Sprintf("[Pathfinder] %s reaches %d tiles from %s", unit.GetName(), len(reachable), start.ToString()))
	return reachable, cameFrom, costSoFar
}

// ReconstructPath walks backward from goal to start and returns the path
// as pixel waypoints. At each step the most recent tile of the player's
// cursor-drag history wins if it is adjacent and on a shortest path, so
// the unit walks the route the player actually traced. A missing
// predecessor truncates the path and logs through the path category.
func ReconstructPath(cameFrom map[grid.Int2]grid.Int2, costSoFar map[grid.Int2]int, cursorHistory []grid.Int2, start, goal grid.Int2, gameMap *grid.Map) []mgl32.Vec2 {
	tiles := []grid.Int2{goal}
	current := goal
	for current != start {
		currentCost := costSoFar[current]
		next, found := historyPredecessor(costSoFar, cursorHistory, current, currentCost)
		if !found {
			next, found = cameFrom[current]
		}
		if !found {
			util.LogPathError(fmt.Sprintf("[Pathfinder] no predecessor for %s, returning partial path", current.ToString()))
			break
		}
		tiles = append(tiles, next)
		current = next
	}

	waypoints := make([]mgl32.Vec2, 0, len(tiles))
	for index := len(tiles) - 1; index >= 0; index-- {
		waypoints = append(waypoints, tiles[index].ToPixelCenter(gameMap.TileSize()))
	}
	return waypoints
}

func historyPredecessor(costSoFar map[grid.Int2]int, cursorHistory []grid.Int2, current grid.Int2, currentCost int) (grid.Int2, bool) {
	for index := len(cursorHistory) - 1; index >= 0; index-- {
		candidate := cursorHistory[index]
		if grid.ManhattanDistance2(candidate, current) != 1 {
			continue
		}
		if cost, visited := costSoFar[candidate]; visited && cost == currentCost-1 {
			return candidate, true
		}
	}
	return grid.Int2{}, false
}
