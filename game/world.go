package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/util"
)

// World is the explicit context object passed into every computation.
// There are no module-level singletons; everything the core reads or
// mutates hangs off a World.
type World struct {
	gameMap *grid.Map
	catalog *Catalog

	units     map[uint64]*Unit
	unitOrder []uint64

	obstacles     map[uint64]*Obstacle
	obstacleIndex map[grid.Int2]*Obstacle

	nextID uint64

	factions            []Team
	currentFactionIndex int

	// entity changes during an input pass are deferred to Commit
	pendingSpawns   []*Unit
	pendingDespawns []uint64
}

func NewWorld(gameMap *grid.Map, catalog *Catalog) *World {
	println(fmt.Sprintf("[World] created on %d x %d map", gameMap.Width(), gameMap.Height()))
	return &World{
		gameMap:       gameMap,
		catalog:       catalog,
		units:         make(map[uint64]*Unit),
		obstacles:     make(map[uint64]*Obstacle),
		obstacleIndex: make(map[grid.Int2]*Obstacle),
		factions:      []Team{TeamPlayer, TeamEnemy},
	}
}

func (w *World) GetMap() *grid.Map {
	return w.gameMap
}

func (w *World) GetCatalog() *Catalog {
	return w.catalog
}

// AddUnit registers a unit immediately. Use ScheduleSpawn from inside an
// input pass instead.
func (w *World) AddUnit(unit *Unit, pos grid.Int2) uint64 {
	w.nextID++
	unit.SetUnitID(w.nextID)
	unit.SetMap(w.gameMap)
	unit.SetTilePosition(pos)
	w.units[unit.UnitID()] = unit
	w.unitOrder = append(w.unitOrder, unit.UnitID())
	util.LogWorldInfo(fmt.Sprintf("[World] added unit %d -> %s (%s) at %s", unit.UnitID(), unit.GetName(), unit.GetTeam().ToString(), pos.ToString()))
	return unit.UnitID()
}

func (w *World) AddObstacle(obstacle *Obstacle) uint64 {
	w.nextID++
	obstacle.SetObstacleID(w.nextID)
	w.obstacles[obstacle.ObstacleID()] = obstacle
	for _, offset := range obstacle.GetOccupiedOffsets() {
		w.obstacleIndex[obstacle.GetTilePosition().Add(offset)] = obstacle
	}
	util.LogWorldInfo(fmt.Sprintf("[World] added obstacle %d -> %s at %s", obstacle.ObstacleID(), obstacle.GetName(), obstacle.GetTilePosition().ToString()))
	return obstacle.ObstacleID()
}

func (w *World) RemoveObstacle(obstacle *Obstacle) {
	delete(w.obstacles, obstacle.ObstacleID())
	for _, offset := range obstacle.GetOccupiedOffsets() {
		if w.obstacleIndex[obstacle.GetTilePosition().Add(offset)] == obstacle {
			delete(w.obstacleIndex, obstacle.GetTilePosition().Add(offset))
		}
	}
}

// ScheduleSpawn queues a unit for insertion at the next Commit, so
// iteration during the current input pass never observes it.
func (w *World) ScheduleSpawn(unit *Unit, pos grid.Int2) {
	unit.SetMap(w.gameMap)
	unit.tilePos = pos
	w.pendingSpawns = append(w.pendingSpawns, unit)
}

func (w *World) ScheduleDespawn(unitID uint64) {
	w.pendingDespawns = append(w.pendingDespawns, unitID)
}

// Commit flushes the deferred entity queues: additions first, then
// removals. Called between input-processing passes.
func (w *World) Commit() {
	for _, unit := range w.pendingSpawns {
		pos := unit.GetTilePosition()
		w.nextID++
		unit.SetUnitID(w.nextID)
		unit.SetTilePosition(pos)
		w.units[unit.UnitID()] = unit
		w.unitOrder = append(w.unitOrder, unit.UnitID())
		util.LogWorldInfo(fmt.Sprintf("[World] spawned unit %d -> %s at %s", unit.UnitID(), unit.GetName(), pos.ToString()))
	}
	w.pendingSpawns = nil
	for _, unitID := range w.pendingDespawns {
		unit, known := w.units[unitID]
		if !known {
			continue
		}
		w.gameMap.RemoveUnit(unit)
		delete(w.units, unitID)
		for index, id := range w.unitOrder {
			if id == unitID {
				w.unitOrder = append(w.unitOrder[:index], w.unitOrder[index+1:]...)
				break
			}
		}
		util.LogWorldInfo(fmt.Sprintf("[World] despawned unit %d -> %s", unitID, unit.GetName()))
	}
	w.pendingDespawns = nil
}

func (w *World) GetUnit(unitID uint64) *Unit {
	return w.units[unitID]
}

// AllUnits iterates in insertion order so every enumeration in the core is
// deterministic.
func (w *World) AllUnits() []*Unit {
	result := make([]*Unit, 0, len(w.unitOrder))
	for _, unitID := range w.unitOrder {
		result = append(result, w.units[unitID])
	}
	return result
}

func (w *World) LivingUnits(team Team) []*Unit {
	var result []*Unit
	for _, unit := range w.AllUnits() {
		if unit.GetTeam() == team && unit.IsActive() {
			result = append(result, unit)
		}
	}
	return result
}

func (w *World) UnitAt(pos grid.Int2) (*Unit, bool) {
	occupant := w.gameMap.GetMapObjectAt(pos)
	unit, isUnit := occupant.(*Unit)
	return unit, isUnit
}

func (w *World) ObstacleAt(pos grid.Int2) (*Obstacle, bool) {
	obstacle, known := w.obstacleIndex[pos]
	if !known || obstacle.IsDestroyed() {
		return nil, false
	}
	return obstacle, true
}

func (w *World) CurrentFaction() Team {
	return w.factions[w.currentFactionIndex]
}

// NextFaction hands the turn to the other side and refreshes its units.
func (w *World) NextFaction() Team {
	println(fmt.Sprintf("[World] Ending turn for %s", w.CurrentFaction().ToString()))
	w.currentFactionIndex = (w.currentFactionIndex + 1) % len(w.factions)
	println(fmt.Sprintf("[World] Starting turn for %s", w.CurrentFaction().ToString()))
	for _, unit := range w.LivingUnits(w.CurrentFaction()) {
		unit.NextTurn()
	}
	return w.CurrentFaction()
}

// AllUnitsActed reports whether every living unit of a team has acted,
// which is the turn-should-end condition.
func (w *World) AllUnitsActed(team Team) bool {
	for _, unit := range w.LivingUnits(team) {
		if !unit.HasActed() {
			return false
		}
	}
	return true
}

func (w *World) IsGameOver() (bool, Team) {
	playerAlive := len(w.LivingUnits(TeamPlayer)) > 0
	enemyAlive := len(w.LivingUnits(TeamEnemy)) > 0
	if playerAlive && !enemyAlive {
		return true, TeamPlayer
	}
	if enemyAlive && !playerAlive {
		return true, TeamEnemy
	}
	return false, TeamPlayer
}

func (w *World) Kill(killer, victim *Unit) {
	if killer != nil {
		println(fmt.Sprintf("[World] %s(%d) killed %s(%d)", killer.GetName(), killer.UnitID(), victim.GetName(), victim.UnitID()))
	} else {
		println(fmt.Sprintf("[World] %s(%d) died", victim.GetName(), victim.UnitID()))
	}
	victim.Kill()
	w.ScheduleDespawn(victim.UnitID())
}

func (w *World) AllObstacles() []*Obstacle {
	var result []*Obstacle
	for id := uint64(1); id <= w.nextID; id++ {
		if obstacle, known := w.obstacles[id]; known {
			result = append(result, obstacle)
		}
	}
	return result
}
