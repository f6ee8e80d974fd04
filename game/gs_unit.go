package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/grid"
)

// GameStateUnit shows the movement range of a selected unit and lets the
// cursor trace a route inside it. Confirming on a landable tile moves the
// unit and opens the action menu.
type GameStateUnit struct {
	ctrl         *Controller
	selectedUnit *Unit

	reachable ReachableSet
	cameFrom  map[grid.Int2]grid.Int2
	costSoFar map[grid.Int2]int
}

func (g *GameStateUnit) Init(wasPopped bool) {
	stop := g.ctrl.GetTimer().Start("ComputeReachable")
	g.reachable, g.cameFrom, g.costSoFar = ComputeReachable(g.ctrl.world, g.selectedUnit)
	stop()

	stop = g.ctrl.GetTimer().Start("ComputeDangerZone")
	danger, extras := ComputeDangerZone(g.ctrl.world, g.selectedUnit, g.selectedUnit.KnownActions(), g.reachable)
	stop()
	if len(extras) > 0 {
		println(fmt.Sprintf("[GameStateUnit] %d teleport-only tiles added for %s", len(extras), g.selectedUnit.GetName()))
	}

	g.ctrl.movementOverlay = g.reachable
	g.ctrl.dangerOverlay = danger

	start := g.selectedUnit.GetTilePosition()
	g.ctrl.SnapCursorTo(start)
	g.ctrl.cursorHistory = []grid.Int2{start}
}

func (g *GameStateUnit) OnConfirm() {
	goal := g.ctrl.Cursor()
	entry, inRange := g.reachable[goal]
	if !inRange || !entry.Landable {
		return
	}
	startTile := g.selectedUnit.GetTilePosition()
	if goal == startTile {
		g.ctrl.SwitchToActionMenu(g.selectedUnit, startTile, 0)
		return
	}
	waypoints := ReconstructPath(g.cameFrom, g.costSoFar, g.ctrl.cursorHistory, startTile, goal, g.ctrl.world.GetMap())
	g.selectedUnit.SetTilePosition(goal)
	g.selectedUnit.UseMovement(entry.Cost)
	g.ctrl.resolver.MoveUnit(g.selectedUnit, waypoints)
	g.ctrl.SwitchToActionMenu(g.selectedUnit, startTile, entry.Cost)
}

func (g *GameStateUnit) OnCancel() {
	g.ctrl.SnapCursorTo(g.selectedUnit.GetTilePosition())
	g.ctrl.SwitchToFreeRoam()
}

func (g *GameStateUnit) OnDirectionKeys(direction grid.Int2) {
	g.ctrl.MoveCursor(direction)
	cursor := g.ctrl.Cursor()
	if entry, inRange := g.reachable[cursor]; inRange && entry.Landable {
		g.ctrl.cursorHistory = append(g.ctrl.cursorHistory, cursor)
	}
}

func (g *GameStateUnit) OnNextTarget() {
}

func (g *GameStateUnit) OnPrevTarget() {
}

func (g *GameStateUnit) OnInspect() {
}

func (g *GameStateUnit) OnOpenMenu() {
}
