package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/grid"
)

// GameStateFreeRoam is the idle state: the cursor roams the map, waiting
// for the player to pick a unit, inspect an enemy or open the map menu.
type GameStateFreeRoam struct {
	ctrl *Controller
}

func (g *GameStateFreeRoam) Init(wasPopped bool) {
	if !wasPopped {
		println("[GameStateFreeRoam] Entered")
	}
	g.ctrl.clearOverlays()
}

func (g *GameStateFreeRoam) OnConfirm() {
	unit, found := g.ctrl.world.UnitAt(g.ctrl.Cursor())
	if !found {
		return
	}
	if unit.GetTeam() != g.ctrl.world.CurrentFaction() || !unit.CanAct() {
		return
	}
	println(fmt.Sprintf("[GameStateFreeRoam] Selected unit %s at %s", unit.GetName(), unit.GetTilePosition().ToString()))
	g.ctrl.SwitchToUnit(unit)
}

func (g *GameStateFreeRoam) OnCancel() {
}

func (g *GameStateFreeRoam) OnDirectionKeys(direction grid.Int2) {
	g.ctrl.MoveCursor(direction)
}

func (g *GameStateFreeRoam) OnNextTarget() {
}

func (g *GameStateFreeRoam) OnPrevTarget() {
}

func (g *GameStateFreeRoam) OnInspect() {
	unit, found := g.ctrl.world.UnitAt(g.ctrl.Cursor())
	if !found || unit.GetTeam() == g.ctrl.world.CurrentFaction() {
		return
	}
	g.ctrl.PushState(&GameStateEnemyRange{ctrl: g.ctrl, enemy: unit})
}

func (g *GameStateFreeRoam) OnOpenMenu() {
	g.ctrl.PushState(&GameStateMapMenu{ctrl: g.ctrl})
}
