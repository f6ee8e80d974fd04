package game

import (
	"github.com/memmaker/skirmish/engine/grid"
)

// GameStateMapMenu is the map-level menu: for now its only entry ends the
// current side's turn early.
type GameStateMapMenu struct {
	ctrl *Controller
}

func (g *GameStateMapMenu) Init(wasPopped bool) {
}

func (g *GameStateMapMenu) OnConfirm() {
	team := g.ctrl.world.CurrentFaction()
	g.ctrl.SwitchToFreeRoam()
	if g.ctrl.turnManager != nil {
		g.ctrl.turnManager.OnTurnShouldEnd(team)
	}
}

func (g *GameStateMapMenu) OnCancel() {
	g.ctrl.PopState()
}

func (g *GameStateMapMenu) OnDirectionKeys(direction grid.Int2) {
}

func (g *GameStateMapMenu) OnNextTarget() {
}

func (g *GameStateMapMenu) OnPrevTarget() {
}

func (g *GameStateMapMenu) OnInspect() {
}

func (g *GameStateMapMenu) OnOpenMenu() {
	g.ctrl.PopState()
}
