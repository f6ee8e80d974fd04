package game

import (
	"github.com/memmaker/skirmish/engine/grid"
)

// GameStateEnemyRange is a read-only inspection of an enemy unit: its
// movement range and danger zone are shown until the player backs out.
type GameStateEnemyRange struct {
	ctrl  *Controller
	enemy *Unit
}

func (g *GameStateEnemyRange) Init(wasPopped bool) {
	reachable, _, _ := ComputeReachable(g.ctrl.world, g.enemy)
	danger, _ := ComputeDangerZone(g.ctrl.world, g.enemy, g.enemy.KnownActions(), reachable)
	g.ctrl.movementOverlay = reachable
	g.ctrl.dangerOverlay = danger
}

func (g *GameStateEnemyRange) OnConfirm() {
}

func (g *GameStateEnemyRange) OnCancel() {
	g.ctrl.clearOverlays()
	g.ctrl.PopState()
}

func (g *GameStateEnemyRange) OnDirectionKeys(direction grid.Int2) {
	g.ctrl.MoveCursor(direction)
}

func (g *GameStateEnemyRange) OnNextTarget() {
}

func (g *GameStateEnemyRange) OnPrevTarget() {
}

func (g *GameStateEnemyRange) OnInspect() {
}

func (g *GameStateEnemyRange) OnOpenMenu() {
}
