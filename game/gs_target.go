package game

import (
	"github.com/memmaker/skirmish/engine/grid"
)

// GameStateCycleTarget steps through the precomputed target list with
// next/previous; the cursor snaps to the current target and the actor
// turns to face it.
type GameStateCycleTarget struct {
	ctrl    *Controller
	actor   *Unit
	def     *ActionDefinition
	targets []Target

	targetIndex int
}

func (g *GameStateCycleTarget) Init(wasPopped bool) {
	if !wasPopped {
		g.targetIndex = 0
	}
	g.focusCurrent()
}

func (g *GameStateCycleTarget) CurrentTarget() Target {
	return g.targets[g.targetIndex]
}

func (g *GameStateCycleTarget) focusCurrent() {
	target := g.CurrentTarget()
	g.ctrl.SnapCursorTo(target.Tile)
	g.actor.FaceTowards(target.Tile)
}

func (g *GameStateCycleTarget) OnConfirm() {
	g.ctrl.resolveAndFinish(g.actor, g.def, []Target{g.CurrentTarget()})
}

func (g *GameStateCycleTarget) OnCancel() {
	g.ctrl.PopState()
}

func (g *GameStateCycleTarget) OnDirectionKeys(direction grid.Int2) {
}

func (g *GameStateCycleTarget) OnNextTarget() {
	g.targetIndex = (g.targetIndex + 1) % len(g.targets)
	g.focusCurrent()
}

func (g *GameStateCycleTarget) OnPrevTarget() {
	g.targetIndex = (g.targetIndex + len(g.targets) - 1) % len(g.targets)
	g.focusCurrent()
}

func (g *GameStateCycleTarget) OnInspect() {
}

func (g *GameStateCycleTarget) OnOpenMenu() {
}
