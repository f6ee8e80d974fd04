package game

import (
	"github.com/memmaker/skirmish/engine/grid"
)

// GameStateSocialTarget cycles through the candidates of one social move
// (rescue, drop, shove, take) exactly like action target cycling.
type GameStateSocialTarget struct {
	ctrl    *Controller
	actor   *Unit
	move    SocialMove
	targets []Target

	targetIndex int
}

func (g *GameStateSocialTarget) Init(wasPopped bool) {
	if !wasPopped {
		g.targetIndex = 0
	}
	g.focusCurrent()
}

func (g *GameStateSocialTarget) CurrentTarget() Target {
	return g.targets[g.targetIndex]
}

func (g *GameStateSocialTarget) focusCurrent() {
	target := g.CurrentTarget()
	g.ctrl.SnapCursorTo(target.Tile)
	g.actor.FaceTowards(target.Tile)
}

func (g *GameStateSocialTarget) OnConfirm() {
	g.ctrl.finishSocial(g.actor, g.move, g.CurrentTarget())
}

func (g *GameStateSocialTarget) OnCancel() {
	g.ctrl.PopState()
}

func (g *GameStateSocialTarget) OnDirectionKeys(direction grid.Int2) {
}

func (g *GameStateSocialTarget) OnNextTarget() {
	g.targetIndex = (g.targetIndex + 1) % len(g.targets)
	g.focusCurrent()
}

func (g *GameStateSocialTarget) OnPrevTarget() {
	g.targetIndex = (g.targetIndex + len(g.targets) - 1) % len(g.targets)
	g.focusCurrent()
}

func (g *GameStateSocialTarget) OnInspect() {
}

func (g *GameStateSocialTarget) OnOpenMenu() {
}
