package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/util"
)

// MenuOption is one selectable entry of the action menu. Disabled entries
// stay visible so the player can see what the unit knows but cannot do.
type MenuOption struct {
	Label   string
	Enabled bool
	onClick func()
}

// GameStateActionMenu lists the unit's actions after movement. Cancelling
// undoes the move and returns to movement with a fresh range computation.
type GameStateActionMenu struct {
	ctrl         *Controller
	selectedUnit *Unit
	startTile    grid.Int2
	moveCost     int

	options       []MenuOption
	selectedIndex int
}

func (g *GameStateActionMenu) Init(wasPopped bool) {
	g.buildOptions()
	if !wasPopped {
		g.selectedIndex = 0
	}
	if g.selectedIndex >= len(g.options) {
		g.selectedIndex = 0
	}
}

func (g *GameStateActionMenu) buildOptions() {
	g.options = g.options[:0]
	unit := g.selectedUnit
	world := g.ctrl.world

	for _, name := range unit.KnownActions() {
		actionName := name
		def, known := world.GetCatalog().GetAction(actionName)
		if !known {
			util.LogStateInfo(fmt.Sprintf("[GameStateActionMenu] unknown action %s on %s, hiding", actionName, unit.GetName()))
			continue
		}
		hasTargets := def.Style == StyleNoTarget || len(FindValidTargets(world, unit, actionName)) > 0
		g.options = append(g.options, MenuOption{
			Label:   def.Name,
			Enabled: unit.CanAfford(def) && hasTargets,
			onClick: func() { g.chooseAction(actionName) },
		})
	}

	g.addSocialOption(SocialRescue, RescueTargets(world, unit))
	g.addSocialOption(SocialDrop, DropTargets(world, unit))
	g.addSocialOption(SocialShove, ShoveTargets(world, unit))
	g.addSocialOption(SocialTake, TakeTargets(world, unit))

	g.options = append(g.options, MenuOption{
		Label:   "Wait",
		Enabled: true,
		onClick: g.chooseWait,
	})
}

func (g *GameStateActionMenu) addSocialOption(move SocialMove, targets []Target) {
	if len(targets) == 0 {
		return
	}
	g.options = append(g.options, MenuOption{
		Label:   move.ToString(),
		Enabled: true,
		onClick: func() { g.chooseSocial(move) },
	})
}

func (g *GameStateActionMenu) Options() []MenuOption {
	return g.options
}

func (g *GameStateActionMenu) SelectedIndex() int {
	return g.selectedIndex
}

func (g *GameStateActionMenu) OnConfirm() {
	if len(g.options) == 0 {
		return
	}
	option := g.options[g.selectedIndex]
	if !option.Enabled {
		return
	}
	option.onClick()
}

func (g *GameStateActionMenu) chooseAction(actionName string) {
	unit := g.selectedUnit
	world := g.ctrl.world
	def, known := world.GetCatalog().GetAction(actionName)
	if !known || !unit.CanAfford(def) {
		return
	}
	switch def.Style {
	case StyleNoTarget:
		g.ctrl.resolveAndFinish(unit, def, nil)
	case StyleAutoHitAll, StyleDirectionalAim:
		targets := FindValidTargets(world, unit, actionName)
		if def.Style == StyleDirectionalAim && len(targets) == 0 {
			return
		}
		g.ctrl.resolveAndFinish(unit, def, targets)
	case StyleGroundAim:
		g.ctrl.PushState(&GameStateGroundAim{ctrl: g.ctrl, actor: unit, def: def})
	default:
		targets := FindValidTargets(world, unit, actionName)
		if len(targets) == 0 {
			return
		}
		g.ctrl.PushState(&GameStateCycleTarget{ctrl: g.ctrl, actor: unit, def: def, targets: targets})
	}
}

func (g *GameStateActionMenu) chooseSocial(move SocialMove) {
	var targets []Target
	switch move {
	case SocialRescue:
		targets = RescueTargets(g.ctrl.world, g.selectedUnit)
	case SocialDrop:
		targets = DropTargets(g.ctrl.world, g.selectedUnit)
	case SocialShove:
		targets = ShoveTargets(g.ctrl.world, g.selectedUnit)
	case SocialTake:
		targets = TakeTargets(g.ctrl.world, g.selectedUnit)
	}
	if len(targets) == 0 {
		return
	}
	g.ctrl.PushState(&GameStateSocialTarget{ctrl: g.ctrl, actor: g.selectedUnit, move: move, targets: targets})
}

func (g *GameStateActionMenu) chooseWait() {
	g.selectedUnit.MarkActed()
	g.ctrl.SwitchToFreeRoam()
	g.ctrl.CheckTurnEnd()
}

// OnCancel undoes the move: the unit returns to where it started and the
// spent movement is refunded, then movement selection restarts from
// scratch so the ranges match the restored position.
func (g *GameStateActionMenu) OnCancel() {
	g.selectedUnit.SetTilePosition(g.startTile)
	g.selectedUnit.RefundMovement(g.moveCost)
	g.ctrl.SwitchToUnit(g.selectedUnit)
}

func (g *GameStateActionMenu) OnDirectionKeys(direction grid.Int2) {
	if len(g.options) == 0 {
		return
	}
	if direction == grid.NorthDir {
		g.selectedIndex = (g.selectedIndex + len(g.options) - 1) % len(g.options)
	} else if direction == grid.SouthDir {
		g.selectedIndex = (g.selectedIndex + 1) % len(g.options)
	}
}

func (g *GameStateActionMenu) OnNextTarget() {
}

func (g *GameStateActionMenu) OnPrevTarget() {
}

func (g *GameStateActionMenu) OnInspect() {
}

func (g *GameStateActionMenu) OnOpenMenu() {
}
