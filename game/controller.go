package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/util"
)

// ActionResolver is the external collaborator that performs the actual
// effects. The core only decides whether an action may be attempted and
// at what; amounts and visuals are the resolver's business.
type ActionResolver interface {
	MoveUnit(unit *Unit, waypoints []mgl32.Vec2)
	ResolveAction(actor *Unit, def *ActionDefinition, targets []Target) bool
	ResolveSocial(actor *Unit, move SocialMove, target Target) bool
	// IsBusy reports whether any visual or physical effect is still in
	// flight. While it holds, turn advancement is suppressed.
	IsBusy() bool
}

// TurnManager receives the turn-should-end signal; the side switch itself
// is its job, not the controller's.
type TurnManager interface {
	OnTurnShouldEnd(team Team)
}

const (
	cursorRepeatDelay    = 0.35
	cursorRepeatInterval = 0.08
)

// Controller is the turn state machine: it owns the state stack, the
// cursor, and the glue between states and the computation layers.
type Controller struct {
	world       *World
	resolver    ActionResolver
	turnManager TurnManager
	timer       *util.Timer

	stateStack []GameState

	cursorPos     grid.Int2
	cursorHistory []grid.Int2

	heldDirection grid.Int2
	repeatClock   float64
	repeating     bool

	pendingTurnEnd bool

	// overlays published by the active state for rendering
	movementOverlay ReachableSet
	dangerOverlay   DangerZone
	aoeOverlay      DangerZone
}

func NewController(world *World, resolver ActionResolver, turnManager TurnManager) *Controller {
	c := &Controller{
		world:       world,
		resolver:    resolver,
		turnManager: turnManager,
		timer:       util.NewTimer(),
	}
	c.SwitchToFreeRoam()
	return c
}

func (c *Controller) state() GameState {
	return c.stateStack[len(c.stateStack)-1]
}

// CurrentState exposes the active state for rendering.
func (c *Controller) CurrentState() GameState {
	return c.state()
}

func (c *Controller) GetWorld() *World {
	return c.world
}

func (c *Controller) GetTimer() *util.Timer {
	return c.timer
}

func (c *Controller) Cursor() grid.Int2 {
	return c.cursorPos
}

func (c *Controller) MovementOverlay() ReachableSet {
	return c.movementOverlay
}

func (c *Controller) DangerOverlay() DangerZone {
	return c.dangerOverlay
}

func (c *Controller) AoEOverlay() DangerZone {
	return c.aoeOverlay
}

// HandleInput processes one discrete event to completion, including all
// derived recomputation, then commits deferred entity changes. Events
// arriving while the resolver is busy are dropped.
func (c *Controller) HandleInput(event InputEvent) {
	if c.resolver != nil && c.resolver.IsBusy() {
		return
	}
	switch event.Kind {
	case InputConfirm:
		c.state().OnConfirm()
	case InputCancel:
		c.state().OnCancel()
	case InputDirection:
		c.state().OnDirectionKeys(event.Direction)
	case InputNextTarget:
		c.state().OnNextTarget()
	case InputPrevTarget:
		c.state().OnPrevTarget()
	case InputInspect:
		c.state().OnInspect()
	case InputOpenMenu:
		c.state().OnOpenMenu()
	}
	c.world.Commit()
	c.checkPendingTurnEnd()
}

// HandleContinuousInput drives the held-key cursor repeat (initial delay,
// then a fixed interval) and fires a deferred turn-end signal once the
// resolver goes idle.
func (c *Controller) HandleContinuousInput(deltaTime float64) {
	c.checkPendingTurnEnd()
	if c.heldDirection.IsZero() {
		c.repeatClock = 0
		c.repeating = false
		return
	}
	c.repeatClock += deltaTime
	threshold := cursorRepeatDelay
	if c.repeating {
		threshold = cursorRepeatInterval
	}
	if c.repeatClock >= threshold {
		c.repeatClock = 0
		c.repeating = true
		c.HandleInput(InputEvent{Kind: InputDirection, Direction: c.heldDirection})
	}
}

// SetHeldDirection marks a direction key as held. The first discrete
// direction event is expected to be sent by the caller; repeats come from
// HandleContinuousInput.
func (c *Controller) SetHeldDirection(direction grid.Int2) {
	c.heldDirection = direction
}

func (c *Controller) ClearHeldDirection() {
	c.heldDirection = grid.Int2{}
	c.repeatClock = 0
	c.repeating = false
}

func (c *Controller) MoveCursor(direction grid.Int2) {
	next := c.cursorPos.Add(direction)
	if c.world.GetMap().ContainsGrid(next) {
		c.cursorPos = next
	}
}

func (c *Controller) SnapCursorTo(tile grid.Int2) {
	c.cursorPos = tile
}

func (c *Controller) PushState(state GameState) {
	c.stateStack = append(c.stateStack, state)
	state.Init(false)
}

func (c *Controller) PopState() {
	if len(c.stateStack) > 1 {
		c.stateStack = c.stateStack[:len(c.stateStack)-1]
	}
	c.state().Init(true)
}

func (c *Controller) switchToState(state GameState) {
	c.stateStack = []GameState{state}
	state.Init(false)
}

func (c *Controller) SwitchToFreeRoam() {
	c.clearOverlays()
	c.cursorHistory = nil
	c.switchToState(&GameStateFreeRoam{ctrl: c})
}

func (c *Controller) SwitchToUnit(unit *Unit) {
	c.switchToState(&GameStateUnit{ctrl: c, selectedUnit: unit})
}

func (c *Controller) SwitchToActionMenu(unit *Unit, startTile grid.Int2, moveCost int) {
	c.clearOverlays()
	c.switchToState(&GameStateActionMenu{ctrl: c, selectedUnit: unit, startTile: startTile, moveCost: moveCost})
}

func (c *Controller) clearOverlays() {
	c.movementOverlay = nil
	c.dangerOverlay = nil
	c.aoeOverlay = nil
}

// resolveAndFinish is the single exit point of every aimed action:
// affordability is re-checked here so preview and execution cannot drift.
func (c *Controller) resolveAndFinish(actor *Unit, def *ActionDefinition, targets []Target) {
	if !actor.CanAfford(def) {
		println(fmt.Sprintf("[Controller] %s can no longer afford %s", actor.GetName(), def.Name))
		return
	}
	if c.resolver.ResolveAction(actor, def, targets) {
		actor.SpendFor(def)
		actor.MarkActed()
		c.SwitchToFreeRoam()
		c.CheckTurnEnd()
	}
}

func (c *Controller) finishSocial(actor *Unit, move SocialMove, target Target) {
	if c.resolver.ResolveSocial(actor, move, target) {
		actor.MarkActed()
		c.SwitchToFreeRoam()
		c.CheckTurnEnd()
	}
}

// CheckTurnEnd arms the turn-should-end signal once every living unit of
// the current side has acted. The signal is only delivered while the
// resolver is idle.
func (c *Controller) CheckTurnEnd() {
	if c.world.AllUnitsActed(c.world.CurrentFaction()) {
		c.pendingTurnEnd = true
	}
}

func (c *Controller) checkPendingTurnEnd() {
	if !c.pendingTurnEnd {
		return
	}
	if c.resolver != nil && c.resolver.IsBusy() {
		return
	}
	c.pendingTurnEnd = false
	if c.turnManager != nil {
		c.turnManager.OnTurnShouldEnd(c.world.CurrentFaction())
	}
}
