package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/util"
)

const actorMoveSpeed = 96.0 // pixels per second

// Actor is the kinematic shell around a unit: the pixel position that
// walks waypoints while the unit's tile position has already changed, and
// the behavior state machine driving it.
type Actor struct {
	unit    *Unit
	gameMap *grid.Map

	position  mgl32.Vec2
	waypoints []mgl32.Vec2
	waypoint  int

	state    ActorState
	behavior Behavior
}

func NewActor(unit *Unit, gameMap *grid.Map) *Actor {
	a := &Actor{
		unit:     unit,
		gameMap:  gameMap,
		position: unit.GetTilePosition().ToPixelCenter(gameMap.TileSize()),
		state:    ActorStateIdle,
	}
	a.behavior = BehaviorFactory(ActorStateIdle)
	a.behavior.Init(a, EventNone)
	return a
}

func (a *Actor) GetUnit() *Unit {
	return a.unit
}

func (a *Actor) GetPosition() mgl32.Vec2 {
	return a.position
}

func (a *Actor) GetState() ActorState {
	return a.state
}

func (a *Actor) IsIdle() bool {
	return a.state == ActorStateIdle || a.state == ActorStateDead
}

// SetWaypoints stores the route before the NewPath event is raised.
func (a *Actor) SetWaypoints(waypoints []mgl32.Vec2) {
	a.waypoints = waypoints
	a.waypoint = 0
}

func (a *Actor) CurrentWaypoint() mgl32.Vec2 {
	return a.waypoints[a.waypoint]
}

func (a *Actor) IsLastWaypoint() bool {
	return a.waypoint >= len(a.waypoints)-1
}

func (a *Actor) NextWaypoint() {
	a.waypoint++
}

func (a *Actor) HasReachedWaypoint() bool {
	return a.position.Sub(a.CurrentWaypoint()).Len() < 1.0
}

func (a *Actor) MoveTowardsWaypoint(deltaTime float64) {
	delta := a.CurrentWaypoint().Sub(a.position)
	step := float32(actorMoveSpeed * deltaTime)
	if delta.Len() <= step {
		a.position = a.CurrentWaypoint()
		return
	}
	a.position = a.position.Add(delta.Normalize().Mul(step))
}

func (a *Actor) SnapToTile() {
	a.position = a.unit.GetTilePosition().ToPixelCenter(a.gameMap.TileSize())
}

// HandleEvent consults the transition table; events with no transition
// from the current state are dropped.
func (a *Actor) HandleEvent(event TransitionEvent) {
	if event == EventNone || !ActorTransitionTable.Exists(a.state, event) {
		return
	}
	nextState := ActorTransitionTable.GetNextState(a.state, event)
	util.LogScriptDebug(fmt.Sprintf("[Actor] %s: %s -> %s on %s", a.unit.GetName(), a.state.ToString(), nextState.ToString(), event.ToString()))
	a.state = nextState
	a.behavior = BehaviorFactory(nextState)
	a.behavior.Init(a, event)
}

func (a *Actor) Update(deltaTime float64) {
	a.HandleEvent(a.behavior.Execute(deltaTime))
}

func gridTileOf(position mgl32.Vec2, tileSize int32) grid.Int2 {
	return grid.PositionToGridInt2(position, tileSize)
}
