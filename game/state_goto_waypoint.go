package game

type ActorGotoWaypointBehavior struct {
	actor *Actor
}

func (a *ActorGotoWaypointBehavior) GetName() ActorState {
	return ActorGotoWaypoint
}

func (a *ActorGotoWaypointBehavior) Init(actor *Actor, event TransitionEvent) {
	a.actor = actor
	a.turnTowardsWaypoint()
}

func (a *ActorGotoWaypointBehavior) Execute(deltaTime float64) TransitionEvent {
	if a.actor.HasReachedWaypoint() {
		return a.onWaypointReached()
	}
	a.actor.MoveTowardsWaypoint(deltaTime)
	return EventNone
}

func (a *ActorGotoWaypointBehavior) onWaypointReached() TransitionEvent {
	if a.actor.IsLastWaypoint() {
		return EventLastWaypointReached
	}
	a.actor.NextWaypoint()
	a.turnTowardsWaypoint()
	return EventWaypointReached
}

func (a *ActorGotoWaypointBehavior) turnTowardsWaypoint() {
	unit := a.actor.GetUnit()
	tileSize := a.actor.gameMap.TileSize()
	waypointTile := gridTileOf(a.actor.CurrentWaypoint(), tileSize)
	actorTile := gridTileOf(a.actor.GetPosition(), tileSize)
	unit.SetFacing(waypointTile.Sub(actorTile))
}
