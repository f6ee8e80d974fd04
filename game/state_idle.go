package game

type ActorIdleBehavior struct {
	actor *Actor
}

func (a *ActorIdleBehavior) GetName() ActorState {
	return ActorStateIdle
}

func (a *ActorIdleBehavior) Init(actor *Actor, event TransitionEvent) {
	a.actor = actor
	actor.SnapToTile()
}

func (a *ActorIdleBehavior) Execute(deltaTime float64) TransitionEvent {
	return EventNone
}
