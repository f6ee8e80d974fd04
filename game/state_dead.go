package game

type ActorDeadBehavior struct {
	actor *Actor
}

func (a *ActorDeadBehavior) GetName() ActorState {
	return ActorStateDead
}

func (a *ActorDeadBehavior) Init(actor *Actor, event TransitionEvent) {
	a.actor = actor
}

func (a *ActorDeadBehavior) Execute(deltaTime float64) TransitionEvent {
	return EventNone
}
