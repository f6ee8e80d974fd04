package game

// state transition table
// currentState, event, nextState

// idle, newPath, gotoWaypoint
// gotoWaypoint, lastWaypointReached, idle
// idle, strike, striking
// striking, animationFinished, idle

// idle/striking, lethalHit, dying
// dying, animationFinished, dead

func NewActorTransitionTable() *TransitionTable {
	t := NewTransitionTable()

	// waypoints
	t.AddTransition(ActorStateIdle, EventNewPath, ActorGotoWaypoint)
	t.AddTransition(ActorGotoWaypoint, EventLastWaypointReached, ActorStateIdle)

	// strikes
	t.AddTransition(ActorStateIdle, EventStrike, ActorStateStriking)
	t.AddTransition(ActorStateStriking, EventAnimationFinished, ActorStateIdle)

	// dying & death
	t.AddTransitionFromAllExcept([]ActorState{ActorStateDying, ActorStateDead}, EventLethalHit, ActorStateDying)
	t.AddTransition(ActorStateDying, EventAnimationFinished, ActorStateDead)

	return t
}

var ActorTransitionTable = NewActorTransitionTable()

type TransitionEvent int

const (
	EventNone TransitionEvent = iota
	EventNewPath
	EventStrike
	EventLethalHit
	EventAnimationFinished
	EventLastWaypointReached
	EventWaypointReached
)

func (e TransitionEvent) ToString() string {
	switch e {
	case EventNone:
		return "None"
	case EventNewPath:
		return "NewPath"
	case EventStrike:
		return "Strike"
	case EventLethalHit:
		return "LethalHit"
	case EventAnimationFinished:
		return "AnimationFinished"
	case EventLastWaypointReached:
		return "LastWaypointReached"
	case EventWaypointReached:
		return "WaypointReached"
	default:
		return "Unknown"
	}
}

type ActorState int

const (
	ActorStateIdle ActorState = iota
	ActorGotoWaypoint
	ActorStateStriking
	ActorStateDying
	ActorStateDead
	// Also change NewTransitionTable() below, if you add new states at the end or the beginning
)

func (s ActorState) ToString() string {
	switch s {
	case ActorStateIdle:
		return "Idle"
	case ActorGotoWaypoint:
		return "GotoWaypoint"
	case ActorStateStriking:
		return "Striking"
	case ActorStateDying:
		return "Dying"
	case ActorStateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

type TransitionTable map[ActorState]map[TransitionEvent]ActorState

func NewTransitionTable() *TransitionTable {
	t := make(TransitionTable)
	for state := ActorStateIdle; state <= ActorStateDead; state++ {
		t[state] = make(map[TransitionEvent]ActorState)
	}
	return &t
}

func (t *TransitionTable) AddTransition(fromState ActorState, event TransitionEvent, toState ActorState) {
	(*t)[fromState][event] = toState
}

func (t *TransitionTable) AddTransitionFromAllExcept(excludedStates []ActorState, event TransitionEvent, toState ActorState) {
	for state := range *t {
		if !containsState(excludedStates, state) {
			(*t)[state][event] = toState
		}
	}
}

func (t *TransitionTable) Exists(currentState ActorState, event TransitionEvent) bool {
	_, ok := (*t)[currentState][event]
	return ok
}

func (t *TransitionTable) GetNextState(currentState ActorState, event TransitionEvent) ActorState {
	return (*t)[currentState][event]
}

func containsState(states []ActorState, state ActorState) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

// Behavior is the per-state update logic of an actor. Execute returns the
// event that should drive the next transition, or EventNone.
type Behavior interface {
	GetName() ActorState
	Init(actor *Actor, event TransitionEvent)
	Execute(deltaTime float64) TransitionEvent
}

var BehaviorTable = map[ActorState]func() Behavior{
	ActorStateIdle:     func() Behavior { return &ActorIdleBehavior{} },
	ActorGotoWaypoint:  func() Behavior { return &ActorGotoWaypointBehavior{} },
	ActorStateStriking: func() Behavior { return &ActorStrikingBehavior{} },
	ActorStateDying:    func() Behavior { return &ActorDyingBehavior{} },
	ActorStateDead:     func() Behavior { return &ActorDeadBehavior{} },
}

func BehaviorFactory(state ActorState) Behavior {
	return BehaviorTable[state]()
}
