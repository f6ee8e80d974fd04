package game

import (
	"fmt"
	"time"

	"github.com/memmaker/skirmish/engine/util"
	"github.com/solarlune/gocoro"
)

type ActorDyingBehavior struct {
	actor     *Actor
	coroutine gocoro.Coroutine
}

func (a *ActorDyingBehavior) GetName() ActorState {
	return ActorStateDying
}

func (a *ActorDyingBehavior) Init(actor *Actor, event TransitionEvent) {
	a.actor = actor
	a.coroutine = gocoro.NewCoroutine()
	should(a.coroutine.Run(a.GetDyingScript))
}

func (a *ActorDyingBehavior) Execute(deltaTime float64) TransitionEvent {
	if a.coroutine.Running() {
		a.coroutine.Update()
		return EventNone
	}
	return EventAnimationFinished
}

func (a *ActorDyingBehavior) GetDyingScript(exe *gocoro.Execution) {
	util.LogScriptDebug(fmt.Sprintf("[ActorDyingBehavior] Start dying script for %s", a.actor.GetUnit().GetName()))
	should(exe.YieldTime(time.Millisecond * 400))
}
