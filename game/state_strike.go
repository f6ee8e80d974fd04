package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/gocoro"
)

const strikeLungeDistance = 6.0 // pixels

// ActorStrikingBehavior plays a short lunge towards the actor's facing and
// back. The damage itself is applied by the resolver script; this is only
// the visible motion.
type ActorStrikingBehavior struct {
	actor     *Actor
	restPos   mgl32.Vec2
	coroutine gocoro.Coroutine
}

func (a *ActorStrikingBehavior) GetName() ActorState {
	return ActorStateStriking
}

func (a *ActorStrikingBehavior) Init(actor *Actor, event TransitionEvent) {
	a.actor = actor
	a.restPos = actor.GetPosition()
	a.coroutine = gocoro.NewCoroutine()
	should(a.coroutine.Run(a.GetStrikeScript))
}

func (a *ActorStrikingBehavior) Execute(deltaTime float64) TransitionEvent {
	if a.coroutine.Running() {
		a.coroutine.Update()
		return EventNone
	}
	return EventAnimationFinished
}

func (a *ActorStrikingBehavior) GetStrikeScript(exe *gocoro.Execution) {
	facing := a.actor.GetUnit().GetFacing()
	lunge := mgl32.Vec2{float32(facing.X), float32(facing.Y)}.Mul(strikeLungeDistance)

	a.actor.position = a.restPos.Add(lunge)
	should(exe.YieldTime(time.Millisecond * 120))

	a.actor.position = a.restPos
	should(exe.YieldTime(time.Millisecond * 80))
}
