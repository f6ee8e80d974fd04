package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/util"
	"github.com/solarlune/gocoro"
)

const trapDamage = 2

// ScriptedResolver applies action effects through coroutine scripts while
// actor shells play out the visible motion. The controller drops input and
// defers turn advancement while IsBusy holds.
type ScriptedResolver struct {
	world *World

	actors     map[uint64]*Actor
	actorOrder []uint64

	script gocoro.Coroutine
}

func NewScriptedResolver(world *World) *ScriptedResolver {
	return &ScriptedResolver{
		world:  world,
		actors: make(map[uint64]*Actor),
		script: gocoro.NewCoroutine(),
	}
}

// ActorFor returns the kinematic shell of a unit, creating it on first use.
func (r *ScriptedResolver) ActorFor(unit *Unit) *Actor {
	if actor, known := r.actors[unit.UnitID()]; known {
		return actor
	}
	actor := NewActor(unit, r.world.GetMap())
	r.actors[unit.UnitID()] = actor
	r.actorOrder = append(r.actorOrder, unit.UnitID())
	return actor
}

// Actors returns the shells in creation order, for rendering.
func (r *ScriptedResolver) Actors() []*Actor {
	result := make([]*Actor, 0, len(r.actorOrder))
	for _, unitID := range r.actorOrder {
		result = append(result, r.actors[unitID])
	}
	return result
}

func (r *ScriptedResolver) IsBusy() bool {
	if r.script.Running() {
		return true
	}
	for _, unitID := range r.actorOrder {
		if !r.actors[unitID].IsIdle() {
			return true
		}
	}
	return false
}

// Update ticks the running script and every actor shell once per frame.
func (r *ScriptedResolver) Update(deltaTime float64) {
	if r.script.Running() {
		r.script.Update()
	}
	for _, unitID := range r.actorOrder {
		r.actors[unitID].Update(deltaTime)
	}
}

// MoveUnit starts the walk animation along the waypoints. The unit's tile
// position has already changed; only the shell still has to catch up.
func (r *ScriptedResolver) MoveUnit(unit *Unit, waypoints []mgl32.Vec2) {
	actor := r.ActorFor(unit)
	actor.SetWaypoints(waypoints)
	actor.HandleEvent(EventNewPath)
	r.triggerTrapAt(unit, unit.GetTilePosition())
}

// triggerTrapAt springs a trap under a unit that just landed on it. The
// trap is consumed.
func (r *ScriptedResolver) triggerTrapAt(unit *Unit, tile grid.Int2) {
	obstacle, present := r.world.ObstacleAt(tile)
	if !present || !obstacle.IsTrap() {
		return
	}
	println(fmt.Sprintf("[Resolver] %s stepped on %s", unit.GetName(), obstacle.GetName()))
	r.world.RemoveObstacle(obstacle)
	r.applyDamage(nil, unit, trapDamage)
}

func (r *ScriptedResolver) ResolveAction(actor *Unit, def *ActionDefinition, targets []Target) bool {
	if r.script.Running() {
		return false
	}
	util.LogScriptDebug(fmt.Sprintf("[Resolver] %s resolves %s against %d targets", actor.GetName(), def.Name, len(targets)))
	should(r.script.Run(r.actionScript, actor, def, targets))
	return true
}

func (r *ScriptedResolver) actionScript(exe *gocoro.Execution) {
	actor := exe.Args[0].(*Unit)
	def := exe.Args[1].(*ActionDefinition)
	targets := exe.Args[2].([]Target)

	shell := r.ActorFor(actor)

	if def.TeleportStrike && len(targets) > 0 {
		landing := behindTile(actor.GetTilePosition(), targets[0].Tile)
		actor.SetTilePosition(landing)
		shell.SnapToTile()
		actor.FaceTowards(targets[0].Tile)
	}

	shell.HandleEvent(EventStrike)
	should(exe.YieldFunc(shell.IsIdle))

	if def.Style == StyleGroundAim && len(targets) > 0 {
		r.applyGroundAim(actor, def, targets[0].Tile)
		return
	}
	for _, target := range targets {
		if target.Unit == nil {
			continue
		}
		r.applyEffect(actor, def, target.Unit)
	}
}

func (r *ScriptedResolver) applyGroundAim(actor *Unit, def *ActionDefinition, aimTile grid.Int2) {
	for _, offset := range grid.DiamondOffsets(0, def.AoERadius) {
		tile := aimTile.Add(offset)
		if victim, hit := r.world.UnitAt(tile); hit {
			r.applyEffect(actor, def, victim)
		}
		if obstacle, hit := r.world.ObstacleAt(tile); hit && obstacle.ApplyDamage(def.Power) {
			r.world.RemoveObstacle(obstacle)
		}
	}
}

func (r *ScriptedResolver) applyEffect(actor *Unit, def *ActionDefinition, victim *Unit) {
	if def.Healing {
		victim.Heal(def.Power)
		println(fmt.Sprintf("[Resolver] %s healed %s for %d", actor.GetName(), victim.GetName(), def.Power))
		return
	}
	r.applyDamage(actor, victim, def.Power)
}

func (r *ScriptedResolver) applyDamage(attacker, victim *Unit, damage int) {
	if victim.ApplyDamage(damage) {
		r.ActorFor(victim).HandleEvent(EventLethalHit)
		r.world.Kill(attacker, victim)
	}
}

func (r *ScriptedResolver) ResolveSocial(actor *Unit, move SocialMove, target Target) bool {
	if r.script.Running() {
		return false
	}
	println(fmt.Sprintf("[Resolver] %s performs %s", actor.GetName(), move.ToString()))
	switch move {
	case SocialRescue:
		actor.PickUp(target.Unit)
	case SocialDrop:
		carried := actor.PutDown(target.Tile)
		if carried != nil {
			r.ActorFor(carried).SnapToTile()
			r.triggerTrapAt(carried, target.Tile)
		}
	case SocialShove:
		destination := shoveDestination(actor, target.Unit)
		target.Unit.SetTilePosition(destination)
		r.ActorFor(target.Unit).SnapToTile()
		r.triggerTrapAt(target.Unit, destination)
	case SocialTake:
		carried := target.Unit.Carrying()
		if carried == nil {
			return false
		}
		target.Unit.carrying = nil
		actor.PickUp(carried)
	}
	return true
}

func should(err error) {
	if err != nil {
		util.LogScriptDebug(fmt.Sprintf("[Resolver] script error: %s", err.Error()))
	}
}
