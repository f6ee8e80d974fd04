package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/grid"
)

type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) ToString() string {
	if t == TeamPlayer {
		return "Player"
	}
	return "Enemy"
}

// UnitStats is the static archetype a unit is spawned from.
type UnitStats struct {
	Health   int
	Movement int
	Weight   int
	Flying   bool
	Swimming bool
	MaxWisp  int
}

// Unit is a mutable battlefield entity. Tile position changes go through
// SetTilePosition so map occupancy never drifts from the unit's own state.
type Unit struct {
	id      uint64
	name    string
	team    Team
	gameMap *grid.Map

	tilePos grid.Int2
	facing  grid.Int2

	stats           UnitStats
	health          int
	wisp            int
	movementPenalty int
	movesUsed       int
	hasActed        bool
	isDead          bool

	knownActions []string
	carrying     *Unit
}

func NewUnit(name string, team Team, stats UnitStats) *Unit {
	return &Unit{
		name:   name,
		team:   team,
		facing: grid.SouthDir,
		stats:  stats,
		health: stats.Health,
		wisp:   stats.MaxWisp,
	}
}

func (u *Unit) UnitID() uint64 {
	return u.id
}

func (u *Unit) SetUnitID(id uint64) {
	u.id = id
}

func (u *Unit) GetName() string {
	return u.name
}

func (u *Unit) GetTeam() Team {
	return u.team
}

func (u *Unit) GetTilePosition() grid.Int2 {
	return u.tilePos
}

func (u *Unit) GetOccupiedOffsets() []grid.Int2 {
	return []grid.Int2{{X: 0, Y: 0}}
}

func (u *Unit) SetMap(gameMap *grid.Map) {
	u.gameMap = gameMap
}

func (u *Unit) SetTilePosition(pos grid.Int2) {
	u.tilePos = pos
	if u.gameMap != nil {
		u.gameMap.SetUnit(u, pos)
	}
}

func (u *Unit) GetFacing() grid.Int2 {
	return u.facing
}

func (u *Unit) SetFacing(direction grid.Int2) {
	if !direction.IsZero() {
		u.facing = direction.ToCardinalDirection()
	}
}

// FaceTowards turns the unit towards a tile, reduced to a cardinal facing.
func (u *Unit) FaceTowards(tile grid.Int2) {
	u.SetFacing(tile.Sub(u.tilePos))
}

func (u *Unit) IsFlying() bool {
	return u.stats.Flying
}

func (u *Unit) IsSwimming() bool {
	return u.stats.Swimming
}

func (u *Unit) GetWeight() int {
	weight := u.stats.Weight
	if u.carrying != nil {
		weight += u.carrying.stats.Weight
	}
	return weight
}

func (u *Unit) IsActive() bool {
	return !u.isDead
}

func (u *Unit) HasActed() bool {
	return u.hasActed
}

func (u *Unit) MarkActed() {
	u.hasActed = true
}

func (u *Unit) CanAct() bool {
	return u.IsActive() && !u.hasActed
}

// MovesLeft is the remaining movement budget this turn, after status
// penalties and any distance already walked.
func (u *Unit) MovesLeft() int {
	left := u.stats.Movement - u.movementPenalty - u.movesUsed
	if left < 0 {
		return 0
	}
	return left
}

func (u *Unit) UseMovement(cost int) {
	u.movesUsed += cost
	println(fmt.Sprintf("[Unit] %s used %d movement, %d left", u.name, cost, u.MovesLeft()))
}

func (u *Unit) RefundMovement(cost int) {
	u.movesUsed -= cost
	if u.movesUsed < 0 {
		u.movesUsed = 0
	}
}

func (u *Unit) SetMovementPenalty(penalty int) {
	u.movementPenalty = penalty
}

// NextTurn refreshes the per-turn state when the unit's side starts a turn.
func (u *Unit) NextTurn() {
	u.hasActed = false
	u.movesUsed = 0
}

func (u *Unit) GetHealth() int {
	return u.health
}

func (u *Unit) GetMaxHealth() int {
	return u.stats.Health
}

func (u *Unit) IsAtFullHealth() bool {
	return u.health >= u.stats.Health
}

func (u *Unit) GetWisp() int {
	return u.wisp
}

func (u *Unit) SetWisp(amount int) {
	u.wisp = amount
}

// CanAfford is the single affordability check; menu rendering, the range
// calculator and action confirmation all go through here.
func (u *Unit) CanAfford(def *ActionDefinition) bool {
	return u.wisp >= def.Cost
}

func (u *Unit) SpendFor(def *ActionDefinition) {
	u.wisp -= def.Cost
	if u.wisp < 0 {
		u.wisp = 0
	}
}

func (u *Unit) KnownActions() []string {
	return u.knownActions
}

func (u *Unit) AddKnownAction(name string) {
	u.knownActions = append(u.knownActions, name)
}

func (u *Unit) Heal(amount int) {
	u.health += amount
	if u.health > u.stats.Health {
		u.health = u.stats.Health
	}
}

// ApplyDamage returns true when the damage is lethal. Killing is the
// caller's job so deferred despawn bookkeeping stays in one place.
func (u *Unit) ApplyDamage(damage int) bool {
	u.health -= damage
	println(fmt.Sprintf("[Unit] %s took %d damage, health is now %d", u.name, damage, u.health))
	return u.health <= 0
}

func (u *Unit) Kill() {
	u.isDead = true
	u.hasActed = true
	if u.gameMap != nil {
		u.gameMap.RemoveUnit(u)
	}
}

func (u *Unit) Carrying() *Unit {
	return u.carrying
}

func (u *Unit) PickUp(other *Unit) {
	u.carrying = other
	if other.gameMap != nil {
		other.gameMap.RemoveUnit(other)
	}
}

func (u *Unit) PutDown(tile grid.Int2) *Unit {
	carried := u.carrying
	u.carrying = nil
	if carried != nil {
		carried.SetTilePosition(tile)
	}
	return carried
}

// ProxyAt returns a detached copy of the unit standing on another tile.
// Range computation repositions proxies freely without touching the map.
func (u *Unit) ProxyAt(pos grid.Int2) *Unit {
	proxy := *u
	proxy.gameMap = nil
	proxy.tilePos = pos
	return &proxy
}

func (u *Unit) GetFriendlyDescription() string {
	return fmt.Sprintf("x> %s HP: %d/%d Move: %d Wisp: %d\n", u.name, u.health, u.stats.Health, u.MovesLeft(), u.wisp)
}

func (u *Unit) GetEnemyDescription() string {
	return fmt.Sprintf("o> %s HP: %d/%d\n", u.name, u.health, u.stats.Health)
}
