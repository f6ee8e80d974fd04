package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/grid"
)

// Obstacle is a static or destructible occupant of one or more tiles.
// Traps are passable but trigger on landing; impassable obstacles block
// everyone, including flyers.
type Obstacle struct {
	id      uint64
	name    string
	tilePos grid.Int2
	width   int32
	height  int32

	impassable   bool
	trap         bool
	destructible bool
	health       int
	destroyed    bool
}

func NewObstacle(name string, pos grid.Int2, width, height int32) *Obstacle {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Obstacle{name: name, tilePos: pos, width: width, height: height}
}

func NewObstacleFromEntry(entry grid.ObstacleEntry) *Obstacle {
	o := NewObstacle(entry.Name, grid.Int2{X: entry.X, Y: entry.Y}, entry.Width, entry.Height)
	o.impassable = entry.Impassable
	o.trap = entry.Trap
	if entry.Destructible {
		o.MakeDestructible(int(entry.Hitpoints))
	}
	return o
}

func (o *Obstacle) ObstacleID() uint64 {
	return o.id
}

func (o *Obstacle) SetObstacleID(id uint64) {
	o.id = id
}

func (o *Obstacle) GetName() string {
	return o.name
}

func (o *Obstacle) GetTilePosition() grid.Int2 {
	return o.tilePos
}

func (o *Obstacle) GetOccupiedOffsets() []grid.Int2 {
	var offsets []grid.Int2
	for dy := int32(0); dy < o.height; dy++ {
		for dx := int32(0); dx < o.width; dx++ {
			offsets = append(offsets, grid.Int2{X: dx, Y: dy})
		}
	}
	return offsets
}

func (o *Obstacle) MakeImpassable() *Obstacle {
	o.impassable = true
	return o
}

func (o *Obstacle) MakeTrap() *Obstacle {
	o.trap = true
	return o
}

func (o *Obstacle) MakeDestructible(hitpoints int) *Obstacle {
	o.destructible = true
	o.health = hitpoints
	return o
}

func (o *Obstacle) IsImpassable() bool {
	return o.impassable
}

func (o *Obstacle) IsTrap() bool {
	return o.trap
}

func (o *Obstacle) IsDestructible() bool {
	return o.destructible
}

func (o *Obstacle) IsDestroyed() bool {
	return o.destroyed
}

// ApplyDamage returns true when a destructible obstacle is destroyed.
// Indestructible obstacles shrug damage off.
func (o *Obstacle) ApplyDamage(damage int) bool {
	if !o.destructible || o.destroyed {
		return false
	}
	o.health -= damage
	println(fmt.Sprintf("[Obstacle] %s took %d damage, %d left", o.name, damage, o.health))
	if o.health <= 0 {
		o.destroyed = true
		return true
	}
	return false
}

func (o *Obstacle) ToEntry() grid.ObstacleEntry {
	return grid.ObstacleEntry{
		Name:         o.name,
		X:            o.tilePos.X,
		Y:            o.tilePos.Y,
		Width:        o.width,
		Height:       o.height,
		Impassable:   o.impassable,
		Trap:         o.trap,
		Destructible: o.destructible,
		Hitpoints:    int32(o.health),
	}
}
