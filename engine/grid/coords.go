package grid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Int2 is a tile coordinate. It is comparable and used directly as a map key
// in all hot loops, so no string keys anywhere.
type Int2 struct {
	X int32
	Y int32
}

var (
	NorthDir = Int2{X: 0, Y: -1}
	EastDir  = Int2{X: 1, Y: 0}
	SouthDir = Int2{X: 0, Y: 1}
	WestDir  = Int2{X: -1, Y: 0}
)

var CardinalDirections = [4]Int2{NorthDir, EastDir, SouthDir, WestDir}

func (i Int2) Add(other Int2) Int2 {
	return Int2{X: i.X + other.X, Y: i.Y + other.Y}
}

func (i Int2) Sub(other Int2) Int2 {
	return Int2{X: i.X - other.X, Y: i.Y - other.Y}
}

func (i Int2) Mul(factor int32) Int2 {
	return Int2{X: i.X * factor, Y: i.Y * factor}
}

func (i Int2) IsZero() bool {
	return i.X == 0 && i.Y == 0
}

func (i Int2) ToString() string {
	return fmt.Sprintf("(%d, %d)", i.X, i.Y)
}

// ToCardinalDirection reduces an arbitrary offset to the dominant cardinal
// direction. Ties resolve to the horizontal axis.
func (i Int2) ToCardinalDirection() Int2 {
	abs := func(v int32) int32 {
		if v < 0 {
			return -v
		}
		return v
	}
	if abs(i.X) >= abs(i.Y) {
		if i.X >= 0 {
			return EastDir
		}
		return WestDir
	}
	if i.Y >= 0 {
		return SouthDir
	}
	return NorthDir
}

func ManhattanDistance2(a, b Int2) int32 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// ToPixelCenter returns the pixel-space center of the tile.
func (i Int2) ToPixelCenter(tileSize int32) mgl32.Vec2 {
	return mgl32.Vec2{(float32(i.X) + 0.5) * float32(tileSize), (float32(i.Y) + 0.5) * float32(tileSize)}
}

// ToPixelOrigin returns the pixel-space top-left corner of the tile.
func (i Int2) ToPixelOrigin(tileSize int32) mgl32.Vec2 {
	return mgl32.Vec2{float32(i.X) * float32(tileSize), float32(i.Y) * float32(tileSize)}
}

func PositionToGridInt2(pos mgl32.Vec2, tileSize int32) Int2 {
	return Int2{X: int32(pos.X()) / tileSize, Y: int32(pos.Y()) / tileSize}
}

// DiamondOffsets returns all offsets with minRange <= manhattan <= maxRange,
// in row-major order so callers iterating it are deterministic.
func DiamondOffsets(minRange, maxRange int32) []Int2 {
	var offsets []Int2
	for dy := -maxRange; dy <= maxRange; dy++ {
		for dx := -maxRange; dx <= maxRange; dx++ {
			dist := ManhattanDistance2(Int2{}, Int2{X: dx, Y: dy})
			if dist >= minRange && dist <= maxRange {
				offsets = append(offsets, Int2{X: dx, Y: dy})
			}
		}
	}
	return offsets
}
