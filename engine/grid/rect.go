package grid

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in pixel space. Procedural attack
// patterns describe their shapes with these; Min is inclusive, Max exclusive.
type Rect struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{Min: mgl32.Vec2{minX, minY}, Max: mgl32.Vec2{maxX, maxY}}
}

func (r Rect) ContainsPoint(p mgl32.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() < r.Max.X() && p.Y() >= r.Min.Y() && p.Y() < r.Max.Y()
}

// Tiles returns every tile whose center lies inside the rectangle.
func (r Rect) Tiles(tileSize int32) []Int2 {
	first := PositionToGridInt2(r.Min, tileSize)
	last := PositionToGridInt2(r.Max, tileSize)
	var tiles []Int2
	for y := first.Y; y <= last.Y; y++ {
		for x := first.X; x <= last.X; x++ {
			tile := Int2{X: x, Y: y}
			if r.ContainsPoint(tile.ToPixelCenter(tileSize)) {
				tiles = append(tiles, tile)
			}
		}
	}
	return tiles
}
