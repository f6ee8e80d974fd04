package grid

// MapObject is anything that occupies tiles on the map. Units occupy a single
// tile, larger occupants report additional offsets.
type MapObject interface {
	GetTilePosition() Int2
	GetOccupiedOffsets() []Int2
}

type Tile struct {
	Water bool
	// LedgeMask blocks entry into this tile from the flagged travel
	// directions. Bit order follows CardinalDirections.
	LedgeMask uint8
}

// Map is the tile grid: terrain flags plus unit occupancy. Obstacles are
// tracked by the world, not here; the map only answers terrain questions.
type Map struct {
	width    int32
	height   int32
	tileSize int32
	tiles    []Tile

	occupants map[Int2]MapObject
}

func NewMap(width, height, tileSize int32) *Map {
	return &Map{
		width:     width,
		height:    height,
		tileSize:  tileSize,
		tiles:     make([]Tile, width*height),
		occupants: make(map[Int2]MapObject),
	}
}

func (m *Map) Width() int32 {
	return m.width
}

func (m *Map) Height() int32 {
	return m.height
}

func (m *Map) TileSize() int32 {
	return m.tileSize
}

func (m *Map) Contains(x, y int32) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Map) ContainsGrid(position Int2) bool {
	return m.Contains(position.X, position.Y)
}

func (m *Map) tileIndex(position Int2) int32 {
	return position.Y*m.width + position.X
}

func (m *Map) SetWater(position Int2, water bool) {
	if !m.ContainsGrid(position) {
		return
	}
	m.tiles[m.tileIndex(position)].Water = water
}

func (m *Map) IsWaterAt(position Int2) bool {
	if !m.ContainsGrid(position) {
		return false
	}
	return m.tiles[m.tileIndex(position)].Water
}

func directionBit(direction Int2) uint8 {
	for index, cardinal := range CardinalDirections {
		if cardinal == direction {
			return 1 << uint8(index)
		}
	}
	return 0
}

// SetLedge blocks entry into the given tile when travelling in travelDir.
// The opposite sense stays open, which is what makes ledges asymmetric.
func (m *Map) SetLedge(position Int2, travelDir Int2) {
	if !m.ContainsGrid(position) {
		return
	}
	m.tiles[m.tileIndex(position)].LedgeMask |= directionBit(travelDir)
}

func (m *Map) LedgeMaskAt(position Int2) uint8 {
	if !m.ContainsGrid(position) {
		return 0
	}
	return m.tiles[m.tileIndex(position)].LedgeMask
}

// IsLedgeBlocked reports whether moving from one tile to an adjacent tile
// crosses a ledge in the blocked sense.
func (m *Map) IsLedgeBlocked(from, to Int2) bool {
	if !m.ContainsGrid(to) {
		return false
	}
	travelDir := to.Sub(from)
	return m.tiles[m.tileIndex(to)].LedgeMask&directionBit(travelDir) != 0
}

func (m *Map) SetUnit(unit MapObject, position Int2) bool {
	for _, offset := range unit.GetOccupiedOffsets() {
		if !m.ContainsGrid(position.Add(offset)) {
			return false
		}
	}
	m.RemoveUnit(unit)
	for _, offset := range unit.GetOccupiedOffsets() {
		m.occupants[position.Add(offset)] = unit
	}
	return true
}

func (m *Map) RemoveUnit(unit MapObject) {
	for tile, occupant := range m.occupants {
		if occupant == unit {
			delete(m.occupants, tile)
		}
	}
}

func (m *Map) IsOccupied(position Int2) bool {
	_, occupied := m.occupants[position]
	return occupied
}

func (m *Map) IsOccupiedExcept(position Int2, unit MapObject) bool {
	occupant, occupied := m.occupants[position]
	return occupied && occupant != unit
}

func (m *Map) GetMapObjectAt(position Int2) MapObject {
	return m.occupants[position]
}

// GetNeighbors returns the in-bounds cardinal neighbors that pass the
// keep predicate, in fixed N/E/S/W order.
func (m *Map) GetNeighbors(position Int2, keepPredicate func(neighbor Int2) bool) []Int2 {
	var neighbors []Int2
	for _, direction := range CardinalDirections {
		neighbor := position.Add(direction)
		if !m.ContainsGrid(neighbor) {
			continue
		}
		if keepPredicate(neighbor) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}
