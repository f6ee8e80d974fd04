package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/grid"
	"github.com/ojrac/opensimplex-go"
)

// Biome generates a map plus the obstacles and spawn areas on it.
type Biome interface {
	Generate() (*grid.Map, []grid.ObstacleEntry, []grid.SpawnEntry)
	GetName() string
}

// BiomeRiverlands carves a noise-driven river band with water, scatters
// boulders, crates and traps on land, and raises a ledge line along the
// river bank.
type BiomeRiverlands struct {
	width    int32
	height   int32
	tileSize int32
	seed     int64
}

func NewBiomeRiverlands(width, height, tileSize int32, seed int64) BiomeRiverlands {
	return BiomeRiverlands{width: width, height: height, tileSize: tileSize, seed: seed}
}

func (b BiomeRiverlands) GetName() string {
	return "riverlands"
}

func (b BiomeRiverlands) Generate() (*grid.Map, []grid.ObstacleEntry, []grid.SpawnEntry) {
	noise := opensimplex.New(b.seed)
	m := grid.NewMap(b.width, b.height, b.tileSize)

	// the river meanders horizontally through the middle third
	for x := int32(0); x < b.width; x++ {
		center := b.height/2 + int32(noise.Eval2(float64(x)/float64(b.width), 0)*float64(b.height)/6)
		for y := center - 1; y <= center+1; y++ {
			if y >= 0 && y < b.height {
				m.SetWater(grid.Int2{X: x, Y: y}, true)
			}
		}
		// the north bank is raised: stepping south onto it is blocked
		bankTile := grid.Int2{X: x, Y: center - 2}
		if m.ContainsGrid(bankTile) && noise.Eval2(float64(x)/8.0, 0.5) > 0 {
			m.SetLedge(bankTile, grid.SouthDir)
		}
	}

	var obstacles []grid.ObstacleEntry
	for x := int32(0); x < b.width; x++ {
		for y := int32(0); y < b.height; y++ {
			tile := grid.Int2{X: x, Y: y}
			if m.IsWaterAt(tile) {
				continue
			}
			sample := noise.Eval2(float64(x)/4.0, float64(y)/4.0)
			switch {
			case sample > 0.62:
				obstacles = append(obstacles, grid.ObstacleEntry{Name: "boulder", X: tile.X, Y: tile.Y, Impassable: true})
			case sample > 0.52:
				obstacles = append(obstacles, grid.ObstacleEntry{Name: "crate", X: tile.X, Y: tile.Y, Destructible: true, Hitpoints: 4})
			case sample < -0.68:
				obstacles = append(obstacles, grid.ObstacleEntry{Name: "spike trap", X: tile.X, Y: tile.Y, Trap: true})
			}
		}
	}

	spawns := b.spawnAreas(m, obstacles)
	println(fmt.Sprintf("[Biome] generated %s %dx%d with %d obstacles, %d spawns", b.GetName(), b.width, b.height, len(obstacles), len(spawns)))
	return m, obstacles, spawns
}

// spawnAreas picks free tiles in the top and bottom rows, one side per team.
func (b BiomeRiverlands) spawnAreas(m *grid.Map, obstacles []grid.ObstacleEntry) []grid.SpawnEntry {
	blocked := make(map[grid.Int2]bool, len(obstacles))
	for _, entry := range obstacles {
		blocked[grid.Int2{X: entry.X, Y: entry.Y}] = true
	}

	archetypes := []string{"soldier", "archer", "mage", "hawk"}
	var spawns []grid.SpawnEntry
	pick := func(y int32, team Team) {
		count := 0
		for x := int32(1); x < b.width-1 && count < len(archetypes); x++ {
			tile := grid.Int2{X: x, Y: y}
			if blocked[tile] || m.IsWaterAt(tile) {
				continue
			}
			spawns = append(spawns, grid.SpawnEntry{Name: archetypes[count], Team: team.ToString(), X: tile.X, Y: tile.Y})
			count++
		}
	}
	pick(1, TeamPlayer)
	pick(b.height-2, TeamEnemy)
	return spawns
}
