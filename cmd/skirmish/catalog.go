package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/game"
)

// newDemoCatalog registers the built-in patterns and actions. In a full
// build this data would come from asset files; the demo ships it inline.
func newDemoCatalog() (*game.Catalog, error) {
	catalog := game.NewCatalog()

	melee := game.FixedPattern{grid.NorthDir, grid.EastDir, grid.SouthDir, grid.WestDir}
	spear := game.FixedPattern{
		{X: 0, Y: -1}, {X: 0, Y: -2},
	}
	sweep := game.ProceduralPattern(func(actor *game.Unit, gameMap *grid.Map, facing grid.Int2) []grid.Rect {
		origin := actor.GetTilePosition().Add(facing).ToPixelOrigin(gameMap.TileSize())
		size := float32(gameMap.TileSize())
		if facing == grid.NorthDir || facing == grid.SouthDir {
			return []grid.Rect{{Min: origin.Sub(mgl32.Vec2{size, 0}), Max: origin.Add(mgl32.Vec2{2 * size, size})}}
		}
		return []grid.Rect{{Min: origin.Sub(mgl32.Vec2{0, size}), Max: origin.Add(mgl32.Vec2{size, 2 * size})}}
	})

	patterns := map[string]game.Pattern{
		"melee": melee,
		"spear": spear,
		"sweep": sweep,
	}
	for name, pattern := range patterns {
		if err := catalog.RegisterPattern(name, pattern); err != nil {
			return nil, err
		}
	}

	actions := []game.ActionDefinition{
		{
			Name:        "Strike",
			Style:       game.StyleCycleTarget,
			PatternType: "melee",
			Affects:     game.AffectsEnemies,
			Power:       3,
		},
		{
			Name:        "Spear Thrust",
			Style:       game.StyleCycleTarget,
			PatternType: "spear",
			Affects:     game.AffectsEnemies,
			Power:       3,
		},
		{
			Name:     "Bow Shot",
			Style:    game.StyleCycleTarget,
			Range:    3,
			MinRange: 2,
			Affects:  game.AffectsEnemies,
			Power:    2,
		},
		{
			Name:            "Javelin",
			Style:           game.StyleCycleTarget,
			Range:           4,
			LineOfSightOnly: true,
			Affects:         game.AffectsEnemies,
			Power:           2,
		},
		{
			Name:            "Piercing Bolt",
			Style:           game.StyleCycleTarget,
			Range:           4,
			LineOfSightOnly: true,
			Piercing:        true,
			Affects:         game.AffectsEnemies,
			Cost:            1,
			Power:           2,
		},
		{
			Name:      "Fireball",
			Style:     game.StyleGroundAim,
			Range:     3,
			AoERadius: 1,
			Affects:   game.AffectsAll,
			Cost:      2,
			Power:     2,
		},
		{
			Name:    "Mend",
			Style:   game.StyleCycleTarget,
			Range:   2,
			Affects: game.AffectsAllies,
			Cost:    1,
			Power:   3,
			Healing: true,
		},
		{
			Name:        "Sweep",
			Style:       game.StyleDirectionalAim,
			PatternType: "sweep",
			Affects:     game.AffectsEnemies,
			Power:       2,
		},
		{
			Name:    "Warcry",
			Style:   game.StyleAutoHitAll,
			Range:   2,
			Affects: game.AffectsEnemies,
			Cost:    1,
			Power:   1,
		},
		{
			Name:           "Blink Strike",
			Style:          game.StyleCycleTarget,
			Range:          3,
			Affects:        game.AffectsEnemies,
			Cost:           2,
			Power:          3,
			TeleportStrike: true,
		},
	}
	for _, def := range actions {
		if err := catalog.RegisterAction(def); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

type archetype struct {
	stats   game.UnitStats
	actions []string
}

var archetypes = map[string]archetype{
	"soldier": {
		stats:   game.UnitStats{Health: 10, Movement: 4, Weight: 5, MaxWisp: 2},
		actions: []string{"Strike", "Warcry"},
	},
	"archer": {
		stats:   game.UnitStats{Health: 7, Movement: 4, Weight: 4, MaxWisp: 2},
		actions: []string{"Bow Shot", "Javelin"},
	},
	"mage": {
		stats:   game.UnitStats{Health: 6, Movement: 3, Weight: 3, MaxWisp: 4},
		actions: []string{"Fireball", "Mend", "Piercing Bolt"},
	},
	"hawk": {
		stats:   game.UnitStats{Health: 6, Movement: 6, Weight: 2, Flying: true, MaxWisp: 2},
		actions: []string{"Strike", "Blink Strike"},
	},
	"lancer": {
		stats:   game.UnitStats{Health: 9, Movement: 5, Weight: 5, MaxWisp: 2},
		actions: []string{"Spear Thrust", "Sweep"},
	},
}

func newUnitFromSpawn(entry grid.SpawnEntry) *game.Unit {
	team := game.TeamPlayer
	if entry.Team == game.TeamEnemy.ToString() {
		team = game.TeamEnemy
	}
	blueprint, known := archetypes[entry.Name]
	if !known {
		blueprint = archetypes["soldier"]
	}
	unit := game.NewUnit(entry.Name, team, blueprint.stats)
	for _, action := range blueprint.actions {
		unit.AddKnownAction(action)
	}
	return unit
}
