package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/skirmish/engine/grid"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog := NewCatalog()

	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(catalog.RegisterPattern("melee", FixedPattern{grid.NorthDir, grid.EastDir, grid.SouthDir, grid.WestDir}))
	must(catalog.RegisterPattern("sweep", ProceduralPattern(func(actor *Unit, gameMap *grid.Map, facing grid.Int2) []grid.Rect {
		tile := actor.GetTilePosition().Add(facing)
		origin := tile.ToPixelOrigin(gameMap.TileSize())
		size := float32(gameMap.TileSize())
		return []grid.Rect{{Min: origin, Max: origin.Add(mgl32.Vec2{size, size})}}
	})))

	must(catalog.RegisterAction(ActionDefinition{
		Name: "Strike", Style: StyleCycleTarget, PatternType: "melee", Affects: AffectsEnemies, Power: 3,
	}))
	must(catalog.RegisterAction(ActionDefinition{
		Name: "Bow", Style: StyleCycleTarget, Range: 3, MinRange: 2, Affects: AffectsEnemies, Power: 2,
	}))
	must(catalog.RegisterAction(ActionDefinition{
		Name: "Ray", Style: StyleCycleTarget, Range: 4, LineOfSightOnly: true, Affects: AffectsEnemies, Power: 2,
	}))
	must(catalog.RegisterAction(ActionDefinition{
		Name: "PierceRay", Style: StyleCycleTarget, Range: 4, LineOfSightOnly: true, Piercing: true, Affects: AffectsEnemies, Power: 2,
	}))
	must(catalog.RegisterAction(ActionDefinition{
		Name: "Blast", Style: StyleGroundAim, Range: 2, AoERadius: 1, Affects: AffectsAll, Cost: 2, Power: 2,
	}))
	must(catalog.RegisterAction(ActionDefinition{
		Name: "Mend", Style: StyleCycleTarget, Range: 2, Affects: AffectsAllies, Healing: true, Power: 3,
	}))
	must(catalog.RegisterAction(ActionDefinition{
		Name: "Blink", Style: StyleCycleTarget, Range: 3, Affects: AffectsEnemies, TeleportStrike: true, Power: 3,
	}))
	must(catalog.RegisterAction(ActionDefinition{
		Name: "Sweep", Style: StyleDirectionalAim, PatternType: "sweep", Affects: AffectsEnemies, Power: 2,
	}))
	must(catalog.RegisterAction(ActionDefinition{
		Name: "Expensive", Style: StyleCycleTarget, Range: 2, Affects: AffectsEnemies, Cost: 5, Power: 1,
	}))
	return catalog
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(grid.NewMap(10, 10, 16), newTestCatalog(t))
}

func spawnTestUnit(world *World, name string, team Team, pos grid.Int2, stats UnitStats, actions ...string) *Unit {
	unit := NewUnit(name, team, stats)
	for _, action := range actions {
		unit.AddKnownAction(action)
	}
	world.AddUnit(unit, pos)
	return unit
}

func infantryStats() UnitStats {
	return UnitStats{Health: 10, Movement: 3, Weight: 5, MaxWisp: 3}
}

// stubResolver records calls and resolves everything instantly.
type stubResolver struct {
	busy     bool
	accept   bool
	moved    [][]mgl32.Vec2
	resolved []string
	socials  []SocialMove
}

func newStubResolver() *stubResolver {
	return &stubResolver{accept: true}
}

func (s *stubResolver) MoveUnit(unit *Unit, waypoints []mgl32.Vec2) {
	s.moved = append(s.moved, waypoints)
}

func (s *stubResolver) ResolveAction(actor *Unit, def *ActionDefinition, targets []Target) bool {
	if !s.accept {
		return false
	}
	s.resolved = append(s.resolved, def.Name)
	return true
}

func (s *stubResolver) ResolveSocial(actor *Unit, move SocialMove, target Target) bool {
	if !s.accept {
		return false
	}
	s.socials = append(s.socials, move)
	return true
}

func (s *stubResolver) IsBusy() bool {
	return s.busy
}

type stubTurnManager struct {
	ended []Team
}

func (s *stubTurnManager) OnTurnShouldEnd(team Team) {
	s.ended = append(s.ended, team)
}
