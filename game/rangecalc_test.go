package game

import (
	"testing"

	"github.com/memmaker/skirmish/engine/grid"
)

func TestMeleeFootprintFromStandingStill(t *testing.T) {
	world := newTestWorld(t)
	stats := infantryStats()
	stats.Movement = 0
	unit := spawnTestUnit(world, "brawler", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats, "Strike")

	reachable, _, _ := ComputeReachable(world, unit)
	zone, extras := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)
	if len(extras) != 0 {
		t.Errorf("melee produced %d teleport extras, want 0", len(extras))
	}

	want := map[grid.Int2]bool{
		{X: 5, Y: 4}: true,
		{X: 6, Y: 5}: true,
		{X: 5, Y: 6}: true,
		{X: 4, Y: 5}: true,
	}
	if len(zone) != len(want) {
		t.Fatalf("zone has %d tiles, want %d: %v", len(zone), len(want), zone)
	}
	for tile := range want {
		if !zone.Contains(tile) {
			t.Errorf("zone is missing %s", tile.ToString())
		}
	}
}

func TestDangerZoneGrowsWithMovement(t *testing.T) {
	world := newTestWorld(t)
	still := infantryStats()
	still.Movement = 0
	mobile := infantryStats()
	mobile.Movement = 2

	anchor := spawnTestUnit(world, "anchor", TeamPlayer, grid.Int2{X: 5, Y: 5}, still, "Strike")
	anchorReach, _, _ := ComputeReachable(world, anchor)
	anchorZone, _ := ComputeDangerZone(world, anchor, anchor.KnownActions(), anchorReach)
	world.ScheduleDespawn(anchor.UnitID())
	world.Commit()

	runner := spawnTestUnit(world, "runner", TeamPlayer, grid.Int2{X: 5, Y: 5}, mobile, "Strike")
	runnerReach, _, _ := ComputeReachable(world, runner)
	runnerZone, _ := ComputeDangerZone(world, runner, runner.KnownActions(), runnerReach)

	for tile := range anchorZone {
		if !runnerZone.Contains(tile) {
			t.Errorf("mobile zone is missing %s from the standing zone", tile.ToString())
		}
	}
	if len(runnerZone) <= len(anchorZone) {
		t.Error("movement should enlarge the danger zone")
	}
}

func TestUnaffordableActionContributesNothing(t *testing.T) {
	world := newTestWorld(t)
	unit := spawnTestUnit(world, "pauper", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Expensive")
	unit.SetWisp(0)

	reachable, _, _ := ComputeReachable(world, unit)
	zone, _ := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)
	if len(zone) != 0 {
		t.Errorf("unaffordable action produced %d threatened tiles, want 0", len(zone))
	}
}

func TestMinRangeLeavesHoleAroundActor(t *testing.T) {
	world := newTestWorld(t)
	stats := infantryStats()
	stats.Movement = 0
	unit := spawnTestUnit(world, "archer", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats, "Bow")

	reachable, _, _ := ComputeReachable(world, unit)
	zone, _ := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)

	if zone.Contains(grid.Int2{X: 5, Y: 4}) {
		t.Error("adjacent tile inside min range must not be threatened")
	}
	if !zone.Contains(grid.Int2{X: 5, Y: 3}) {
		t.Error("distance-2 tile should be threatened")
	}
	if !zone.Contains(grid.Int2{X: 5, Y: 2}) {
		t.Error("distance-3 tile should be threatened")
	}
	if zone.Contains(grid.Int2{X: 5, Y: 1}) {
		t.Error("distance-4 tile is past max range")
	}
}

func TestGroundAimBlastExpandsZone(t *testing.T) {
	world := newTestWorld(t)
	stats := infantryStats()
	stats.Movement = 0
	unit := spawnTestUnit(world, "mage", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats, "Blast")

	reachable, _, _ := ComputeReachable(world, unit)
	zone, _ := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)

	// range 2 plus blast radius 1 threatens up to distance 3
	if !zone.Contains(grid.Int2{X: 5, Y: 2}) {
		t.Error("blast radius should extend the zone one past max range")
	}
	if zone.Contains(grid.Int2{X: 5, Y: 1}) {
		t.Error("distance 4 is past aim range plus blast radius")
	}
}

func TestLineOfSightRaysStopAtBlockers(t *testing.T) {
	world := newTestWorld(t)
	stats := infantryStats()
	stats.Movement = 0
	unit := spawnTestUnit(world, "sniper", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats, "Ray")
	world.AddObstacle(NewObstacle("wall", grid.Int2{X: 5, Y: 3}, 1, 1).MakeImpassable())

	reachable, _, _ := ComputeReachable(world, unit)
	zone, _ := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)

	if !zone.Contains(grid.Int2{X: 5, Y: 3}) {
		t.Error("the blocking tile itself should be threatened")
	}
	if zone.Contains(grid.Int2{X: 5, Y: 2}) {
		t.Error("tiles past the blocker must not be threatened")
	}
	if !zone.Contains(grid.Int2{X: 5, Y: 9}) {
		t.Error("the open south ray should reach distance 4")
	}
	if zone.Contains(grid.Int2{X: 6, Y: 4}) {
		t.Error("off-axis tiles are not on any ray")
	}
}

func TestTeleportStrikeExtendsReachableSet(t *testing.T) {
	world := newTestWorld(t)
	stats := infantryStats()
	stats.Movement = 0
	unit := spawnTestUnit(world, "blinker", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats, "Blink")
	spawnTestUnit(world, "victim", TeamEnemy, grid.Int2{X: 5, Y: 3}, infantryStats())

	reachable, _, _ := ComputeReachable(world, unit)
	zone, extras := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)

	if !zone.Contains(grid.Int2{X: 5, Y: 3}) {
		t.Error("the teleport victim's tile should be threatened")
	}
	behind := grid.Int2{X: 5, Y: 2}
	if len(extras) != 1 || extras[0] != behind {
		t.Fatalf("extras = %v, want [%s]", extras, behind.ToString())
	}
	entry, present := reachable[behind]
	if !present {
		t.Fatal("the landing tile behind the victim must be inserted into the reachable set")
	}
	if entry.Landable {
		t.Error("teleport landing tiles are not landable for normal movement")
	}
	if entry.Cost != reachable[unit.GetTilePosition()].Cost+1 {
		t.Errorf("landing tile cost is %d, want origin cost + 1", entry.Cost)
	}
}

func TestDangerZoneRecomputeIsStable(t *testing.T) {
	world := newTestWorld(t)
	stats := infantryStats()
	stats.Movement = 2
	unit := spawnTestUnit(world, "blinker", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats, "Strike", "Blast", "Blink")
	spawnTestUnit(world, "victim", TeamEnemy, grid.Int2{X: 5, Y: 2}, infantryStats())

	reachable, _, _ := ComputeReachable(world, unit)
	firstZone, firstExtras := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)
	if len(firstExtras) == 0 {
		t.Fatal("setup should produce at least one teleport landing tile")
	}

	// the landing tiles are already in the reachable set now, so a second
	// run over unchanged inputs finds nothing new
	secondZone, secondExtras := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)
	if len(secondExtras) != 0 {
		t.Errorf("second run produced new extras: %v", secondExtras)
	}
	if len(secondZone) != len(firstZone) {
		t.Fatalf("second zone has %d tiles, first had %d", len(secondZone), len(firstZone))
	}
	for tile := range firstZone {
		if !secondZone.Contains(tile) {
			t.Errorf("second zone is missing %s", tile.ToString())
		}
	}
}

func TestComputeSingleActionRangeUsesCurrentTileOnly(t *testing.T) {
	world := newTestWorld(t)
	unit := spawnTestUnit(world, "mage", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Blast")

	zone := ComputeSingleActionRange(world, unit, "Blast")
	if !zone.Contains(grid.Int2{X: 5, Y: 3}) {
		t.Error("aim range from the current tile should be threatened")
	}
	// movement is 3, but single-action range must ignore it
	if zone.Contains(grid.Int2{X: 5, Y: 0}) {
		t.Error("single action range must not include movement")
	}
}

func TestDirectionalPatternCoversAllFacings(t *testing.T) {
	world := newTestWorld(t)
	stats := infantryStats()
	stats.Movement = 0
	unit := spawnTestUnit(world, "sweeper", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats, "Sweep")

	reachable, _, _ := ComputeReachable(world, unit)
	zone, _ := ComputeDangerZone(world, unit, unit.KnownActions(), reachable)

	for _, direction := range grid.CardinalDirections {
		tile := unit.GetTilePosition().Add(direction)
		if !zone.Contains(tile) {
			t.Errorf("facing union should threaten %s", tile.ToString())
		}
	}
}
