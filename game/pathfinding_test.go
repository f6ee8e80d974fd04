package game

import (
	"testing"

	"github.com/memmaker/skirmish/engine/grid"
)

func TestReachableIncludesStartTile(t *testing.T) {
	world := newTestWorld(t)
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats())

	reachable, _, _ := ComputeReachable(world, unit)
	entry, present := reachable[unit.GetTilePosition()]
	if !present {
		t.Fatal("start tile missing from reachable set")
	}
	if entry.Cost != 0 || !entry.Landable {
		t.Errorf("start tile entry is %+v, want cost 0 landable", entry)
	}
}

func TestReachableCostsAreShortest(t *testing.T) {
	world := newTestWorld(t)
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats())

	reachable, _, _ := ComputeReachable(world, unit)
	for tile, entry := range reachable {
		manhattan := int(grid.ManhattanDistance2(unit.GetTilePosition(), tile))
		if entry.Cost != manhattan {
			t.Errorf("open terrain cost to %s is %d, want %d", tile.ToString(), entry.Cost, manhattan)
		}
		if entry.Cost > unit.MovesLeft() {
			t.Errorf("tile %s costs %d, over the budget %d", tile.ToString(), entry.Cost, unit.MovesLeft())
		}
	}
}

func TestImmobileUnitReachesOnlyOwnTile(t *testing.T) {
	world := newTestWorld(t)
	stats := infantryStats()
	stats.Movement = 0
	unit := spawnTestUnit(world, "anchor", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats)

	reachable, _, _ := ComputeReachable(world, unit)
	if len(reachable) != 1 {
		t.Errorf("immobile unit reaches %d tiles, want 1", len(reachable))
	}
}

func TestImpassableObstacleForcesDetour(t *testing.T) {
	world := newTestWorld(t)
	world.AddObstacle(NewObstacle("wall", grid.Int2{X: 1, Y: 0}, 1, 1).MakeImpassable())
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 0, Y: 0}, infantryStats())

	reachable, _, _ := ComputeReachable(world, unit)
	if _, found := reachable[grid.Int2{X: 1, Y: 0}]; found {
		t.Error("impassable obstacle tile must not be reachable")
	}
	// the straight line costs 2, the detour around the wall costs 4 and
	// blows the budget of 3
	if _, found := reachable[grid.Int2{X: 2, Y: 0}]; found {
		t.Error("tile behind the wall should be out of reach on budget 3")
	}
	if entry, found := reachable[grid.Int2{X: 1, Y: 1}]; !found || entry.Cost != 2 {
		t.Errorf("detour tile (1,1) = %+v, want cost 2", entry)
	}
}

func TestFlyerPassesObstaclesButCannotLand(t *testing.T) {
	world := newTestWorld(t)
	world.AddObstacle(NewObstacle("crate", grid.Int2{X: 5, Y: 4}, 1, 1))
	stats := infantryStats()
	stats.Flying = true
	flyer := spawnTestUnit(world, "hawk", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats)

	reachable, _, _ := ComputeReachable(world, flyer)
	entry, found := reachable[grid.Int2{X: 5, Y: 4}]
	if !found {
		t.Fatal("flyer should pass over the crate")
	}
	if entry.Landable {
		t.Error("obstacle tile must not be landable")
	}
	if _, beyond := reachable[grid.Int2{X: 5, Y: 3}]; !beyond {
		t.Error("flyer should reach the tile beyond the crate")
	}
}

func TestGroundUnitStopsAtObstacleAndWater(t *testing.T) {
	world := newTestWorld(t)
	world.AddObstacle(NewObstacle("crate", grid.Int2{X: 5, Y: 4}, 1, 1))
	world.GetMap().SetWater(grid.Int2{X: 4, Y: 5}, true)
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats())

	reachable, _, _ := ComputeReachable(world, unit)
	if _, found := reachable[grid.Int2{X: 5, Y: 4}]; found {
		t.Error("ground unit must not pass an ordinary obstacle")
	}
	if _, found := reachable[grid.Int2{X: 4, Y: 5}]; found {
		t.Error("ground unit must not enter water")
	}
}

func TestSwimmerCrossesWater(t *testing.T) {
	world := newTestWorld(t)
	world.GetMap().SetWater(grid.Int2{X: 4, Y: 5}, true)
	stats := infantryStats()
	stats.Swimming = true
	swimmer := spawnTestUnit(world, "otter", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats)

	reachable, _, _ := ComputeReachable(world, swimmer)
	entry, found := reachable[grid.Int2{X: 4, Y: 5}]
	if !found {
		t.Fatal("swimmer should enter water")
	}
	if !entry.Landable {
		t.Error("swimmer should be able to end movement in water")
	}
}

func TestTrapIsPassableAndLandable(t *testing.T) {
	world := newTestWorld(t)
	world.AddObstacle(NewObstacle("trap", grid.Int2{X: 5, Y: 4}, 1, 1).MakeTrap())
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats())

	reachable, _, _ := ComputeReachable(world, unit)
	entry, found := reachable[grid.Int2{X: 5, Y: 4}]
	if !found {
		t.Fatal("trap tile should be reachable")
	}
	if !entry.Landable {
		t.Error("trap tile should be landable")
	}
}

func TestAllyTilePassableEnemyTileBlocks(t *testing.T) {
	world := newTestWorld(t)
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats())
	spawnTestUnit(world, "buddy", TeamPlayer, grid.Int2{X: 5, Y: 4}, infantryStats())
	spawnTestUnit(world, "foe", TeamEnemy, grid.Int2{X: 5, Y: 6}, infantryStats())

	reachable, _, _ := ComputeReachable(world, unit)
	allyEntry, allyFound := reachable[grid.Int2{X: 5, Y: 4}]
	if !allyFound {
		t.Fatal("ally tile should be passable")
	}
	if allyEntry.Landable {
		t.Error("occupied ally tile must not be landable")
	}
	if _, found := reachable[grid.Int2{X: 5, Y: 6}]; found {
		t.Error("enemy tile must block a ground unit")
	}
}

func TestLedgeBlocksOneDirection(t *testing.T) {
	world := newTestWorld(t)
	ledgeTile := grid.Int2{X: 5, Y: 4}
	world.GetMap().SetLedge(ledgeTile, grid.SouthDir)
	stats := infantryStats()
	stats.Movement = 1
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 5, Y: 3}, stats)

	reachable, _, _ := ComputeReachable(world, unit)
	if _, found := reachable[ledgeTile]; found {
		t.Error("stepping south onto the ledge tile should be blocked")
	}

	climber := spawnTestUnit(world, "climber", TeamPlayer, grid.Int2{X: 5, Y: 5}, stats)
	reachable, _, _ = ComputeReachable(world, climber)
	if _, found := reachable[ledgeTile]; !found {
		t.Error("stepping north onto the ledge tile should be open")
	}
}

func TestReconstructPathPrefersCursorHistory(t *testing.T) {
	world := newTestWorld(t)
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 0, Y: 0}, infantryStats())
	_, cameFrom, costSoFar := ComputeReachable(world, unit)

	// the player traced down first, then right
	history := []grid.Int2{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2},
	}
	waypoints := ReconstructPath(cameFrom, costSoFar, history, grid.Int2{X: 0, Y: 0}, grid.Int2{X: 1, Y: 2}, world.GetMap())

	wantTiles := []grid.Int2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}}
	if len(waypoints) != len(wantTiles) {
		t.Fatalf("path has %d waypoints, want %d", len(waypoints), len(wantTiles))
	}
	for index, tile := range wantTiles {
		if waypoints[index] != tile.ToPixelCenter(16) {
			t.Errorf("waypoint %d is %v, want center of %s", index, waypoints[index], tile.ToString())
		}
	}
}

func TestReconstructPathWithoutHistory(t *testing.T) {
	world := newTestWorld(t)
	unit := spawnTestUnit(world, "walker", TeamPlayer, grid.Int2{X: 0, Y: 0}, infantryStats())
	_, cameFrom, costSoFar := ComputeReachable(world, unit)

	waypoints := ReconstructPath(cameFrom, costSoFar, nil, grid.Int2{X: 0, Y: 0}, grid.Int2{X: 2, Y: 1}, world.GetMap())
	if len(waypoints) != 4 {
		t.Fatalf("path has %d waypoints, want 4", len(waypoints))
	}
	if waypoints[0] != (grid.Int2{X: 0, Y: 0}).ToPixelCenter(16) {
		t.Error("path must start at the unit's tile")
	}
	if waypoints[3] != (grid.Int2{X: 2, Y: 1}).ToPixelCenter(16) {
		t.Error("path must end at the goal tile")
	}
}
