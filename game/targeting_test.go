package game

import (
	"testing"

	"github.com/memmaker/skirmish/engine/grid"
)

func TestMeleeTargetsAdjacentEnemiesOnly(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "brawler", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Strike")
	adjacent := spawnTestUnit(world, "near", TeamEnemy, grid.Int2{X: 5, Y: 4}, infantryStats())
	spawnTestUnit(world, "diagonal", TeamEnemy, grid.Int2{X: 6, Y: 4}, infantryStats())
	spawnTestUnit(world, "ally", TeamPlayer, grid.Int2{X: 4, Y: 5}, infantryStats())

	targets := FindValidTargets(world, actor, "Strike")
	if len(targets) != 1 {
		t.Fatalf("got %d targets, want 1", len(targets))
	}
	if targets[0].Unit != adjacent {
		t.Errorf("target is %s, want %s", targets[0].Unit.GetName(), adjacent.GetName())
	}
}

func TestTargetOrderFollowsInsertionOrder(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "brawler", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Strike")
	first := spawnTestUnit(world, "first", TeamEnemy, grid.Int2{X: 5, Y: 4}, infantryStats())
	second := spawnTestUnit(world, "second", TeamEnemy, grid.Int2{X: 5, Y: 6}, infantryStats())

	for run := 0; run < 5; run++ {
		targets := FindValidTargets(world, actor, "Strike")
		if len(targets) != 2 || targets[0].Unit != first || targets[1].Unit != second {
			t.Fatalf("run %d: target order changed", run)
		}
	}
}

func TestMinRangeExcludesAdjacentTarget(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "archer", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Bow")
	spawnTestUnit(world, "near", TeamEnemy, grid.Int2{X: 5, Y: 4}, infantryStats())
	far := spawnTestUnit(world, "far", TeamEnemy, grid.Int2{X: 5, Y: 3}, infantryStats())

	targets := FindValidTargets(world, actor, "Bow")
	if len(targets) != 1 || targets[0].Unit != far {
		t.Fatalf("want only the distance-2 target, got %d targets", len(targets))
	}
}

func TestLineOfSightBlocksAndPierces(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "sniper", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Ray", "PierceRay")
	world.AddObstacle(NewObstacle("wall", grid.Int2{X: 5, Y: 4}, 1, 1).MakeImpassable())
	spawnTestUnit(world, "hidden", TeamEnemy, grid.Int2{X: 5, Y: 3}, infantryStats())
	spawnTestUnit(world, "offAxis", TeamEnemy, grid.Int2{X: 7, Y: 4}, infantryStats())

	if targets := FindValidTargets(world, actor, "Ray"); len(targets) != 0 {
		t.Errorf("blocked ray found %d targets, want 0", len(targets))
	}
	targets := FindValidTargets(world, actor, "PierceRay")
	if len(targets) != 1 || targets[0].Unit.GetName() != "hidden" {
		t.Errorf("piercing ray should hit exactly the hidden unit, got %d targets", len(targets))
	}
}

func TestHealingSkipsFullHealthAllies(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "medic", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Mend")
	healthy := spawnTestUnit(world, "healthy", TeamPlayer, grid.Int2{X: 5, Y: 4}, infantryStats())
	wounded := spawnTestUnit(world, "wounded", TeamPlayer, grid.Int2{X: 5, Y: 6}, infantryStats())
	wounded.ApplyDamage(3)

	targets := FindValidTargets(world, actor, "Mend")
	if len(targets) != 1 || targets[0].Unit != wounded {
		t.Fatalf("want only the wounded ally, got %d targets", len(targets))
	}
	_ = healthy
}

func TestTeleportStrikeNeedsFreeLanding(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "blinker", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Blink")
	open := spawnTestUnit(world, "open", TeamEnemy, grid.Int2{X: 5, Y: 3}, infantryStats())
	blocked := spawnTestUnit(world, "cornered", TeamEnemy, grid.Int2{X: 7, Y: 5}, infantryStats())
	world.AddObstacle(NewObstacle("wall", grid.Int2{X: 8, Y: 5}, 1, 1).MakeImpassable())

	targets := FindValidTargets(world, actor, "Blink")
	if len(targets) != 1 || targets[0].Unit != open {
		t.Fatalf("want only the target with a free landing tile, got %d targets", len(targets))
	}
	_ = blocked
}

func TestGroundAimTargetsAreTiles(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "mage", TeamPlayer, grid.Int2{X: 0, Y: 0}, infantryStats(), "Blast")

	targets := FindValidTargets(world, actor, "Blast")
	for _, target := range targets {
		if target.Unit != nil {
			t.Fatal("ground aim targets carry no unit")
		}
		dist := grid.ManhattanDistance2(actor.GetTilePosition(), target.Tile)
		if dist < 1 || dist > 2 {
			t.Errorf("aim tile %s at distance %d, outside [1,2]", target.Tile.ToString(), dist)
		}
		if !world.GetMap().ContainsGrid(target.Tile) {
			t.Errorf("aim tile %s is out of bounds", target.Tile.ToString())
		}
	}
}

func TestDirectionalAimHitsAnyFacing(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "sweeper", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats(), "Sweep")
	spawnTestUnit(world, "north", TeamEnemy, grid.Int2{X: 5, Y: 4}, infantryStats())
	spawnTestUnit(world, "west", TeamEnemy, grid.Int2{X: 4, Y: 5}, infantryStats())
	spawnTestUnit(world, "away", TeamEnemy, grid.Int2{X: 8, Y: 8}, infantryStats())

	targets := FindValidTargets(world, actor, "Sweep")
	if len(targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(targets))
	}
}

func TestShoveNeedsFreeTileBeyond(t *testing.T) {
	world := newTestWorld(t)
	actor := spawnTestUnit(world, "bully", TeamPlayer, grid.Int2{X: 5, Y: 5}, infantryStats())
	pushable := spawnTestUnit(world, "pushable", TeamEnemy, grid.Int2{X: 5, Y: 4}, infantryStats())
	cornered := spawnTestUnit(world, "cornered", TeamEnemy, grid.Int2{X: 4, Y: 5}, infantryStats())
	world.AddObstacle(NewObstacle("wall", grid.Int2{X: 3, Y: 5}, 1, 1).MakeImpassable())

	targets := ShoveTargets(world, actor)
	if len(targets) != 1 || targets[0].Unit != pushable {
		t.Fatalf("want only the pushable unit, got %d targets", len(targets))
	}
	if dest := shoveDestination(actor, pushable); dest != (grid.Int2{X: 5, Y: 3}) {
		t.Errorf("shove destination is %s, want (5, 3)", dest.ToString())
	}
	_ = cornered
}

func TestRescueRules(t *testing.T) {
	world := newTestWorld(t)
	heavy := infantryStats()
	heavy.Weight = 8
	light := infantryStats()
	light.Weight = 2

	actor := spawnTestUnit(world, "carrier", TeamPlayer, grid.Int2{X: 5, Y: 5}, heavy)
	small := spawnTestUnit(world, "small", TeamPlayer, grid.Int2{X: 5, Y: 4}, light)
	spawnTestUnit(world, "big", TeamPlayer, grid.Int2{X: 5, Y: 6}, heavy)
	spawnTestUnit(world, "enemy", TeamEnemy, grid.Int2{X: 4, Y: 5}, light)

	targets := RescueTargets(world, actor)
	if len(targets) != 1 || targets[0].Unit != small {
		t.Fatalf("want only the lighter ally, got %d targets", len(targets))
	}

	actor.PickUp(small)
	if targets := RescueTargets(world, actor); len(targets) != 0 {
		t.Error("a unit already carrying someone cannot rescue")
	}
	drops := DropTargets(world, actor)
	if len(drops) == 0 {
		t.Fatal("carrying unit should have drop tiles")
	}
	for _, drop := range drops {
		if world.GetMap().IsOccupied(drop.Tile) {
			t.Errorf("drop tile %s is occupied", drop.Tile.ToString())
		}
	}
}
