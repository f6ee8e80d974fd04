package game

import (
	"github.com/memmaker/skirmish/engine/grid"
)

// GameStateGroundAim aims an area effect at a tile. The valid aim tiles
// are the aim diamond only; the blast fringe around each aim tile is
// threatened but not aimable, so the cursor check never uses the threat
// zone. The blast area around the cursor is published as an overlay
// while aiming.
type GameStateGroundAim struct {
	ctrl  *Controller
	actor *Unit
	def   *ActionDefinition

	validTiles DangerZone
}

func (g *GameStateGroundAim) Init(wasPopped bool) {
	g.validTiles = make(DangerZone)
	for _, target := range groundAimTargets(g.ctrl.world, g.def, g.actor.GetTilePosition()) {
		g.validTiles[target.Tile] = true
	}
	g.ctrl.SnapCursorTo(g.actor.GetTilePosition())
	g.updateBlastPreview()
}

func (g *GameStateGroundAim) updateBlastPreview() {
	preview := make(DangerZone)
	cursor := g.ctrl.Cursor()
	if g.validTiles.Contains(cursor) {
		for _, offset := range grid.DiamondOffsets(0, g.def.AoERadius) {
			tile := cursor.Add(offset)
			if g.ctrl.world.GetMap().ContainsGrid(tile) {
				preview[tile] = true
			}
		}
	}
	g.ctrl.aoeOverlay = preview
}

func (g *GameStateGroundAim) OnConfirm() {
	cursor := g.ctrl.Cursor()
	if !g.validTiles.Contains(cursor) {
		return
	}
	g.actor.FaceTowards(cursor)
	g.ctrl.resolveAndFinish(g.actor, g.def, []Target{tileTarget(cursor)})
}

func (g *GameStateGroundAim) OnCancel() {
	g.ctrl.aoeOverlay = nil
	g.ctrl.PopState()
}

func (g *GameStateGroundAim) OnDirectionKeys(direction grid.Int2) {
	g.ctrl.MoveCursor(direction)
	g.updateBlastPreview()
}

func (g *GameStateGroundAim) OnNextTarget() {
}

func (g *GameStateGroundAim) OnPrevTarget() {
}

func (g *GameStateGroundAim) OnInspect() {
}

func (g *GameStateGroundAim) OnOpenMenu() {
}
