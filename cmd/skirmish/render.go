package main

import (
	"fmt"
	"strings"

	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/game"
)

// renderFrame draws the whole battlefield as ANSI text: terrain, overlays,
// obstacles, units and the cursor, followed by the status lines.
func renderFrame(out *strings.Builder, ctrl *game.Controller) {
	out.WriteString("\033[H\033[2J")
	world := ctrl.GetWorld()
	gameMap := world.GetMap()
	movement := ctrl.MovementOverlay()
	danger := ctrl.DangerOverlay()
	aoe := ctrl.AoEOverlay()

	for y := int32(0); y < gameMap.Height(); y++ {
		for x := int32(0); x < gameMap.Width(); x++ {
			tile := grid.Int2{X: x, Y: y}
			out.WriteString(tileGlyph(ctrl, world, tile, movement, danger, aoe))
		}
		out.WriteString("\033[0m\r\n")
	}

	writeStatus(out, ctrl)
}

func tileGlyph(ctrl *game.Controller, world *game.World, tile grid.Int2, movement game.ReachableSet, danger game.DangerZone, aoe game.DangerZone) string {
	glyph := terrainGlyph(world, tile)
	color := ""
	if entry, reachable := movement[tile]; reachable {
		if entry.Landable {
			color = "\033[44m" // blue: can end movement here
		} else {
			color = "\033[46m" // cyan: pass-through only
		}
	}
	if danger.Contains(tile) {
		color = "\033[41m" // red: threatened
	}
	if aoe.Contains(tile) {
		color = "\033[45m" // magenta: blast preview
	}
	if tile == ctrl.Cursor() {
		color = "\033[7m" // inverse video
	}
	if color == "" {
		return glyph + " "
	}
	return color + glyph + " \033[0m"
}

func terrainGlyph(world *game.World, tile grid.Int2) string {
	if unit, present := world.UnitAt(tile); present {
		if unit.GetTeam() == game.TeamPlayer {
			return strings.ToUpper(unit.GetName()[:1])
		}
		return strings.ToLower(unit.GetName()[:1])
	}
	if obstacle, present := world.ObstacleAt(tile); present {
		switch {
		case obstacle.IsTrap():
			return "x"
		case obstacle.IsImpassable():
			return "#"
		default:
			return "o"
		}
	}
	gameMap := world.GetMap()
	if gameMap.IsWaterAt(tile) {
		return "~"
	}
	if gameMap.LedgeMaskAt(tile) != 0 {
		return "^"
	}
	return "."
}

func writeStatus(out *strings.Builder, ctrl *game.Controller) {
	world := ctrl.GetWorld()
	out.WriteString(fmt.Sprintf("Turn: %s  Cursor: %s\r\n", world.CurrentFaction().ToString(), ctrl.Cursor().ToString()))

	if unit, present := world.UnitAt(ctrl.Cursor()); present {
		if unit.GetTeam() == world.CurrentFaction() {
			out.WriteString(strings.ReplaceAll(unit.GetFriendlyDescription(), "\n", "\r\n"))
		} else {
			out.WriteString(strings.ReplaceAll(unit.GetEnemyDescription(), "\n", "\r\n"))
		}
	}

	if menu, inMenu := ctrl.CurrentState().(*game.GameStateActionMenu); inMenu {
		for index, option := range menu.Options() {
			marker := "  "
			if index == menu.SelectedIndex() {
				marker = "> "
			}
			if !option.Enabled {
				out.WriteString(fmt.Sprintf("%s\033[2m%s\033[0m\r\n", marker, option.Label))
			} else {
				out.WriteString(fmt.Sprintf("%s%s\r\n", marker, option.Label))
			}
		}
	}

	out.WriteString("arrows/wasd move | enter confirm | backspace cancel | n/p cycle | i inspect | m menu | q quit\r\n")
}
