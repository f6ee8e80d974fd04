package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/memmaker/skirmish/engine/grid"
	"github.com/memmaker/skirmish/engine/util"
	"github.com/memmaker/skirmish/game"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const frameTime = time.Second / 30

func main() {
	cmd := &cli.Command{
		Name:  "skirmish",
		Usage: "terminal tactics skirmish",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 24, Usage: "map width in tiles"},
			&cli.IntFlag{Name: "height", Value: 16, Usage: "map height in tiles"},
			&cli.IntFlag{Name: "seed", Value: 32, Usage: "map generation seed"},
			&cli.StringFlag{Name: "map", Usage: "load a saved map instead of generating one"},
			&cli.StringFlag{Name: "save", Usage: "write the generated map to this file and exit"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		println(fmt.Sprintf("[Main] %s", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	// the frame renderer owns the terminal, so the category logger stays
	// quiet unless explicitly asked for
	util.GLOBAL_LOG_LEVEL = util.LogLevelError
	if cmd.Bool("debug") {
		util.GLOBAL_LOG_LEVEL = util.LogLevelInfo
		util.GLOBAL_LOG_CATEGORIES |= util.LogScript
	}

	gameMap, obstacles, spawns, err := loadOrGenerate(cmd)
	if err != nil {
		return err
	}
	if saveFile := cmd.String("save"); saveFile != "" {
		return gameMap.SaveToDisk(saveFile, obstacles, spawns)
	}

	catalog, err := newDemoCatalog()
	if err != nil {
		return err
	}

	world := game.NewWorld(gameMap, catalog)
	for _, entry := range obstacles {
		world.AddObstacle(game.NewObstacleFromEntry(entry))
	}
	for _, entry := range spawns {
		world.AddUnit(newUnitFromSpawn(entry), grid.Int2{X: entry.X, Y: entry.Y})
	}

	resolver := game.NewScriptedResolver(world)
	ctrl := game.NewController(world, resolver, &turnRunner{world: world})

	return gameLoop(ctrl, resolver)
}

func loadOrGenerate(cmd *cli.Command) (*grid.Map, []grid.ObstacleEntry, []grid.SpawnEntry, error) {
	if mapFile := cmd.String("map"); mapFile != "" {
		return grid.NewMapFromFile(mapFile)
	}
	biome := game.NewBiomeRiverlands(int32(cmd.Int("width")), int32(cmd.Int("height")), 16, int64(cmd.Int("seed")))
	gameMap, obstacles, spawns := biome.Generate()
	return gameMap, obstacles, spawns, nil
}

// turnRunner flips the side as soon as the controller reports the turn is
// over; a real campaign would script AI turns here.
type turnRunner struct {
	world *game.World
}

func (t *turnRunner) OnTurnShouldEnd(team game.Team) {
	t.world.NextFaction()
}

func gameLoop(ctrl *game.Controller, resolver *game.ScriptedResolver) error {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	keys := make(chan byte, 16)
	go readKeys(keys)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	var out strings.Builder
	lastFrame := time.Now()
	for range ticker.C {
		now := time.Now()
		deltaTime := now.Sub(lastFrame).Seconds()
		lastFrame = now

		for drained := false; !drained; {
			select {
			case key := <-keys:
				event, quit := translateKey(key, keys)
				if quit {
					return nil
				}
				if event.Kind != game.InputNone {
					ctrl.HandleInput(event)
				}
			default:
				drained = true
			}
		}

		resolver.Update(deltaTime)
		ctrl.HandleContinuousInput(deltaTime)

		out.Reset()
		renderFrame(&out, ctrl)
		os.Stdout.WriteString(out.String())

		if over, winner := ctrl.GetWorld().IsGameOver(); over {
			os.Stdout.WriteString(fmt.Sprintf("\r\n%s wins!\r\n", winner.ToString()))
			return nil
		}
	}
	return nil
}

func readKeys(keys chan<- byte) {
	buffer := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buffer); err != nil {
			close(keys)
			return
		}
		keys <- buffer[0]
	}
}

// translateKey maps raw terminal bytes to input events. Arrow keys arrive
// as ESC [ A..D sequences; the two follow-up bytes are pulled from the
// channel with a short deadline so a lone ESC still works as cancel.
func translateKey(key byte, keys <-chan byte) (game.InputEvent, bool) {
	direction := func(dir grid.Int2) game.InputEvent {
		return game.InputEvent{Kind: game.InputDirection, Direction: dir}
	}
	switch key {
	case 'q', 3: // ctrl-c
		return game.InputEvent{}, true
	case 'w':
		return direction(grid.NorthDir), false
	case 's':
		return direction(grid.SouthDir), false
	case 'a':
		return direction(grid.WestDir), false
	case 'd':
		return direction(grid.EastDir), false
	case '\r', '\n', ' ':
		return game.InputEvent{Kind: game.InputConfirm}, false
	case 127, 8: // backspace
		return game.InputEvent{Kind: game.InputCancel}, false
	case 'n':
		return game.InputEvent{Kind: game.InputNextTarget}, false
	case 'p':
		return game.InputEvent{Kind: game.InputPrevTarget}, false
	case 'i':
		return game.InputEvent{Kind: game.InputInspect}, false
	case 'm':
		return game.InputEvent{Kind: game.InputOpenMenu}, false
	case 27: // ESC or arrow sequence
		select {
		case second := <-keys:
			if second != '[' {
				return game.InputEvent{Kind: game.InputCancel}, false
			}
			select {
			case third := <-keys:
				switch third {
				case 'A':
					return direction(grid.NorthDir), false
				case 'B':
					return direction(grid.SouthDir), false
				case 'C':
					return direction(grid.EastDir), false
				case 'D':
					return direction(grid.WestDir), false
				}
			case <-time.After(10 * time.Millisecond):
			}
		case <-time.After(10 * time.Millisecond):
			return game.InputEvent{Kind: game.InputCancel}, false
		}
	}
	return game.InputEvent{}, false
}
