package systems

import (
	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/fonts"
	"github.com/automoto/drift/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the session toggles: pause, trail, debug and quit.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)
	applySessionActions(pause, &input.ActionBuffer)
}

func applySessionActions(pause *components.PauseData, input *components.ActionBuffer) {
	if input.Action(cfg.ActionQuit).JustPressed {
		pause.QuitRequested = true
		logging.Log.Info().Msg("quit requested")
	}

	if input.Action(cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		logging.Log.Info().Bool("paused", pause.IsPaused).Msg("pause toggled")
	}

	if input.Action(cfg.ActionToggleTrail).JustPressed {
		pause.ShowTrail = !pause.ShowTrail
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		pause.ShowDebug = !pause.ShowDebug
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFace := fonts.Title.Get()
	titleWidth := text.BoundString(titleFace, cfg.Pause.Title).Dx()
	text.Draw(screen, cfg.Pause.Title, titleFace, int(width)/2-titleWidth/2, int(height/2), cfg.Pause.TextColor)

	hintFace := fonts.Small.Get()
	hintWidth := text.BoundString(hintFace, cfg.Pause.Hint).Dx()
	text.Draw(screen, cfg.Pause.Hint, hintFace, int(width)/2-hintWidth/2, int(height)-12, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// QuitRequested reports whether the quit action fired.
func QuitRequested(e *ecs.ECS) bool {
	return GetOrCreatePause(e).QuitRequested
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			ShowTrail: cfg.Trail.Visible,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
