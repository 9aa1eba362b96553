package scenes

import (
	"sync"

	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/logging"
	"github.com/automoto/drift/shared/movement"
	factory2 "github.com/automoto/drift/systems/factory"

	"github.com/automoto/drift/components"
	"github.com/automoto/drift/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerSpec is one validated player slot.
type PlayerSpec struct {
	Profile       movement.Profile
	ControlScheme cfg.ControlSchemeID
	Gamepad       *ebiten.GamepadID // nil = keyboard
}

// DriftScene is the open playfield: players, their trails and the HUD.
type DriftScene struct {
	ecs     *ecs.ECS
	players []PlayerSpec
	once    sync.Once
	err     error
}

func NewDriftScene(players []PlayerSpec) *DriftScene {
	return &DriftScene{players: players}
}

// Update runs one tick. It returns ebiten.Termination once quit was requested.
func (ds *DriftScene) Update() error {
	ds.once.Do(ds.configure)
	if ds.err != nil {
		return ds.err
	}
	ds.ecs.Update()

	if systems.QuitRequested(ds.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ds *DriftScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DriftScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerInput))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHUD))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawTrails)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ds.ecs = ecs

	spaceEntry := factory2.CreateSpace(ds.ecs,
		cfg.Space.Width, cfg.Space.Height,
		cfg.Space.CellWidth, cfg.Space.CellHeight,
	)
	space := components.Space.Get(spaceEntry)

	for i, spec := range ds.players {
		spawn := spawnPoint(i)
		state, err := movement.NewPlayerState(spec.Profile, spawn)
		if err != nil {
			// profiles are validated before the scene is built
			ds.err = err
			return
		}
		factory2.CreatePlayer(ds.ecs, space, state, factory2.PlayerInputConfig{
			PlayerIndex:   i,
			GamepadID:     spec.Gamepad,
			ControlScheme: spec.ControlScheme,
		})
		logging.Log.Info().
			Int("player", i).
			Str("profile", spec.Profile.Name).
			Stringer("discipline", spec.Profile.Discipline).
			Stringer("scheme", spec.ControlScheme).
			Float64("x", spawn.X).
			Float64("y", spawn.Y).
			Msg("player spawned")
	}

	// Snap camera to first player's start position to prevent panning from (0,0)
	first := spawnPoint(0)
	factory2.CreateCamera(ds.ecs, first.X, first.Y)
}

// spawnPoint lines players up horizontally around the configured spawn.
func spawnPoint(i int) movement.Vec {
	return movement.Vec{
		X: cfg.Player.SpawnX + float64(i)*cfg.Player.SpawnSpacing,
		Y: cfg.Player.SpawnY,
	}
}
