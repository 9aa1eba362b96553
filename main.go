package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/drift/config"
	"github.com/automoto/drift/fonts"
	"github.com/automoto/drift/logging"
	"github.com/automoto/drift/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(players []scenes.PlayerSpec) *Game {
	return &Game{scene: scenes.NewDriftScene(players)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flags := pflag.NewFlagSet("drift", pflag.ExitOnError)
	if err := config.BindFlags(flags); err != nil {
		logging.Log.Fatal().Err(err).Msg("failed to bind flags")
	}
	_ = flags.Parse(os.Args[1:])
	path, _ := flags.GetString("config")

	settings, err := config.Load(path)
	if err != nil {
		// the logger is not configured yet
		logging.Setup("info")
		logging.Log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(settings.LogLevel)
	settings.Apply()

	players, err := playerSpecs(settings)
	if err != nil {
		logging.Log.Fatal().Err(err).Msg("invalid player configuration")
	}

	if err := fonts.LoadDefaults(); err != nil {
		logging.Log.Fatal().Err(err).Msg("failed to load fonts")
	}

	logging.Log.Info().
		Int("width", config.C.Width).
		Int("height", config.C.Height).
		Int("tps", config.C.TPS).
		Int("players", len(players)).
		Msg("starting")

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(players)); err != nil {
		logging.Log.Fatal().Err(err).Msg("game exited")
	}
}

// playerSpecs resolves every configured player slot to a validated profile
// and a control scheme.
func playerSpecs(s *config.Settings) ([]scenes.PlayerSpec, error) {
	specs := make([]scenes.PlayerSpec, 0, len(s.Players))
	for i, p := range s.Players {
		profile, err := s.Profile(p.Profile)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		scheme, err := config.ParseControlScheme(p.Scheme)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		spec := scenes.PlayerSpec{Profile: profile, ControlScheme: scheme}
		if p.Gamepad != nil {
			id := ebiten.GamepadID(*p.Gamepad)
			spec.Gamepad = &id
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, errors.New("no players configured")
	}
	return specs, nil
}
