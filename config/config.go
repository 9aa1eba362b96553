package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PlayerConfig contains the on-screen body of a player.
type PlayerConfig struct {
	BodySize     float64
	OutlineWidth float32 // outline drawn while sliding
	NotchSize    float64 // facing marker
	SpawnX       float64
	SpawnY       float64
	SpawnSpacing float64 // horizontal gap between consecutive spawns
}

// TrailConfig controls how path history is drawn.
type TrailConfig struct {
	SampleSize  float64 // side of the newest sample square, scaled down with age
	StrokeWidth float32
	Visible     bool
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	CullPadding     float64 // Pixels beyond the viewport still drawn
}

// SpaceConfig sizes the resolv space holding player bodies.
type SpaceConfig struct {
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
}

// HUDConfig contains HUD layout and colors.
type HUDConfig struct {
	Margin         float64
	LineHeight     float64
	GaugeWidth     float64
	GaugeHeight    float64
	GaugeTweenSecs float32 // time the gauge takes to settle on a new score
	GaugeEpsilon   float32 // score change that restarts the tween

	TextColor    color.RGBA
	GaugeBgColor color.RGBA
	GaugeFgColor color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Trail TrailConfig
var Camera CameraConfig
var Space SpaceConfig
var HUD HUDConfig
var Pause PauseConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Background   = color.RGBA{R: 12, G: 12, B: 18, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  900,
		Height: 600,
		Title:  "drift",
		TPS:    100,
	}

	Player = PlayerConfig{
		BodySize:     20,
		OutlineWidth: 3,
		NotchSize:    4,
		SpawnX:       450,
		SpawnY:       300,
		SpawnSpacing: 60,
	}

	Trail = TrailConfig{
		SampleSize:  12,
		StrokeWidth: 1,
		Visible:     true,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		CullPadding:     32,
	}

	Space = SpaceConfig{
		Width:      4096,
		Height:     4096,
		CellWidth:  64,
		CellHeight: 64,
	}

	HUD = HUDConfig{
		Margin:         10,
		LineHeight:     16,
		GaugeWidth:     120,
		GaugeHeight:    8,
		GaugeTweenSecs: 0.25,
		GaugeEpsilon:   0.005,
		TextColor:      White,
		GaugeBgColor:   DarkGray,
		GaugeFgColor:   BrightGreen,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "P: Resume   T: Toggle trail   Esc: Quit",
	}
}
