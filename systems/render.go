package systems

import (
	"image/color"

	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/shared/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport culling skips trail samples and bodies that are off-screen.
// A small padding keeps squares from popping at the edges.

// DrawTrails renders every player's path history, oldest first so newer
// samples overlap older ones. Squares shrink linearly with age.
func DrawTrails(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).ShowTrail {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := newViewport(camera.Position, width, height, cfg.Camera.CullPadding)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		trail := components.Player.Get(e).State.Trail()
		for age := trail.Len() - 1; age >= 0; age-- {
			s := trail.At(age)
			size := cfg.Trail.SampleSize * trail.FadeScale(age)
			x, y := s.Pos.X-size/2, s.Pos.Y-size/2
			if !view.Overlaps(x, y, size, size) {
				continue
			}
			sx, sy := worldToScreen(camera.Position, width, height, x, y)
			vector.StrokeRect(screen,
				float32(sx), float32(sy),
				float32(size), float32(size),
				cfg.Trail.StrokeWidth, s.Color, false)
		}
	})
}

// DrawPlayers renders each body in its speed colour with a notch on the
// side it faces. Sliding bodies get a thicker outline.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := newViewport(camera.Position, width, height, cfg.Camera.CullPadding)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.Overlaps(o.X, o.Y, o.W, o.H) {
			return
		}
		snap := components.Player.Get(e).Last
		x, y := worldToScreen(camera.Position, width, height, o.X, o.Y)

		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), snap.Color, false)
		if snap.Sliding {
			vector.StrokeRect(screen, float32(x), float32(y), float32(o.W), float32(o.H),
				cfg.Player.OutlineWidth, cfg.White, false)
		}

		nx, ny := notchOffset(snap.Facing, o.W, o.H)
		n := cfg.Player.NotchSize
		vector.FillRect(screen, float32(x+nx), float32(y+ny), float32(n), float32(n), notchColor(snap), false)
	})
}

// notchOffset places the facing marker centred on the leading edge.
func notchOffset(f movement.Facing, w, h float64) (float64, float64) {
	n := cfg.Player.NotchSize
	y := (h - n) / 2
	if f == movement.FacingLeft {
		return -n, y
	}
	return w, y
}

func notchColor(s movement.Snapshot) color.Color {
	if s.Dash.Phase == movement.DashActive {
		return cfg.BrightGreen
	}
	return cfg.LightGray
}
