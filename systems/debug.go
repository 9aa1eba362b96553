package systems

import (
	"image/color"

	"github.com/automoto/drift/components"
	"github.com/automoto/drift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// debugVelocityScale stretches velocity vectors so slow motion is visible.
const debugVelocityScale = 8

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).ShowDebug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := newViewport(camera.Position, width, height, 0)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if !view.Overlaps(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}
		x, y := worldToScreen(camera.Position, width, height, obj.X, obj.Y)

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	for e := range tags.Player.Iter(ecs.World) {
		snap := components.Player.Get(e).Last
		cx, cy := worldToScreen(camera.Position, width, height, snap.Position.X, snap.Position.Y)
		vector.StrokeLine(screen,
			float32(cx), float32(cy),
			float32(cx+snap.Velocity.X*debugVelocityScale), float32(cy+snap.Velocity.Y*debugVelocityScale),
			1, color.RGBA{255, 255, 0, 255}, false)
	}
}
