package systems

import (
	"github.com/automoto/drift/components"
	"github.com/automoto/drift/config"
	"github.com/automoto/drift/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera eases the camera toward the first player. The world has no
// edges, so the camera is never clamped.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Player.Get(playerEntry).Last.Position

	camera.Position = followStep(camera.Position, math.NewVec2(pos.X, pos.Y), config.Camera.FollowSmoothing)
}

// followStep moves from toward target by the smoothing fraction.
func followStep(from, target math.Vec2, smoothing float64) math.Vec2 {
	return math.NewVec2(
		from.X+(target.X-from.X)*smoothing,
		from.Y+(target.Y-from.Y)*smoothing,
	)
}

// viewport is the visible world rectangle for a camera and screen size,
// grown by padding on every side.
type viewport struct {
	MinX, MinY, MaxX, MaxY float64
}

func newViewport(camera math.Vec2, width, height int, padding float64) viewport {
	return viewport{
		MinX: camera.X - float64(width)/2 - padding,
		MaxX: camera.X + float64(width)/2 + padding,
		MinY: camera.Y - float64(height)/2 - padding,
		MaxY: camera.Y + float64(height)/2 + padding,
	}
}

// Overlaps reports whether the rectangle x, y, w, h touches the viewport.
func (v viewport) Overlaps(x, y, w, h float64) bool {
	return x+w >= v.MinX && x <= v.MaxX && y+h >= v.MinY && y <= v.MaxY
}

// worldToScreen converts a world point to screen space for the camera.
func worldToScreen(camera math.Vec2, width, height int, x, y float64) (float64, float64) {
	return x - camera.X + float64(width)/2, y - camera.Y + float64(height)/2
}
