package systems

import (
	"testing"

	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/shared/movement"
	"github.com/automoto/drift/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestIntentFromActions(t *testing.T) {
	var pressed [cfg.ActionCount]bool
	pressed[cfg.ActionMoveRight] = true
	pressed[cfg.ActionMoveUp] = true
	pressed[cfg.ActionDash] = true
	pressed[cfg.ActionPause] = true

	assert.Equal(t, movement.Intent{Right: true, Up: true, Dash: true}, IntentFromActions(pressed))
	assert.Equal(t, movement.Intent{}, IntentFromActions([cfg.ActionCount]bool{}))
}

func TestFollowStep(t *testing.T) {
	got := followStep(math.NewVec2(0, 0), math.NewVec2(100, -50), 0.1)
	assert.InDelta(t, 10, got.X, 1e-12)
	assert.InDelta(t, -5, got.Y, 1e-12)

	same := followStep(math.NewVec2(3, 4), math.NewVec2(3, 4), 0.5)
	assert.Equal(t, math.NewVec2(3, 4), same)
}

func TestViewportOverlaps(t *testing.T) {
	v := newViewport(math.NewVec2(100, 100), 200, 100, 10)

	assert.True(t, v.Overlaps(100, 100, 1, 1))
	assert.True(t, v.Overlaps(-15, 100, 10, 10), "inside the padding")
	assert.False(t, v.Overlaps(-30, 100, 10, 10))
	assert.False(t, v.Overlaps(100, 161, 5, 5))
}

func TestWorldToScreen(t *testing.T) {
	x, y := worldToScreen(math.NewVec2(500, 500), 900, 600, 500, 500)
	assert.Equal(t, 450.0, x)
	assert.Equal(t, 300.0, y)
}

func TestStepGaugeEasesToTarget(t *testing.T) {
	g := &components.GaugeData{Value: 1, Target: 1}

	stepGauge(g, 0.5, 0.05)
	require.NotNil(t, g.Tween)
	assert.Less(t, g.Value, float32(1))
	assert.Greater(t, g.Value, float32(0.5))

	for i := 0; i < 10; i++ {
		stepGauge(g, 0.5, 0.05)
	}
	assert.InDelta(t, 0.5, g.Value, 1e-6)
	assert.Nil(t, g.Tween)
}

func TestStepGaugeIgnoresJitter(t *testing.T) {
	g := &components.GaugeData{Value: 0.8, Target: 0.8}

	stepGauge(g, 0.801, 0.01)

	assert.Nil(t, g.Tween)
	assert.Equal(t, float32(0.8), g.Value)
}

func TestHUDLines(t *testing.T) {
	s := movement.Snapshot{
		Speed:    5,
		Velocity: movement.Vec{X: 3, Y: -4},
		Dash:     movement.DashState{Phase: movement.DashCooldown, Remaining: 12},
	}

	lines := hudLines(0, "racer", s)

	assert.Equal(t, "P1 racer", lines[0])
	assert.Equal(t, "speed   5.00  vel (  3.00,  -4.00)", lines[1])
	assert.Equal(t, "dash  cooldown 12", lines[2])
	assert.Equal(t, "dash  idle", hudLines(1, "walker", movement.Snapshot{})[2])
}

func TestApplySessionActions(t *testing.T) {
	pause := &components.PauseData{ShowTrail: true}
	var input components.ActionBuffer

	input.Current[cfg.ActionPause] = true
	input.Current[cfg.ActionToggleTrail] = true
	applySessionActions(pause, &input)
	assert.True(t, pause.IsPaused)
	assert.False(t, pause.ShowTrail)

	// held keys do not toggle again
	input.Advance()
	input.Current[cfg.ActionPause] = true
	applySessionActions(pause, &input)
	assert.True(t, pause.IsPaused)

	input.Advance()
	input.Current[cfg.ActionQuit] = true
	applySessionActions(pause, &input)
	assert.True(t, pause.QuitRequested)
}

func TestNotchOffset(t *testing.T) {
	n := cfg.Player.NotchSize

	x, y := notchOffset(movement.FacingRight, 20, 20)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, (20-n)/2, y)

	x, _ = notchOffset(movement.FacingLeft, 20, 20)
	assert.Equal(t, -n, x)
}

// newTestWorld builds a world with one racer on the WASD scheme.
func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	space := components.Space.Get(factory.CreateSpace(e, 1024, 1024, 32, 32))

	state, err := movement.NewPlayerState(movement.Racer(), movement.Vec{X: 300, Y: 200})
	require.NoError(t, err)
	player := factory.CreatePlayer(e, space, state, factory.PlayerInputConfig{ControlScheme: cfg.ControlSchemeWASD})
	factory.CreateCamera(e, 300, 200)
	return e, player
}

func TestPlayerSystemTicksFromInput(t *testing.T) {
	e, player := newTestWorld(t)
	input := components.PlayerInput.Get(player)

	for i := 0; i < 10; i++ {
		input.Advance()
		input.Current[cfg.ActionMoveRight] = true
		UpdatePlayer(e)
		UpdateObjects(e)
	}

	snap := components.Player.Get(player).Last
	assert.Equal(t, uint64(10), snap.Tick)
	assert.InDelta(t, 1.0, snap.Velocity.X, 1e-9)
	assert.Greater(t, snap.Position.X, 300.0)

	obj := components.Object.Get(player)
	assert.InDelta(t, snap.Position.X-cfg.Player.BodySize/2, obj.X, 1e-9)
	assert.InDelta(t, snap.Position.Y-cfg.Player.BodySize/2, obj.Y, 1e-9)
}

func TestCameraFollowsFirstPlayer(t *testing.T) {
	e, player := newTestWorld(t)
	components.Player.Get(player).Last.Position = movement.Vec{X: 400, Y: 200}

	UpdateCamera(e)

	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	camera := components.Camera.Get(cameraEntry)
	assert.InDelta(t, 300+100*cfg.Camera.FollowSmoothing, camera.Position.X, 1e-9)
	assert.InDelta(t, 200, camera.Position.Y, 1e-9)
}

func TestPauseSkipsWrappedSystems(t *testing.T) {
	e, player := newTestWorld(t)
	GetOrCreatePause(e).IsPaused = true

	components.PlayerInput.Get(player).Current[cfg.ActionMoveRight] = true
	WithPauseCheck(UpdatePlayer)(e)

	assert.Equal(t, uint64(0), components.Player.Get(player).Last.Tick)
	assert.False(t, QuitRequested(e))
}
