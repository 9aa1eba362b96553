package movement

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(t *testing.T, p Profile) *PlayerState {
	t.Helper()
	ps, err := NewPlayerState(p, Vec{X: 450, Y: 300})
	require.NoError(t, err)
	return ps
}

func TestNewPlayerStateRejectsInvalidProfile(t *testing.T) {
	p := Racer()
	p.Acceleration = 0

	ps, err := NewPlayerState(p, Vec{})

	assert.Nil(t, ps)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestSpawnSnapshot(t *testing.T) {
	ps := newPlayer(t, Racer())

	s := ps.Snapshot()

	assert.Equal(t, uint64(0), s.Tick)
	assert.Equal(t, Vec{X: 450, Y: 300}, s.Position)
	assert.Equal(t, Vec{}, s.Velocity)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.Color)
	assert.Equal(t, 1.0, s.Smoothness)
	assert.Equal(t, DashState{}, s.Dash)
	assert.Equal(t, FacingRight, s.Facing)
	assert.Equal(t, 400, ps.Trail().Len())
}

func TestTickMovesAndRecordsTrail(t *testing.T) {
	ps := newPlayer(t, Walker())

	ps.Tick(Intent{Right: true})

	s := ps.Snapshot()
	assert.Equal(t, uint64(1), s.Tick)
	assert.Equal(t, Vec{X: 453, Y: 300}, s.Position)
	assert.Equal(t, 3.0, s.Speed)
	assert.Equal(t, s.Position, ps.Trail().Newest().Pos)
	assert.Equal(t, s.Color, ps.Trail().Newest().Color)
	assert.Equal(t, Vec{X: 450, Y: 300}, ps.Trail().At(1).Pos)
}

func TestTrailLengthNeverChanges(t *testing.T) {
	p := Racer()
	p.HistoryLen = 32
	ps := newPlayer(t, p)

	intents := []Intent{{Right: true}, {Up: true, Left: true}, {Dash: true}, {Brake: true}, {}}
	for i := 0; i < 500; i++ {
		ps.Tick(intents[i%len(intents)])
		require.Equal(t, 32, ps.Trail().Len())
	}
}

func TestRacerDashThroughPlayer(t *testing.T) {
	ps := newPlayer(t, Racer())
	for i := 0; i < 20; i++ {
		ps.Tick(Intent{Right: true})
	}
	before := ps.Snapshot().Velocity
	require.InDelta(t, 2.0, before.X, 1e-9)

	ps.Tick(Intent{Right: true, Dash: true})
	s := ps.Snapshot()
	assert.InDelta(t, before.X*5, s.Velocity.X, 1e-9)
	assert.Equal(t, DashActive, s.Dash.Phase)
	assert.Equal(t, color.RGBA{R: 128, B: 128, A: 255}, s.Color, "dash speed saturates the colour")

	// input is ignored while dashing
	for s.Dash.Phase == DashActive {
		ps.Tick(Intent{Left: true})
		s = ps.Snapshot()
	}
	assert.InDelta(t, before.X, s.Velocity.X, 1e-9)
	assert.Equal(t, DashCooldown, s.Dash.Phase)
}

func TestDecayToRestThroughPlayer(t *testing.T) {
	for _, p := range []Profile{Walker(), Racer()} {
		t.Run(p.Name, func(t *testing.T) {
			ps := newPlayer(t, p)
			for i := 0; i < 30; i++ {
				ps.Tick(Intent{Right: true, Down: true})
			}
			for i := 0; i < 1000; i++ {
				ps.Tick(Intent{})
				v := ps.Snapshot().Velocity
				require.GreaterOrEqual(t, v.X, 0.0)
				require.GreaterOrEqual(t, v.Y, 0.0)
			}
			assert.Equal(t, Vec{}, ps.Snapshot().Velocity)
			assert.Equal(t, 0.0, ps.Snapshot().Speed)
		})
	}
}

func TestFacingAndSlidingFlags(t *testing.T) {
	ps := newPlayer(t, Walker())

	ps.Tick(Intent{Left: true, Slide: true})
	s := ps.Snapshot()
	assert.Equal(t, FacingLeft, s.Facing)
	assert.True(t, s.Sliding)

	ps.Tick(Intent{Right: true, Brake: true})
	s = ps.Snapshot()
	assert.Equal(t, FacingRight, s.Facing)
	assert.False(t, s.Sliding)
	assert.True(t, s.Braking)
}

func TestStandingStillStaysSmooth(t *testing.T) {
	ps := newPlayer(t, Walker())

	for i := 0; i < 50; i++ {
		ps.Tick(Intent{})
	}
	assert.Equal(t, 1.0, ps.Snapshot().Smoothness)
}

func TestPlayersAreIndependent(t *testing.T) {
	a := newPlayer(t, Racer())
	b := newPlayer(t, Racer())

	for i := 0; i < 10; i++ {
		a.Tick(Intent{Right: true})
	}
	b.Tick(Intent{Left: true})

	assert.InDelta(t, 1.0, a.Snapshot().Velocity.X, 1e-9)
	assert.InDelta(t, -0.1, b.Snapshot().Velocity.X, 1e-12)
}

func TestSpeedIsVelocityMagnitude(t *testing.T) {
	ps := newPlayer(t, Walker())

	ps.Tick(Intent{Right: true, Up: true})

	assert.InDelta(t, 3*math.Sqrt2, ps.Snapshot().Speed, 1e-12)
}
