package movement

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapSetsWalkingSpeedImmediately(t *testing.T) {
	p := Walker()

	k := IntegrateVelocity(Kinematics{}, p, Intent{Right: true})

	assert.Equal(t, 3.0, k.VelX)
	assert.Equal(t, 0.0, k.VelY)
}

func TestSnapPriority(t *testing.T) {
	p := Walker()

	tests := []struct {
		name   string
		intent Intent
		wantX  float64
		wantY  float64
	}{
		{"right wins over left", Intent{Left: true, Right: true}, 3, 0},
		{"left alone", Intent{Left: true}, -3, 0},
		{"up wins over down", Intent{Up: true, Down: true}, 0, -3},
		{"down alone", Intent{Down: true}, 0, 3},
		{"diagonal", Intent{Up: true, Right: true}, 3, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := IntegrateVelocity(Kinematics{}, p, tt.intent)
			assert.Equal(t, tt.wantX, k.VelX)
			assert.Equal(t, tt.wantY, k.VelY)
		})
	}
}

func TestSnapDecaysToRestWithoutOvershoot(t *testing.T) {
	p := Walker()
	k := IntegrateVelocity(Kinematics{}, p, Intent{Right: true, Up: true})

	for i := 0; i < 100; i++ {
		prevX, prevY := k.VelX, k.VelY
		k = IntegrateVelocity(k, p, Intent{})
		assert.GreaterOrEqual(t, k.VelX, 0.0)
		assert.LessOrEqual(t, k.VelY, 0.0)
		assert.LessOrEqual(t, k.VelX, prevX)
		assert.GreaterOrEqual(t, k.VelY, prevY)
	}
	assert.Equal(t, 0.0, k.VelX)
	assert.Equal(t, 0.0, k.VelY)
}

func TestSnapDecayStep(t *testing.T) {
	p := Walker()
	k := Kinematics{VelX: 3}

	k = IntegrateVelocity(k, p, Intent{})

	assert.InDelta(t, 2.75, k.VelX, 1e-12)
}

func TestAcceleratingRampReachesMaxOnTick50(t *testing.T) {
	p := Racer()
	k := Kinematics{}

	for tick := 1; tick <= 50; tick++ {
		k = IntegrateVelocity(k, p, Intent{Right: true})
		if tick < 50 {
			require.Less(t, k.VelX, 5.0, "reached max early at tick %d", tick)
		}
	}
	assert.Equal(t, 5.0, k.VelX)

	k = IntegrateVelocity(k, p, Intent{Right: true})
	assert.Equal(t, 5.0, k.VelX)
}

func TestAcceleratingVerticalUsesScreenAxes(t *testing.T) {
	p := Racer()

	k := IntegrateVelocity(Kinematics{}, p, Intent{Up: true})
	assert.InDelta(t, -0.1, k.VelY, 1e-12)

	k = IntegrateVelocity(Kinematics{}, p, Intent{Down: true})
	assert.InDelta(t, 0.1, k.VelY, 1e-12)
}

func TestAcceleratingReleaseDecaysByHalfAcceleration(t *testing.T) {
	p := Racer()
	k := Kinematics{VelX: 1, VelY: -1}

	k = IntegrateVelocity(k, p, Intent{})

	assert.InDelta(t, 0.95, k.VelX, 1e-12)
	assert.InDelta(t, -0.95, k.VelY, 1e-12)
}

func TestBrakeStopsWithoutCrossingZero(t *testing.T) {
	p := Racer()
	k := Kinematics{VelX: 2, VelY: -1.3}

	for i := 0; i < 50; i++ {
		k = IntegrateVelocity(k, p, Intent{Brake: true})
		assert.GreaterOrEqual(t, k.VelX, 0.0)
		assert.LessOrEqual(t, k.VelY, 0.0)
	}
	assert.Equal(t, 0.0, k.VelX)
	assert.Equal(t, 0.0, k.VelY)
}

func TestBrakeStepIsTwoAndAHalfAccelerations(t *testing.T) {
	p := Racer()

	k := IntegrateVelocity(Kinematics{VelX: 2}, p, Intent{Brake: true})

	assert.InDelta(t, 1.75, k.VelX, 1e-12)
}

func TestBrakeIgnoredWhileHoldingTravelDirection(t *testing.T) {
	p := Racer()

	k := IntegrateVelocity(Kinematics{VelX: 2}, p, Intent{Right: true, Brake: true})

	assert.InDelta(t, 2.1, k.VelX, 1e-12)
}

func TestSlideDelta(t *testing.T) {
	p := Walker()
	want := 0.1 * math.Pow(math.Sin(0.7*math.Pi), 2)

	k := IntegrateVelocity(Kinematics{}, p, Intent{Right: true, Slide: true})

	assert.InDelta(t, want, k.VelX, 1e-12)
	assert.InDelta(t, 0.06545084971874737, k.VelX, 1e-12)
}

func TestSlideDoesNotSnap(t *testing.T) {
	p := Walker()
	k := Kinematics{VelX: 8}

	k = IntegrateVelocity(k, p, Intent{Right: true, Slide: true})
	assert.Greater(t, k.VelX, 8.0)

	k = IntegrateVelocity(k, p, Intent{Slide: true})
	assert.InDelta(t, 8+p.slideDelta()-0.05, k.VelX, 1e-12)
}

func TestSlideDisabledFallsBackToSnap(t *testing.T) {
	p := Walker()
	p.SlideEnabled = false

	k := IntegrateVelocity(Kinematics{}, p, Intent{Right: true, Slide: true})

	assert.Equal(t, 3.0, k.VelX)
}

func TestSpeedCap(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for _, p := range []Profile{Racer(), Walker()} {
		t.Run(p.Name, func(t *testing.T) {
			limit := p.MaxSpeed
			if p.Discipline == DisciplineSnap {
				limit = math.Max(p.WalkingSpeed, p.MaxSpeed)
			}
			k := Kinematics{}
			for i := 0; i < 20000; i++ {
				in := Intent{
					Up:    rng.IntN(3) == 0,
					Down:  rng.IntN(3) == 0,
					Left:  rng.IntN(3) == 0,
					Right: rng.IntN(2) == 0,
					Brake: rng.IntN(5) == 0,
					Slide: rng.IntN(2) == 0,
				}
				k = IntegrateVelocity(k, p, in)
				require.LessOrEqual(t, math.Abs(k.VelX), limit)
				require.LessOrEqual(t, math.Abs(k.VelY), limit)
			}
		})
	}
}

func TestSnapWithoutSlideCapsAtWalkingSpeed(t *testing.T) {
	p := Walker()
	k := Kinematics{}

	for i := 0; i < 100; i++ {
		k = IntegrateVelocity(k, p, Intent{Right: true, Down: true})
		require.Equal(t, p.WalkingSpeed, k.VelX)
		require.Equal(t, p.WalkingSpeed, k.VelY)
	}
}

func TestIntegratePosition(t *testing.T) {
	k := IntegratePosition(Kinematics{X: 1, Y: 2, VelX: 0.5, VelY: -3})

	assert.Equal(t, Kinematics{X: 1.5, Y: -1, VelX: 0.5, VelY: -3}, k)
}
