package movement

import (
	"image/color"
	"math"
)

// Facing is the horizontal direction a player sprite looks.
type Facing int8

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Snapshot is the read-only per-tick output handed to renderers.
type Snapshot struct {
	Tick       uint64
	Position   Vec
	Velocity   Vec
	Speed      float64
	Color      color.RGBA
	Smoothness float64
	Dash       DashState
	Facing     Facing
	Sliding    bool
	Braking    bool
}

// PlayerState is one simulated player. Tick is its only mutator.
type PlayerState struct {
	profile Profile
	kin     Kinematics
	speed   float64
	color   color.RGBA
	tick    uint64
	sliding bool
	braking bool

	dash   *DashController
	trail  *TrailHistory
	smooth *SmoothnessEstimator
}

// NewPlayerState spawns a player at rest. The profile is normalized and
// validated here; an invalid profile never reaches the simulation.
func NewPlayerState(profile Profile, spawn Vec) (*PlayerState, error) {
	profile = profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	smooth, err := NewSmoothnessEstimator(profile.HistoryLen, profile.SmoothnessWindow, spawn)
	if err != nil {
		return nil, err
	}

	rest := SpeedColor(0, profile.MaxSpeed)
	return &PlayerState{
		profile: profile,
		kin:     Kinematics{X: spawn.X, Y: spawn.Y},
		color:   rest,
		dash:    NewDashController(profile.Dash),
		trail:   NewTrailHistory(profile.HistoryLen, TrailSample{Pos: spawn, Color: rest}),
		smooth:  smooth,
	}, nil
}

// Tick advances the player by one fixed step.
func (ps *PlayerState) Tick(in Intent) {
	ps.tick++
	ps.sliding = ps.profile.SlideEnabled && in.Slide
	ps.braking = in.Brake

	if !ps.dash.Step(&ps.kin, in) {
		ps.kin = IntegrateVelocity(ps.kin, ps.profile, in)
	}
	ps.speed = math.Hypot(ps.kin.VelX, ps.kin.VelY)
	ps.kin = IntegratePosition(ps.kin)
	ps.color = SpeedColor(ps.speed, ps.profile.MaxSpeed)

	pos := ps.kin.Position()
	ps.trail.Push(TrailSample{Pos: pos, Color: ps.color})
	ps.smooth.Push(pos)
}

func (ps *PlayerState) Snapshot() Snapshot {
	facing := FacingRight
	if ps.kin.VelX < 0 {
		facing = FacingLeft
	}
	return Snapshot{
		Tick:       ps.tick,
		Position:   ps.kin.Position(),
		Velocity:   ps.kin.Velocity(),
		Speed:      ps.speed,
		Color:      ps.color,
		Smoothness: ps.smooth.Score(),
		Dash:       ps.dash.State(),
		Facing:     facing,
		Sliding:    ps.sliding,
		Braking:    ps.braking,
	}
}

// Kinematics returns a copy of the current point-mass state.
func (ps *PlayerState) Kinematics() Kinematics {
	return ps.kin
}

// Trail is the player's path history. Callers must not push to it.
func (ps *PlayerState) Trail() *TrailHistory {
	return ps.trail
}

// Profile returns the normalized profile the player was built with.
func (ps *PlayerState) Profile() Profile {
	return ps.profile
}
