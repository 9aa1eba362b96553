package movement

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidProfile is returned when a profile is rejected at construction time.
var ErrInvalidProfile = errors.New("invalid movement profile")

// Discipline selects how held directions change velocity.
type Discipline uint8

const (
	// DisciplineSnap sets velocity straight to the walking speed while a key
	// is held. With SlideEnabled the slide key switches to sliding.
	DisciplineSnap Discipline = iota
	// DisciplineAccelerating ramps velocity by Acceleration per tick and
	// supports braking.
	DisciplineAccelerating
)

const (
	DefaultHistoryLen       = 400
	DefaultSmoothnessWindow = 5
)

var disciplineNames = map[Discipline]string{
	DisciplineSnap:         "snap",
	DisciplineAccelerating: "accelerating",
}

func (d Discipline) String() string {
	if name, ok := disciplineNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Discipline(%d)", d)
}

// ParseDiscipline maps a config name onto a Discipline.
func ParseDiscipline(name string) (Discipline, error) {
	for d, n := range disciplineNames {
		if strings.EqualFold(name, n) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown discipline %q", ErrInvalidProfile, name)
}

// DashConfig holds the timed dash parameters. Timers count ticks.
type DashConfig struct {
	CooldownTicks int
	DurationTicks int
	Multiplier    float64
}

// Profile is the immutable movement configuration of one player.
type Profile struct {
	Name       string
	Discipline Discipline

	WalkingSpeed float64
	MaxSpeed     float64
	Acceleration float64

	// Zero selects the discipline default:
	// walking decay is Acceleration*2.5 (snap) or Acceleration/2 (accelerating),
	// sliding decay is Acceleration/2.
	DecelerationWalking float64
	DecelerationSliding float64

	SlideEnabled bool
	Dash         *DashConfig // nil disables dashing

	// Zero selects DefaultHistoryLen / DefaultSmoothnessWindow.
	HistoryLen       int
	SmoothnessWindow int
}

// Walker is the snap-and-slide profile.
func Walker() Profile {
	return Profile{
		Name:         "walker",
		Discipline:   DisciplineSnap,
		WalkingSpeed: 3,
		MaxSpeed:     10,
		Acceleration: 0.1,
		SlideEnabled: true,
	}.Normalize()
}

// Racer is the accelerating profile with braking and a dash.
func Racer() Profile {
	return Profile{
		Name:         "racer",
		Discipline:   DisciplineAccelerating,
		MaxSpeed:     5,
		Acceleration: 0.1,
		Dash: &DashConfig{
			CooldownTicks: 50,
			DurationTicks: 10,
			Multiplier:    5,
		},
	}.Normalize()
}

// Normalize fills zero-valued optional fields with their defaults.
// The returned profile owns its own copy of the dash config.
func (p Profile) Normalize() Profile {
	if p.DecelerationWalking == 0 {
		if p.Discipline == DisciplineAccelerating {
			p.DecelerationWalking = p.Acceleration / 2
		} else {
			p.DecelerationWalking = p.Acceleration * 2.5
		}
	}
	if p.DecelerationSliding == 0 {
		p.DecelerationSliding = p.Acceleration / 2
	}
	if p.HistoryLen == 0 {
		p.HistoryLen = DefaultHistoryLen
	}
	if p.SmoothnessWindow == 0 {
		p.SmoothnessWindow = DefaultSmoothnessWindow
	}
	if p.Dash != nil {
		dash := *p.Dash
		p.Dash = &dash
	}
	return p
}

// Validate rejects values outside the profile's domain.
func (p Profile) Validate() error {
	if _, ok := disciplineNames[p.Discipline]; !ok {
		return fmt.Errorf("%w: unknown discipline %d", ErrInvalidProfile, p.Discipline)
	}
	if !positive(p.MaxSpeed) {
		return fmt.Errorf("%w: max speed must be > 0, got %v", ErrInvalidProfile, p.MaxSpeed)
	}
	if !positive(p.Acceleration) {
		return fmt.Errorf("%w: acceleration must be > 0, got %v", ErrInvalidProfile, p.Acceleration)
	}
	if p.Discipline == DisciplineSnap && !positive(p.WalkingSpeed) {
		return fmt.Errorf("%w: walking speed must be > 0, got %v", ErrInvalidProfile, p.WalkingSpeed)
	}
	if p.SlideEnabled && p.Discipline != DisciplineSnap {
		return fmt.Errorf("%w: sliding requires the snap discipline", ErrInvalidProfile)
	}
	if !(p.DecelerationWalking >= 0) || !(p.DecelerationSliding >= 0) {
		return fmt.Errorf("%w: deceleration must be >= 0", ErrInvalidProfile)
	}
	if p.HistoryLen < 2 {
		return fmt.Errorf("%w: history length must be >= 2, got %d", ErrInvalidProfile, p.HistoryLen)
	}
	if p.SmoothnessWindow < 2 || p.SmoothnessWindow > p.HistoryLen {
		return fmt.Errorf("%w: smoothness window must be in [2, %d], got %d",
			ErrInvalidProfile, p.HistoryLen, p.SmoothnessWindow)
	}
	if d := p.Dash; d != nil {
		if !(d.Multiplier > 1) || math.IsInf(d.Multiplier, 0) {
			return fmt.Errorf("%w: dash multiplier must be > 1, got %v", ErrInvalidProfile, d.Multiplier)
		}
		if d.DurationTicks < 0 || d.CooldownTicks < 0 {
			return fmt.Errorf("%w: dash ticks must be >= 0", ErrInvalidProfile)
		}
	}
	return nil
}

// slideDelta is the fixed per-tick speed change while sliding.
func (p Profile) slideDelta() float64 {
	s := math.Sin(math.Pi * (p.MaxSpeed - p.WalkingSpeed) / p.MaxSpeed)
	return p.Acceleration * s * s
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
