package movement

import "fmt"

// DashPhase is the state of the dash state machine.
type DashPhase uint8

const (
	DashIdle DashPhase = iota
	DashActive
	DashCooldown
)

func (p DashPhase) String() string {
	switch p {
	case DashIdle:
		return "idle"
	case DashActive:
		return "dashing"
	case DashCooldown:
		return "cooldown"
	}
	return fmt.Sprintf("DashPhase(%d)", p)
}

// DashState is the observable dash state.
// Remaining is never negative and is zero whenever Phase is DashIdle.
type DashState struct {
	Phase     DashPhase
	Remaining int
}

// DashController layers the timed dash on top of normal velocity updates.
// A controller built from a nil config never triggers.
type DashController struct {
	cfg     DashConfig
	enabled bool
	state   DashState
}

func NewDashController(cfg *DashConfig) *DashController {
	if cfg == nil {
		return &DashController{}
	}
	return &DashController{cfg: *cfg, enabled: true}
}

// Enabled reports whether the profile has a dash.
func (d *DashController) Enabled() bool {
	return d.enabled
}

// State returns the current phase and tick counter.
func (d *DashController) State() DashState {
	return d.state
}

// CanTrigger reports whether a dash intent would start a dash this tick.
func (d *DashController) CanTrigger() bool {
	return d.enabled && d.state.Phase == DashIdle
}

// Step advances the state machine by one tick and reports whether the dash
// owns velocity for this tick. When it does, the caller must skip the
// normal velocity update.
func (d *DashController) Step(k *Kinematics, in Intent) bool {
	if !d.enabled {
		return false
	}

	switch d.state.Phase {
	case DashIdle:
		if !in.Dash {
			return false
		}
		k.VelX *= d.cfg.Multiplier
		k.VelY *= d.cfg.Multiplier
		d.state = DashState{Phase: DashActive, Remaining: d.cfg.DurationTicks}
		return true

	case DashActive:
		if d.state.Remaining > 0 {
			d.state.Remaining--
			return true
		}
		k.VelX /= d.cfg.Multiplier
		k.VelY /= d.cfg.Multiplier
		d.state = DashState{Phase: DashCooldown, Remaining: d.cfg.CooldownTicks}
		if d.state.Remaining == 0 {
			d.state = DashState{}
		}
		return true

	case DashCooldown:
		d.state.Remaining--
		if d.state.Remaining <= 0 {
			d.state = DashState{}
		}
		return false
	}
	return false
}
