package movement

import (
	"math"

	"github.com/automoto/drift/shared/gamemath"
)

// IntegrateVelocity applies one tick of the profile's velocity rules to k.
// Position is left untouched.
func IntegrateVelocity(k Kinematics, p Profile, in Intent) Kinematics {
	switch {
	case p.Discipline == DisciplineAccelerating:
		k.VelX = pushAxis(k.VelX, 1, in.Right, in.Brake, p)
		k.VelX = pushAxis(k.VelX, -1, in.Left, in.Brake, p)
		k.VelY = pushAxis(k.VelY, -1, in.Up, in.Brake, p)
		k.VelY = pushAxis(k.VelY, 1, in.Down, in.Brake, p)
	case p.SlideEnabled && in.Slide:
		slideAxes(&k, p, in)
	default:
		snapAxes(&k, p, in)
	}

	decel := p.DecelerationWalking
	if p.SlideEnabled && in.Slide {
		decel = p.DecelerationSliding
	}
	if !in.Horizontal() {
		k.VelX = gamemath.Decay(k.VelX, decel)
	}
	if !in.Vertical() {
		k.VelY = gamemath.Decay(k.VelY, decel)
	}
	return k
}

// IntegratePosition advances position by one tick of velocity.
func IntegratePosition(k Kinematics) Kinematics {
	k.X += k.VelX
	k.Y += k.VelY
	return k
}

// pushAxis accelerates v in the sign direction while held. When not held
// and braking while travelling that way, v loses 2*Acceleration without
// crossing zero.
func pushAxis(v, sign float64, held, brake bool, p Profile) float64 {
	switch {
	case held:
		return gamemath.ClampSpeed(v+sign*p.Acceleration, p.MaxSpeed)
	case brake && v*sign > 0:
		return v - sign*math.Min(2*p.Acceleration, math.Abs(v))
	}
	return v
}

// snapAxes sets held axes straight to walking speed. Right wins over left
// and up wins over down.
func snapAxes(k *Kinematics, p Profile, in Intent) {
	switch {
	case in.Right:
		k.VelX = p.WalkingSpeed
	case in.Left:
		k.VelX = -p.WalkingSpeed
	}
	switch {
	case in.Up:
		k.VelY = -p.WalkingSpeed
	case in.Down:
		k.VelY = p.WalkingSpeed
	}
}

func slideAxes(k *Kinematics, p Profile, in Intent) {
	delta := p.slideDelta()
	if in.Right {
		k.VelX += delta
	}
	if in.Left {
		k.VelX -= delta
	}
	if in.Up {
		k.VelY -= delta
	}
	if in.Down {
		k.VelY += delta
	}
	k.VelX = gamemath.ClampSpeed(k.VelX, p.MaxSpeed)
	k.VelY = gamemath.ClampSpeed(k.VelY, p.MaxSpeed)
}
