package movement

// Intent is one tick's worth of semantic control signals.
// It is built fresh every tick by the input collaborator.
type Intent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Brake bool
	Slide bool
	Dash  bool
}

// Horizontal reports whether either horizontal direction is held.
func (in Intent) Horizontal() bool {
	return in.Left || in.Right
}

// Vertical reports whether either vertical direction is held.
func (in Intent) Vertical() bool {
	return in.Up || in.Down
}

// Vec is a point or displacement in world space. Y grows downward.
type Vec struct {
	X, Y float64
}

// Kinematics is the point-mass state of a player.
type Kinematics struct {
	X, Y       float64
	VelX, VelY float64
}

// Position returns the position part of k.
func (k Kinematics) Position() Vec {
	return Vec{X: k.X, Y: k.Y}
}

// Velocity returns the velocity part of k.
func (k Kinematics) Velocity() Vec {
	return Vec{X: k.VelX, Y: k.VelY}
}
