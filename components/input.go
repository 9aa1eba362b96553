package components

import (
	cfg "github.com/automoto/drift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// ActionBuffer stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type ActionBuffer struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Advance swaps buffers: current becomes previous and current is cleared.
func (b *ActionBuffer) Advance() {
	b.Previous = b.Current
	b.Current = [cfg.ActionCount]bool{}
}

// Action returns the full ActionState for an action ID.
func (b *ActionBuffer) Action(id cfg.ActionID) ActionState {
	curr := b.Current[id]
	prev := b.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// InputData holds the session-wide actions (pause, quit, trail).
type InputData struct {
	ActionBuffer
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-player input state.
// Each player entity has their own PlayerInputData with a bound input device.
type PlayerInputData struct {
	ActionBuffer
	BoundGamepadID *ebiten.GamepadID   // Bound gamepad (nil = keyboard)
	ControlScheme  cfg.ControlSchemeID // Keyboard half used when no gamepad is bound
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
