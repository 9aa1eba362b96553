package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionBrake
	ActionSlide
	ActionDash
	ActionPause
	ActionQuit
	ActionToggleTrail
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// ControlSchemeID selects the keyboard half a player uses.
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
	ControlSchemeCount
)

var controlSchemeNames = [ControlSchemeCount]string{
	ControlSchemeWASD:   "wasd",
	ControlSchemeArrows: "arrows",
}

func (c ControlSchemeID) String() string {
	if c >= 0 && c < ControlSchemeCount {
		return controlSchemeNames[c]
	}
	return fmt.Sprintf("ControlScheme(%d)", int(c))
}

// ParseControlScheme maps a config name onto a control scheme.
func ParseControlScheme(name string) (ControlSchemeID, error) {
	for id, n := range controlSchemeNames {
		if strings.EqualFold(name, n) {
			return ControlSchemeID(id), nil
		}
	}
	return 0, fmt.Errorf("unknown control scheme %q", name)
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds the session-wide mappings (pause, quit, trail).
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// ControlSchemeBindings holds per-player movement keys, indexed by scheme.
// Slide and brake share a key: a profile only reacts to one of them.
var ControlSchemeBindings [ControlSchemeCount]map[ActionID][]ebiten.Key

// GamepadBindings maps movement actions onto a bound gamepad:
// B / Circle brakes or slides, A / Cross dashes.
var GamepadBindings map[ActionID][]ebiten.StandardGamepadButton

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionToggleTrail: {
				Keys: []ebiten.Key{ebiten.KeyT},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}

	ControlSchemeBindings = [ControlSchemeCount]map[ActionID][]ebiten.Key{
		ControlSchemeWASD: {
			ActionMoveLeft:  {ebiten.KeyA},
			ActionMoveRight: {ebiten.KeyD},
			ActionMoveUp:    {ebiten.KeyW},
			ActionMoveDown:  {ebiten.KeyS},
			ActionBrake:     {ebiten.KeyShiftLeft, ebiten.KeyControlLeft},
			ActionSlide:     {ebiten.KeyShiftLeft},
			ActionDash:      {ebiten.KeySpace},
		},
		ControlSchemeArrows: {
			ActionMoveLeft:  {ebiten.KeyArrowLeft},
			ActionMoveRight: {ebiten.KeyArrowRight},
			ActionMoveUp:    {ebiten.KeyArrowUp},
			ActionMoveDown:  {ebiten.KeyArrowDown},
			ActionBrake:     {ebiten.KeyShiftRight, ebiten.KeyControlRight},
			ActionSlide:     {ebiten.KeyShiftRight},
			ActionDash:      {ebiten.KeyEnter},
		},
	}

	GamepadBindings = map[ActionID][]ebiten.StandardGamepadButton{
		ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
		ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
		ActionMoveUp:    {ebiten.StandardGamepadButtonLeftTop},
		ActionMoveDown:  {ebiten.StandardGamepadButtonLeftBottom},
		ActionBrake:     {ebiten.StandardGamepadButtonRightRight},
		ActionSlide:     {ebiten.StandardGamepadButtonRightRight},
		ActionDash:      {ebiten.StandardGamepadButtonRightBottom},
	}
}
