package systems

import (
	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/shared/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the session-wide actions (pause, quit, trail) from every device.
// Must run BEFORE UpdatePause in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// UpdatePlayerInput polls input for all player entities with PlayerInputData.
func UpdatePlayerInput(ecs *ecs.ECS) {
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.Advance()

		if input.BoundGamepadID != nil {
			pollGamepadForPlayer(input, *input.BoundGamepadID)
			return
		}
		if input.ControlScheme >= 0 && input.ControlScheme < cfg.ControlSchemeCount {
			pollControlSchemeForPlayer(input, input.ControlScheme)
		}
	})
}

// pollGamepadForPlayer reads input from a specific gamepad into PlayerInputData.
func pollGamepadForPlayer(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, buttons := range cfg.GamepadBindings {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.Current[actionID] = true
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if horizontal > deadzone {
		input.Current[cfg.ActionMoveRight] = true
	}
	if vertical < -deadzone {
		input.Current[cfg.ActionMoveUp] = true
	}
	if vertical > deadzone {
		input.Current[cfg.ActionMoveDown] = true
	}
}

// pollControlSchemeForPlayer reads input from a control scheme into PlayerInputData.
func pollControlSchemeForPlayer(input *components.PlayerInputData, scheme cfg.ControlSchemeID) {
	for actionID, keys := range cfg.ControlSchemeBindings[scheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// IntentFromActions turns one frame of pressed actions into a movement intent.
// Dash follows the held key: a held dash fires again as soon as the cooldown ends.
func IntentFromActions(pressed [cfg.ActionCount]bool) movement.Intent {
	return movement.Intent{
		Up:    pressed[cfg.ActionMoveUp],
		Down:  pressed[cfg.ActionMoveDown],
		Left:  pressed[cfg.ActionMoveLeft],
		Right: pressed[cfg.ActionMoveRight],
		Brake: pressed[cfg.ActionBrake],
		Slide: pressed[cfg.ActionSlide],
		Dash:  pressed[cfg.ActionDash],
	}
}
