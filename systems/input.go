package systems

import (
	"github.com/automoto/seed-hodl/archetypes"
	"github.com/automoto/seed-hodl/components"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateStaking in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		input.LastInputMethod = components.InputPointer
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ControlHint describes the liquidation controls for the device used last.
// Pointer users get no hint since the card buttons are already under the cursor.
func ControlHint(method components.InputMethod, armed bool) string {
	switch method {
	case components.InputKeyboard:
		if armed {
			return "ENTER: CONFIRM LIQUIDATION"
		}
		return "HOLD SPACE 3s TO ARM / C: COPY PROOF"
	case components.InputGamepad:
		if armed {
			return "A: CONFIRM LIQUIDATION"
		}
		return "HOLD B 3s TO ARM / Y: COPY PROOF"
	}
	return ""
}

// GetOrCreateSettings returns the runtime settings singleton
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Overlay})
	}
	return components.Settings.Get(entry)
}
