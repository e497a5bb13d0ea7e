package main

import (
	"github.com/automoto/doomgrid/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// input stores the current and previous frame's pressed state for all actions.
// Keyboard and every connected gamepad are merged.
type input struct {
	current  [config.ActionCount]bool
	previous [config.ActionCount]bool
	stick    mgl64.Vec2

	gamepadIDs []ebiten.GamepadID
}

// poll swaps buffers and reads raw input. Call once per tick.
func (in *input) poll() {
	in.previous = in.current
	in.current = [config.ActionCount]bool{}
	in.stick = mgl64.Vec2{}

	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])

	for actionID, binding := range config.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.current[actionID] = true
			}
		}
		for _, gpID := range in.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.current[actionID] = true
				}
			}
		}
	}

	in.readStick()
}

// readStick keeps the strongest left stick deflection outside the deadzone.
func (in *input) readStick() {
	deadzone := config.Input.AnalogDeadzone
	for _, gpID := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if v.Len() > deadzone && v.Len() > in.stick.Len() {
			in.stick = v
		}
	}
}

func (in *input) pressed(id config.ActionID) bool {
	return in.current[id]
}

func (in *input) justPressed(id config.ActionID) bool {
	return in.current[id] && !in.previous[id]
}

// direction merges the movement actions and the stick into one vector in
// grid axes (+y is down the map).
func (in *input) direction() mgl64.Vec2 {
	if in.stick.Len() > 0 {
		return in.stick
	}
	var dir mgl64.Vec2
	if in.pressed(config.ActionMoveLeft) {
		dir[0]--
	}
	if in.pressed(config.ActionMoveRight) {
		dir[0]++
	}
	if in.pressed(config.ActionMoveForward) {
		dir[1]--
	}
	if in.pressed(config.ActionMoveBack) {
		dir[1]++
	}
	return dir
}
