package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/topdown/game"
)

// stickDeadZone ignores analog drift around the stick's rest position.
const stickDeadZone = 0.25

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func keyboardIntent() game.Intent {
	var intent game.Intent
	if pressed(ebiten.KeyA, ebiten.KeyLeft) {
		intent.X -= 1
	}
	if pressed(ebiten.KeyD, ebiten.KeyRight) {
		intent.X += 1
	}
	if pressed(ebiten.KeyW, ebiten.KeyUp) {
		intent.Y += 1
	}
	if pressed(ebiten.KeyS, ebiten.KeyDown) {
		intent.Y -= 1
	}
	intent.Interact = pressed(ebiten.KeyE, ebiten.KeySpace)
	intent.Cancel = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return intent
}

func gamepadIntent(id ebiten.GamepadID) game.Intent {
	var intent game.Intent
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return intent
	}

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if x*x+y*y > stickDeadZone*stickDeadZone {
		// the stick reports down as positive, world y points up
		intent.X, intent.Y = x, -y
	}

	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
		intent.X -= 1
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
		intent.X += 1
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
		intent.Y += 1
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
		intent.Y -= 1
	}

	intent.Interact = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	intent.Cancel = inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	return intent
}

// pollIntent merges the keyboard with every connected gamepad.
func pollIntent(gamepads []ebiten.GamepadID) game.Intent {
	var pads []game.Intent
	for _, id := range gamepads {
		pads = append(pads, gamepadIntent(id))
	}
	return keyboardIntent().Merge(pads...)
}
