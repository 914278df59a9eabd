package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rampball/session"
)

// gamepadTouchBase keeps gamepad ids clear of touch ids.
const gamepadTouchBase session.TouchID = 1 << 32

// TouchInput turns ebiten touches, the left mouse button and the gamepad
// south button into contacts. The mouse is contact 0 and touch n is n+1.
type TouchInput struct {
	touches  session.Touches
	ids      []ebiten.TouchID
	gamepads []ebiten.GamepadID
}

func NewTouchInput() *TouchInput {
	return &TouchInput{}
}

func (in *TouchInput) Touches() *session.Touches {
	return &in.touches
}

// Update records this frame's presses and releases.
func (in *TouchInput) Update() {
	in.touches.EndTick()

	in.ids = inpututil.AppendJustPressedTouchIDs(in.ids[:0])
	for _, id := range in.ids {
		in.touches.Press(touchID(id))
	}
	in.ids = inpututil.AppendJustReleasedTouchIDs(in.ids[:0])
	for _, id := range in.ids {
		in.touches.Release(touchID(id))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.touches.Press(session.MouseTouchID)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.touches.Release(session.MouseTouchID)
	}

	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	for _, id := range in.gamepads {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			in.touches.Press(gamepadTouchBase + session.TouchID(id))
		}
		if inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom) {
			in.touches.Release(gamepadTouchBase + session.TouchID(id))
		}
	}
}

func touchID(id ebiten.TouchID) session.TouchID {
	return session.TouchID(id) + 1
}
