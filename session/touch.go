package session

import "slices"

// TouchID identifies one pointer contact for as long as it is held.
type TouchID uint64

// MouseTouchID is the id given to the left mouse button.
const MouseTouchID TouchID = 0

// TouchSource reports pointer contacts for the current tick.
type TouchSource interface {
	// JustPressed lists contacts that began this tick, oldest first.
	JustPressed() []TouchID
	JustReleased(id TouchID) bool
	// Pressed lists every held contact, oldest first.
	Pressed() []TouchID
}

type NoTouches struct{}

func (NoTouches) JustPressed() []TouchID    { return nil }
func (NoTouches) JustReleased(TouchID) bool { return false }
func (NoTouches) Pressed() []TouchID        { return nil }

// Touches is a TouchSource filled once per tick by an input adapter.
type Touches struct {
	pressed      []TouchID
	justPressed  []TouchID
	justReleased []TouchID
}

// Press records a new contact.
func (t *Touches) Press(id TouchID) {
	if slices.Contains(t.pressed, id) {
		return
	}
	t.pressed = append(t.pressed, id)
	t.justPressed = append(t.justPressed, id)
}

// Release records the end of a contact.
func (t *Touches) Release(id TouchID) {
	i := slices.Index(t.pressed, id)
	if i < 0 {
		return
	}
	t.pressed = slices.Delete(t.pressed, i, i+1)
	t.justReleased = append(t.justReleased, id)
}

// EndTick clears the per-tick edges. Held contacts stay held.
func (t *Touches) EndTick() {
	t.justPressed = t.justPressed[:0]
	t.justReleased = t.justReleased[:0]
}

func (t *Touches) JustPressed() []TouchID {
	return t.justPressed
}

func (t *Touches) JustReleased(id TouchID) bool {
	return slices.Contains(t.justReleased, id)
}

func (t *Touches) Pressed() []TouchID {
	return t.pressed
}
