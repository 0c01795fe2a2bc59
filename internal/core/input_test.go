package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionFire)

	if !f.IsHeld(ActionLeft) || !f.IsHeld(ActionFire) {
		t.Error("constructor actions should be held")
	}
	if f.IsHeld(ActionRight) {
		t.Error("ActionRight should not be held")
	}

	f.Unset(ActionFire)
	if f.IsHeld(ActionFire) {
		t.Error("ActionFire should be released after Unset")
	}

	f.Clear()
	if f.IsHeld(ActionLeft) {
		t.Error("Clear should release all actions")
	}

	var zero InputFrame
	if zero.IsHeld(ActionLeft) {
		t.Error("zero frame should hold nothing")
	}
	zero.Set(ActionRight)
	if !zero.IsHeld(ActionRight) {
		t.Error("Set on zero frame should allocate and hold")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
