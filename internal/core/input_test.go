package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionAttack)
	if !f.Has(ActionAttack) {
		t.Error("Has(ActionAttack) should be true after Set")
	}
	if f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be false")
	}
	if f.Empty() {
		t.Error("Frame with an action should not be empty")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Frame should be empty after Clear")
	}
	if !clone.Has(ActionAttack) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("Zero-value frame should report no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero-value frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionLeft:   "Left",
		ActionAttack: "Attack",
		ActionJump:   "Jump",
		Action(99):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
