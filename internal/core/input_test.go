package core

import "testing"

func TestInputFrameApply(t *testing.T) {
	f := NewInputFrame()

	f.Apply(Press(ActionLeft))
	if !f.IsHeld(ActionLeft) {
		t.Error("Left should be held after press")
	}
	if !f.Has(ActionLeft) {
		t.Error("Left should be triggered after press")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop triggered actions")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("Clear should keep held actions")
	}

	f.Apply(Release(ActionLeft))
	if f.IsHeld(ActionLeft) {
		t.Error("Left should not be held after release")
	}
}

func TestInputFrameTake(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	if !f.Take(ActionJump) {
		t.Fatal("Take should report a triggered action")
	}
	if f.Take(ActionJump) {
		t.Error("Take should consume the action")
	}
}

func TestInputFrameReset(t *testing.T) {
	f := NewInputFrame()
	f.Apply(Press(ActionLeft))
	f.Apply(Press(ActionRight))

	f.Reset()

	if f.IsHeld(ActionLeft) || f.IsHeld(ActionRight) {
		t.Error("Reset should release every held action")
	}
	if f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Reset should clear triggered actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionJump) || f.IsHeld(ActionJump) {
		t.Error("zero frame should report nothing")
	}

	// Mutators must allocate lazily
	f.Apply(Press(ActionJump))
	if !f.Has(ActionJump) {
		t.Error("zero frame should accept presses")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Apply(Press(ActionRight))

	clone := f.Clone()
	f.Reset()

	if !clone.IsHeld(ActionRight) || !clone.Has(ActionRight) {
		t.Error("clone should not share maps with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
