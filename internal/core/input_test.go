package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	expected := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(f.Actions) != len(expected) {
		t.Fatalf("Actions = %v, expected %v", f.Actions, expected)
	}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should drop every action")
	}
	if !clone.Has(ActionRotate) {
		t.Error("Clone() should not share storage")
	}
}

func TestActionPresetIndex(t *testing.T) {
	tests := []struct {
		action Action
		index  int
		ok     bool
	}{
		{ActionPreset1, 0, true},
		{ActionPreset4, 3, true},
		{ActionRotate, 0, false},
	}

	for _, tt := range tests {
		idx, ok := tt.action.PresetIndex()
		if idx != tt.index || ok != tt.ok {
			t.Errorf("%v.PresetIndex() = (%d, %v), expected (%d, %v)", tt.action, idx, ok, tt.index, tt.ok)
		}
	}
}
