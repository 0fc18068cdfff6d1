package core

import "testing"

func TestInputFrameCountsPresses(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionFire)

	if f.Count(ActionLeft) != 2 {
		t.Errorf("Count(Left) = %d, expected 2", f.Count(ActionLeft))
	}
	if !f.Has(ActionFire) || f.Has(ActionRight) {
		t.Error("Has() does not match the recorded presses")
	}

	f.Click(Point{X: 3, Y: 4})
	if len(f.Clicks) != 1 || f.Clicks[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v", f.Clicks)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
}

func TestInputFrameKeepsEventOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Click(Point{X: 1, Y: 2})
	f.Set(ActionLeft)

	want := []InputEvent{
		{Action: ActionRight},
		{Click: true, At: Point{X: 1, Y: 2}},
		{Action: ActionLeft},
	}
	if len(f.Events) != len(want) {
		t.Fatalf("Events = %v, expected %v", f.Events, want)
	}
	for i := range want {
		if f.Events[i] != want[i] {
			t.Errorf("Events[%d] = %+v, expected %+v", i, f.Events[i], want[i])
		}
	}

	f.Clear()
	if len(f.Events) != 0 {
		t.Errorf("Clear() left %d events", len(f.Events))
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) || f.Count(ActionLeft) != 0 {
		t.Error("zero frame should report no presses")
	}
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action string = %q", Action(99).String())
	}
}
