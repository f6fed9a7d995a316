package replay

import "testing"

func TestCursorWalksEventsInOrder(t *testing.T) {
	var l Log
	l.Record(0, KindSpawn)
	l.Record(5, KindImpulse)
	l.Record(5, KindSpawn)
	l.Record(12, KindImpulse)
	l.Ticks = 20

	c := NewCursor(l)

	if got := c.Next(0); len(got) != 1 || got[0].Kind != KindSpawn {
		t.Errorf("Next(0) = %v, expected one spawn", got)
	}
	if got := c.Next(4); len(got) != 0 {
		t.Errorf("Next(4) = %v, expected no events", got)
	}
	if got := c.Next(5); len(got) != 2 {
		t.Errorf("Next(5) = %v, expected two events", got)
	}
	if c.Done(5) {
		t.Error("cursor should not be done with events remaining")
	}
	if got := c.Next(12); len(got) != 1 || got[0].Kind != KindImpulse {
		t.Errorf("Next(12) = %v, expected one impulse", got)
	}
	if c.Done(12) {
		t.Error("cursor should not be done before the recorded tick count")
	}
	if !c.Done(20) {
		t.Error("cursor should be done at the recorded tick count")
	}
}

func TestCursorSkipsMissedTicks(t *testing.T) {
	var l Log
	l.Record(3, KindImpulse)
	l.Record(7, KindSpawn)

	c := NewCursor(l)

	// Jumping straight to tick 10 drains everything up to it.
	if got := c.Next(10); len(got) != 2 {
		t.Errorf("Next(10) = %v, expected both events", got)
	}
}

func TestLogRoundTrip(t *testing.T) {
	l := Log{Seed: 42, TickRate: 60, Ticks: 100}
	l.Record(10, KindSpawn)
	l.Record(25, KindImpulse)

	data, err := l.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if back.Seed != 42 || back.TickRate != 60 || back.Ticks != 100 {
		t.Errorf("header mismatch after round trip: %+v", back)
	}
	if len(back.Events) != 2 || back.Events[0] != l.Events[0] || back.Events[1] != l.Events[1] {
		t.Errorf("events mismatch after round trip: %v", back.Events)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("not json")); err == nil {
		t.Error("Unmarshal() should fail on invalid input")
	}
}
