package ecs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchedulerOrderAndConditions(t *testing.T) {
	var calls []string
	record := func(name string) System {
		return SystemFunc(func(*World) { calls = append(calls, name) })
	}

	enabled := false
	s := NewScheduler(record("a"))
	s.AddWhen(func(*World) bool { return enabled }, record("b"), nil, record("c"))
	s.Add(record("d"))
	s.Add(nil)

	w := NewWorld()
	s.Update(w)
	enabled = true
	s.Update(w)

	want := []string{"a", "d", "a", "b", "c", "d"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
	if n := len(s.Systems()); n != 4 {
		t.Fatalf("expected 4 systems, got %d", n)
	}
}
