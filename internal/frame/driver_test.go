package frame

import "testing"

type countdown struct {
	left  int
	calls int
	seen  []uint64
}

func (c *countdown) Frame(fc Context) bool {
	c.calls++
	c.seen = append(c.seen, fc.Frame)
	c.left--
	return c.left > 0
}

type spawner struct {
	d     *Driver
	child Loop
}

func (s *spawner) Frame(Context) bool {
	s.d.Schedule(s.child)
	return true
}

func TestDriverStoppedDoesNothing(t *testing.T) {
	d := NewDriver()
	c := &countdown{left: 3}
	d.Schedule(c)

	if n := d.Step(Context{}); n != 1 {
		t.Fatalf("Step on stopped driver = %d, want 1", n)
	}
	if c.calls != 0 {
		t.Fatalf("loop ran %d times while stopped", c.calls)
	}
}

func TestDriverDropsFinishedLoops(t *testing.T) {
	d := NewDriver()
	d.Start()
	c := &countdown{left: 2}
	forever := &countdown{left: 1 << 30}
	d.Schedule(c)
	d.Schedule(forever)

	if n := d.Step(Context{}); n != 2 {
		t.Fatalf("after first step %d loops, want 2", n)
	}
	if n := d.Step(Context{}); n != 1 {
		t.Fatalf("after second step %d loops, want 1", n)
	}
	if d.Scheduled(c) {
		t.Fatal("finished loop still scheduled")
	}
	d.Step(Context{})
	if c.calls != 2 {
		t.Fatalf("finished loop ran %d times, want 2", c.calls)
	}
	if got := forever.seen; len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Fatalf("frame numbers = %v", got)
	}

	// A finished loop can be scheduled again.
	c.left = 1
	d.Schedule(c)
	d.Step(Context{})
	if c.calls != 3 {
		t.Fatalf("rescheduled loop ran %d times, want 3", c.calls)
	}
}

func TestDriverScheduleIdempotent(t *testing.T) {
	d := NewDriver()
	d.Start()
	c := &countdown{left: 10}
	d.Schedule(c)
	d.Schedule(c)
	d.Step(Context{})
	if c.calls != 1 {
		t.Fatalf("loop ran %d times in one step, want 1", c.calls)
	}
}

func TestDriverScheduleDuringStep(t *testing.T) {
	d := NewDriver()
	d.Start()
	child := &countdown{left: 5}
	d.Schedule(&spawner{d: d, child: child})

	if n := d.Step(Context{}); n != 2 {
		t.Fatalf("loops after step = %d, want 2", n)
	}
	if child.calls != 0 {
		t.Fatal("loop scheduled mid-step ran in the same frame")
	}
	d.Step(Context{})
	if child.calls != 1 {
		t.Fatalf("child calls = %d, want 1", child.calls)
	}
}
