package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// A paused FixedStep never reports a step and drops the time spent paused.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Pause halts the clock until Resume is called.
func (f *FixedStep) Pause() { f.paused = true }

// Resume restarts a paused clock without replaying the paused interval.
func (f *FixedStep) Resume() {
	if !f.paused {
		return
	}
	f.paused = false
	f.last = time.Time{}
}

// Paused reports whether the clock is halted.
func (f *FixedStep) Paused() bool { return f.paused }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	if f.paused {
		return false
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
