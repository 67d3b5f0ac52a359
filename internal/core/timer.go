package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
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

// Due returns how many ticks are owed since the previous call, capped at
// maxTicks. Time beyond the cap is dropped so a stalled frame does not turn
// into an unbounded catch-up batch.
func (f *FixedStep) Due(maxTicks int) int {
	if maxTicks <= 0 {
		maxTicks = 1
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	ticks := int(f.accumulator / f.step)
	if ticks > maxTicks {
		ticks = maxTicks
		f.accumulator = 0
		return ticks
	}
	f.accumulator -= time.Duration(ticks) * f.step
	return ticks
}
