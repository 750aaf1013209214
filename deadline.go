package maestro

import (
	"fmt"
	"time"
)

// Deadline is the time budget of one top-level render request.
//
// A Deadline is created once per request and shared by pointer with every
// card and layout stage the request spawns. It is read-only after creation
// and safe for concurrent use. It is never extended or reused: a new request
// gets a new Deadline measured from its own start.
type Deadline struct {
	start  time.Time // carries the monotonic clock reading
	budget time.Duration
}

// NewDeadline starts a Deadline with the given budget.
// A budget of zero or less is already exceeded.
func NewDeadline(budget time.Duration) *Deadline {
	return &Deadline{start: time.Now(), budget: budget}
}

// Start returns the instant the Deadline was created.
func (d *Deadline) Start() time.Time {
	return d.start
}

// Budget returns the total time budget.
func (d *Deadline) Budget() time.Duration {
	return d.budget
}

// Elapsed returns the time spent since Start.
func (d *Deadline) Elapsed() time.Duration {
	return time.Since(d.start)
}

// Remaining returns the time left, or zero once the budget is spent.
func (d *Deadline) Remaining() time.Duration {
	return max(d.budget-d.Elapsed(), 0)
}

// Exceeded reports whether the budget has been spent.
func (d *Deadline) Exceeded() bool {
	return d.Elapsed() >= d.budget
}

// Check returns an error wrapping ErrTimeout if the budget has been spent,
// and nil otherwise. stage names the checkpoint for the error message.
func (d *Deadline) Check(stage string) error {
	if elapsed := d.Elapsed(); elapsed >= d.budget {
		return fmt.Errorf("%w: %s after %s (budget %s)", ErrTimeout, stage, elapsed.Round(time.Millisecond), d.budget)
	}
	return nil
}
