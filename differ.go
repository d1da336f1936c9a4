package textdiff

import "time"

// differ carries the configuration and deadline for one diff computation.
// The deadline is fixed when the differ is created so that recursive
// sub-diffs share a single time budget.
type differ struct {
	opts     *options
	deadline time.Time
}

// newDiffer creates a differ, starting the clock if a timeout is set.
func newDiffer(o *options) *differ {
	d := &differ{opts: o}
	if o.timeout > 0 {
		d.deadline = time.Now().Add(o.timeout)
	}
	return d
}

// expired reports whether the time budget has run out. A differ without a
// deadline never expires.
func (d *differ) expired() bool {
	return !d.deadline.IsZero() && time.Now().After(d.deadline)
}
