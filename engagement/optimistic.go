package engagement

// Optimistic tracks a boolean engagement flag (liked/saved) through the
// optimistic-update cycle: flip locally on user action, then either commit
// the intended value when the server confirms or revert to the last
// confirmed value when it fails. CounterDelta gives the adjustment to apply
// to the displayed counter while the flip is in flight.
type Optimistic struct {
	confirmed bool
	intended  bool
	pending   bool
}

func NewOptimistic(confirmed bool) *Optimistic {
	return &Optimistic{confirmed: confirmed}
}

// Value is what the UI should currently show.
func (o *Optimistic) Value() bool {
	if o.pending {
		return o.intended
	}
	return o.confirmed
}

func (o *Optimistic) Pending() bool {
	return o.pending
}

// Begin records a user action toward the given value. Repeated Begin calls
// before settlement just retarget the intended value.
func (o *Optimistic) Begin(intended bool) {
	o.intended = intended
	o.pending = true
}

// Confirm settles the in-flight action as succeeded.
func (o *Optimistic) Confirm() {
	if !o.pending {
		return
	}
	o.confirmed = o.intended
	o.pending = false
}

// Revert settles the in-flight action as failed, restoring the last
// server-confirmed value.
func (o *Optimistic) Revert() {
	o.pending = false
}

// CounterDelta is the amount the displayed counter differs from the
// server-confirmed one: +1 while an "on" flip is pending, -1 for "off".
func (o *Optimistic) CounterDelta() int {
	if !o.pending || o.intended == o.confirmed {
		return 0
	}
	if o.intended {
		return 1
	}
	return -1
}
