package anim

// TickFunc receives the current time in seconds whenever the host pumps a
// frame. The time base is whatever the host passes to Advance; the editor
// uses rl.GetTime().
type TickFunc func(now float64)

type tickEntry struct {
	id uint64
	fn TickFunc
}

// Ticks is a per-frame callback dispatcher. The editor owns one and calls
// Advance once per frame; animated values register themselves while they
// are in flight and drop off when they settle. Not safe for concurrent
// use; everything runs on the main loop.
type Ticks struct {
	nextID  uint64
	entries []tickEntry
	now     float64
}

func NewTicks() *Ticks {
	return &Ticks{}
}

// Add registers a callback and returns its ID. Callbacks added during a
// dispatch first run on the next Advance.
func (t *Ticks) Add(fn TickFunc) uint64 {
	if fn == nil {
		return 0
	}
	t.nextID++
	t.entries = append(t.entries, tickEntry{id: t.nextID, fn: fn})
	return t.nextID
}

// Remove deregisters a callback. Unknown or zero IDs are a no-op. Safe to
// call from inside a dispatch; the callback won't run again this frame.
func (t *Ticks) Remove(id uint64) {
	if id == 0 {
		return
	}
	for i := range t.entries {
		if t.entries[i].id == id {
			t.entries[i].fn = nil
			return
		}
	}
}

// Advance records the new time and dispatches every registered callback in
// registration order, then compacts out entries removed along the way.
func (t *Ticks) Advance(now float64) {
	t.now = now
	n := len(t.entries)
	for i := 0; i < n; i++ {
		if fn := t.entries[i].fn; fn != nil {
			fn(now)
		}
	}
	live := t.entries[:0]
	for _, e := range t.entries {
		if e.fn != nil {
			live = append(live, e)
		}
	}
	t.entries = live
}

// Now returns the time passed to the most recent Advance. Values use it to
// stamp their animation start so the first tick's delta is sane.
func (t *Ticks) Now() float64 {
	return t.now
}

// Len returns the number of live registrations.
func (t *Ticks) Len() int {
	n := 0
	for _, e := range t.entries {
		if e.fn != nil {
			n++
		}
	}
	return n
}
