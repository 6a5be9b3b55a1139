package state

// Revision counts document mutations. Publishers compare revisions to tell
// whether anything changed since they last looked.
type Revision struct {
	counter uint64
}

// Tick advances the revision and returns the new value.
func (r *Revision) Tick() uint64 {
	r.counter++
	return r.counter
}

// Current returns the latest revision.
func (r *Revision) Current() uint64 {
	return r.counter
}
