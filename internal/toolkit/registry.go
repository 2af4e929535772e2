package toolkit

import "sync"

// Registry hands out ids that stand in for Go state in native user data.
// Each id accepts one delivery; later deliveries are ignored.
type Registry struct {
	mu    sync.Mutex
	next  uintptr
	slots map[uintptr]*slot
}

type slot struct {
	response  int32
	delivered bool
	onDeliver func()
}

// Responses routes "response" signals to the dialog waiting for them.
var Responses = &Registry{}

// Register allocates an id. onDeliver, when set, runs after the first
// delivery is recorded.
func (r *Registry) Register(onDeliver func()) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slots == nil {
		r.slots = make(map[uintptr]*slot)
	}
	r.next++
	r.slots[r.next] = &slot{onDeliver: onDeliver}
	return r.next
}

// Deliver records response for id. It reports false for an unknown id or
// one that already has a response.
func (r *Registry) Deliver(id uintptr, response int32) bool {
	r.mu.Lock()
	s, ok := r.slots[id]
	if !ok || s.delivered {
		r.mu.Unlock()
		return false
	}
	s.response = response
	s.delivered = true
	fn := s.onDeliver
	r.mu.Unlock()

	if fn != nil {
		fn()
	}
	return true
}

// Delivered reports whether id already has a response.
func (r *Registry) Delivered(id uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	return ok && s.delivered
}

// Release frees id and returns its response, if one was delivered.
func (r *Registry) Release(id uintptr) (int32, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return 0, false
	}
	delete(r.slots, id)
	return s.response, s.delivered
}

// Len returns the number of live ids.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
