package userlock

import "sync"

// Registry hands out one mutex per key, so streak and achievement updates
// for the same user are serialized while different users never contend.
type Registry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Registry {
	return &Registry{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
func (r *Registry) Lock(key string) func() {
	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
