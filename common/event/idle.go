package event

import "sync"

// IdleQueue hands functions over to the thread that owns the GUI. Only
// that thread may drain it. Adding never blocks and never drops.
type IdleQueue struct {
	mux     sync.Mutex
	pending []func()
	ready   chan struct{}
}

func NewIdleQueue(initialCapacity int) *IdleQueue {
	return &IdleQueue{
		pending: make([]func(), 0, initialCapacity),
		ready:   make(chan struct{}, 1),
	}
}

func (s *IdleQueue) IdleAdd(fn func()) {
	s.mux.Lock()
	s.pending = append(s.pending, fn)
	s.mux.Unlock()

	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Ready receives a value after functions have been added. Call RunPending
// when it does.
func (s *IdleQueue) Ready() <-chan struct{} {
	return s.ready
}

func (s *IdleQueue) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.pending)
}

// RunPending runs queued functions, including ones they queue, until the
// queue is empty and returns how many were run.
func (s *IdleQueue) RunPending() int {
	count := 0
	for {
		s.mux.Lock()
		batch := s.pending
		s.pending = nil
		s.mux.Unlock()

		if len(batch) == 0 {
			return count
		}
		for _, fn := range batch {
			fn()
			count++
		}
	}
}
