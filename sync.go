package dlist

import (
	"github.com/puzpuzpuz/xsync/v2"
)

// SyncList is a List guarded by a single lock.
// It does not expose elements so the links are only changed under the lock.
type SyncList[V any] struct {
	mu   *xsync.RBMutex
	list *List[V]
}

// NewSync creates an empty list that is safe for concurrent use.
func NewSync[V any](opts ...Option[V]) *SyncList[V] {
	return &SyncList[V]{
		mu:   xsync.NewRBMutex(),
		list: New(opts...),
	}
}

// Len returns the number of elements in the list.
func (s *SyncList[V]) Len() int {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Len()
}

// PushBack inserts a value at the back of the list.
func (s *SyncList[V]) PushBack(value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.PushBack(value)
}

// PushFront inserts a value at the front of the list.
func (s *SyncList[V]) PushFront(value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.PushFront(value)
}

// PopFront removes the front element and returns its value or ErrEmpty.
func (s *SyncList[V]) PopFront() (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.list.PopFront(); ok {
		return v, nil
	}

	var zero V
	return zero, ErrEmpty
}

// PopBack removes the back element and returns its value or ErrEmpty.
func (s *SyncList[V]) PopBack() (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.list.PopBack(); ok {
		return v, nil
	}

	var zero V
	return zero, ErrEmpty
}

// Values returns a snapshot of the values, from the back to the front.
func (s *SyncList[V]) Values() []V {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Values()
}

// String renders the values from the back to the front.
func (s *SyncList[V]) String() string {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.String()
}

// Close releases every element of the list.
func (s *SyncList[V]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.Close()

	return nil
}
