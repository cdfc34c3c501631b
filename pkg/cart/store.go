package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps one cart per shopper, in memory. All mutation goes through
// the store; readers get copies, so a snapshot taken for a checkout attempt
// cannot be changed underneath it.
type Store struct {
	mu    sync.Mutex
	carts map[uuid.UUID][]LineItem
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[uuid.UUID][]LineItem)}
}

// Add appends a line item to the owner's cart, preserving order.
func (s *Store) Add(owner uuid.UUID, item LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[owner] = append(s.carts[owner], item)
}

// Remove deletes the line at index. Out-of-range indexes are ignored.
func (s *Store) Remove(owner uuid.UUID, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[owner]
	if index < 0 || index >= len(items) {
		return
	}
	s.carts[owner] = append(items[:index], items[index+1:]...)
}

// Empty discards the owner's cart.
func (s *Store) Empty(owner uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, owner)
}

// Items returns a copy of the owner's cart in insertion order.
func (s *Store) Items(owner uuid.UUID) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.carts[owner]))
	copy(items, s.carts[owner])
	return items
}

// Snapshot is the immutable view handed to a checkout attempt. It is the
// same copy Items returns; the name marks the intent at call sites.
func (s *Store) Snapshot(owner uuid.UUID) []LineItem {
	return s.Items(owner)
}

// Total recomputes the owner's cart total.
func (s *Store) Total(owner uuid.UUID) Price {
	return Total(s.Items(owner))
}
