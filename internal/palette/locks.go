package palette

import (
	"fmt"
	"sort"
)

// LockSet records which palette slots survive regeneration.
type LockSet struct {
	slots map[int]struct{}
}

// NewLockSet returns a lock set holding the given slots.
func NewLockSet(indices ...int) (LockSet, error) {
	set := LockSet{slots: make(map[int]struct{}, len(indices))}
	for _, i := range indices {
		if err := checkSlot(i); err != nil {
			return LockSet{}, err
		}
		set.slots[i] = struct{}{}
	}
	return set, nil
}

// Has reports whether slot i is locked.
func (s LockSet) Has(i int) bool {
	_, ok := s.slots[i]
	return ok
}

// Toggle flips the lock on slot i and reports whether it is now locked.
func (s *LockSet) Toggle(i int) (bool, error) {
	if err := checkSlot(i); err != nil {
		return false, err
	}
	if s.slots == nil {
		s.slots = make(map[int]struct{})
	}
	if _, ok := s.slots[i]; ok {
		delete(s.slots, i)
		return false, nil
	}
	s.slots[i] = struct{}{}
	return true, nil
}

// Indices returns the locked slots in ascending order.
func (s LockSet) Indices() []int {
	out := make([]int, 0, len(s.slots))
	for i := range s.slots {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of locked slots.
func (s LockSet) Len() int {
	return len(s.slots)
}

// Clear unlocks every slot.
func (s *LockSet) Clear() {
	s.slots = nil
}

func (s LockSet) clone() LockSet {
	out := LockSet{slots: make(map[int]struct{}, len(s.slots))}
	for i := range s.slots {
		out.slots[i] = struct{}{}
	}
	return out
}

func checkSlot(i int) error {
	if i < 0 || i >= Size {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, Size)
	}
	return nil
}
