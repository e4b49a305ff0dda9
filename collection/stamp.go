package collection

import "github.com/cockroachdb/errors"

// Stamp counts the structural modifications made to a container. Cursors capture the count when they are created
// and refuse to continue once it has moved on without them.
//
// A Stamp is not synchronized. Detection of interleaved mutations is best effort and is not a substitute for
// external synchronization.
type Stamp struct {
	count uint64
}

// Bump records exactly one structural modification.
func (s *Stamp) Bump() {
	s.count++
}

// Guard captures the current count of this stamp.
func (s *Stamp) Guard() Guard {
	return Guard{
		stamp:    s,
		expected: s.count,
	}
}

// Guard is the cursor side of the mutation stamp protocol.
type Guard struct {
	stamp    *Stamp
	expected uint64
}

// Check returns ErrStructuralConflict if the guarded container was structurally modified outside of the owning
// cursor since the guard was created.
func (s *Guard) Check() error {
	if s.stamp.count != s.expected {
		return errors.Wrapf(ErrStructuralConflict, "expected modification count %d but found %d", s.expected, s.stamp.count)
	}

	return nil
}

// Acknowledge accepts exactly one structural modification made by the owning cursor.
func (s *Guard) Acknowledge() {
	s.expected++
}

// Removal tracks whether a cursor is allowed to remove the element it last returned.
type Removal struct {
	allowed bool
}

// Arm is called after each successful advance.
func (s *Removal) Arm() {
	s.allowed = true
}

// Disarm revokes removal rights, for example after an insertion through the cursor.
func (s *Removal) Disarm() {
	s.allowed = false
}

// Take consumes the removal right or returns ErrInvalidIteratorState if there is none.
func (s *Removal) Take() error {
	if !s.allowed {
		return errors.Wrap(ErrInvalidIteratorState, "remove requires a preceding advance")
	}

	s.allowed = false
	return nil
}
