package hashmap

import "github.com/specterops/collections/collection"

// cursor walks the iteration chain of a linked map or the buckets of a plain map. The successor of the current entry
// is resolved before the current entry is handed out so that removing it through the cursor is safe.
type cursor[K comparable, V any] struct {
	backing *HashMap[K, V]
	guard   collection.Guard
	removal collection.Removal
	bucket  int
	next    *entry[K, V]
	current *entry[K, V]
	err     error
}

func (s *HashMap[K, V]) newCursor() *cursor[K, V] {
	instance := &cursor[K, V]{
		backing: s,
		guard:   s.stamp.Guard(),
		bucket:  -1,
	}

	if s.chain != nil {
		instance.next = s.chain.eldest()
	} else {
		instance.next = instance.scanFrom(0)
	}

	return instance
}

func (s *cursor[K, V]) scanFrom(bucket int) *entry[K, V] {
	table := s.backing.table

	for idx := bucket; idx < len(table); idx++ {
		if table[idx] != nil {
			s.bucket = idx
			return table[idx]
		}
	}

	s.bucket = len(table)
	return nil
}

func (s *cursor[K, V]) successor(current *entry[K, V]) *entry[K, V] {
	if s.backing.chain != nil {
		return s.backing.chain.after(current)
	}

	if current.next != nil {
		return current.next
	}

	return s.scanFrom(s.bucket + 1)
}

func (s *cursor[K, V]) Next() bool {
	if s.err != nil {
		return false
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return false
	}

	if s.next == nil {
		return false
	}

	s.current = s.next
	s.next = s.successor(s.current)
	s.removal.Arm()

	return true
}

func (s *cursor[K, V]) Value() collection.Entry[K, V] {
	return s.current
}

func (s *cursor[K, V]) Remove() error {
	if s.err != nil {
		return s.err
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return err
	}

	if err := s.removal.Take(); err != nil {
		return err
	}

	s.backing.Delete(s.current.key)
	s.guard.Acknowledge()

	return nil
}

func (s *cursor[K, V]) Err() error {
	return s.err
}
