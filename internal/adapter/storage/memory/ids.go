package memory

// sequence allocates monotonically increasing surrogate ids for one
// collection, starting at 1. Callers must hold the store lock.
type sequence struct {
	last int
}

func (s *sequence) next() int {
	s.last++
	return s.last
}

// reserve advances the sequence past an explicitly assigned id, so seeded
// entities and generated ones never collide.
func (s *sequence) reserve(id int) {
	if id > s.last {
		s.last = id
	}
}
