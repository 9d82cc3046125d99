package unique

// Sequence hands out strictly increasing int64 ids.
// The counter is owned by the Sequence value; ids are never reused or reset.
// It is NOT thread-safe.
type Sequence struct {
	next int64
}

// NewSequence creates a Sequence whose first id is start.
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

// Generate returns the next id.
func (s *Sequence) Generate() int64 {
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next Generate call will return.
func (s *Sequence) Peek() int64 {
	return s.next
}
