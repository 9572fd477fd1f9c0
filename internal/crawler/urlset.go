package crawler

// urlSet is an insertion-ordered set of URL strings. Membership is exact
// string equality; no normalization is applied.
type urlSet struct {
	index map[string]struct{}
	order []string
}

func newURLSet(capacity int) *urlSet {
	return &urlSet{
		index: make(map[string]struct{}, capacity),
		order: make([]string, 0, capacity),
	}
}

// Add inserts u and reports whether it was not already present.
func (s *urlSet) Add(u string) bool {
	if _, ok := s.index[u]; ok {
		return false
	}
	s.index[u] = struct{}{}
	s.order = append(s.order, u)
	return true
}

// Slice returns a copy of the members in insertion order.
func (s *urlSet) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
