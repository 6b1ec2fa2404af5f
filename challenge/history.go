package challenge

// History is the rolling memory of recently issued challenges, oldest first.
// It grows by Append and shrinks only through Halve.
// It is not safe for concurrent use.
type History struct {
	entries []Challenge
}

// Len is the number of remembered challenges.
func (h *History) Len() int { return len(h.entries) }

// Append remembers c as the newest entry.
func (h *History) Append(c Challenge) { h.entries = append(h.entries, c) }

// Halve forgets the oldest half, rounding up, so repeated halving always
// reaches an empty history.
func (h *History) Halve() {
	drop := (len(h.entries) + 1) / 2
	h.entries = append([]Challenge(nil), h.entries[drop:]...)
}

// IsUniqueAgainst reports whether candidate is similar to no remembered entry.
// Complexity: O(n).
func (h *History) IsUniqueAgainst(candidate Challenge) bool {
	for _, c := range h.entries {
		if IsSimilar(candidate, c) {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the entries, oldest first.
func (h *History) Snapshot() []Challenge {
	return append([]Challenge(nil), h.entries...)
}
