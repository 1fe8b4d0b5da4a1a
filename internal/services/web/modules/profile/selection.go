package profile

// Selection is the set of selected interest ids, kept in selection order.
type Selection struct {
	ids []int64
}

// NewSelection builds a selection from ids, dropping repeats.
func NewSelection(ids ...int64) Selection {
	s := Selection{ids: make([]int64, 0, len(ids))}
	for _, id := range ids {
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Contains reports whether id is selected.
func (s Selection) Contains(id int64) bool {
	for _, selected := range s.ids {
		if selected == id {
			return true
		}
	}
	return false
}

// Toggle removes id when selected and appends it otherwise.
func (s *Selection) Toggle(id int64) {
	for idx, selected := range s.ids {
		if selected == id {
			s.ids = append(s.ids[:idx:idx], s.ids[idx+1:]...)
			return
		}
	}
	s.ids = append(s.ids[:len(s.ids):len(s.ids)], id)
}

// IDs returns a copy of the selected ids in selection order.
func (s Selection) IDs() []int64 {
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// Equal reports whether both selections hold the same ids, ignoring order.
func (s Selection) Equal(other Selection) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for _, id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// TogglesTo returns the ids whose toggling turns s into the set target:
// deselections in selection order, then new selections in target order.
func (s Selection) TogglesTo(target []int64) []int64 {
	want := NewSelection(target...)
	toggles := make([]int64, 0)
	for _, id := range s.ids {
		if !want.Contains(id) {
			toggles = append(toggles, id)
		}
	}
	for _, id := range want.ids {
		if !s.Contains(id) {
			toggles = append(toggles, id)
		}
	}
	return toggles
}
