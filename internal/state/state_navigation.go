package state

// moveSelectionDown advances the cursor, wrapping from the last entry to the
// first. Scroll follows the cursor one row at a time.
func (s *AppState) moveSelectionDown() {
	count := len(s.Files)
	if count == 0 {
		return
	}

	if s.SelectedIndex >= count-1 {
		s.SelectedIndex = 0
		s.ScrollOffset = 0
		return
	}

	s.SelectedIndex++
	if s.SelectedIndex-s.ScrollOffset >= s.ViewportHeight() {
		s.ScrollOffset++
	}
}

// moveSelectionUp retreats the cursor, wrapping from the first entry to the
// last with the final page in view.
func (s *AppState) moveSelectionUp() {
	count := len(s.Files)
	if count == 0 {
		return
	}

	if s.SelectedIndex <= 0 {
		s.SelectedIndex = count - 1
		s.ScrollOffset = lastPageOffset(count, s.ViewportHeight())
		return
	}

	s.SelectedIndex--
	if s.ScrollOffset > s.SelectedIndex {
		s.ScrollOffset--
	}
}

// lastPageOffset is count-height saturated at zero.
func lastPageOffset(count, height int) int {
	if count <= height {
		return 0
	}
	return count - height
}

// clampScrollToSelection brings the selection back into the viewport after
// the viewport itself changed size.
func (s *AppState) clampScrollToSelection() {
	if len(s.Files) == 0 {
		s.SelectedIndex = 0
		s.ScrollOffset = 0
		return
	}
	if s.SelectedIndex >= len(s.Files) {
		s.SelectedIndex = len(s.Files) - 1
	}

	h := s.ViewportHeight()
	if s.ScrollOffset > s.SelectedIndex {
		s.ScrollOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ScrollOffset+h {
		s.ScrollOffset = s.SelectedIndex - h + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}
