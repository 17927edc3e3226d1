package tui

import "github.com/tormodhaugland/pl/internal/model"

// projectScroller holds the filtered projects, the selection and the scroll
// window of the project list.
type projectScroller struct {
	items        []model.Project
	selection    Selection
	scrollOffset int
	height       int // visible rows
}

func newProjectScroller(items []model.Project, visibleHeight int) *projectScroller {
	s := &projectScroller{height: visibleHeight}
	s.setItems(items)
	return s
}

// setItems replaces the list and resets the selection to the first item,
// or None when the list is empty.
func (s *projectScroller) setItems(items []model.Project) {
	s.items = items
	s.scrollOffset = 0
	s.first()
}

func (s *projectScroller) setHeight(height int) {
	s.height = height
	s.ensureVisible()
}

func (s *projectScroller) len() int {
	return len(s.items)
}

// next moves down one item, wrapping to the top.
func (s *projectScroller) next() {
	n := len(s.items)
	if n == 0 {
		return
	}
	i, _ := s.selection.Index()
	s.selection = Some((i + 1) % n)
	s.ensureVisible()
}

// previous moves up one item, wrapping to the bottom.
func (s *projectScroller) previous() {
	n := len(s.items)
	if n == 0 {
		return
	}
	i, _ := s.selection.Index()
	s.selection = Some((i - 1 + n) % n)
	s.ensureVisible()
}

func (s *projectScroller) first() {
	if len(s.items) == 0 {
		s.selection = None()
		return
	}
	s.selection = Some(0)
	s.ensureVisible()
}

func (s *projectScroller) last() {
	if len(s.items) == 0 {
		s.selection = None()
		return
	}
	s.selection = Some(len(s.items) - 1)
	s.ensureVisible()
}

// ensureVisible ensures the selected item is inside the scroll window.
func (s *projectScroller) ensureVisible() {
	i, ok := s.selection.Index()
	if !ok || s.height <= 0 {
		return
	}

	if i < s.scrollOffset {
		s.scrollOffset = i
	}
	if i >= s.scrollOffset+s.height {
		s.scrollOffset = i - s.height + 1
	}
}

// visibleRange returns the start and end indices of visible items.
func (s *projectScroller) visibleRange() (start, end int) {
	start = s.scrollOffset
	end = s.scrollOffset + s.height
	if end > len(s.items) {
		end = len(s.items)
	}
	if start > end {
		start = end
	}
	return start, end
}

// selected returns the selected project, if any.
func (s *projectScroller) selected() (model.Project, bool) {
	i, ok := s.selection.Index()
	if !ok || i >= len(s.items) {
		return model.Project{}, false
	}
	return s.items[i], true
}

func (s *projectScroller) isSelected(index int) bool {
	i, ok := s.selection.Index()
	return ok && i == index
}
