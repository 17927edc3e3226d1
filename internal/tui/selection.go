package tui

// Selection is an optional index into the filtered project list.
// The zero value is None.
type Selection struct {
	index int
	ok    bool
}

func None() Selection { return Selection{} }

func Some(i int) Selection { return Selection{index: i, ok: true} }

// Index returns the selected index and whether there is one.
func (s Selection) Index() (int, bool) { return s.index, s.ok }

func (s Selection) IsNone() bool { return !s.ok }

// validFor reports whether s satisfies the selection invariant for a list of
// length n: Some(i) with 0 <= i < n when n > 0, None when n == 0.
func (s Selection) validFor(n int) bool {
	if n == 0 {
		return !s.ok
	}
	return s.ok && s.index >= 0 && s.index < n
}
