package tui

import "testing"

func TestSelection(t *testing.T) {
	var zero Selection
	if !zero.IsNone() {
		t.Error("zero value should be None")
	}

	if _, ok := None().Index(); ok {
		t.Error("None().Index() reported a selection")
	}

	i, ok := Some(3).Index()
	if !ok || i != 3 {
		t.Errorf("Some(3).Index() = (%d, %v), want (3, true)", i, ok)
	}
	if Some(0).IsNone() {
		t.Error("Some(0) should not be None")
	}
}

func TestSelectionValidFor(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		n    int
		want bool
	}{
		{"none on empty", None(), 0, true},
		{"some on empty", Some(0), 0, false},
		{"none on non-empty", None(), 2, false},
		{"first", Some(0), 2, true},
		{"last", Some(1), 2, true},
		{"past end", Some(2), 2, false},
		{"negative", Some(-1), 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.validFor(tt.n); got != tt.want {
				t.Errorf("validFor(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
