package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_ListNavigation(t *testing.T) {
	cases := []struct {
		name  string
		start ViewState
		key   Key
		total int
		want  ViewState
		quit  bool
	}{
		{"down moves", ViewState{Selected: 0}, KeyDown, 3, ViewState{Selected: 1}, false},
		{"down clamps at end", ViewState{Selected: 2}, KeyDown, 3, ViewState{Selected: 2}, false},
		{"up clamps at start", ViewState{Selected: 0}, KeyUp, 3, ViewState{Selected: 0}, false},
		{"down on empty list", ViewState{}, KeyDown, 0, ViewState{}, false},
		{"enter opens detail", ViewState{Selected: 1, DetailScroll: 4}, KeyEnter, 3, ViewState{Selected: 1, Mode: ModeDetail}, false},
		{"enter ignored when empty", ViewState{}, KeyEnter, 0, ViewState{}, false},
		{"back quits", ViewState{}, KeyBack, 3, ViewState{}, true},
		{"interrupt quits", ViewState{}, KeyInterrupt, 3, ViewState{}, true},
		{"unknown key", ViewState{Selected: 1}, KeyNone, 3, ViewState{Selected: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := tc.start.Apply(tc.key, tc.total)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestApply_DetailScrolling(t *testing.T) {
	v := ViewState{Selected: 2, Mode: ModeDetail}

	v, _ = v.Apply(KeyDown, 3)
	v, _ = v.Apply(KeyDown, 3)
	assert.Equal(t, 2, v.DetailScroll)

	v, _ = v.Apply(KeyUp, 3)
	v, _ = v.Apply(KeyUp, 3)
	v, _ = v.Apply(KeyUp, 3)
	assert.Equal(t, -1, v.DetailScroll, "bounded later by layout")
	assert.Equal(t, 2, v.Selected)

	v, quit := v.Apply(KeyBack, 3)
	assert.False(t, quit, "back in detail mode should not quit")
	assert.Equal(t, ModeList, v.Mode)
	assert.Equal(t, 0, v.DetailScroll)
}

func TestReconcile(t *testing.T) {
	v := ViewState{Selected: 7, DetailScroll: 3, Mode: ModeDetail}

	assert.Equal(t, ViewState{Selected: 2, DetailScroll: 3, Mode: ModeDetail}, v.Reconcile(3, false))
	assert.Equal(t, ViewState{Selected: 7, DetailScroll: 0, Mode: ModeDetail}, v.Reconcile(10, true))
	assert.Equal(t, ViewState{Selected: 0, DetailScroll: 0, Mode: ModeList}, v.Reconcile(0, true))
}
