package ui

import "github.com/five82/progressdash/internal/viewport"

// Mode is the active screen.
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
)

func (m Mode) String() string {
	if m == ModeDetail {
		return "detail"
	}
	return "list"
}

// Key is a key press after binding resolution.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyBack
	KeyInterrupt
)

// ViewState is the selection and scroll state of the dashboard.
type ViewState struct {
	Selected     int
	ScrollTop    int
	DetailScroll int
	Mode         Mode
}

// Apply returns the state after pressing k with total events loaded. The
// second result reports that the program should exit. Detail scrolling is
// not bounded here; the layout pass clamps it.
func (v ViewState) Apply(k Key, total int) (ViewState, bool) {
	if k == KeyInterrupt {
		return v, true
	}
	if v.Mode == ModeDetail {
		switch k {
		case KeyUp:
			v.DetailScroll--
		case KeyDown:
			v.DetailScroll++
		case KeyBack:
			v.Mode = ModeList
			v.DetailScroll = 0
		}
		return v, false
	}

	last := max(0, total-1)
	switch k {
	case KeyUp:
		v.Selected = viewport.Clamp(v.Selected-1, 0, last)
	case KeyDown:
		v.Selected = viewport.Clamp(v.Selected+1, 0, last)
	case KeyEnter:
		if total > 0 {
			v.Mode = ModeDetail
			v.DetailScroll = 0
		}
	case KeyBack:
		return v, true
	}
	return v, false
}

// Reconcile fits the state to a reloaded event list. replaced reports that
// the sequence itself was swapped, which invalidates the detail scroll.
func (v ViewState) Reconcile(total int, replaced bool) ViewState {
	v.Selected = viewport.Clamp(v.Selected, 0, max(0, total-1))
	if replaced {
		v.DetailScroll = 0
	}
	if total == 0 {
		v.Mode = ModeList
		v.DetailScroll = 0
	}
	return v
}
