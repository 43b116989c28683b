package viewport

import "testing"

func TestAdjustScroll_FitsReturnsZero(t *testing.T) {
	for total := 0; total <= 8; total++ {
		for selected := 0; selected < max(total, 1); selected++ {
			for scrollTop := -2; scrollTop <= 10; scrollTop++ {
				if got := AdjustScroll(selected, scrollTop, 8, total); got != 0 {
					t.Fatalf("AdjustScroll(%d, %d, 8, %d) = %d, want 0", selected, scrollTop, total, got)
				}
			}
		}
	}
}

func TestAdjustScroll_LastIndexPinsBottom(t *testing.T) {
	for total := 6; total <= 40; total++ {
		for scrollTop := 0; scrollTop <= total; scrollTop++ {
			if got := AdjustScroll(total-1, scrollTop, 5, total); got != total-5 {
				t.Fatalf("AdjustScroll(%d, %d, 5, %d) = %d, want %d", total-1, scrollTop, total, got, total-5)
			}
		}
	}
}

func TestAdjustScroll_Idempotent(t *testing.T) {
	for _, visible := range []int{1, 2, 3, 4, 7, 10} {
		for total := 0; total <= 25; total++ {
			for selected := 0; selected < max(total, 1); selected++ {
				for scrollTop := -1; scrollTop <= total+1; scrollTop++ {
					first := AdjustScroll(selected, scrollTop, visible, total)
					second := AdjustScroll(selected, first, visible, total)
					if first != second {
						t.Fatalf("AdjustScroll(sel=%d, top=%d, vis=%d, total=%d) = %d, then %d", selected, scrollTop, visible, total, first, second)
					}
				}
			}
		}
	}
}

func TestAdjustScroll_KeepsSelectionVisible(t *testing.T) {
	const visible, total = 6, 30
	top := 0
	for selected := 0; selected < total; selected++ {
		top = AdjustScroll(selected, top, visible, total)
		if selected < top || selected >= top+visible {
			t.Fatalf("moving down: selected %d outside [%d, %d)", selected, top, top+visible)
		}
	}
	for selected := total - 1; selected >= 0; selected-- {
		top = AdjustScroll(selected, top, visible, total)
		if selected < top || selected >= top+visible {
			t.Fatalf("moving up: selected %d outside [%d, %d)", selected, top, top+visible)
		}
	}
}

func TestAdjustScroll_CentersSelection(t *testing.T) {
	cases := []struct {
		name                                string
		selected, scrollTop, visible, total int
		want                                int
	}{
		{"top of list", 0, 0, 6, 20, 0},
		{"below middle advances", 5, 0, 6, 20, 2},
		{"above middle retreats", 4, 6, 6, 20, 1},
		{"clamped at max", 17, 10, 6, 20, 14},
		{"zero rows treated as one", 3, 0, 0, 10, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AdjustScroll(tc.selected, tc.scrollTop, tc.visible, tc.total); got != tc.want {
				t.Fatalf("AdjustScroll(%d, %d, %d, %d) = %d, want %d", tc.selected, tc.scrollTop, tc.visible, tc.total, got, tc.want)
			}
		})
	}
}

func TestClampDetail(t *testing.T) {
	cases := []struct {
		scroll, lines, visible, want int
	}{
		{-3, 50, 10, 0},
		{5, 50, 10, 5},
		{99, 50, 10, 40},
		{4, 5, 10, 0},
	}
	for _, tc := range cases {
		if got := ClampDetail(tc.scroll, tc.lines, tc.visible); got != tc.want {
			t.Fatalf("ClampDetail(%d, %d, %d) = %d, want %d", tc.scroll, tc.lines, tc.visible, got, tc.want)
		}
	}
}

func TestVisibleRange(t *testing.T) {
	start, end := VisibleRange(3, 5, 6)
	if start != 3 || end != 6 {
		t.Fatalf("VisibleRange = [%d, %d), want [3, 6)", start, end)
	}
	start, end = VisibleRange(0, 5, 0)
	if start != 0 || end != 0 {
		t.Fatalf("VisibleRange empty = [%d, %d), want [0, 0)", start, end)
	}
}
