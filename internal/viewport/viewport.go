// Package viewport computes which window of a list is visible.
package viewport

// AdjustScroll returns the scroll offset that keeps selected in view. The
// selection is kept near the middle of the window while there is room to
// scroll; selecting the last item pins the window to the bottom. The result
// depends only on the arguments, so repeated calls settle immediately.
func AdjustScroll(selected, scrollTop, visibleRows, total int) int {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if total <= visibleRows {
		return 0
	}
	middle := visibleRows / 2
	maxScroll := total - visibleRows

	if selected >= scrollTop+middle && scrollTop < maxScroll {
		scrollTop = clamp(selected-middle, 0, maxScroll)
	}
	if selected < scrollTop+middle && scrollTop > 0 {
		scrollTop = clamp(selected-middle, 0, maxScroll)
	}
	if selected >= total-1 {
		scrollTop = maxScroll
	}
	return clamp(scrollTop, 0, maxScroll)
}

// ClampDetail bounds a detail scroll offset so the last page stays full.
func ClampDetail(scroll, totalLines, visibleRows int) int {
	if visibleRows < 1 {
		visibleRows = 1
	}
	return clamp(scroll, 0, max(0, totalLines-visibleRows))
}

// VisibleRange returns the half-open index range [start, end) shown for a
// list of total items.
func VisibleRange(scrollTop, visibleRows, total int) (start, end int) {
	start = clamp(scrollTop, 0, max(0, total))
	end = min(total, start+max(0, visibleRows))
	return start, end
}

// Clamp bounds value to [low, high]. When high < low the result is low.
func Clamp(value, low, high int) int {
	return clamp(value, low, high)
}

func clamp(value, low, high int) int {
	return max(low, min(high, value))
}
