package state

// Window tracks the scroll offset of a focused list rendered into a fixed
// number of rows.
type Window struct {
	Offset int
}

// EnsureVisible adjusts the offset so that the focused index stays inside a
// window of maxVisible rows over total items.
func (w *Window) EnsureVisible(focus, total, maxVisible int) {
	if total == 0 {
		w.Offset = 0
		return
	}
	if focus < 0 {
		focus = 0
	}
	if focus >= total {
		focus = total - 1
	}
	if maxVisible <= 0 {
		w.Offset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if w.Offset > maxOffset {
		w.Offset = maxOffset
	}
	if w.Offset < 0 {
		w.Offset = 0
	}
	if focus < w.Offset {
		w.Offset = focus
	}
	if upper := w.Offset + maxVisible - 1; focus > upper {
		w.Offset = focus - maxVisible + 1
		if w.Offset > maxOffset {
			w.Offset = maxOffset
		}
		if w.Offset < 0 {
			w.Offset = 0
		}
	}
}

// Bounds returns the half-open visible range for total items in a window
// of maxVisible rows.
func (w *Window) Bounds(total, maxVisible int) (int, int) {
	if total == 0 || maxVisible <= 0 {
		return 0, 0
	}
	start := w.Offset
	if start > total-1 {
		start = total - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
	}
	return start, end
}
