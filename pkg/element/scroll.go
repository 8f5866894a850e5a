package element

// ScrollState is the persistent scroll position of a scrollable widget.
// Max bounds are written by the layout solver after each pass; offsets are
// clamped against them.
type ScrollState struct {
	OffsetX float64
	OffsetY float64
	MaxX    float64
	MaxY    float64
}

// ScrollBy moves the offset by a delta, clamped to [0, max].
func (s *ScrollState) ScrollBy(dx, dy float64) {
	s.ScrollTo(s.OffsetX+dx, s.OffsetY+dy)
}

// ScrollTo moves the offset to an absolute position, clamped to [0, max].
func (s *ScrollState) ScrollTo(x, y float64) {
	s.OffsetX = clamp(x, 0, s.MaxX)
	s.OffsetY = clamp(y, 0, s.MaxY)
}

// SetBounds records the maximum scrollable extent and re-clamps the offset.
func (s *ScrollState) SetBounds(maxX, maxY float64) {
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	s.MaxX = maxX
	s.MaxY = maxY
	s.ScrollTo(s.OffsetX, s.OffsetY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
