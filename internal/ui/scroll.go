package ui

import "math"

const (
	// ScrollEaseBase and ScrollEaseScale tune ScrollState.Ease: one update of
	// ScrollEaseScale step units closes 1/ScrollEaseBase of the gap.
	ScrollEaseBase  = 4
	ScrollEaseScale = 100
)

// ScrollState tracks a vertical scroll offset easing toward a preferred
// offset. Embed it in widgets that scroll.
type ScrollState struct {
	Current   float64
	Preferred float64
}

// Ease moves Current toward Preferred by one update of step units. Smaller
// steps move it less.
func (s *ScrollState) Ease(step int) {
	if step <= 0 {
		return
	}
	s.Current += (s.Preferred - s.Current) / math.Pow(ScrollEaseBase, ScrollEaseScale/float64(step))
}

// Reset puts both offsets at pos.
func (s *ScrollState) Reset(pos float64) {
	s.Current = pos
	s.Preferred = pos
}

// KeepVisible sets Preferred so the span [top, bottom) sits at least margin
// pixels inside a viewport of the given height, measured against the
// current offset, then clamps Preferred to the content bounds widened by gap.
func (s *ScrollState) KeepVisible(top, bottom, viewHeight, contentHeight, margin, gap float64) {
	s.Preferred = s.Current
	if top-s.Current < margin {
		s.Preferred = top - margin
	}
	if bottom-s.Current > viewHeight-margin {
		s.Preferred = bottom + margin - viewHeight
	}
	s.Preferred = math.Max(-gap, math.Min(contentHeight-viewHeight+gap, s.Preferred))
}
