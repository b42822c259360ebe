package ui

import (
	"image"

	"github.com/depeter/isoview/internal/interp"
)

const (
	ListInitialScroll   = 20
	ListGap             = 20
	ListMargin          = 100
	ListFocusAnimLength = 100 * 5
)

// ListItem is a row of a List. It reports its own height and draws its own
// content; the list only paints the selection background behind it.
type ListItem interface {
	ListItemHeight() int
	DrawListItemContent(dst Surface, x, y, width int, selected bool)
}

// List is a vertically scrolling, selectable list of items. The scroll offset
// eases toward a target that keeps the selected row clear of the viewport
// edges, and the border fades in while the list has focus.
type List struct {
	items    []ListItem
	selected int
	scroll   ScrollState
	focused  bool

	focusStep   int
	focusLength int
	gap         int
	margin      int
}

func NewList(items ...ListItem) *List {
	l := &List{
		items:       append([]ListItem(nil), items...),
		focusLength: ListFocusAnimLength,
		gap:         ListGap,
		margin:      ListMargin,
	}
	l.scroll.Current = ListInitialScroll
	return l
}

// SetLayout overrides the edge gap, the selection margin and the focus
// animation length. Non-positive values keep the current setting, except gap
// which may be zero.
func (l *List) SetLayout(gap, margin, focusLength int) {
	if gap >= 0 {
		l.gap = gap
	}
	if margin > 0 {
		l.margin = margin
	}
	if focusLength > 0 {
		l.focusLength = focusLength
		l.focusStep = min(l.focusStep, focusLength)
	}
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) Item(i int) ListItem {
	return l.items[i]
}

// Items returns a copy of the rows.
func (l *List) Items() []ListItem {
	return append([]ListItem(nil), l.items...)
}

func (l *List) Append(items ...ListItem) {
	l.items = append(l.items, items...)
}

// Insert puts item at index i, shifting later rows down. The selection stays
// on the same item.
func (l *List) Insert(i int, item ListItem) {
	i = max(0, min(i, len(l.items)))
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	if len(l.items) > 1 && i <= l.selected {
		l.selected++
	}
}

// Remove drops the row at index i. It reports false for an out of range
// index.
func (l *List) Remove(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	if i < l.selected || l.selected >= len(l.items) {
		l.selected = max(0, l.selected-1)
	}
	return true
}

func (l *List) Clear() {
	l.items = nil
	l.selected = 0
}

// SelectedItem returns the selected row, or false for an empty list.
func (l *List) SelectedItem() (ListItem, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[l.selected], true
}

// SelectedIndex is meaningless while the list is empty.
func (l *List) SelectedIndex() int {
	return l.selected
}

// SelectNextItem moves the selection down one row. It reports false on the
// last row.
func (l *List) SelectNextItem() bool {
	if l.selected+1 < len(l.items) {
		l.selected++
		return true
	}
	return false
}

// SelectPreviousItem moves the selection up one row. It reports false on the
// first row.
func (l *List) SelectPreviousItem() bool {
	if l.selected > 0 {
		l.selected--
		return true
	}
	return false
}

// SetSelectedIndex selects row i if it exists.
func (l *List) SetSelectedIndex(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.selected = i
	return true
}

func (l *List) ResetSelectedIndex() {
	l.selected = 0
}

func (l *List) Focused() bool {
	return l.focused
}

func (l *List) SetFocused(focused bool) {
	l.focused = focused
}

// FocusRatio is the focus animation progress in [0, 1].
func (l *List) FocusRatio() float64 {
	return interp.Clamp01(float64(l.focusStep) / float64(l.focusLength))
}

// ScrollPosition returns the current and preferred offsets.
func (l *List) ScrollPosition() ScrollState {
	return l.scroll
}

// ContentHeight is the sum of all row heights.
func (l *List) ContentHeight() int {
	total := 0
	for _, item := range l.items {
		total += item.ListItemHeight()
	}
	return total
}

// Update eases the scroll offset and advances the focus animation. A
// non-positive step changes nothing.
func (l *List) Update(step int) {
	if step <= 0 {
		return
	}
	l.scroll.Ease(step)

	if l.focused {
		l.focusStep = min(l.focusStep+step, l.focusLength)
	} else {
		l.focusStep = max(l.focusStep-step, 0)
	}
}

// CalculatePreferredPosition picks the scroll target for a viewport of the
// given height. Draw calls it every frame.
func (l *List) CalculatePreferredPosition(viewportHeight int) {
	if len(l.items) == 0 {
		l.scroll.Preferred = 0
		return
	}

	upperY := 0
	for i := 0; i < l.selected; i++ {
		upperY += l.items[i].ListItemHeight()
	}
	lowerY := upperY + l.items[l.selected].ListItemHeight()

	l.scroll.KeepVisible(float64(upperY), float64(lowerY), float64(viewportHeight),
		float64(l.ContentHeight()), float64(l.margin), float64(l.gap))
}

// Draw renders the visible rows inside (x, y, width, height) and a border
// around them.
func (l *List) Draw(dst Surface, x, y, width, height int) {
	l.CalculatePreferredPosition(height)
	l.drawRows(dst, x, y, width, height)

	border := interp.MustBlend(ColorShadow, ColorForeground, l.FocusRatio())
	dst.StrokeRect(float64(x), float64(y), float64(width), float64(height), ListBorderWidth, border)
}

func (l *List) drawRows(dst Surface, x, y, width, height int) {
	prev := dst.Clip()
	dst.SetClip(image.Rect(x, y, x+width, y+height))
	defer dst.SetClip(prev)

	cumulativeY := -int(l.scroll.Current)
	for i, item := range l.items {
		h := item.ListItemHeight()
		selected := i == l.selected
		if selected {
			dst.FillRect(float64(x), float64(y+cumulativeY), float64(width), float64(h), ColorForeground)
		}
		item.DrawListItemContent(dst, x, y+cumulativeY, width, selected)
		cumulativeY += h
	}
}

// ItemAt returns the index of the row under viewport-relative offset dy, or
// -1 when dy falls outside every row.
func (l *List) ItemAt(dy int) int {
	cumulativeY := -int(l.scroll.Current)
	for i, item := range l.items {
		h := item.ListItemHeight()
		if dy >= cumulativeY && dy < cumulativeY+h {
			return i
		}
		cumulativeY += h
	}
	return -1
}
