package ui

// TextItem is a list row with a title and an optional subtitle.
type TextItem struct {
	Title    string
	Subtitle string
	Height   int
	// Value carries whatever the owner needs back when the row is chosen.
	Value any
}

func (t *TextItem) ListItemHeight() int {
	if t.Height > 0 {
		return t.Height
	}
	return ListItemH
}

func (t *TextItem) DrawListItemContent(dst Surface, x, y, width int, selected bool) {
	titleColor, subColor := ColorText, ColorTextSecondary
	if selected {
		titleColor, subColor = ColorBackground, ColorSurface
	}
	tx := float64(x + ListTextPadX)
	ty := float64(y) + 8
	dst.DrawText(t.Title, tx, ty, FontSizeBody, titleColor)
	if t.Subtitle != "" {
		dst.DrawText(t.Subtitle, tx, ty+FontSizeBody+6, FontSizeCaption, subColor)
	}
}

// SpacerItem is an empty row.
type SpacerItem struct {
	Height int
}

func (s SpacerItem) ListItemHeight() int {
	return s.Height
}

func (SpacerItem) DrawListItemContent(Surface, int, int, int, bool) {}
