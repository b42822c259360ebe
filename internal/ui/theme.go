package ui

import "image/color"

// Colors: warm dusk palette for the stage and its side panel
var (
	ColorBackground    = color.RGBA{R: 0x14, G: 0x16, B: 0x1C, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1F, B: 0x27, A: 0xFF}
	ColorForeground    = color.RGBA{R: 0xE8, G: 0xC5, B: 0x6A, A: 0xFF} // selection + focused border
	ColorShadow        = color.RGBA{R: 0x3A, G: 0x3E, B: 0x48, A: 0xFF} // unfocused border
	ColorPlayer        = color.RGBA{R: 0x4F, G: 0xB8, B: 0xE8, A: 0xFF}
	ColorNPC           = color.RGBA{R: 0xC8, G: 0x6A, B: 0xE0, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x94, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x64, B: 0x6C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x5A, B: 0x5A, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x6A, G: 0xC8, B: 0x7A, A: 0xFF}
)

// Layout constants
const (
	PanelWidth   = 360
	PanelMargin  = 24
	PanelTitleH  = 40
	ListItemH    = 56
	ListSpacerH  = 16
	ListTextPadX = 16

	ListBorderWidth = 3

	FontSizeTitle   = 24
	FontSizeHeading = 20
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScreenWidth  = 1280
	ScreenHeight = 720
)
