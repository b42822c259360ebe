package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/isoview/internal/camera"
	"github.com/depeter/isoview/internal/constants"
	"github.com/depeter/isoview/internal/scene"
)

// DefaultPlayerSpeed is in world units per second.
const DefaultPlayerSpeed = 4.0

// StageScreen shows the stage through a following, rotating camera, with a
// side panel listing everything on it. With the panel focused the arrows pick
// an entry and Enter points the camera at it; otherwise the arrows walk the
// player.
type StageScreen struct {
	stage *scene.Stage
	cam   *camera.Camera
	list  *List

	playerSpeed float64
	width       int
	height      int
	following   string
}

func NewStageScreen(stage *scene.Stage, opts camera.Options, width, height int) *StageScreen {
	s := &StageScreen{
		stage:       stage,
		cam:         camera.New(stage.Player(), opts),
		list:        NewList(),
		playerSpeed: DefaultPlayerSpeed,
		width:       width,
		height:      height,
	}
	s.cam.SetSceneSize(width, height)
	s.rebuildList()
	if entries := stage.Entries(); len(entries) > 0 {
		s.following = entries[0].Name
	}
	return s
}

// rebuildList lists actors first, then the props after a spacer.
func (s *StageScreen) rebuildList() {
	s.list.Clear()
	var props []ListItem
	for _, e := range s.stage.Entries() {
		title := e.Name
		if title == "" {
			title = e.Kind
		}
		item := &TextItem{Title: title, Subtitle: e.Kind, Value: e}
		if e.Kind == "player" || e.Kind == "npc" {
			s.list.Append(item)
		} else {
			props = append(props, item)
		}
	}
	if len(props) > 0 {
		s.list.Append(SpacerItem{Height: ListSpacerH})
		s.list.Append(props...)
	}
}

func (s *StageScreen) Name() string { return "Stage" }
func (s *StageScreen) OnEnter()     {}
func (s *StageScreen) OnExit()      {}

// SetTuning applies hot-reloaded settings without resetting any state.
func (s *StageScreen) SetTuning(opts camera.Options, gap, margin, focusLength int, playerSpeed float64) {
	s.cam.SetTuning(opts)
	s.list.SetLayout(gap, margin, focusLength)
	if playerSpeed > 0 {
		s.playerSpeed = playerSpeed
	}
}

func (s *StageScreen) Camera() *camera.Camera { return s.cam }
func (s *StageScreen) List() *List            { return s.list }

// Following is the name of the entity the camera is tracking.
func (s *StageScreen) Following() string { return s.following }

func (s *StageScreen) Update(step int, in Input) (*ScreenTransition, error) {
	if in.ToggleList {
		s.list.SetFocused(!s.list.Focused())
	}
	if in.Clicked {
		s.handleClick(in.CursorX, in.CursorY)
	}

	if s.list.Focused() {
		switch in.Nav {
		case DirUp:
			s.moveSelection(false)
		case DirDown:
			s.moveSelection(true)
		}
		if in.Enter {
			s.followSelected()
		}
	} else {
		dx, dy := in.MoveVector()
		dist := s.playerSpeed * float64(step) / constants.StepsPerSecond
		s.stage.MovePlayer(s.cam.Snapshot(), dx, dy, dist)
	}

	if in.Back {
		s.list.SetFocused(false)
		s.cam.SetTarget(s.stage.Player())
		s.following = s.playerName()
	}

	s.stage.Update(step)
	s.cam.Update(step, camera.Input{RotateLeft: in.RotateLeft, RotateRight: in.RotateRight})
	s.list.Update(step)
	return nil, nil
}

// moveSelection steps the selection, passing over spacer rows. It stays put
// when only spacers lie ahead.
func (s *StageScreen) moveSelection(next bool) {
	start := s.list.SelectedIndex()
	for {
		var moved bool
		if next {
			moved = s.list.SelectNextItem()
		} else {
			moved = s.list.SelectPreviousItem()
		}
		if !moved {
			s.list.SetSelectedIndex(start)
			return
		}
		if item, _ := s.list.SelectedItem(); !isSpacer(item) {
			return
		}
	}
}

func isSpacer(item ListItem) bool {
	_, ok := item.(SpacerItem)
	return ok
}

func (s *StageScreen) followSelected() {
	item, ok := s.list.SelectedItem()
	if !ok {
		return
	}
	ti, ok := item.(*TextItem)
	if !ok {
		return
	}
	entry, ok := ti.Value.(scene.Entry)
	if !ok {
		return
	}
	s.cam.SetTarget(s.stage.Follow(entry.Entity))
	s.following = entry.Name
}

func (s *StageScreen) playerName() string {
	if entries := s.stage.Entries(); len(entries) > 0 {
		return entries[0].Name
	}
	return ""
}

// handleClick selects and follows the row under the cursor.
func (s *StageScreen) handleClick(mx, my int) {
	x, y, w, h := s.listRect()
	if !PointInRect(mx, my, float64(x), float64(y), float64(w), float64(h)) {
		return
	}
	i := s.list.ItemAt(my - y)
	if i < 0 || isSpacer(s.list.Item(i)) {
		return
	}
	s.list.SetSelectedIndex(i)
	s.list.SetFocused(true)
	s.followSelected()
}

// listRect is the list viewport inside the side panel, below its title.
func (s *StageScreen) listRect() (x, y, w, h int) {
	x = s.width - PanelWidth - PanelMargin
	y = PanelMargin + PanelTitleH
	w = PanelWidth
	h = s.height - 2*PanelMargin - PanelTitleH
	return x, y, w, h
}

func (s *StageScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)

	view := s.cam.Snapshot()
	s.stage.Draw(dst, view)
	for _, m := range s.stage.Markers(view) {
		clr := ColorTextSecondary
		switch {
		case m.Text == s.following:
			clr = ColorForeground
		case m.Player:
			clr = ColorPlayer
		case m.NPC:
			clr = ColorNPC
		}
		DrawTextCentered(dst, m.Text, m.At.X, m.At.Y, FontSizeCaption, clr)
	}

	x, y, w, h := s.listRect()
	vector.DrawFilledRect(dst, float32(x), float32(y-PanelTitleH), float32(w), float32(h+PanelTitleH), ColorSurface, false)
	DrawText(dst, "On stage", float64(x+ListTextPadX), float64(y-PanelTitleH+10), FontSizeHeading, ColorText)
	s.list.Draw(NewImageSurface(dst), x, y, w, h)
}

func (s *StageScreen) DebugLines() []string {
	rot := s.cam.Rotation()
	c := s.cam.Center()
	sc := s.list.ScrollPosition()
	return []string{
		fmt.Sprintf("camera  center (%.3f, %.3f)  zoom %.1f", c.X, c.Y, s.cam.Zoom()),
		fmt.Sprintf("rotation  turn %d (from %d)  angle %.3f", rot.Turn(), rot.PreviousTurn(), rot.Angle()),
		fmt.Sprintf("rotation  transitioning %v  %d/%d", rot.Transitioning(), rot.Elapsed(), rot.Duration()),
		fmt.Sprintf("list  scroll %.2f -> %.2f  focus %.2f", sc.Current, sc.Preferred, s.list.FocusRatio()),
		fmt.Sprintf("list  selected %d of %d", s.list.SelectedIndex(), s.list.Len()),
		fmt.Sprintf("following  %s", s.following),
	}
}
