package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is one page of the app. Only the top of the ScreenManager stack is
// updated and drawn.
type Screen interface {
	// Update advances the screen by step units with this frame's input.
	// Return a non-nil ScreenTransition to change screens.
	Update(step int, in Input) (*ScreenTransition, error)
	Draw(dst *ebiten.Image)
	// OnEnter is called when the screen becomes active.
	OnEnter()
	// OnExit is called when the screen is removed or covered.
	OnExit()
	// Name returns the screen name for debugging.
	Name() string
}

// DebugInfo is implemented by screens that add lines to the debug overlay.
type DebugInfo interface {
	DebugLines() []string
}

type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
	TransitionReplace
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen // nil for Pop
}

// ScreenManager manages a stack of screens.
type ScreenManager struct {
	stack []Screen
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

func (sm *ScreenManager) Push(s Screen) {
	if top := sm.Current(); top != nil {
		top.OnExit()
	}
	sm.stack = append(sm.stack, s)
	s.OnEnter()
}

func (sm *ScreenManager) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	top.OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if len(sm.stack) > 0 {
		sm.stack[len(sm.stack)-1].OnEnter()
	}
}

func (sm *ScreenManager) Replace(s Screen) {
	if len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack[len(sm.stack)-1] = s
	} else {
		sm.stack = append(sm.stack, s)
	}
	s.OnEnter()
}

// ClearStack exits and removes all screens from the stack.
func (sm *ScreenManager) ClearStack() {
	for len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack = sm.stack[:len(sm.stack)-1]
	}
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) Update(step int, in Input) error {
	s := sm.Current()
	if s == nil {
		return nil
	}

	tr, err := s.Update(step, in)
	if err != nil {
		return err
	}
	if tr != nil {
		switch tr.Type {
		case TransitionPush:
			sm.Push(tr.Screen)
		case TransitionPop:
			sm.Pop()
		case TransitionReplace:
			sm.Replace(tr.Screen)
		}
	}
	return nil
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
}

// DebugLines returns the current screen's debug lines, if it has any.
func (sm *ScreenManager) DebugLines() []string {
	if d, ok := sm.Current().(DebugInfo); ok {
		return d.DebugLines()
	}
	return nil
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}
