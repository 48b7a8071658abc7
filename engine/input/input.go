package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State tracks mouse state per frame. A press that never travels past the
// drag threshold counts as a click on release; anything farther is a drag
// (camera pan).
type State struct {
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int

	LeftPressed      bool
	LeftJustPressed  bool
	LeftJustReleased bool

	DragStartX, DragStartY int
	Dragging               bool
	DragThreshold          int

	wasDragging bool
}

func NewState() *State {
	return &State{DragThreshold: 5}
}

// Update should be called once at the top of every frame.
func (s *State) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.LeftPressed = leftDown

	if s.LeftJustPressed {
		s.DragStartX = s.MouseX
		s.DragStartY = s.MouseY
		s.Dragging = false
		s.wasDragging = false
	}
	if leftDown && !s.Dragging {
		dx := s.MouseX - s.DragStartX
		dy := s.MouseY - s.DragStartY
		if dx*dx+dy*dy > s.DragThreshold*s.DragThreshold {
			s.Dragging = true
			s.wasDragging = true
		}
	}
	if !leftDown {
		s.Dragging = false
	}
}

// Clicked reports a completed click: button released this frame without the
// press ever having become a drag.
func (s *State) Clicked() bool {
	return s.LeftJustReleased && !s.wasDragging
}
