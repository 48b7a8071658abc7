package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// GameState represents the current UI state
type GameState int

const (
	StateMainMenu GameState = iota
	StateInstructions
	StateLevelSelect
	StatePlaying
)

// LevelInfo is what the menus need to know about a level.
type LevelInfo struct {
	Name      string
	Completed bool
}

// MenuButton represents a clickable menu button
type MenuButton struct {
	X, Y, W, H int
	Text       string
	Hovered    bool
}

// MenuSystem manages the menu shell around the game: main menu,
// instructions, level select, and the in-game HUD.
type MenuSystem struct {
	State   GameState
	ScreenW int
	ScreenH int
	Tick    float64

	// Levels is refreshed by the owner whenever completion flags change.
	Levels []LevelInfo
	// CurrentLevel names the level shown in the HUD while playing.
	CurrentLevel string

	// Internal
	hoverIdx int

	// Callbacks
	OnStartLevel func(index int)
	OnResetLevel func()
	OnQuitToMenu func()
	OnExitGame   func()
	OnClickSound func()
}

var (
	menuBG      = color.RGBA{14, 12, 24, 255}
	menuPanel   = color.RGBA{24, 20, 40, 230}
	menuBorder  = color.RGBA{120, 80, 200, 255}
	menuAccent  = color.RGBA{190, 120, 255, 255}
	menuBtnNorm = color.RGBA{40, 32, 64, 240}
	menuBtnHov  = color.RGBA{64, 48, 104, 255}
	menuText    = color.RGBA{225, 215, 250, 255}
	menuGreen   = color.RGBA{70, 190, 90, 255}
)

var titleFace = basicfont.Face7x13

func NewMenuSystem(screenW, screenH int) *MenuSystem {
	return &MenuSystem{
		State:    StateMainMenu,
		ScreenW:  screenW,
		ScreenH:  screenH,
		hoverIdx: -1,
	}
}

func (m *MenuSystem) Update(dt float64) {
	m.Tick += dt
	mx, my := ebiten.CursorPosition()

	switch m.State {
	case StateMainMenu:
		m.updateMainMenu(mx, my)
	case StateInstructions:
		m.updateInstructions(mx, my)
	case StateLevelSelect:
		m.updateLevelSelect(mx, my)
	}
}

func (m *MenuSystem) Draw(screen *ebiten.Image) {
	switch m.State {
	case StateMainMenu:
		m.drawMainMenu(screen)
	case StateInstructions:
		m.drawInstructions(screen)
	case StateLevelSelect:
		m.drawLevelSelect(screen)
	}
}

func (m *MenuSystem) click() {
	if m.OnClickSound != nil {
		m.OnClickSound()
	}
}

// ==================== MAIN MENU ====================

func (m *MenuSystem) mainMenuButtons() []MenuButton {
	cx := m.ScreenW / 2
	startY := m.ScreenH/2 - 30
	bw, bh, gap := 240, 40, 10
	names := []string{"PLAY", "INSTRUCTIONS", "EXIT"}
	buttons := make([]MenuButton, len(names))
	for i, name := range names {
		buttons[i] = MenuButton{
			X: cx - bw/2, Y: startY + i*(bh+gap),
			W: bw, H: bh, Text: name,
		}
	}
	return buttons
}

func (m *MenuSystem) updateMainMenu(mx, my int) {
	buttons := m.mainMenuButtons()
	m.hoverIdx = -1
	for i, b := range buttons {
		if m.clickInRect(mx, my, b.X, b.Y, b.W, b.H) {
			m.hoverIdx = i
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.hoverIdx >= 0 {
		m.click()
		switch m.hoverIdx {
		case 0: // PLAY
			m.State = StateLevelSelect
		case 1: // INSTRUCTIONS
			m.State = StateInstructions
		case 2: // EXIT
			if m.OnExitGame != nil {
				m.OnExitGame()
			}
		}
	}
}

func (m *MenuSystem) drawMainMenu(screen *ebiten.Image) {
	screen.Fill(menuBG)
	m.drawAnimatedBG(screen)
	m.drawTitle(screen, "GROWTH MATRIX")

	buttons := m.mainMenuButtons()
	for i, b := range buttons {
		m.drawMenuButton(screen, b, i == m.hoverIdx)
	}

	ebitenutil.DebugPrintAt(screen, "Growth Matrix v1.0", 10, m.ScreenH-20)
}

func (m *MenuSystem) drawTitle(screen *ebiten.Image, title string) {
	cx := m.ScreenW / 2
	tw := len(title) * titleFace.Advance

	pulse := 0.7 + 0.3*math.Sin(m.Tick*2)
	glowAlpha := uint8(40 * pulse)
	drawRoundedRect(screen, float32(cx-tw/2-24), 60, float32(tw+48), 56, 8,
		color.RGBA{110, 60, 190, glowAlpha})

	text.Draw(screen, title, titleFace, cx-tw/2, 94, menuText)
	lineY := float32(104)
	vector.DrawFilledRect(screen, float32(cx-tw/2), lineY, float32(tw), 2, menuAccent, false)
}

func (m *MenuSystem) drawAnimatedBG(screen *ebiten.Image) {
	// Slow-moving grid, a nod to the play field.
	t := m.Tick
	gridAlpha := uint8(18)
	for i := 0; i < 20; i++ {
		x := float32(math.Mod(float64(i)*70+t*12, float64(m.ScreenW)))
		vector.StrokeLine(screen, x, 0, x, float32(m.ScreenH), 1, color.RGBA{90, 60, 160, gridAlpha}, false)
	}
	for i := 0; i < 12; i++ {
		y := float32(math.Mod(float64(i)*65+t*9, float64(m.ScreenH)))
		vector.StrokeLine(screen, 0, y, float32(m.ScreenW), y, 1, color.RGBA{90, 60, 160, gridAlpha}, false)
	}
}

// ==================== INSTRUCTIONS ====================

func (m *MenuSystem) updateInstructions(mx, my int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.State = StateMainMenu
		return
	}
	btnW, btnH := 200, 40
	btnX := m.ScreenW/2 - btnW/2
	btnY := m.ScreenH - 90
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		m.clickInRect(mx, my, btnX, btnY, btnW, btnH) {
		m.click()
		m.State = StateMainMenu
	}
}

func (m *MenuSystem) drawInstructions(screen *ebiten.Image) {
	screen.Fill(menuBG)
	m.drawAnimatedBG(screen)
	m.drawTitle(screen, "INSTRUCTIONS")

	cx := m.ScreenW / 2
	panelW, panelH := 480, 300
	px := float32(cx - panelW/2)
	py := float32(140)
	drawRoundedRect(screen, px, py, float32(panelW), float32(panelH), 10, menuPanel)
	drawRoundedRectStroke(screen, px, py, float32(panelW), float32(panelH), 10, menuBorder)

	lines := []string{
		"Drag anywhere to rotate the view.",
		"",
		"Click a RED box to make it grow.",
		"A growing box shoves BLUE boxes along the grid,",
		"one whole cell at a time.",
		"",
		"WHITE boxes never move and stop growth dead.",
		"",
		"Land a blue box on every GREEN target to win.",
		"Filled targets lock in place and turn purple.",
		"",
		"Only one box grows at a time - clicking another",
		"red box shrinks the old one back down.",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(px)+24, int(py)+20+i*18)
	}

	m.drawBigButton(screen, cx-100, m.ScreenH-90, 200, 40, "BACK", menuBtnNorm)
}

// ==================== LEVEL SELECT ====================

func (m *MenuSystem) levelButtons() []MenuButton {
	cols := 4
	bw, bh, gap := 120, 60, 16
	gridW := cols*bw + (cols-1)*gap
	startX := m.ScreenW/2 - gridW/2
	startY := 160
	buttons := make([]MenuButton, len(m.Levels))
	for i := range m.Levels {
		col, row := i%cols, i/cols
		buttons[i] = MenuButton{
			X: startX + col*(bw+gap), Y: startY + row*(bh+gap),
			W: bw, H: bh, Text: fmt.Sprintf("%d", i+1),
		}
	}
	return buttons
}

func (m *MenuSystem) updateLevelSelect(mx, my int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.State = StateMainMenu
		return
	}
	buttons := m.levelButtons()
	m.hoverIdx = -1
	for i, b := range buttons {
		if m.clickInRect(mx, my, b.X, b.Y, b.W, b.H) {
			m.hoverIdx = i
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if m.hoverIdx >= 0 {
			m.click()
			if m.OnStartLevel != nil {
				m.OnStartLevel(m.hoverIdx)
			}
			m.State = StatePlaying
			return
		}
		btnW, btnH := 200, 36
		if m.clickInRect(mx, my, m.ScreenW/2-btnW/2, m.ScreenH-70, btnW, btnH) {
			m.click()
			m.State = StateMainMenu
		}
	}
}

func (m *MenuSystem) drawLevelSelect(screen *ebiten.Image) {
	screen.Fill(menuBG)
	m.drawAnimatedBG(screen)
	m.drawTitle(screen, "SELECT LEVEL")

	buttons := m.levelButtons()
	for i, b := range buttons {
		m.drawMenuButton(screen, b, i == m.hoverIdx)
		name := m.Levels[i].Name
		ebitenutil.DebugPrintAt(screen, name, b.X+b.W/2-len(name)*3, b.Y+b.H-18)
		if m.Levels[i].Completed {
			drawRoundedRectStroke(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 6, menuGreen)
			ebitenutil.DebugPrintAt(screen, "*", b.X+b.W-14, b.Y+4)
		}
	}

	m.drawBigButton(screen, m.ScreenW/2-100, m.ScreenH-70, 200, 36, "BACK", menuBtnNorm)
}

// ==================== IN-GAME HUD ====================

func (m *MenuSystem) hudButtons() []MenuButton {
	return []MenuButton{
		{X: 10, Y: 10, W: 90, H: 28, Text: "MENU"},
		{X: 110, Y: 10, W: 90, H: 28, Text: "RESET"},
	}
}

// HandleHUDClick processes a click at (mx, my) while playing. It reports
// whether a HUD button consumed the click, so the caller can skip box
// selection.
func (m *MenuSystem) HandleHUDClick(mx, my int) bool {
	for i, b := range m.hudButtons() {
		if m.clickInRect(mx, my, b.X, b.Y, b.W, b.H) {
			m.click()
			switch i {
			case 0:
				m.State = StateLevelSelect
				if m.OnQuitToMenu != nil {
					m.OnQuitToMenu()
				}
			case 1:
				if m.OnResetLevel != nil {
					m.OnResetLevel()
				}
			}
			return true
		}
	}
	return false
}

// DrawWinBanner renders the level-complete overlay on top of the play view.
func (m *MenuSystem) DrawWinBanner(screen *ebiten.Image) {
	cx, cy := m.ScreenW/2, m.ScreenH/2
	bw, bh := 360, 90
	px, py := float32(cx-bw/2), float32(cy-bh/2)
	drawRoundedRect(screen, px, py, float32(bw), float32(bh), 10, menuPanel)
	drawRoundedRectStroke(screen, px, py, float32(bw), float32(bh), 10, menuGreen)

	title := "LEVEL COMPLETE"
	tw := len(title) * titleFace.Advance
	text.Draw(screen, title, titleFace, cx-tw/2, cy-4, menuText)
	sub := m.CurrentLevel
	ebitenutil.DebugPrintAt(screen, sub, cx-len(sub)*3, cy+10)
}

// DrawHUD renders the overlay while playing.
func (m *MenuSystem) DrawHUD(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	for _, b := range m.hudButtons() {
		m.drawMenuButton(screen, b, m.clickInRect(mx, my, b.X, b.Y, b.W, b.H))
	}
	label := m.CurrentLevel
	ebitenutil.DebugPrintAt(screen, label, m.ScreenW-len(label)*6-16, 16)
}

// ==================== DRAWING HELPERS ====================

func (m *MenuSystem) drawMenuButton(screen *ebiten.Image, b MenuButton, hovered bool) {
	clr := menuBtnNorm
	if hovered {
		clr = menuBtnHov
	}
	drawRoundedRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 6, clr)

	borderClr := color.RGBA{70, 50, 120, 200}
	if hovered {
		borderClr = menuAccent
	}
	drawRoundedRectStroke(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 6, borderClr)

	tx := b.X + b.W/2 - len(b.Text)*3
	ty := b.Y + b.H/2 - 6
	ebitenutil.DebugPrintAt(screen, b.Text, tx, ty)
}

func (m *MenuSystem) drawBigButton(screen *ebiten.Image, x, y, w, h int, label string, clr color.RGBA) {
	mx, my := ebiten.CursorPosition()
	hovered := m.clickInRect(mx, my, x, y, w, h)
	if hovered {
		clr = menuBtnHov
	}
	drawRoundedRect(screen, float32(x), float32(y), float32(w), float32(h), 6, clr)

	borderClr := color.RGBA{70, 50, 120, 200}
	if hovered {
		borderClr = menuAccent
	}
	drawRoundedRectStroke(screen, float32(x), float32(y), float32(w), float32(h), 6, borderClr)

	ebitenutil.DebugPrintAt(screen, label, x+w/2-len(label)*3, y+h/2-6)
}

func drawRoundedRect(screen *ebiten.Image, x, y, w, h, r float32, clr color.RGBA) {
	vector.DrawFilledRect(screen, x+r, y, w-2*r, h, clr, false)
	vector.DrawFilledRect(screen, x, y+r, w, h-2*r, clr, false)
	vector.DrawFilledCircle(screen, x+r, y+r, r, clr, false)
	vector.DrawFilledCircle(screen, x+w-r, y+r, r, clr, false)
	vector.DrawFilledCircle(screen, x+r, y+h-r, r, clr, false)
	vector.DrawFilledCircle(screen, x+w-r, y+h-r, r, clr, false)
}

// drawRoundedRectStroke keeps square corners; at 1px the difference is not
// visible against the filled rounded body.
func drawRoundedRectStroke(screen *ebiten.Image, x, y, w, h, _ float32, clr color.RGBA) {
	vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
}

func (m *MenuSystem) clickInRect(mx, my, x, y, w, h int) bool {
	return mx >= x && mx < x+w && my >= y && my < y+h
}
