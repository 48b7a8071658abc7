package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/BenjaminWootten/Growth-Matrix/engine/audio"
	"github.com/BenjaminWootten/Growth-Matrix/engine/core"
	"github.com/BenjaminWootten/Growth-Matrix/engine/input"
	"github.com/BenjaminWootten/Growth-Matrix/engine/level"
	"github.com/BenjaminWootten/Growth-Matrix/engine/render"
	"github.com/BenjaminWootten/Growth-Matrix/engine/scene"
	"github.com/BenjaminWootten/Growth-Matrix/engine/sim"
	"github.com/BenjaminWootten/Growth-Matrix/engine/ui"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	// PanDivisor converts dragged pixels to radians of camera rotation.
	PanDivisor = 500.0
)

var playBG = color.RGBA{22, 22, 34, 255}

// Game implements ebiten.Game and wires the engine together.
type Game struct {
	session  *core.Session
	bus      *core.EventBus
	input    *input.State
	menus    *ui.MenuSystem
	sfx      *audio.Manager
	renderer *render.Renderer
	sim      *sim.Simulator

	levels   []level.Level
	world    *scene.World
	won      bool
	winTimer int
	quit     bool
}

// winBannerFrames holds the completed level on screen before returning to
// level select.
const winBannerFrames = 90

func NewGame() *Game {
	levels := level.BuiltIn()
	g := &Game{
		session:  core.NewSession(len(levels)),
		bus:      core.NewEventBus(),
		input:    input.NewState(),
		menus:    ui.NewMenuSystem(ScreenWidth, ScreenHeight),
		sfx:      audio.NewManager(),
		renderer: render.NewRenderer(ScreenWidth, ScreenHeight),
		levels:   levels,
	}
	g.sim = sim.New(g.bus)

	g.menus.OnStartLevel = g.startLevel
	g.menus.OnResetLevel = func() { g.startLevel(g.session.CurrentLevel) }
	g.menus.OnQuitToMenu = func() { g.world = nil }
	g.menus.OnExitGame = func() { g.quit = true }
	g.menus.OnClickSound = g.sfx.PlayClick

	g.bus.On(core.EvtBoxSelected, func(core.Event) { g.sfx.PlaySelect() })
	g.bus.On(core.EvtBoxPushed, func(core.Event) { g.sfx.PlayPush() })
	g.bus.On(core.EvtLevelWon, func(core.Event) {
		g.sfx.PlayWin()
		g.session.Complete()
		g.refreshLevelList()
	})

	g.refreshLevelList()
	g.sfx.Start()
	return g
}

func (g *Game) refreshLevelList() {
	infos := make([]ui.LevelInfo, len(g.levels))
	for i, l := range g.levels {
		infos[i] = ui.LevelInfo{Name: l.Name, Completed: g.session.IsCompleted(i)}
	}
	g.menus.Levels = infos
}

func (g *Game) startLevel(i int) {
	w, err := level.Build(g.levels[i])
	if err != nil {
		log.Printf("level %d (%s): %v", i, g.levels[i].Name, err)
		g.menus.State = ui.StateLevelSelect
		return
	}
	g.session.CurrentLevel = i
	g.world = w
	g.won = false
	g.winTimer = 0
	g.menus.CurrentLevel = g.levels[i].Name
	g.bus.Emit(core.Event{Type: core.EvtLevelStart, Payload: i})
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.input.Update()

	if g.menus.State != ui.StatePlaying || g.world == nil {
		g.menus.Update(1.0 / 60.0)
		g.bus.Dispatch()
		return nil
	}

	if g.won {
		g.winTimer--
		if g.winTimer <= 0 {
			g.world = nil
			g.menus.State = ui.StateLevelSelect
		}
		g.bus.Dispatch()
		return nil
	}

	// Camera pan by drag.
	g.world.Panning = g.input.Dragging
	if g.input.Dragging {
		g.world.Angle.Y -= float64(g.input.MouseDX) / PanDivisor
		g.world.Angle.X += float64(g.input.MouseDY) / PanDivisor
		g.world.ClickX = g.input.MouseX
		g.world.ClickY = g.input.MouseY
	}

	// A clean click either hits a HUD button or selects a box.
	if g.input.Clicked() {
		if g.menus.HandleHUDClick(g.input.MouseX, g.input.MouseY) {
			// A HUD button may have torn the level down.
			g.bus.Dispatch()
			return nil
		}
		b := render.HitTest(g.world, float64(g.input.MouseX), float64(g.input.MouseY))
		g.sim.Click(g.world, b)
	}

	g.sim.Step(g.world)
	if !g.won && level.CheckWin(g.world) {
		g.won = true
		g.winTimer = winBannerFrames
		g.bus.Emit(core.Event{Type: core.EvtLevelWon, Payload: g.session.CurrentLevel})
	}
	g.bus.Dispatch()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.menus.State == ui.StatePlaying && g.world != nil {
		screen.Fill(playBG)
		g.renderer.Draw(screen, g.world)
		g.menus.DrawHUD(screen)
		if g.won {
			g.menus.DrawWinBanner(screen)
		}
		return
	}
	g.menus.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Growth Matrix")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
