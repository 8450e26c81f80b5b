package game

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/rings-and-easings/internal/chime"
	"github.com/iburimskiy/rings-and-easings/internal/config"
	"github.com/iburimskiy/rings-and-easings/internal/gui"
	"github.com/iburimskiy/rings-and-easings/internal/rings"
)

type Game struct {
	params config.Params
	anim   *rings.Animator
	ui     *gui.Context
	input  gui.Input
	chime  *chime.Chime

	infoLog  *log.Logger
	errorLog *log.Logger
	lastErr  error
}

// New builds the game with randomized startup parameters. sound may be nil.
func New(rng *rand.Rand, sound *chime.Chime, infoLog, errorLog *log.Logger) *Game {
	g := &Game{
		params:   config.Defaults(rng),
		ui:       gui.NewContext(),
		chime:    sound,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
	g.anim = rings.New(&g.params)
	g.anim.OnFlip = g.onFlip
	g.infoLog.Printf("startup hue=%.0f step=%.0f timer=%s expand=%s contract=%s",
		g.params.Hue, g.params.Step, g.params.TimerEasing, g.params.ExpandEasing, g.params.ContractEasing)
	return g
}

func (g *Game) Update() error {
	gui.PollInput(&g.input)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}

	g.ui.Begin(g.input)
	g.updatePanel()

	g.anim.Advance(1/float64(ebiten.TPS()), &g.params)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)

	g.drawRings(screen)
	g.ui.Draw(screen)
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) togglePause() {
	g.params.Paused = !g.params.Paused
	g.chime.SetPaused(g.params.Paused)
}

func (g *Game) reset() {
	g.anim.ResetAll(&g.params)
	g.infoLog.Print("rings reset")
}

func (g *Game) onFlip(i int, phase rings.Phase) {
	if !g.params.Sound || phase != rings.Expanding || !g.params.Visible(i) {
		return
	}
	g.chime.Ring(i)
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.errorLog.Print(err)
}

func (g *Game) status() string {
	s := fmt.Sprintf("FPS:%.0f", ebiten.ActualFPS())
	if g.params.Paused {
		s += " PAUSED"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}
