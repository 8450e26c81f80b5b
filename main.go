package main

import (
	"errors"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/rings-and-easings/internal/chime"
	"github.com/iburimskiy/rings-and-easings/internal/config"
	"github.com/iburimskiy/rings-and-easings/internal/game"
)

var (
	infoLog  = log.New(os.Stdout, "INFO: ", log.Lshortfile)
	errorLog = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
)

func main() {
	// A silent chime still works when there is no audio device
	sound, err := chime.New(config.SampleRate)
	if err != nil {
		errorLog.Print(err)
	}

	g := game.New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), sound, infoLog, errorLog)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		errorLog.Fatal(err)
	}
}
