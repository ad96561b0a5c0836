package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/memefield/internal/field"
)

func main() {
	var (
		nMines  int
		seed    uint64
		logPath string
	)
	flag.IntVar(&nMines, "mines", 40, fmt.Sprintf("number of mines, 1 to %d", field.Width*field.Height-1))
	flag.Uint64Var(&seed, "seed", 0, "board seed, random when 0")
	flag.StringVar(&logPath, "log", "", "write debug logs to this file")
	flag.Parse()

	// the screen owns stderr while the game runs
	field.Log.SetOutput(io.Discard)
	if logPath != "" {
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		field.Log.SetOutput(file)
		field.Log.SetLevel(logrus.DebugLevel)
	}

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	field.Log.WithField("seed", seed).Debug("starting")
	rnd := rand.New(rand.NewPCG(seed, seed))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	g, err := newGame(screen, nMines, rnd)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	g.run()
	screen.Fini()
}
