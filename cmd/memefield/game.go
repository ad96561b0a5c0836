package main

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/memefield/internal/field"
	"github.com/vancomm/memefield/internal/render/term"
)

var origin = image.Pt(1, 1)

type game struct {
	screen  tcell.Screen
	surface *term.Surface
	field   *field.Field
	nMines  int
	rnd     *rand.Rand
	buttons tcell.ButtonMask
}

func newGame(screen tcell.Screen, nMines int, rnd *rand.Rand) (*game, error) {
	f, err := field.New(nMines, rnd)
	if err != nil {
		return nil, err
	}
	return &game{
		screen:  screen,
		surface: term.New(screen, origin),
		field:   f,
		nMines:  nMines,
		rnd:     rnd,
	}, nil
}

func (g *game) restart() {
	g.field = field.MustNew(g.nMines, g.rnd)
	field.Log.Debug("new field")
}

// handleEvent applies ev and reports whether the game should keep running.
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
			g.restart()
		}

	case *tcell.EventMouse:
		// only the press counts, not the drag or the release
		buttons := ev.Buttons()
		pressed := buttons &^ g.buttons
		g.buttons = buttons

		screenPos := g.surface.CellToScreen(ev.Position())
		if !g.field.Contains(screenPos) {
			return true
		}
		switch {
		case pressed&tcell.ButtonPrimary != 0:
			g.field.OnRevealClick(screenPos)
		case pressed&tcell.ButtonSecondary != 0:
			g.field.OnFlagClick(screenPos)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	g.draw()
	return true
}

func (g *game) status() string {
	return fmt.Sprintf("mines %d  flags %d  revealed %d/%d",
		g.field.MineCount(), g.field.Flagged(), g.field.Revealed(), field.Width*field.Height)
}

const help = "left: reveal  right: flag  n: new  q: quit"

func (g *game) drawText(x, y int, text string) {
	for _, r := range text {
		g.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}

func (g *game) draw() {
	g.screen.Clear()
	g.field.Draw(g.surface)
	g.drawText(origin.X, origin.Y+field.Height+1, g.status())
	g.drawText(origin.X, origin.Y+field.Height+2, help)
	g.screen.Show()
}

func (g *game) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	g.draw()
	for ev := range events {
		if !g.handleEvent(ev) {
			return
		}
	}
}
