// Package command parses and executes the text commands clients send to a
// field:
//
//	r x y // reveal click at pixel x:y
//	f x y // flag click at pixel x:y
//	g     // get, changes nothing
package command

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/vancomm/memefield/internal/field"
)

var (
	ErrUnknown     = errors.New("unknown command")
	ErrNargs       = errors.New("invalid number of arguments")
	ErrNotInt      = errors.New("argument must be an int")
	ErrOutOfBounds = errors.New("position outside the field")
)

type Op byte

const (
	Get    Op = 'g'
	Reveal Op = 'r'
	Flag   Op = 'f'
)

// Maps known commands to number of arguments
var opNargs = map[Op]int{
	Get:    0,
	Reveal: 2,
	Flag:   2,
}

type Command struct {
	Op  Op
	Pos image.Point
}

func (c Command) String() string {
	if c.Op == Get {
		return string(c.Op)
	}
	return fmt.Sprintf("%c %d %d", c.Op, c.Pos.X, c.Pos.Y)
}

func parseXY(twoStrings []string) (image.Point, error) {
	x, err := strconv.Atoi(twoStrings[0])
	if err != nil {
		return image.Point{}, fmt.Errorf("%w: x = %q", ErrNotInt, twoStrings[0])
	}
	y, err := strconv.Atoi(twoStrings[1])
	if err != nil {
		return image.Point{}, fmt.Errorf("%w: y = %q", ErrNotInt, twoStrings[1])
	}
	return image.Pt(x, y), nil
}

func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 || len(parts[0]) != 1 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknown, line)
	}
	op := Op(parts[0][0])
	nargs, ok := opNargs[op]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknown, line)
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf("%w: %q wants %d", ErrNargs, parts[0], nargs)
	}
	c := Command{Op: op}
	if nargs == 2 {
		pos, err := parseXY(parts[1:])
		if err != nil {
			return Command{}, err
		}
		c.Pos = pos
	}
	return c, nil
}

// Execute routes c to the field's click handlers. Positions are checked first,
// so a bad click is reported instead of tripping the field's assertion.
func Execute(f *field.Field, c Command) error {
	switch c.Op {
	case Get:
		return nil
	case Reveal, Flag:
		if !f.Contains(c.Pos) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, c.Pos)
		}
		if c.Op == Reveal {
			f.OnRevealClick(c.Pos)
		} else {
			f.OnFlagClick(c.Pos)
		}
		return nil
	}
	return fmt.Errorf("%w: %c", ErrUnknown, c.Op)
}

// Run parses and executes newline-separated commands in order, skipping blank
// lines. It stops at the first failing command and reports its zero-based
// line; commands before it stay applied.
func Run(f *field.Field, text string) (line int, err error) {
	for i, l := range Lines(text) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		c, err := Parse(l)
		if err != nil {
			return i, err
		}
		if err := Execute(f, c); err != nil {
			return i, err
		}
	}
	return 0, nil
}
