package command

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/memefield/internal/field"
)

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
	}
	for _, test := range testCases {
		var got []string
		for i, p := range byPiece(test.input, test.sep) {
			assert.Equal(t, len(got), i)
			got = append(got, p)
		}
		assert.Equal(t, test.array, got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
		err  error
	}{
		{line: "g", want: Command{Op: Get}},
		{line: "r 10 20", want: Command{Op: Reveal, Pos: image.Pt(10, 20)}},
		{line: "  f   0 -3 ", want: Command{Op: Flag, Pos: image.Pt(0, -3)}},
		{line: "", err: ErrUnknown},
		{line: "o 1 2", err: ErrUnknown},
		{line: "rr 1 2", err: ErrUnknown},
		{line: "r 1", err: ErrNargs},
		{line: "g 1", err: ErrNargs},
		{line: "f x 2", err: ErrNotInt},
		{line: "f 1 y", err: ErrNotInt},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			c, err := Parse(test.line)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, c)
		})
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "g", Command{Op: Get}.String())
	assert.Equal(t, "r 3 4", Command{Op: Reveal, Pos: image.Pt(3, 4)}.String())
}

func newField(t *testing.T) *field.Field {
	t.Helper()
	f, err := field.New(10, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return f
}

func TestExecute(t *testing.T) {
	f := newField(t)

	require.NoError(t, Execute(f, Command{Op: Reveal, Pos: image.Pt(5, 5)}))
	assert.True(t, f.TileAt(image.Pt(0, 0)).IsRevealed())

	require.NoError(t, Execute(f, Command{Op: Flag, Pos: image.Pt(field.TileSize, 0)}))
	assert.True(t, f.TileAt(image.Pt(1, 0)).IsFlagged())

	require.NoError(t, Execute(f, Command{Op: Get}))

	err := Execute(f, Command{Op: Reveal, Pos: image.Pt(-1, 0)})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	err = Execute(f, Command{Op: Flag, Pos: image.Pt(0, field.Height*field.TileSize)})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.ErrorIs(t, Execute(f, Command{Op: 'x'}), ErrUnknown)
}

func TestRun(t *testing.T) {
	f := newField(t)

	line, err := Run(f, "r 0 0\n\nf 16 0\ng\n")
	require.NoError(t, err)
	assert.Zero(t, line)
	assert.Equal(t, 1, f.Revealed())
	assert.Equal(t, 1, f.Flagged())

	line, err = Run(f, "f 32 0\nr 9999 0\nf 48 0")
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 1, line)
	// commands before the failure stay applied, the rest never run
	assert.Equal(t, 2, f.Flagged())
	assert.False(t, f.TileAt(image.Pt(3, 0)).IsFlagged())

	line, err = Run(f, "   ")
	assert.NoError(t, err)
	assert.Zero(t, line)
}

func TestRunLineNumbers(t *testing.T) {
	tests := []struct {
		text string
		line int
	}{
		{"r 9999 0", 0},
		{"\n\nr 9999 0", 2},
		{"  \ng\n\t\nbogus", 3},
		{"r 0 0\r\n\r\nr 9999 0", 2},
	}
	for _, test := range tests {
		line, err := Run(newField(t), test.text)
		assert.Error(t, err, "%q", test.text)
		assert.Equal(t, test.line, line, "%q", test.text)
	}
}
