package cli

import (
	"strconv"
	"strings"

	"github.com/TwiN/go-color"

	"example.com/mastermind/internal/game"
)

// Symbol colors, indexed by symbol value. 0 is the blank; 1..8 follow the
// board peg colors (orange has no ANSI code, cyan stands in).
var symbolColors = []string{
	color.Gray,
	color.Red,
	color.Yellow,
	color.Green,
	color.Blue,
	color.Black,
	color.White,
	color.Cyan,
	color.Purple,
}

// RenderSequence colors each symbol of a guess or revealed solution.
func RenderSequence(s game.Sequence) string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range s {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(color.Ize(colorFor(v), strconv.Itoa(v)))
	}
	b.WriteString("]")
	return b.String()
}

// RenderClue shows the markers in display order: EXACT pegs as colored 2s
// first, then PRESENT pegs as 1s.
func RenderClue(c game.Clue) string {
	var b strings.Builder
	b.WriteString("[")
	for i, m := range c.Markers() {
		if i > 0 {
			b.WriteString(" ")
		}
		switch m {
		case game.MarkerExact:
			b.WriteString(color.Ize(color.Red, "2"))
		case game.MarkerPresent:
			b.WriteString(color.Ize(color.White, "1"))
		}
	}
	b.WriteString("]")
	return b.String()
}

func colorFor(symbol int) string {
	if symbol < 0 || symbol >= len(symbolColors) {
		return color.Reset
	}
	return symbolColors[symbol]
}
