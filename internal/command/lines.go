package command

import (
	"iter"
	"strings"
)

// Lines yields the newline-separated pieces of s with their index.
func Lines(s string) iter.Seq2[int, string] {
	return byPiece(s, "\n")
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
