// Package format renders puzzle data structures as human-readable text,
// grounded on this repository's board/bitboard ASCII-rendering conventions.
package format

import (
	"fmt"
	"strings"

	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/verifier"
)

// FormatCode renders a code as "△=t □=s ○=c".
func FormatCode(c codeset.Code) string {
	t, s, circ := c.Digits()
	return fmt.Sprintf("△=%d □=%d ○=%d", t, s, circ)
}

// FormatVerifier renders a verifier's description and its numbered options.
func FormatVerifier(number int, v verifier.Verifier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s\n", number, v.Description)
	for i, opt := range v.Options {
		fmt.Fprintf(&b, "   %c) %s\n", 'a'+i, opt.Description)
	}
	return b.String()
}

// FormatCandidateTable renders a debugging view of a CandidateTable: one
// line per row with its implied code.
func FormatCandidateTable(table *puzzle.CandidateTable) string {
	var b strings.Builder
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		fmt.Fprintf(&b, "%4d  %s\n", i, FormatCode(row.Code))
	}
	return b.String()
}

// FormatBoard renders the full 125-code universe as five 5x5 ○-slices, one
// per circle digit, each slice a triangle-by-square grid -- the 5x5x5
// analogue of this repository's 8x8 ASCII bitboard rendering.
func FormatBoard(contains func(codeset.Code) bool) string {
	var b strings.Builder
	for circ := 1; circ <= 5; circ++ {
		fmt.Fprintf(&b, "○=%d\n", circ)
		for square := 5; square >= 1; square-- {
			fmt.Fprintf(&b, "%d  ", square)
			for triangle := 1; triangle <= 5; triangle++ {
				code, _ := codeset.FromDigits(triangle, square, circ)
				symbol := '.'
				if contains(code) {
					symbol = '#'
				}
				b.WriteRune(symbol)
				b.WriteString("  ")
			}
			b.WriteByte('\n')
		}
		b.WriteString("   1  2  3  4  5\n\n")
	}
	return b.String()
}

// FormatCandidateSet renders the board-grid view of s's remaining codes.
func FormatCandidateSet(s puzzle.CandidateSet) string {
	codes := s.Codes()
	return FormatBoard(codes.Contains)
}
