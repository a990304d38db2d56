// Package puzzle builds the candidate-solution table for a chosen set of
// verifiers and prunes it as guesses are checked against the oracle.
package puzzle

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/verifier"
)

// MinVerifiers and MaxVerifiers bound the number of verifiers a Game may use,
// matching the physical booklet's 4..6 card slots.
const (
	MinVerifiers = 4
	MaxVerifiers = 6
)

// Assignment is a packed choice of one option per verifier in a Game: a
// uint64 with one verifier.OptionBits-wide field per verifier slot, each
// field holding a single set bit at the chosen option's index.
type Assignment uint64

// newAssignment packs one option index per verifier (choices[i] is the
// option chosen for verifier i) into a single Assignment.
func newAssignment(choices []int) Assignment {
	var a uint64
	for i, choice := range choices {
		a |= uint64(1) << uint(verifier.OptionBits*i+choice)
	}
	return Assignment(a)
}

// Choice returns the option index chosen for verifier i.
func (a Assignment) Choice(i int) int {
	field := (uint64(a) >> uint(verifier.OptionBits*i)) & (uint64(1)<<verifier.OptionBits - 1)
	return bits.TrailingZeros64(field)
}

// CandidateRow is one entry of a CandidateTable: an Assignment together with
// the single code it implies.
type CandidateRow struct {
	Assignment Assignment
	Code       codeset.Code
}

// CandidateTable is the ordered, immutable list of Assignments that
// constitute possible puzzle solutions for a Game.
type CandidateTable struct {
	rows []CandidateRow
}

// Len returns the number of rows in the table.
func (t *CandidateTable) Len() int { return len(t.rows) }

// Row returns the row at index i (0-based).
func (t *CandidateTable) Row(i int) CandidateRow { return t.rows[i] }

// Game is an ordered, immutable list of verifiers chosen for one puzzle,
// together with its precomputed CandidateTable and deduplicated guess list.
type Game struct {
	Verifiers []verifier.Verifier
	table     *CandidateTable
	guesses   []codeset.Code
}

// NewGame builds a Game from the one-based verifier numbers, in order.
// It eagerly builds the CandidateTable and the deduplicated guess-candidate
// list; both are immutable for the lifetime of the Game.
func NewGame(numbers []int) (*Game, error) {
	if len(numbers) < MinVerifiers || len(numbers) > MaxVerifiers {
		return nil, fmt.Errorf("puzzle: a game needs %d..%d verifiers, got %d", MinVerifiers, MaxVerifiers, len(numbers))
	}

	verifiers := make([]verifier.Verifier, len(numbers))
	for i, n := range numbers {
		v, err := verifier.Get(n)
		if err != nil {
			return nil, errors.Wrapf(err, "puzzle: building game")
		}
		verifiers[i] = v
	}

	table, err := buildCandidateTable(verifiers)
	if err != nil {
		return nil, err
	}

	return &Game{
		Verifiers: verifiers,
		table:     table,
		guesses:   buildGuessCandidates(verifiers),
	}, nil
}

// Table returns the Game's CandidateTable.
func (g *Game) Table() *CandidateTable { return g.table }

// NumVerifiers returns the number of verifiers in this Game.
func (g *Game) NumVerifiers() int { return len(g.Verifiers) }

// GuessCandidates returns the deduplicated list of candidate guess codes:
// one representative per distinct satisfied-options profile, in ascending
// code-index order.
func (g *Game) GuessCandidates() []codeset.Code { return g.guesses }

// buildCandidateTable enumerates the Cartesian product of option choices
// across verifiers (odometer-style carry over option indices) and keeps
// only the Assignments that pin down a unique, non-redundant code.
func buildCandidateTable(verifiers []verifier.Verifier) (*CandidateTable, error) {
	n := len(verifiers)
	counts := make([]int, n)
	for i, v := range verifiers {
		counts[i] = v.NumOptions()
	}

	choices := make([]int, n)
	optionSets := make([]codeset.CodeSet, n)
	var rows []CandidateRow

	for {
		for i := range choices {
			optionSets[i] = verifiers[i].Option(choices[i]).Codes
		}

		full := codeset.All()
		for _, cs := range optionSets {
			full = codeset.Intersect(full, cs)
		}

		if full.Size() == 1 && isNonRedundant(optionSets) {
			code, _ := full.One()
			rows = append(rows, CandidateRow{Assignment: newAssignment(choices), Code: code})
		}

		// Odometer increment: carry from the last verifier slot forward.
		i := n - 1
		for i >= 0 {
			choices[i]++
			if choices[i] < counts[i] {
				break
			}
			choices[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}

	if len(rows) == 0 {
		return nil, ErrNoCandidates
	}
	return &CandidateTable{rows: rows}, nil
}

// isNonRedundant reports whether dropping any single verifier's constraint
// still leaves at least two possible codes -- i.e. no verifier in the
// Assignment is redundant to pinning down the unique solution.
func isNonRedundant(optionSets []codeset.CodeSet) bool {
	for j := range optionSets {
		reduced := codeset.All()
		for i, cs := range optionSets {
			if i == j {
				continue
			}
			reduced = codeset.Intersect(reduced, cs)
		}
		if reduced.Size() < 2 {
			return false
		}
	}
	return true
}

// buildGuessCandidates returns one representative code per distinct
// satisfied-options profile (the concatenation, across verifiers, of the
// bits of every option the code satisfies), in ascending code-index order. Two codes
// sharing a profile induce identical CandidateSet pruning for any
// (verifier, answer) pair, so only one needs to be considered as a guess.
func buildGuessCandidates(verifiers []verifier.Verifier) []codeset.Code {
	seen := make(map[uint64]bool)
	var guesses []codeset.Code

	for code := range codeset.All().Iter() {
		var profile uint64
		for vi, v := range verifiers {
			for oi, opt := range v.Options {
				if opt.Codes.Contains(code) {
					profile |= uint64(1) << uint(verifier.OptionBits*vi+oi)
				}
			}
		}
		if !seen[profile] {
			seen[profile] = true
			guesses = append(guesses, code)
		}
	}
	return guesses
}
