// Package search implements the minimax game tree over puzzle states: the
// guesser chooses codes and verifiers to minimize play cost, an adversarial
// oracle chooses check/cross answers to maximize it.
package search

import (
	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/verifier"
)

// MoveKind distinguishes the three move shapes a State can accept.
type MoveKind int

const (
	MoveChooseCode MoveKind = iota
	MoveChooseVerifier
	MoveAnswer
)

func (k MoveKind) String() string {
	switch k {
	case MoveChooseCode:
		return "choose-code"
	case MoveChooseVerifier:
		return "choose-verifier"
	case MoveAnswer:
		return "answer"
	default:
		return "unknown"
	}
}

// Move is one transition applied to a State via Apply. Only the fields
// relevant to Kind are meaningful.
type Move struct {
	Kind     MoveKind
	Code     codeset.Code
	Verifier verifier.ChosenVerifier
	Answer   puzzle.Answer
}
