package search

import (
	"math"
	"sync/atomic"

	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/verifier"
)

// nodesVisited counts search tree nodes visited since the last
// ResetNodeCount call. It exists purely to support external benchmarking
// (internal/bench); FindBestMove neither reads nor resets it.
var nodesVisited int64

// NodeCount returns the number of search tree nodes visited since the last
// ResetNodeCount call.
func NodeCount() int64 { return atomic.LoadInt64(&nodesVisited) }

// ResetNodeCount zeroes the node-visit counter.
func ResetNodeCount() { atomic.StoreInt64(&nodesVisited, 0) }

// Score is a monotone encoding of a terminal Cost: lower is better for the
// guesser. Packing both fields into one word keeps comparisons and the
// alpha-beta bounds a single machine-word operation, matching this
// repository's preference for packed, comparison-cheap state over
// structured comparisons.
type Score uint16

const (
	// ScoreNoSolution is the best possible score: it marks a branch where
	// the oracle's answer contradicted every remaining candidate. An
	// optimal adversary never steers into such a branch.
	ScoreNoSolution Score = 0
	// ScoreUselessProbe is the worst possible score: it marks a probe that
	// left the CandidateSet unchanged, carrying no information.
	ScoreUselessProbe Score = math.MaxUint16
)

// terminalScore packs a Cost into its Score encoding.
func terminalScore(cost Cost) Score {
	return Score(256*cost.CodesGuessed + cost.VerifiersChecked)
}

// costFromScore unpacks a Score back into a Cost.
func costFromScore(sc Score) Cost {
	return Cost{CodesGuessed: int(sc) / 256, VerifiersChecked: int(sc) % 256}
}

// search performs fail-hard alpha-beta minimax over the game tree rooted at
// state. The guesser (any phase other than AwaitingAnswer) minimizes Score;
// the oracle (AwaitingAnswer) maximizes it. The returned bool is false only
// when state is already solved -- there, no move exists to make.
func search(state State, alpha, beta Score) (Score, Move, bool) {
	atomic.AddInt64(&nodesVisited, 1)

	if state.Solved() {
		return terminalScore(state.Cost()), Move{}, false
	}

	if state.AwaitingAnswer() {
		return searchOracle(state, alpha, beta)
	}
	return searchGuesser(state, alpha, beta)
}

// searchOracle evaluates the maximizing node: the oracle picks whichever
// answer is worse for the guesser.
func searchOracle(state State, alpha, beta Score) (Score, Move, bool) {
	best := ScoreNoSolution
	var bestMove Move
	found := false

	for _, answer := range [2]puzzle.Answer{puzzle.AnswerCheck, puzzle.AnswerCross} {
		move := Move{Kind: MoveAnswer, Answer: answer}

		next, outcome, err := state.Apply(move)

		var score Score
		switch {
		case err != nil:
			score = ScoreNoSolution
		case outcome == puzzle.OutcomeUseless:
			score = ScoreUselessProbe
		default:
			score, _, _ = search(next, alpha, beta)
		}

		if !found || score > best {
			best, bestMove, found = score, move, true
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	return best, bestMove, found
}

// searchGuesser evaluates the minimizing node: the guesser tries every
// legal ChooseVerifier move, and -- once at least one verifier has been
// queried against the current guess -- every candidate ChooseCode move too.
func searchGuesser(state State, alpha, beta Score) (Score, Move, bool) {
	best := ScoreUselessProbe
	var bestMove Move
	found := false

	consider := func(move Move) {
		next, _, err := state.Apply(move)
		if err != nil {
			return
		}
		score, _, _ := search(next, alpha, beta)
		if !found || score < best {
			best, bestMove, found = score, move, true
		}
		if best < beta {
			beta = best
		}
	}

	if state.phase == PhaseIdle {
		for _, code := range state.game.GuessCandidates() {
			consider(Move{Kind: MoveChooseCode, Code: code})
			if alpha >= beta {
				return best, bestMove, found
			}
		}
		return best, bestMove, found
	}

	for vi := range state.game.Verifiers {
		consider(Move{Kind: MoveChooseVerifier, Verifier: verifier.ChosenVerifier(vi)})
		if alpha >= beta {
			return best, bestMove, found
		}
	}

	if state.queried >= 1 {
		for _, code := range state.game.GuessCandidates() {
			consider(Move{Kind: MoveChooseCode, Code: code})
			if alpha >= beta {
				return best, bestMove, found
			}
		}
	}

	return best, bestMove, found
}
