package search

import (
	"fmt"

	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/verifier"
)

// Phase tracks where a State sits in the guess/query/answer cycle.
type Phase int

const (
	// PhaseIdle: no guess picked yet; the only legal move is ChooseCode.
	PhaseIdle Phase = iota
	// PhaseCodePicked: a guess is pinned; legal moves are ChooseVerifier
	// and ChooseCode to switch guesses. The search only generates
	// ChooseCode here once at least one verifier has been queried.
	PhaseCodePicked
	// PhaseCodeAndVerifier: awaiting the oracle's check/cross answer.
	PhaseCodeAndVerifier
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCodePicked:
		return "code-picked"
	case PhaseCodeAndVerifier:
		return "code-and-verifier"
	default:
		return "unknown"
	}
}

// maxQueriesPerGuess is the booklet rule: at most 3 verifiers may be probed
// against a single guess before a new code must be chosen.
const maxQueriesPerGuess = 3

// Cost is the cumulative play cost of reaching a State: how many codes have
// been guessed and how many verifiers have been queried in total.
type Cost struct {
	CodesGuessed     int
	VerifiersChecked int
}

// State is one node of the search tree: a Game, the current pruning state
// over its CandidateTable, the current phase, and the cumulative cost of
// reaching this point. States are copied by value; Apply returns a new one.
type State struct {
	game       *puzzle.Game
	candidates puzzle.CandidateSet
	phase      Phase
	guess      codeset.Code
	queried    int
	pending    verifier.ChosenVerifier
	cost       Cost
}

// NewState returns the initial State for game: PhaseIdle, every candidate
// still possible, zero cost.
func NewState(game *puzzle.Game) State {
	return State{
		game:       game,
		candidates: puzzle.Full(game.Table()),
		phase:      PhaseIdle,
	}
}

// Game returns the State's underlying Game.
func (s State) Game() *puzzle.Game { return s.game }

// Phase returns the State's current phase.
func (s State) Phase() Phase { return s.phase }

// Candidates returns the State's current CandidateSet.
func (s State) Candidates() puzzle.CandidateSet { return s.candidates }

// Cost returns the cumulative cost of reaching this State.
func (s State) Cost() Cost { return s.cost }

// Solved reports whether the CandidateSet has narrowed to a unique code.
func (s State) Solved() bool {
	_, ok := s.candidates.Solution()
	return ok
}

// Solution returns the unique remaining code, if the State is solved.
func (s State) Solution() (codeset.Code, bool) {
	return s.candidates.Solution()
}

// AwaitingAnswer reports whether the next legal move must be MoveAnswer.
func (s State) AwaitingAnswer() bool { return s.phase == PhaseCodeAndVerifier }

// PendingProbe returns the verifier and guess code awaiting an answer.
// Only meaningful when AwaitingAnswer reports true.
func (s State) PendingProbe() (verifier.ChosenVerifier, codeset.Code) {
	return s.pending, s.guess
}

// Apply transitions the State by move, returning the successor State, the
// pruning Outcome of any Filter performed (meaningful only for MoveAnswer),
// and an error if move is illegal in the current phase or the answer
// empties the CandidateSet.
func (s State) Apply(move Move) (State, puzzle.Outcome, error) {
	switch move.Kind {
	case MoveChooseCode:
		if s.phase == PhaseCodeAndVerifier {
			return State{}, puzzle.OutcomeNarrowed, fmt.Errorf("search: %w: %s illegal in phase %s", ErrInvalidMove, move.Kind, s.phase)
		}
		next := s
		next.phase = PhaseCodePicked
		next.guess = move.Code
		next.queried = 0
		next.cost.CodesGuessed++
		return next, puzzle.OutcomeNarrowed, nil

	case MoveChooseVerifier:
		if s.phase != PhaseCodePicked {
			return State{}, puzzle.OutcomeNarrowed, fmt.Errorf("search: %w: %s illegal in phase %s", ErrInvalidMove, move.Kind, s.phase)
		}
		next := s
		next.phase = PhaseCodeAndVerifier
		next.pending = move.Verifier
		next.cost.VerifiersChecked++
		return next, puzzle.OutcomeNarrowed, nil

	case MoveAnswer:
		if s.phase != PhaseCodeAndVerifier {
			return State{}, puzzle.OutcomeNarrowed, fmt.Errorf("search: %w: %s illegal in phase %s", ErrInvalidMove, move.Kind, s.phase)
		}
		filtered, outcome := s.candidates.Filter(s.game, s.pending, s.guess, move.Answer)
		if outcome == puzzle.OutcomeNoSolution {
			return State{}, outcome, ErrNoSolution
		}
		next := s
		next.candidates = filtered
		next.queried++
		if next.queried >= maxQueriesPerGuess {
			next.phase = PhaseIdle
		} else {
			next.phase = PhaseCodePicked
		}
		return next, outcome, nil

	default:
		return State{}, puzzle.OutcomeNarrowed, fmt.Errorf("search: %w: unrecognized move kind %d", ErrInvalidMove, move.Kind)
	}
}

// FindBestMove searches the game tree rooted at s and returns the cost
// achievable under optimal guesser play against an adversarial oracle,
// along with the first move of an optimal line.
func (s State) FindBestMove() (Cost, Move, error) {
	score, move, found := search(s, ScoreNoSolution, ScoreUselessProbe)
	if !found {
		if s.Solved() {
			return s.cost, Move{}, nil
		}
		return Cost{}, Move{}, ErrNoSolution
	}
	return costFromScore(score), move, nil
}
