package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/verifier"
)

// answerFor computes the real oracle's answer to probing verifier v with
// guess, given the true solution code: Check iff guess and solution fall in
// the same option of v.
func answerFor(v verifier.Verifier, guess, solution codeset.Code) puzzle.Answer {
	for _, opt := range v.Options {
		if opt.Codes.Contains(guess) {
			if opt.Codes.Contains(solution) {
				return puzzle.AnswerCheck
			}
			return puzzle.AnswerCross
		}
	}
	return puzzle.AnswerCross
}

// playToSolution drives a game to completion: at guesser nodes it applies
// FindBestMove's suggestion, at oracle nodes it answers truthfully against
// solution. It fails the test if play does not converge within a generous
// iteration bound.
func playToSolution(t *testing.T, game *puzzle.Game, solution codeset.Code) State {
	t.Helper()

	s := NewState(game)
	for i := 0; i < 200; i++ {
		if s.Solved() {
			return s
		}

		if s.AwaitingAnswer() {
			t.Fatalf("awaiting answer outside a guesser-driven transition")
		}

		_, move, err := s.FindBestMove()
		require.NoError(t, err)

		next, _, err := s.Apply(move)
		require.NoError(t, err)
		s = next

		for !s.Solved() && s.AwaitingAnswer() {
			pendingVerifier, guess := s.PendingProbe()
			v := game.Verifiers[pendingVerifier]
			answer := answerFor(v, guess, solution)
			next, outcome, err := s.Apply(Move{Kind: MoveAnswer, Answer: answer})
			require.NoError(t, err, "truthful answer should never be inconsistent")
			require.NotEqual(t, puzzle.OutcomeNoSolution, outcome)
			s = next
		}
	}

	t.Fatalf("play did not converge to a solution within the iteration bound")
	return State{}
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name      string
		verifiers []int
		solution  [3]int
		cost      Cost
	}{
		{"scenario 1", []int{4, 9, 11, 14}, [3]int{2, 4, 1}, Cost{CodesGuessed: 1, VerifiersChecked: 1}},
		{"scenario 2", []int{3, 7, 10, 14}, [3]int{4, 3, 5}, Cost{CodesGuessed: 1, VerifiersChecked: 2}},
		{"scenario 3", []int{4, 9, 13, 17}, [3]int{3, 3, 1}, Cost{CodesGuessed: 1, VerifiersChecked: 2}},
		{"scenario 4", []int{3, 8, 15, 16}, [3]int{3, 4, 5}, Cost{CodesGuessed: 1, VerifiersChecked: 2}},
		{"scenario 5", []int{2, 6, 14, 17}, [3]int{3, 5, 4}, Cost{CodesGuessed: 1, VerifiersChecked: 1}},
		{"scenario 6", []int{12, 16, 18, 19, 21}, [3]int{3, 3, 4}, Cost{CodesGuessed: 1, VerifiersChecked: 2}},
		{"scenario 7", []int{18, 21, 37, 48}, [3]int{1, 3, 5}, Cost{CodesGuessed: 2, VerifiersChecked: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := puzzle.NewGame(tc.verifiers)
			require.NoError(t, err)

			solution, err := codeset.FromDigits(tc.solution[0], tc.solution[1], tc.solution[2])
			require.NoError(t, err)

			final := playToSolution(t, g, solution)

			got, ok := final.Solution()
			require.True(t, ok)
			assert.Equal(t, solution, got)
			assert.Equal(t, tc.cost, final.Cost())
		})
	}
}

func TestFindBestMoveOnSolvedStateReturnsNoError(t *testing.T) {
	g, err := puzzle.NewGame([]int{4, 9, 11, 14})
	require.NoError(t, err)

	solution, err := codeset.FromDigits(2, 4, 1)
	require.NoError(t, err)

	final := playToSolution(t, g, solution)
	require.True(t, final.Solved())

	_, _, err = final.FindBestMove()
	assert.NoError(t, err)
}
