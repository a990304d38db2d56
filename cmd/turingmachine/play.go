package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tmsolve/turingmachine/format"
	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/search"
)

var playCmd = &cobra.Command{
	Use:   "play [verifier-number... | challenge-name]",
	Short: "Play an interactive solving session against a chosen set of verifiers (defaults to an embedded challenge)",
	Args:  cobra.ArbitraryArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	numbers, err := resolveVerifierNumbers(args)
	if err != nil {
		return err
	}

	game, err := puzzle.NewGame(numbers)
	if err != nil {
		return errors.Wrap(err, "building game")
	}

	logrusLogger.WithFields(logrus.Fields{
		"verifiers":  numbers,
		"candidates": game.Table().Len(),
	}).Debug("game ready")

	state := search.NewState(game)
	reader := bufio.NewReader(os.Stdin)

	for !state.Solved() {
		start := time.Now()
		projected, move, err := state.FindBestMove()
		if err != nil {
			return errors.Wrap(err, "searching for best move")
		}
		fmt.Printf("Worst case: %d codes guessed, %d verifiers checked\n", projected.CodesGuessed, projected.VerifiersChecked)
		logrusLogger.WithFields(logrus.Fields{
			"elapsed": time.Since(start),
			"nodes":   search.NodeCount(),
		}).Debug("move computed")

		next, _, err := state.Apply(move)
		if err != nil {
			return errors.Wrap(err, "applying move")
		}
		state = next

		switch move.Kind {
		case search.MoveChooseCode:
			fmt.Printf("Guess: %s\n", format.FormatCode(move.Code))
		case search.MoveChooseVerifier:
			fmt.Printf("Query verifier %s (#%d): %s\n", move.Verifier, int(move.Verifier)+1,
				game.Verifiers[move.Verifier].Description)
		}

		for !state.Solved() && state.AwaitingAnswer() {
			answer, err := promptAnswer(reader)
			if err != nil {
				return errors.Wrap(err, "reading answer")
			}

			next, outcome, err := state.Apply(search.Move{Kind: search.MoveAnswer, Answer: answer})
			if err != nil {
				fmt.Println("That answer is inconsistent with every remaining candidate; try again.")
				continue
			}
			if outcome == puzzle.OutcomeUseless {
				fmt.Println("(that probe carried no new information)")
			}
			state = next
		}
	}

	solution, _ := state.Solution()
	cost := state.Cost()
	fmt.Printf("\nSolved: %s\n", format.FormatCode(solution))
	fmt.Printf("Cost: %d codes guessed, %d verifiers checked\n", cost.CodesGuessed, cost.VerifiersChecked)
	return nil
}

// promptAnswer reads a check/cross answer from the user, accepting "v", "c",
// "check", "x" or "cross" (case-insensitive), re-prompting on anything else.
func promptAnswer(reader *bufio.Reader) (puzzle.Answer, error) {
	for {
		fmt.Print("Answer (check/cross): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "v", "c", "check":
			return puzzle.AnswerCheck, nil
		case "x", "cross":
			return puzzle.AnswerCross, nil
		default:
			fmt.Println("please answer 'check' or 'cross'")
		}
	}
}
