package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/tmsolve/turingmachine/codeset"
	"github.com/tmsolve/turingmachine/puzzle"
	"github.com/tmsolve/turingmachine/search"
)

// answerFor computes the oracle's truthful answer to the currently pending
// probe, given the fixed solution chosen for this benchmark run.
func answerFor(g *puzzle.Game, s search.State, solution codeset.Code) puzzle.Answer {
	chosen, guess := s.PendingProbe()
	v := g.Verifiers[chosen]
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

// solve drives a single Game to completion against its own first candidate
// code as the fixed solution, and reports the achieved cost, the number of
// search tree nodes visited, and the elapsed wall time.
func solve(g *puzzle.Game) (search.Cost, int64, time.Duration, error) {
	solution := g.Table().Row(0).Code

	search.ResetNodeCount()
	start := time.Now()

	s := search.NewState(g)
	for !s.Solved() {
		_, move, err := s.FindBestMove()
		if err != nil {
			return search.Cost{}, search.NodeCount(), time.Since(start), err
		}

		next, _, err := s.Apply(move)
		if err != nil {
			return search.Cost{}, search.NodeCount(), time.Since(start), err
		}
		s = next

		for !s.Solved() && s.AwaitingAnswer() {
			answer := answerFor(g, s, solution)
			next, outcome, err := s.Apply(search.Move{Kind: search.MoveAnswer, Answer: answer})
			if err != nil || outcome == puzzle.OutcomeNoSolution {
				return search.Cost{}, search.NodeCount(), time.Since(start), search.ErrNoSolution
			}
			s = next
		}
	}

	return s.Cost(), search.NodeCount(), time.Since(start), nil
}

// runBooklet solves every challenge in the reference booklet and logs a
// line per challenge plus totals. A challenge whose verifier selection
// yields no candidates is logged and skipped, not treated as a failure.
func runBooklet(verbose bool) {
	var totalNodes int64
	var totalElapsed time.Duration
	solved := 0

	for _, c := range referenceBooklet {
		g, err := puzzle.NewGame(c.verifiers)
		if err != nil {
			log.Printf("%s: skipped: %v", c.name, err)
			continue
		}

		cost, nodes, elapsed, err := solve(g)
		if err != nil {
			log.Printf("%s: solve failed: %v", c.name, err)
			continue
		}

		solved++
		totalNodes += nodes
		totalElapsed += elapsed

		if verbose {
			log.Printf("%s: codes=%d verifiers=%d nodes=%d elapsed=%s",
				c.name, cost.CodesGuessed, cost.VerifiersChecked, nodes, elapsed)
		}
	}

	log.Printf("solved %d/%d challenges", solved, len(referenceBooklet))
	log.Printf("total nodes visited: %d", totalNodes)
	log.Printf("total elapsed: %s", totalElapsed)
}

func main() {
	verbose := flag.Bool("verbose", false, "print per-challenge timing and node counts")
	cpuprofile := flag.String("profile-cpu", "", "file to write a CPU profile to")
	memprofile := flag.String("profile-mem", "", "file to write a memory profile to")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	runBooklet(*verbose)
	log.Printf("run finished in %s", time.Since(start))

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		pprof.WriteHeapProfile(f)
	}
}
