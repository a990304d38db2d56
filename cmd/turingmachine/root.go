package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	bookletFile  string
	logrusLogger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "turingmachine",
	Short: "Solve the deductive code-breaking puzzle optimally",
	Long: `turingmachine plays the guesser side of a deductive code-breaking
puzzle: given a selection of verifier cards, it chooses codes and verifier
queries to narrow the 125-code universe down to the unique solution using
as few guesses and queries as possible.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrusLogger.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	logrusLogger.SetOutput(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress and timing")
	rootCmd.PersistentFlags().StringVar(&bookletFile, "booklet-file", "", "YAML file mapping challenge names to verifier number lists")
	rootCmd.AddCommand(playCmd)
}
