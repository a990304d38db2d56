// Command turingmachine is an interactive solver front-end for the
// deductive code-breaking puzzle implemented by this repository.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
