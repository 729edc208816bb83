package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Evaluation completed and passed any accuracy gate
	ExitAccuracyLow = 1 // Evaluation completed but accuracy fell below the gate
	ExitError       = 2 // Configuration or runtime error
)

// AccuracyError indicates that the evaluation ran successfully, but the
// measured accuracy fell below the configured minimum.
type AccuracyError struct {
	Message string
}

func (e *AccuracyError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var accuracyErr *AccuracyError
		if errors.As(err, &accuracyErr) {
			os.Exit(ExitAccuracyLow)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
