package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTranscript rejects a run before any stage executes.
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrNoQuestions means zero quiz blocks survived parsing. Individual
	// malformed blocks are dropped silently; losing all of them is fatal.
	ErrNoQuestions = errors.New("no quiz questions survived parsing")
)

// StageError reports which stage halted the run. The pipeline fails fast:
// nothing downstream of a failed stage executes and no partial result is
// returned.
type StageError struct {
	Stage int // 1-based position in the chain
	Name  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("generation failed at stage %d (%s): %v", e.Stage, e.Name, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
