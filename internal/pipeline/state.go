package pipeline

import "studygen/internal/quiz"

// State threads one run's data through the stage chain. Transcription is
// set at creation and never changes; every other field is written exactly
// once, by its owning stage, after all upstream fields are populated.
// Stages receive State by value and return the extended copy, so a failed
// run never leaks partially-written state to the caller.
type State struct {
	Transcription        string
	Topic                string
	KeyConcepts          string
	SummarizedTranscript string
	StudyNotes           string
	Questions            []quiz.Question
}

// NewState starts a run from a raw transcript.
func NewState(transcription string) State {
	return State{Transcription: transcription}
}
