// Package pipeline chains the five LLM stages that turn a lecture
// transcript into study notes and a multiple-choice quiz.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"studygen/internal/llm"
	"studygen/internal/quiz"
)

// Config bounds how much material each stage sends to the model.
type Config struct {
	// TranscriptCharLimit caps prompts built from the raw transcript.
	TranscriptCharLimit int
	// SummaryCharLimit caps prompts built from the summarized transcript.
	SummaryCharLimit int
	// QuestionCount is how many MCQs the quiz stage asks for.
	QuestionCount int
}

const (
	defaultTranscriptCharLimit = 3000
	defaultSummaryCharLimit    = 2000
	defaultQuestionCount       = 10
)

// Result is what a completed run hands back to the presentation layer.
type Result struct {
	Topic       string          `json:"topic"`
	KeyConcepts string          `json:"key_concepts"`
	StudyNotes  string          `json:"study_notes"`
	Questions   []quiz.Question `json:"questions"`
}

// Pipeline runs the fixed transcript-to-quiz stage chain. It is stateless
// across runs and safe to share; each run owns its own State.
type Pipeline struct {
	llm llm.Client
	cfg Config
	log *slog.Logger
}

// New builds a pipeline around an LLM client. Zero config fields get the
// defaults.
func New(client llm.Client, cfg Config, log *slog.Logger) *Pipeline {
	if cfg.TranscriptCharLimit <= 0 {
		cfg.TranscriptCharLimit = defaultTranscriptCharLimit
	}
	if cfg.SummaryCharLimit <= 0 {
		cfg.SummaryCharLimit = defaultSummaryCharLimit
	}
	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = defaultQuestionCount
	}
	return &Pipeline{llm: client, cfg: cfg, log: log}
}

type stage struct {
	name string
	run  func(ctx context.Context, s State) (State, error)
}

// stages returns the chain in execution order. Each stage reads only
// fields populated by its predecessors and writes exactly one new field.
func (p *Pipeline) stages() []stage {
	return []stage{
		{"classify_topic", p.classifyTopic},
		{"extract_key_concepts", p.extractKeyConcepts},
		{"summarize_transcript", p.summarizeTranscript},
		{"generate_study_notes", p.generateStudyNotes},
		{"generate_questions", p.generateQuestions},
	}
}

// Run executes the stages strictly in order, stopping at the first
// failure. On failure the returned error is a *StageError naming the
// stage, and the zero Result is returned: no partial output escapes.
func (p *Pipeline) Run(ctx context.Context, transcript string) (Result, error) {
	if strings.TrimSpace(transcript) == "" {
		return Result{}, ErrEmptyTranscript
	}

	state := NewState(transcript)
	for i, st := range p.stages() {
		next, err := st.run(ctx, state)
		if err != nil {
			return Result{}, &StageError{Stage: i + 1, Name: st.name, Err: err}
		}
		state = next
		p.log.Info("pipeline stage complete", "stage", i+1, "name", st.name)
	}

	return Result{
		Topic:       state.Topic,
		KeyConcepts: state.KeyConcepts,
		StudyNotes:  state.StudyNotes,
		Questions:   state.Questions,
	}, nil
}
