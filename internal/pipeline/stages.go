package pipeline

import (
	"context"
	"strings"

	"studygen/internal/llm"
	"studygen/internal/quiz"
)

// complete wraps the LLM call with the empty-content check every stage
// applies: a transport failure and a blank response fail the stage the
// same way.
func (p *Pipeline) complete(ctx context.Context, system, user string, limit int) (string, error) {
	out, err := p.llm.Complete(ctx, system, user, limit)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", llm.ErrEmptyResponse
	}
	return out, nil
}

func (p *Pipeline) classifyTopic(ctx context.Context, s State) (State, error) {
	out, err := p.complete(ctx, classifyTopicPrompt, s.Transcription, p.cfg.TranscriptCharLimit)
	if err != nil {
		return s, err
	}
	s.Topic = strings.TrimSpace(out)
	return s, nil
}

func (p *Pipeline) extractKeyConcepts(ctx context.Context, s State) (State, error) {
	system, err := renderPrompt(extractKeyConceptsTmpl, map[string]string{"Topic": s.Topic})
	if err != nil {
		return s, err
	}
	out, err := p.complete(ctx, system, s.Transcription, p.cfg.TranscriptCharLimit)
	if err != nil {
		return s, err
	}
	s.KeyConcepts = strings.TrimSpace(out)
	return s, nil
}

func (p *Pipeline) summarizeTranscript(ctx context.Context, s State) (State, error) {
	system, err := renderPrompt(summarizeTranscriptTmpl, map[string]string{
		"Topic":       s.Topic,
		"KeyConcepts": s.KeyConcepts,
	})
	if err != nil {
		return s, err
	}
	out, err := p.complete(ctx, system, s.Transcription, p.cfg.TranscriptCharLimit)
	if err != nil {
		return s, err
	}
	s.SummarizedTranscript = strings.TrimSpace(out)
	return s, nil
}

func (p *Pipeline) generateStudyNotes(ctx context.Context, s State) (State, error) {
	out, err := p.complete(ctx, generateStudyNotesPrompt, s.SummarizedTranscript, p.cfg.SummaryCharLimit)
	if err != nil {
		return s, err
	}
	s.StudyNotes = strings.TrimSpace(out)
	return s, nil
}

func (p *Pipeline) generateQuestions(ctx context.Context, s State) (State, error) {
	system, err := renderPrompt(generateQuestionsTmpl, map[string]any{
		"Count":     p.cfg.QuestionCount,
		"Delimiter": quiz.Delimiter,
	})
	if err != nil {
		return s, err
	}
	out, err := p.complete(ctx, system, s.SummarizedTranscript, p.cfg.SummaryCharLimit)
	if err != nil {
		return s, err
	}

	questions, dropped := quiz.Parse(out)
	if dropped > 0 {
		p.log.Warn("dropped malformed quiz blocks", "dropped", dropped, "parsed", len(questions))
	}
	if len(questions) == 0 {
		return s, ErrNoQuestions
	}
	s.Questions = questions
	return s, nil
}
