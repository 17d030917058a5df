// Package quiz parses semi-structured LLM output into validated
// multiple-choice questions and scores submitted answers.
package quiz

import (
	"fmt"
	"strings"
)

// Question is one parsed multiple-choice question. Options keep their
// letter-label prefix ("A) Paris") so consumers can show label and text
// together. Answer is a single letter A-D matching one of the options.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// FormatText lays out questions as the plain-text quiz sheet used for
// PDF export.
func FormatText(questions []Question) string {
	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "Q%d: %s\n", i+1, q.Question)
		b.WriteString(strings.Join(q.Options, "\n"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Answer: %s\n", q.Answer)
		fmt.Fprintf(&b, "Explanation: %s\n\n", q.Explanation)
	}
	return b.String()
}

// Score counts submitted answers that match the correct letter. answers
// maps question index to the chosen letter; a missing or mismatched entry
// counts as wrong.
func Score(questions []Question, answers map[int]string) int {
	score := 0
	for i, q := range questions {
		if strings.EqualFold(strings.TrimSpace(answers[i]), q.Answer) {
			score++
		}
	}
	return score
}
