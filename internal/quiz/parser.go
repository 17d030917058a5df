package quiz

import (
	"regexp"
	"strings"
)

// Delimiter separates question blocks in raw LLM output.
const Delimiter = "#####"

// blockPattern is the full grammar one block must satisfy: a question
// line, four labeled options, a single answer letter A-D, and an
// explanation running to the end of the block. Matching is
// case-insensitive and spans lines.
var blockPattern = regexp.MustCompile(`(?is)` +
	`question:\s*(.+?)(?:\n|$)` +
	`.*?a\)\s*(.+?)(?:\n|$)` +
	`.*?b\)\s*(.+?)(?:\n|$)` +
	`.*?c\)\s*(.+?)(?:\n|$)` +
	`.*?d\)\s*(.+?)(?:\n|$)` +
	`.*?answer:\s*([a-d])\s*(?:\n|$)` +
	`.*?explanation:\s*(.+)`)

// Parse splits raw LLM output on Delimiter and extracts one Question per
// well-formed block. A block that fails any part of the grammar is dropped
// whole; no partial record is ever produced. The second return value is
// the number of dropped blocks. Parse itself never fails: zero surviving
// questions is the caller's error to raise.
func Parse(raw string) ([]Question, int) {
	var questions []Question
	dropped := 0

	for _, block := range strings.Split(raw, Delimiter) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		m := blockPattern.FindStringSubmatch(block)
		if m == nil {
			dropped++
			continue
		}
		questions = append(questions, Question{
			Question: strings.TrimSpace(m[1]),
			Options: []string{
				"A) " + strings.TrimSpace(m[2]),
				"B) " + strings.TrimSpace(m[3]),
				"C) " + strings.TrimSpace(m[4]),
				"D) " + strings.TrimSpace(m[5]),
			},
			Answer:      strings.ToUpper(strings.TrimSpace(m[6])),
			Explanation: strings.TrimSpace(m[7]),
		})
	}
	return questions, dropped
}
