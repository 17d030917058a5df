package pipeline

import (
	"fmt"
	"strings"
	"text/template"
)

// Stage prompts live here as named templates, apart from the orchestration
// logic, so they can be reviewed, tested, and swapped independently. The
// transcript or summary the stage works on always travels as the user
// message; templates only produce the system message.

const classifyTopicPrompt = `You are an expert at classifying educational content. ` +
	`Identify the academic subject of the lecture transcript provided by the user. ` +
	`Respond with only the subject name (for example "Linear Algebra" or "World History") and no other text.`

var extractKeyConceptsTmpl = template.Must(template.New("extract_key_concepts").Parse(
	`The user will provide a transcript from a lecture on {{.Topic}}. ` +
		`Extract the key concepts it covers, organized into categories: core concepts, methodologies, ` +
		`important terms with their definitions, and worked examples. ` +
		`Ignore greetings, chit-chat, student joining counts and session logistics.`))

var summarizeTranscriptTmpl = template.Must(template.New("summarize_transcript").Parse(
	`Summarize the provided lecture transcript on {{.Topic}} by extracting the key points. ` +
		`Structure the summary under the headings Introduction, Key Concepts, Examples and Conclusion. ` +
		`Give particular weight to these previously identified concepts:
{{.KeyConcepts}}
Retain important details, but remove unnecessary chit-chat, greetings, student joining counts and session logistics.`))

const generateStudyNotesPrompt = `Generate detailed, topic-based structured study notes from the summarized transcript provided by the user. ` +
	`Structure the notes under exactly these sections: Introduction, Key Concepts, Definitions, Examples, Applications, Tips, Conclusion. ` +
	`Include in-depth explanations, definitions, and examples where appropriate. ` +
	`Format the notes using headings and bullet points.`

var generateQuestionsTmpl = template.Must(template.New("generate_questions").Parse(
	`You are an expert quiz creator. Generate exactly {{.Count}} multiple-choice questions (MCQs) based strictly on the summarized lecture transcript provided by the user.

Each question must follow this format exactly (do not include any extra text or headers):

Question: [Your question]
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]
Answer: [Correct answer letter, e.g., A]
Explanation: [Brief explanation]

Separate each QnA pair with the delimiter "{{.Delimiter}}".

For example, your output should look like this:
Question: What is the capital of France?
A) London
B) Berlin
C) Paris
D) Rome
Answer: C
Explanation: Paris is the capital of France.
{{.Delimiter}}
<Next question...>

Ensure that no additional text is included.`))

func renderPrompt(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render prompt %q: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
