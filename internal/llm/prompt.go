package llm

import "strings"

const maxPromptChars = 6000

// BuildSystemPrompt composes the extraction instruction. The summary must be
// written in the report's own language, so a Chinese lab report yields a
// Chinese summary.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a medical report parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract from the report text: the patient name ('name'), the hospital name ('hospital_name'),",
		"the report date as ISO-8601 YYYY-MM-DD ('report_date'),",
		"the report type such as Blood Test or CT Scan ('report_type'),",
		"and a brief summary of the findings in the report's source language ('summary').",
		"Never output null and never guess. If a field is not present in the text, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the recognized text with an optional filename hint.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\nReport text (first ~6k chars):\n")
	text := strings.TrimSpace(req.Text)
	if len(text) > maxPromptChars {
		b.WriteString(text[:maxPromptChars])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}
