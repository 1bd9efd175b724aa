package epaper

import "fmt"

// Prompt builders for the generation operations. The target language is the
// edition's publication language, spelled out in English so the model
// understands the instruction regardless of the content language.

// HeadlinePrompt asks for a short headline for the given article content.
func HeadlinePrompt(language Language, content string) string {
	return fmt.Sprintf(
		"Generate a concise and engaging newspaper headline (max 10 words) in %s for the following article content:\n\n%s",
		language.DisplayName(), content)
}

// SummaryPrompt asks for a 2-3 sentence summary of the given article content.
func SummaryPrompt(language Language, content string) string {
	return fmt.Sprintf(
		"Summarize the following article content into 2-3 sentences in %s:\n\n%s",
		language.DisplayName(), content)
}

// ImagePrompt wraps a user description with the e-paper context.
func ImagePrompt(language Language, description string) string {
	return fmt.Sprintf(
		"Generate an image based on this description, considering the context is an e-paper in %s: %s",
		language.DisplayName(), description)
}
