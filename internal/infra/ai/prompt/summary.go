package prompt

import (
	"fmt"
	"strings"
)

// GetSystemPrompt returns the system role for the review digest.
func GetSystemPrompt() string {
	return strings.TrimSpace(`
You are an e-commerce review analyst. You receive a sample of product
review texts and respond with a single JSON object:
{
  "sentiment": "positive" | "mixed" | "negative",
  "themes": [{"theme": string, "mentions": int, "tone": string}],
  "complaints": [string],
  "praises": [string],
  "summary": string
}
Base every statement strictly on the provided reviews. Keep "summary"
under 120 words. Respond with JSON only, no prose around it.`)
}

// GetUserPrompt joins the sampled review texts into the user message.
func GetUserPrompt(texts []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Review sample (%d reviews):\n", len(texts))
	for i, t := range texts {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.TrimSpace(t))
	}
	return sb.String()
}
