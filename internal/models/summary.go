package models

// PromptSummary is the tally for one prompt category
type PromptSummary struct {
	Count   int      `json:"count"`
	Results []string `json:"results"`
}

// Summary maps a prompt category to its tally
type Summary map[string]PromptSummary
