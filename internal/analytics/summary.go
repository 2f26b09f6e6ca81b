package analytics

import "github.com/ArowuTest/newslens-backend/internal/models"

// Summarize groups interactions by prompt. Results within a group keep input order.
func Summarize(interactions []models.Interaction) models.Summary {
	summary := make(models.Summary)
	for _, interaction := range interactions {
		group := summary[interaction.Prompt]
		group.Count++
		group.Results = append(group.Results, interaction.Result)
		summary[interaction.Prompt] = group
	}
	return summary
}
