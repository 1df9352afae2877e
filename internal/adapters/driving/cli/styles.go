package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera/internal/core/domain"
)

// Terminal styles for answer output.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	snippetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	confidenceStyles = map[domain.Confidence]lipgloss.Style{
		domain.ConfidenceLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		domain.ConfidenceMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		domain.ConfidenceHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	}
)

// printAnswer renders an answer with its citations and confidence.
func printAnswer(cmd *cobra.Command, answer *domain.Answer) {
	cmd.Println(headerStyle.Render("Answer"))
	cmd.Println(answer.Text)
	cmd.Println()

	if len(answer.Citations) > 0 {
		cmd.Println(headerStyle.Render("Citations"))
		for i, citation := range answer.Citations {
			cmd.Printf("  [%d] %s | %s\n", i+1, citation.DocID, citation.SectionID)
			if citation.Snippet != "" {
				cmd.Println(snippetStyle.Render("      " + citation.Snippet))
			}
		}
		cmd.Println()
	}

	cmd.Printf("Confidence: %s\n", confidenceStyles[answer.Confidence].Render(string(answer.Confidence)))
}
