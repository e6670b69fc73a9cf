// Package analyzer provides the default stand-in for the external case
// analysis model. It is deterministic so the analyze endpoint behaves the same
// in every environment that has no model service configured.
package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
)

var relevanceKeywords = []string{
	"protest", "election", "rights", "amendment", "whistleblower",
	"discrimination", "privacy", "corruption",
}

type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) Analyze(_ context.Context, c domain.Case) (domain.CaseAnalysis, error) {
	text := strings.ToLower(c.Title + " " + c.Description)

	for _, kw := range relevanceKeywords {
		if strings.Contains(text, kw) {
			return domain.CaseAnalysis{
				RelevanceReason: fmt.Sprintf("Touches on %v, a matter of public interest.", kw),
				IsUnexpected:    false,
			}, nil
		}
	}

	return domain.CaseAnalysis{
		RelevanceReason: "No broad public-interest angle identified.",
		IsUnexpected:    false,
	}, nil
}
