package domain

import "time"

type Case struct {
	ID                    uint      `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	JudgeID               uint      `json:"judgeId"`
	Date                  time.Time `json:"date"`
	Location              *string   `json:"location"`
	IsPoliticallyRelevant bool      `json:"isPoliticallyRelevant"`
	RelevanceReason       *string   `json:"relevanceReason"`
	Outcome               *string   `json:"outcome"`
	IsUnexpected          bool      `json:"isUnexpected"`
	CreatedAt             time.Time `json:"createdAt"`
}

// CaseWithJudge is the denormalized read view embedding the owning judge.
type CaseWithJudge struct {
	Case
	Judge Judge `json:"judge"`
}

// CaseFilters narrows a case listing.
type CaseFilters struct {
	Upcoming     bool
	RelevantOnly bool
}

// CaseAnalysis is the outcome of the external relevance analysis of a case.
type CaseAnalysis struct {
	RelevanceReason string
	IsUnexpected    bool
}
