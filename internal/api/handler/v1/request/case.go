package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
)

type CreateCaseRequest struct {
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	JudgeID               uint      `json:"judgeId"`
	Date                  time.Time `json:"date"`
	Location              *string   `json:"location"`
	IsPoliticallyRelevant bool      `json:"isPoliticallyRelevant"`
	RelevanceReason       *string   `json:"relevanceReason"`
	Outcome               *string   `json:"outcome"`
	IsUnexpected          bool      `json:"isUnexpected"`
}

func (req *CreateCaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Required, validation.Length(2, 5000)),
		validation.Field(&req.JudgeID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Date, validation.Required),
	)
}

func (req *CreateCaseRequest) ToDomain() domain.Case {
	return domain.Case{
		Title:                 req.Title,
		Description:           req.Description,
		JudgeID:               req.JudgeID,
		Date:                  req.Date,
		Location:              req.Location,
		IsPoliticallyRelevant: req.IsPoliticallyRelevant,
		RelevanceReason:       req.RelevanceReason,
		Outcome:               req.Outcome,
		IsUnexpected:          req.IsUnexpected,
	}
}
