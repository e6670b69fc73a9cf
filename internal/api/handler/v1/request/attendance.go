package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
)

type MarkAttendanceRequest struct {
	UserID string `json:"userId"`
	CaseID uint   `json:"caseId"`
	Status string `json:"status"`
}

// Validate accepts planned and attended; verified is reserved for the
// verification flow and cannot be self-reported.
func (req *MarkAttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.CaseID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Status, validation.Required,
			validation.In(string(domain.StatusPlanned), string(domain.StatusAttended))),
	)
}
