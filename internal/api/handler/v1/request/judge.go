package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
)

type CreateJudgeRequest struct {
	Name        string  `json:"name"`
	Court       string  `json:"court"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"imageUrl"`
	Rating      *int    `json:"rating"` // defaults to 50 when omitted
	Bias        *string `json:"bias"`
	AppointedBy *string `json:"appointedBy"`
	Bio         *string `json:"bio"`
}

func (req *CreateJudgeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Court, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.ImageURL, is.URL),
		validation.Field(&req.Rating, validation.Min(domain.MinRating), validation.Max(domain.MaxRating)),
		validation.Field(&req.Bio, validation.Length(0, 2000)),
	)
}

// ToDomain maps the request onto a judge, applying the default rating when
// none was submitted.
func (req *CreateJudgeRequest) ToDomain() domain.Judge {
	rating := domain.DefaultRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	return domain.Judge{
		Name:        req.Name,
		Court:       req.Court,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Rating:      rating,
		Bias:        req.Bias,
		AppointedBy: req.AppointedBy,
		Bio:         req.Bio,
	}
}
