package domain

const (
	MinRating     = 0
	MaxRating     = 100
	DefaultRating = 50
)

type Judge struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Court       string  `json:"court"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"imageUrl"`
	Rating      int     `json:"rating"` // 0-100, 0=bad, 100=good
	Bias        *string `json:"bias"`
	AppointedBy *string `json:"appointedBy"`
	Bio         *string `json:"bio"`
}

// ClampRating forces the rating into the [MinRating, MaxRating] range.
func (j *Judge) ClampRating() {
	if j.Rating < MinRating {
		j.Rating = MinRating
	}
	if j.Rating > MaxRating {
		j.Rating = MaxRating
	}
}
