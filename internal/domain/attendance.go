package domain

import "time"

type AttendanceStatus string

const (
	StatusPlanned  AttendanceStatus = "planned"
	StatusAttended AttendanceStatus = "attended"
	StatusVerified AttendanceStatus = "verified"
)

const (
	PointsPlanned  = 0
	PointsAttended = 10
	PointsVerified = 25
)

// Rank orders statuses along the planned -> attended -> verified progression.
// Unknown statuses rank below planned.
func (s AttendanceStatus) Rank() int {
	switch s {
	case StatusPlanned:
		return 1
	case StatusAttended:
		return 2
	case StatusVerified:
		return 3
	default:
		return 0
	}
}

// Points returns the award for reaching the given status.
func (s AttendanceStatus) Points() int {
	switch s {
	case StatusAttended:
		return PointsAttended
	case StatusVerified:
		return PointsVerified
	default:
		return PointsPlanned
	}
}

func (s AttendanceStatus) IsValid() bool {
	return s.Rank() > 0
}

type Attendance struct {
	ID            uint             `json:"id"`
	UserID        string           `json:"userId"`
	CaseID        uint             `json:"caseId"`
	Status        AttendanceStatus `json:"status"`
	PointsAwarded int              `json:"pointsAwarded"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// AttendanceWithCase embeds the case a record belongs to.
type AttendanceWithCase struct {
	Attendance
	Case Case `json:"case"`
}

// ScoreTotal is one row of the per-user points aggregate.
type ScoreTotal struct {
	UserID string
	Points int
}
