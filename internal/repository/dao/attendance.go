package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAttendanceNotFound = errors.New("attendance not found")

type Attendance struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        string `gorm:"not null;uniqueIndex:idx_attendance_user_case"` // identity_users.id
	CaseID        uint   `gorm:"not null;uniqueIndex:idx_attendance_user_case"`
	Case          Case   `gorm:"foreignKey:CaseID"`
	Status        string `gorm:"not null"` // "planned", "attended", "verified"
	PointsAwarded int    `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"not null"`
}

// UserPoints is one aggregate row of the leaderboard query.
type UserPoints struct {
	UserID string
	Points int
}

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

// Upsert inserts an attendance row, or updates status and points in place when
// a row for the same (user, case) pair already exists. The composite unique
// index makes concurrent marks for the same pair collapse into one row.
func (d *AttendanceDAO) Upsert(ctx context.Context, att Attendance) (Attendance, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "case_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "points_awarded"}),
	}).Create(&att)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.ForeignKeyViolation {
			return Attendance{}, ErrCaseNotFound
		}

		return Attendance{}, result.Error
	}

	return att, nil
}

func (d *AttendanceDAO) FindByUserAndCase(ctx context.Context, userID string, caseID uint) (Attendance, error) {
	var att Attendance

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND case_id = ?", userID, caseID).
		First(&att)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Attendance{}, ErrAttendanceNotFound
		}

		return Attendance{}, result.Error
	}

	return att, nil
}

func (d *AttendanceDAO) FindByUserID(ctx context.Context, userID string) ([]Attendance, error) {
	var rows []Attendance

	result := d.db.WithContext(ctx).
		Preload("Case").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// SumPointsByUser aggregates total awarded points per user, highest first.
// Ties break on user id ascending so the ordering is deterministic.
func (d *AttendanceDAO) SumPointsByUser(ctx context.Context, limit int) ([]UserPoints, error) {
	var totals []UserPoints

	result := d.db.WithContext(ctx).
		Model(&Attendance{}).
		Select("user_id, SUM(points_awarded) AS points").
		Group("user_id").
		Order("points DESC, user_id ASC").
		Limit(limit).
		Scan(&totals)
	if result.Error != nil {
		return nil, result.Error
	}

	return totals, nil
}
