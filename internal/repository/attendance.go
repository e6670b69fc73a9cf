package repository

import (
	"context"
	"fmt"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/repository/dao"
)

var ErrAttendanceNotFound = dao.ErrAttendanceNotFound

type AttendanceDAO interface {
	Upsert(ctx context.Context, att dao.Attendance) (dao.Attendance, error)
	FindByUserAndCase(ctx context.Context, userID string, caseID uint) (dao.Attendance, error)
	FindByUserID(ctx context.Context, userID string) ([]dao.Attendance, error)
	SumPointsByUser(ctx context.Context, limit int) ([]dao.UserPoints, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

func (r *AttendanceRepository) Upsert(ctx context.Context, att domain.Attendance) (domain.Attendance, error) {
	saved, err := r.dao.Upsert(ctx, dao.Attendance{
		UserID:        att.UserID,
		CaseID:        att.CaseID,
		Status:        string(att.Status),
		PointsAwarded: att.PointsAwarded,
	})
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return attendanceDaoToDomain(saved), nil
}

func (r *AttendanceRepository) FindByUserAndCase(ctx context.Context, userID string, caseID uint) (domain.Attendance, error) {
	found, err := r.dao.FindByUserAndCase(ctx, userID, caseID)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.FindByUserAndCase -> %w", err)
	}

	return attendanceDaoToDomain(found), nil
}

func (r *AttendanceRepository) FindByUserID(ctx context.Context, userID string) ([]domain.AttendanceWithCase, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	rows := make([]domain.AttendanceWithCase, 0, len(found))
	for _, a := range found {
		rows = append(rows, domain.AttendanceWithCase{
			Attendance: attendanceDaoToDomain(a),
			Case:       caseDaoToDomain(a.Case),
		})
	}

	return rows, nil
}

func (r *AttendanceRepository) TotalsByUser(ctx context.Context, limit int) ([]domain.ScoreTotal, error) {
	totals, err := r.dao.SumPointsByUser(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SumPointsByUser -> %w", err)
	}

	result := make([]domain.ScoreTotal, 0, len(totals))
	for _, t := range totals {
		result = append(result, domain.ScoreTotal{
			UserID: t.UserID,
			Points: t.Points,
		})
	}

	return result, nil
}

func attendanceDaoToDomain(a dao.Attendance) domain.Attendance {
	return domain.Attendance{
		ID:            a.ID,
		UserID:        a.UserID,
		CaseID:        a.CaseID,
		Status:        domain.AttendanceStatus(a.Status),
		PointsAwarded: a.PointsAwarded,
		CreatedAt:     a.CreatedAt,
	}
}
