package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/repository"
)

// LeaderboardSize caps how many entries the leaderboard returns.
const LeaderboardSize = 10

var (
	ErrInvalidStatus = errors.New("invalid attendance status")
	ErrUserNotFound  = repository.ErrUserNotFound
)

type AttendanceRepository interface {
	Upsert(ctx context.Context, att domain.Attendance) (domain.Attendance, error)
	FindByUserAndCase(ctx context.Context, userID string, caseID uint) (domain.Attendance, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.AttendanceWithCase, error)
	TotalsByUser(ctx context.Context, limit int) ([]domain.ScoreTotal, error)
}

type AttendanceCaseRepository interface {
	FindByID(ctx context.Context, id uint) (domain.CaseWithJudge, error)
}

type AttendanceUserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type AttendanceService struct {
	repo     AttendanceRepository
	caseRepo AttendanceCaseRepository
	userRepo AttendanceUserRepository
}

func NewAttendanceService(repo AttendanceRepository, caseRepo AttendanceCaseRepository, userRepo AttendanceUserRepository) *AttendanceService {
	return &AttendanceService{
		repo:     repo,
		caseRepo: caseRepo,
		userRepo: userRepo,
	}
}

// MarkAttendance records that a user plans to attend or has attended a case
// hearing. Points are never client-supplied; they follow the status:
// planned 0, attended 10, verified 25. Statuses only move forward along
// planned -> attended -> verified; a mark that does not advance the stored
// status returns the existing record unchanged, so re-submission is safe and
// points never double-count. Ownership of userID is the caller's contract:
// the API layer rejects marks made on behalf of another principal.
func (s *AttendanceService) MarkAttendance(ctx context.Context, userID string, caseID uint, status domain.AttendanceStatus) (domain.Attendance, error) {
	if !status.IsValid() {
		return domain.Attendance{}, ErrInvalidStatus
	}

	if _, err := s.caseRepo.FindByID(ctx, caseID); err != nil {
		if errors.Is(err, ErrCaseNotFound) {
			return domain.Attendance{}, ErrCaseNotFound
		}

		return domain.Attendance{}, fmt.Errorf("s.caseRepo.FindByID -> %w", err)
	}

	existing, err := s.repo.FindByUserAndCase(ctx, userID, caseID)
	if err != nil && !errors.Is(err, repository.ErrAttendanceNotFound) {
		return domain.Attendance{}, fmt.Errorf("s.repo.FindByUserAndCase -> %w", err)
	}
	if err == nil && existing.Status.Rank() >= status.Rank() {
		return existing, nil
	}

	saved, err := s.repo.Upsert(ctx, domain.Attendance{
		UserID:        userID,
		CaseID:        caseID,
		Status:        status,
		PointsAwarded: status.Points(),
	})
	if err != nil {
		if errors.Is(err, ErrCaseNotFound) {
			return domain.Attendance{}, ErrCaseNotFound
		}

		return domain.Attendance{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return saved, nil
}

// GetUserAttendance returns all attendance records of a user, each embedding
// its case, in insertion order.
func (s *AttendanceService) GetUserAttendance(ctx context.Context, userID string) ([]domain.AttendanceWithCase, error) {
	rows, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return rows, nil
}

// Leaderboard aggregates total points per user, highest first, capped at
// LeaderboardSize. Users the identity provider no longer knows are dropped
// silently; the aggregate runs without a transaction, so a user deleted
// between the sum and the lookup simply disappears from the output.
func (s *AttendanceService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	totals, err := s.repo.TotalsByUser(ctx, LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("s.repo.TotalsByUser -> %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(totals))
	for _, t := range totals {
		user, err := s.userRepo.FindByID(ctx, t.UserID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				continue
			}

			return nil, fmt.Errorf("s.userRepo.FindByID -> %w", err)
		}

		entries = append(entries, domain.LeaderboardEntry{
			UserID:    user.ID,
			Name:      user.DisplayName(),
			Points:    t.Points,
			AvatarURL: user.ProfileImageURL,
		})
	}

	return entries, nil
}
