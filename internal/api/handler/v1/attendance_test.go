package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtwatchhq/courtwatch-api/internal/api/middleware"
	"github.com/courtwatchhq/courtwatch-api/internal/contract"
	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/service"
)

type mockAttendanceService struct {
	marked  []domain.Attendance
	markErr error
	mine    []domain.AttendanceWithCase
	board   []domain.LeaderboardEntry
}

func (m *mockAttendanceService) MarkAttendance(_ context.Context, userID string, caseID uint, status domain.AttendanceStatus) (domain.Attendance, error) {
	if m.markErr != nil {
		return domain.Attendance{}, m.markErr
	}
	att := domain.Attendance{
		ID: 1, UserID: userID, CaseID: caseID,
		Status: status, PointsAwarded: status.Points(),
	}
	m.marked = append(m.marked, att)
	return att, nil
}

func (m *mockAttendanceService) GetUserAttendance(_ context.Context, _ string) ([]domain.AttendanceWithCase, error) {
	return m.mine, nil
}

func (m *mockAttendanceService) Leaderboard(_ context.Context) ([]domain.LeaderboardEntry, error) {
	return m.board, nil
}

func setupAttendanceRouter(svc AttendanceService, principal string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	inject := func(ctx *gin.Context) {
		if principal != "" {
			ctx.Set(middleware.ContextKeyPrincipalID, principal)
		}
		ctx.Next()
	}

	h := NewAttendanceHandler(svc)
	router.Handle(contract.AttendanceMark.Method, contract.AttendanceMark.Path, inject, h.HandleMarkAttendance)
	router.Handle(contract.AttendanceMine.Method, contract.AttendanceMine.Path, inject, h.HandleGetMyAttendance)
	router.Handle(contract.Leaderboard.Method, contract.Leaderboard.Path, h.HandleGetLeaderboard)

	return router
}

func TestAttendanceHandler_HandleMarkAttendance(t *testing.T) {
	t.Run("marks own attendance", func(t *testing.T) {
		svc := &mockAttendanceService{}
		router := setupAttendanceRouter(svc, "user-1")

		body := `{"userId":"user-1","caseId":5,"status":"attended"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, contract.AttendanceMark.Path, strings.NewReader(body))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var att domain.Attendance
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &att))
		assert.Equal(t, domain.StatusAttended, att.Status)
		assert.Equal(t, 10, att.PointsAwarded)
		assert.Len(t, svc.marked, 1)
	})

	t.Run("forbids marking for another user", func(t *testing.T) {
		svc := &mockAttendanceService{}
		router := setupAttendanceRouter(svc, "user-1")

		body := `{"userId":"user-2","caseId":5,"status":"attended"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, contract.AttendanceMark.Path, strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, svc.marked, "no row persisted")
	})

	t.Run("rejects without session", func(t *testing.T) {
		svc := &mockAttendanceService{}
		router := setupAttendanceRouter(svc, "")

		body := `{"userId":"user-1","caseId":5,"status":"attended"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, contract.AttendanceMark.Path, strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects self-reported verified status", func(t *testing.T) {
		svc := &mockAttendanceService{}
		router := setupAttendanceRouter(svc, "user-1")

		body := `{"userId":"user-1","caseId":5,"status":"verified"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, contract.AttendanceMark.Path, strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errBody contract.ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		assert.Contains(t, errBody.Fields, "status")
	})

	t.Run("unknown case yields 404", func(t *testing.T) {
		svc := &mockAttendanceService{markErr: service.ErrCaseNotFound}
		router := setupAttendanceRouter(svc, "user-1")

		body := `{"userId":"user-1","caseId":99,"status":"attended"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, contract.AttendanceMark.Path, strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAttendanceHandler_HandleGetMyAttendance(t *testing.T) {
	svc := &mockAttendanceService{
		mine: []domain.AttendanceWithCase{
			{
				Attendance: domain.Attendance{ID: 1, UserID: "user-1", CaseID: 5, Status: domain.StatusAttended, PointsAwarded: 10},
				Case:       domain.Case{ID: 5, Title: "City v. Protestors"},
			},
		},
	}
	router := setupAttendanceRouter(svc, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, contract.AttendanceMine.Path, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rows []domain.AttendanceWithCase
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "City v. Protestors", rows[0].Case.Title)
}

func TestAttendanceHandler_HandleGetLeaderboard(t *testing.T) {
	svc := &mockAttendanceService{
		board: []domain.LeaderboardEntry{
			{UserID: "user-2", Name: "Luis Moreno", Points: 30},
			{UserID: "user-1", Name: "Ada Osei", Points: 10},
		},
	}
	router := setupAttendanceRouter(svc, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, contract.Leaderboard.Path, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var entries []domain.LeaderboardEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Luis Moreno", entries[0].Name)
}
