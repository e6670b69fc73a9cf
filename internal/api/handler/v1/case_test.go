package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtwatchhq/courtwatch-api/internal/contract"
	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/service"
)

type mockCaseService struct {
	cases       map[uint]domain.CaseWithJudge
	lastFilters domain.CaseFilters
	created     []domain.Case
	createErr   error
	analysis    domain.CaseAnalysis
}

func newMockCaseService() *mockCaseService {
	return &mockCaseService{cases: map[uint]domain.CaseWithJudge{}}
}

func (m *mockCaseService) ListCases(_ context.Context, filters domain.CaseFilters) ([]domain.CaseWithJudge, error) {
	m.lastFilters = filters

	var result []domain.CaseWithJudge
	for _, c := range m.cases {
		result = append(result, c)
	}
	return result, nil
}

func (m *mockCaseService) GetCase(_ context.Context, id uint) (domain.CaseWithJudge, error) {
	c, ok := m.cases[id]
	if !ok {
		return domain.CaseWithJudge{}, service.ErrCaseNotFound
	}
	return c, nil
}

func (m *mockCaseService) CreateCase(_ context.Context, c domain.Case) (domain.Case, error) {
	if m.createErr != nil {
		return domain.Case{}, m.createErr
	}
	c.ID = uint(len(m.created) + 1)
	m.created = append(m.created, c)
	return c, nil
}

func (m *mockCaseService) AnalyzeCase(_ context.Context, id uint) (domain.CaseWithJudge, error) {
	c, ok := m.cases[id]
	if !ok {
		return domain.CaseWithJudge{}, service.ErrCaseNotFound
	}
	reason := m.analysis.RelevanceReason
	c.RelevanceReason = &reason
	c.IsUnexpected = m.analysis.IsUnexpected
	m.cases[id] = c
	return c, nil
}

func setupCaseRouter(svc CaseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewCaseHandler(svc)
	router.Handle(contract.CasesList.Method, contract.CasesList.Path, h.HandleListCases)
	router.Handle(contract.CasesGet.Method, contract.CasesGet.Path, h.HandleGetCase)
	router.Handle(contract.CasesCreate.Method, contract.CasesCreate.Path, h.HandleCreateCase)
	router.Handle(contract.CasesAnalyze.Method, contract.CasesAnalyze.Path, h.HandleAnalyzeCase)

	return router
}

func caseWithJudgeFixture(id uint) domain.CaseWithJudge {
	return domain.CaseWithJudge{
		Case: domain.Case{
			ID:      id,
			Title:   "City v. Protestors",
			JudgeID: 1,
			Date:    time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC),
		},
		Judge: domain.Judge{ID: 1, Name: "Judge Elena Vance", Rating: 45},
	}
}

func TestCaseHandler_HandleListCases(t *testing.T) {
	svc := newMockCaseService()
	svc.cases[5] = caseWithJudgeFixture(5)
	router := setupCaseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, contract.CasesList.Path+"?upcoming=true&relevantOnly=true", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.lastFilters.Upcoming)
	assert.True(t, svc.lastFilters.RelevantOnly)

	var cases []domain.CaseWithJudge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cases))
	require.Len(t, cases, 1)
	assert.Equal(t, "Judge Elena Vance", cases[0].Judge.Name)
}

func TestCaseHandler_HandleGetCase(t *testing.T) {
	svc := newMockCaseService()
	svc.cases[5] = caseWithJudgeFixture(5)
	router := setupCaseRouter(svc)

	t.Run("found with judge embedded", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cases/5", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var c domain.CaseWithJudge
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		assert.Equal(t, "City v. Protestors", c.Title)
		assert.Equal(t, "Judge Elena Vance", c.Judge.Name)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cases/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCaseHandler_HandleCreateCase(t *testing.T) {
	t.Run("creates a case", func(t *testing.T) {
		svc := newMockCaseService()
		router := setupCaseRouter(svc)

		body := `{"title":"TechCorp v. Doe","description":"Whistleblower retaliation case.","judgeId":2,"date":"2025-02-20T10:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, contract.CasesCreate.Path, strings.NewReader(body))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, svc.created, 1)
		assert.Equal(t, uint(2), svc.created[0].JudgeID)
	})

	t.Run("unknown judge reference yields 400", func(t *testing.T) {
		svc := newMockCaseService()
		svc.createErr = service.ErrJudgeNotFound
		router := setupCaseRouter(svc)

		body := `{"title":"TechCorp v. Doe","description":"Whistleblower retaliation case.","judgeId":99,"date":"2025-02-20T10:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, contract.CasesCreate.Path, strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "judge 99 does not exist")
	})

	t.Run("missing required fields yield field errors", func(t *testing.T) {
		svc := newMockCaseService()
		router := setupCaseRouter(svc)

		body := `{"title":"TechCorp v. Doe"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, contract.CasesCreate.Path, strings.NewReader(body))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var errBody contract.ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		assert.Contains(t, errBody.Fields, "description")
		assert.Contains(t, errBody.Fields, "judgeId")
		assert.Empty(t, svc.created)
	})
}

func TestCaseHandler_HandleAnalyzeCase(t *testing.T) {
	t.Run("stores and returns the analysis", func(t *testing.T) {
		svc := newMockCaseService()
		svc.cases[5] = caseWithJudgeFixture(5)
		svc.analysis = domain.CaseAnalysis{RelevanceReason: "Involves protest-related charges.", IsUnexpected: false}
		router := setupCaseRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cases/5/analyze", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var c domain.CaseWithJudge
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		require.NotNil(t, c.RelevanceReason)
		assert.Equal(t, "Involves protest-related charges.", *c.RelevanceReason)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		svc := newMockCaseService()
		router := setupCaseRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cases/999/analyze", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
