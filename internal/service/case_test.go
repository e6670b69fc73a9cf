package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/repository"
)

type mockFullCaseRepo struct {
	cases    map[uint]domain.CaseWithJudge
	created  []domain.Case
	analyses map[uint]domain.CaseAnalysis
	lastNow  time.Time
}

func newMockFullCaseRepo() *mockFullCaseRepo {
	return &mockFullCaseRepo{
		cases:    map[uint]domain.CaseWithJudge{},
		analyses: map[uint]domain.CaseAnalysis{},
	}
}

func (m *mockFullCaseRepo) Create(_ context.Context, c domain.Case) (domain.Case, error) {
	c.ID = uint(len(m.created) + 1)
	m.created = append(m.created, c)
	m.cases[c.ID] = domain.CaseWithJudge{Case: c}
	return c, nil
}

func (m *mockFullCaseRepo) FindByID(_ context.Context, id uint) (domain.CaseWithJudge, error) {
	c, ok := m.cases[id]
	if !ok {
		return domain.CaseWithJudge{}, repository.ErrCaseNotFound
	}
	return c, nil
}

func (m *mockFullCaseRepo) FindAll(_ context.Context, filters domain.CaseFilters, now time.Time) ([]domain.CaseWithJudge, error) {
	m.lastNow = now

	var result []domain.CaseWithJudge
	for _, c := range m.cases {
		if filters.Upcoming && c.Date.Before(now) {
			continue
		}
		if filters.RelevantOnly && !c.IsPoliticallyRelevant {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *mockFullCaseRepo) UpdateAnalysis(_ context.Context, id uint, analysis domain.CaseAnalysis) error {
	c, ok := m.cases[id]
	if !ok {
		return repository.ErrCaseNotFound
	}
	reason := analysis.RelevanceReason
	c.RelevanceReason = &reason
	c.IsUnexpected = analysis.IsUnexpected
	m.cases[id] = c
	m.analyses[id] = analysis
	return nil
}

type stubAnalyzer struct {
	analysis domain.CaseAnalysis
	calls    int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ domain.Case) (domain.CaseAnalysis, error) {
	s.calls++
	return s.analysis, nil
}

func TestCaseService_CreateCase(t *testing.T) {
	repo := newMockFullCaseRepo()
	svc := NewCaseService(repo, &stubAnalyzer{})

	created, err := svc.CreateCase(context.Background(), domain.Case{
		Title:       "TechCorp v. Doe",
		Description: "Whistleblower retaliation case.",
		JudgeID:     2,
		Date:        time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero(), "server assigns createdAt")
}

func TestCaseService_ListCases(t *testing.T) {
	repo := newMockFullCaseRepo()
	svc := NewCaseService(repo, &stubAnalyzer{})

	past := domain.Case{Title: "Past", JudgeID: 1, Date: time.Now().Add(-24 * time.Hour)}
	future := domain.Case{Title: "Future", JudgeID: 1, Date: time.Now().Add(24 * time.Hour), IsPoliticallyRelevant: true}
	_, err := svc.CreateCase(context.Background(), past)
	require.NoError(t, err)
	_, err = svc.CreateCase(context.Background(), future)
	require.NoError(t, err)

	t.Run("upcoming excludes past cases", func(t *testing.T) {
		cases, err := svc.ListCases(context.Background(), domain.CaseFilters{Upcoming: true})

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, "Future", cases[0].Title)
		for _, c := range cases {
			assert.False(t, c.Date.Before(repo.lastNow))
		}
	})

	t.Run("no filters includes past cases", func(t *testing.T) {
		cases, err := svc.ListCases(context.Background(), domain.CaseFilters{})

		require.NoError(t, err)
		assert.Len(t, cases, 2)
	})

	t.Run("relevantOnly keeps flagged cases", func(t *testing.T) {
		cases, err := svc.ListCases(context.Background(), domain.CaseFilters{RelevantOnly: true})

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.True(t, cases[0].IsPoliticallyRelevant)
	})
}

func TestCaseService_AnalyzeCase(t *testing.T) {
	t.Run("persists and returns the analysis", func(t *testing.T) {
		repo := newMockFullCaseRepo()
		stub := &stubAnalyzer{analysis: domain.CaseAnalysis{
			RelevanceReason: "Sets precedent for worker protections in tech.",
			IsUnexpected:    true,
		}}
		svc := NewCaseService(repo, stub)

		created, err := svc.CreateCase(context.Background(), domain.Case{Title: "TechCorp v. Doe", JudgeID: 1, Date: time.Now()})
		require.NoError(t, err)

		updated, err := svc.AnalyzeCase(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, 1, stub.calls)
		require.NotNil(t, updated.RelevanceReason)
		assert.Equal(t, "Sets precedent for worker protections in tech.", *updated.RelevanceReason)
		assert.True(t, updated.IsUnexpected)
	})

	t.Run("unknown case yields not found", func(t *testing.T) {
		repo := newMockFullCaseRepo()
		svc := NewCaseService(repo, &stubAnalyzer{})

		_, err := svc.AnalyzeCase(context.Background(), 404)

		assert.ErrorIs(t, err, ErrCaseNotFound)
	})
}
