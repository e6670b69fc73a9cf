package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrCaseNotFound = errors.New("case not found")

type Case struct {
	ID                    uint   `gorm:"primaryKey"`
	Title                 string `gorm:"not null"`
	Description           string `gorm:"not null"`
	JudgeID               uint   `gorm:"not null;index"`
	Judge                 Judge  `gorm:"foreignKey:JudgeID"`
	Date                  time.Time `gorm:"not null"`
	Location              *string
	IsPoliticallyRelevant bool `gorm:"default:false"`
	RelevanceReason       *string
	Outcome               *string
	IsUnexpected          bool      `gorm:"default:false"`
	CreatedAt             time.Time `gorm:"not null"`
}

type CaseDAO struct {
	db *gorm.DB
}

func NewCaseDAO(db *gorm.DB) *CaseDAO {
	return &CaseDAO{
		db: db,
	}
}

func (d *CaseDAO) Insert(ctx context.Context, c Case) (Case, error) {
	result := d.db.WithContext(ctx).Create(&c)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.ForeignKeyViolation {
			return Case{}, ErrJudgeNotFound
		}

		return Case{}, result.Error
	}

	return c, nil
}

func (d *CaseDAO) FindByID(ctx context.Context, id uint) (Case, error) {
	var c Case

	result := d.db.WithContext(ctx).Preload("Judge").First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Case{}, ErrCaseNotFound
		}

		return Case{}, result.Error
	}

	return c, nil
}

// FindAll returns cases with their judge preloaded, ordered by date ascending.
// When upcoming is set, only cases dated now-or-later are returned; when
// relevantOnly is set, only politically relevant ones.
func (d *CaseDAO) FindAll(ctx context.Context, upcoming, relevantOnly bool, now time.Time) ([]Case, error) {
	query := d.db.WithContext(ctx).Model(&Case{}).Preload("Judge")

	if upcoming {
		query = query.Where("date >= ?", now)
	}
	if relevantOnly {
		query = query.Where("is_politically_relevant = ?", true)
	}

	var cases []Case
	result := query.Order("date ASC, id ASC").Find(&cases)
	if result.Error != nil {
		return nil, result.Error
	}

	return cases, nil
}

// UpdateAnalysis stores the relevance analysis for a case.
func (d *CaseDAO) UpdateAnalysis(ctx context.Context, id uint, relevanceReason string, isUnexpected bool) error {
	result := d.db.WithContext(ctx).Model(&Case{}).Where("id = ?", id).Updates(map[string]interface{}{
		"relevance_reason": relevanceReason,
		"is_unexpected":    isUnexpected,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaseNotFound
	}

	return nil
}
