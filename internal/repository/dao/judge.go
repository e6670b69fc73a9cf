package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrJudgeNotFound = errors.New("judge not found")

type Judge struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Court       string `gorm:"not null"` // e.g. "Supreme Court", "District 9"
	Location    string `gorm:"not null"` // City, State
	ImageURL    *string
	Rating      int `gorm:"default:50"` // 0-100
	Bias        *string
	AppointedBy *string
	Bio         *string
}

type JudgeDAO struct {
	db *gorm.DB
}

func NewJudgeDAO(db *gorm.DB) *JudgeDAO {
	return &JudgeDAO{
		db: db,
	}
}

func (d *JudgeDAO) Insert(ctx context.Context, judge Judge) (Judge, error) {
	result := d.db.WithContext(ctx).Create(&judge)
	if result.Error != nil {
		return Judge{}, result.Error
	}

	return judge, nil
}

func (d *JudgeDAO) FindByID(ctx context.Context, id uint) (Judge, error) {
	var judge Judge

	result := d.db.WithContext(ctx).First(&judge, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Judge{}, ErrJudgeNotFound
		}

		return Judge{}, result.Error
	}

	return judge, nil
}

// FindAll returns judges ordered best-rated first. A non-empty search term
// restricts results to judges whose name or court contains it, case-insensitive.
func (d *JudgeDAO) FindAll(ctx context.Context, search string) ([]Judge, error) {
	query := d.db.WithContext(ctx).Model(&Judge{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR court ILIKE ?", pattern, pattern)
	}

	var judges []Judge
	result := query.Order("rating DESC, id ASC").Find(&judges)
	if result.Error != nil {
		return nil, result.Error
	}

	return judges, nil
}
