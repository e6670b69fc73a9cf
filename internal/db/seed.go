package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtwatchhq/courtwatch-api/internal/repository/dao"
)

func strPtr(s string) *string {
	return &s
}

// Seed loads demo judges, cases and identity users for local development.
// It is idempotent: nothing happens when judges already exist. The
// identity_users table belongs to the identity provider in production, so it
// is only migrated here, for local runs.
func Seed(db *gorm.DB) error {
	if err := db.AutoMigrate(&dao.User{}); err != nil {
		return fmt.Errorf("db.AutoMigrate -> %w", err)
	}

	var count int64
	if err := db.Model(&dao.Judge{}).Count(&count).Error; err != nil {
		return fmt.Errorf("db.Count -> %w", err)
	}
	if count > 0 {
		return nil
	}

	vance := dao.Judge{
		Name:        "Judge Elena Vance",
		Court:       "Superior Court of California",
		Location:    "San Francisco, CA",
		Rating:      45,
		Bias:        strPtr("Pro-Corporate"),
		AppointedBy: strPtr("Gov. Arnold"),
		Bio:         strPtr("Known for harsh sentencing on non-violent crimes."),
	}
	thorne := dao.Judge{
		Name:        "Judge Marcus Thorne",
		Court:       "Federal District Court",
		Location:    "New York, NY",
		Rating:      85,
		Bias:        strPtr("Civil Liberties"),
		AppointedBy: strPtr("President Obama"),
		Bio:         strPtr("Champion of digital privacy rights."),
	}
	if err := db.Create(&vance).Error; err != nil {
		return fmt.Errorf("db.Create judge -> %w", err)
	}
	if err := db.Create(&thorne).Error; err != nil {
		return fmt.Errorf("db.Create judge -> %w", err)
	}

	cases := []dao.Case{
		{
			Title:                 "City v. Protestors",
			Description:           "Hearing regarding the unlawful assembly charges against climate activists.",
			JudgeID:               vance.ID,
			Date:                  time.Date(2025, 2, 15, 9, 0, 0, 0, time.UTC),
			Location:              strPtr("Courtroom 4B"),
			IsPoliticallyRelevant: true,
			RelevanceReason:       strPtr("High impact on first amendment rights for assembly."),
			Outcome:               strPtr("Pending"),
			CreatedAt:             time.Now(),
		},
		{
			Title:                 "TechCorp v. Doe",
			Description:           "Whistleblower retaliation case.",
			JudgeID:               thorne.ID,
			Date:                  time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC),
			Location:              strPtr("Courtroom 12"),
			IsPoliticallyRelevant: true,
			RelevanceReason:       strPtr("Sets precedent for worker protections in tech."),
			Outcome:               strPtr("Pending"),
			CreatedAt:             time.Now(),
		},
	}
	if err := db.Create(&cases).Error; err != nil {
		return fmt.Errorf("db.Create cases -> %w", err)
	}

	users := []dao.User{
		{
			ID:        uuid.NewString(),
			FirstName: strPtr("Ada"),
			LastName:  strPtr("Osei"),
		},
		{
			ID:        uuid.NewString(),
			FirstName: strPtr("Luis"),
			LastName:  strPtr("Moreno"),
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("db.Create users -> %w", err)
	}

	zap.L().Info("seeded development data",
		zap.Int("judges", 2), zap.Int("cases", len(cases)), zap.Int("users", len(users)))

	return nil
}
