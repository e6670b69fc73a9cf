package dao

import "gorm.io/gorm"

// InitTables migrates the tables this service owns. The identity_users table
// is owned by the external identity provider and is deliberately not migrated
// here; the dev seed creates it for local runs.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Judge{},
		&Case{},
		&Attendance{},
	)
}
