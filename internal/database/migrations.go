package database

import "gorm.io/gorm"

// createIndexes creates indexes that AutoMigrate does not derive from tags
func createIndexes(db *gorm.DB) error {
	// Dashboard listing, newest first
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_submission_logs_time
		ON submission_logs(submitted_at)
	`).Error; err != nil {
		return err
	}

	// Failed submissions by kind
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_submission_logs_outcome
		ON submission_logs(success, error_kind)
	`).Error; err != nil {
		return err
	}

	return nil
}
