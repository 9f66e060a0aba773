package database

import "gorm.io/gorm"

// SubmissionPage is one page of the submission log
type SubmissionPage struct {
	Items []SubmissionLog
	Total int64
	Page  int
	Limit int
}

// RecordSubmission inserts a log row
func RecordSubmission(db *gorm.DB, entry *SubmissionLog) error {
	return db.Create(entry).Error
}

// ListSubmissions returns the log newest first
func ListSubmissions(db *gorm.DB, page, limit int) (*SubmissionPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	out := SubmissionPage{Page: page, Limit: limit}
	if err := db.Model(&SubmissionLog{}).Count(&out.Total).Error; err != nil {
		return nil, err
	}

	err := db.Order("submitted_at DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&out.Items).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}
