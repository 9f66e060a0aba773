package database

import (
	"time"

	"gorm.io/gorm"
)

// SubmissionLog records the outcome of one complaint submission
type SubmissionLog struct {
	gorm.Model
	RequestID     string    `json:"request_id" gorm:"index"`
	CaseNumber    int64     `json:"case_number" gorm:"index"`
	Affiliation   string    `json:"affiliation"`
	Tables        string    `json:"tables"`
	SubmissionID  string    `json:"submission_id"`
	WrittenTables string    `json:"written_tables"`
	RolledBack    string    `json:"rolled_back_tables"`
	Success       bool      `json:"success"`
	ErrorKind     string    `json:"error_kind"`
	ErrorMessage  string    `json:"error_message" gorm:"type:text"`
	SubmittedAt   time.Time `json:"submitted_at"`
	IPAddress     string    `json:"ip_address"`
}

// Error kinds stored in SubmissionLog.ErrorKind
const (
	ErrorKindInput = "input"
	ErrorKindStore = "store"
)

func (SubmissionLog) TableName() string {
	return "submission_logs"
}
