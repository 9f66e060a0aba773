package intake

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Builder assembles case records. Clock and case number source are
// replaceable so tests can pin them.
type Builder struct {
	loc        *time.Location
	now        func() time.Time
	caseNumber func() int64
	submission func() string
}

// BuilderOption customizes a Builder
type BuilderOption func(*Builder)

// WithClock replaces time.Now
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// WithCaseNumbers replaces the random case number source
func WithCaseNumbers(next func() int64) BuilderOption {
	return func(b *Builder) { b.caseNumber = next }
}

// WithSubmissionIDs replaces the random submission ID source
func WithSubmissionIDs(next func() string) BuilderOption {
	return func(b *Builder) { b.submission = next }
}

// NewBuilder creates a builder that stamps records in loc
func NewBuilder(loc *time.Location, opts ...BuilderOption) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	b := &Builder{
		loc:        loc,
		now:        time.Now,
		caseNumber: RandomCaseNumber,
		submission: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RandomCaseNumber draws a uniform 10-digit case number. Uniqueness is not
// checked against the store; two submissions may share a number.
func RandomCaseNumber() int64 {
	return MinCaseNumber + rand.Int63n(MaxCaseNumber-MinCaseNumber+1)
}

// FromSubmission normalizes sub and builds its record
func (b *Builder) FromSubmission(sub Submission) (*CaseRecord, error) {
	now := b.now().In(b.loc)
	n, err := Normalize(sub, now)
	if err != nil {
		return nil, err
	}
	return b.build(n, sub, now), nil
}

// Build combines normalized groups with the scalar fields of sub
func (b *Builder) Build(n Normalized, sub Submission) *CaseRecord {
	return b.build(n, sub, b.now().In(b.loc))
}

func (b *Builder) build(n Normalized, sub Submission, now time.Time) *CaseRecord {
	record := &CaseRecord{
		CaseNumber:            b.caseNumber(),
		SubmissionID:          b.submission(),
		Complainants:          n.Complainants,
		Respondents:           n.Respondents,
		CaseTypes:             n.CaseTypes,
		PlaceOfIncident:       sub.PlaceOfIncident,
		IncidentDate:          n.IncidentDate,
		IncidentTime:          n.IncidentTime,
		Description:           sub.Description,
		DrugRelatedInfo:       sub.DrugRelatedDescription,
		DepartmentAffiliation: sub.Affiliation(),
		Status:                StatusOngoing,
		CreatedAt:             now.Format(TimestampLayout),
	}
	if len(n.Children) > 0 {
		record.Children = n.Children
	}
	return record
}
