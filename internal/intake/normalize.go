package intake

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatError reports a date or time field that could not be parsed.
// It aborts the whole submission.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Normalized holds the reshaped repeated groups and the canonical
// incident date and time of a submission.
type Normalized struct {
	Complainants []Party
	Respondents  []Party
	Children     []Child
	CaseTypes    []CaseType
	IncidentDate string
	IncidentTime string
}

// Normalize reshapes the parallel arrays of sub into one entry per index of
// each group's primary array and canonicalizes the incident date and time.
// now supplies the calendar day and zone the incident time is read in.
func Normalize(sub Submission, now time.Time) (Normalized, error) {
	n := Normalized{
		Complainants: make([]Party, 0, len(sub.ComplainantName)),
		Respondents:  make([]Party, 0, len(sub.RespondentName)),
		CaseTypes:    make([]CaseType, 0, len(sub.CaseType)),
	}

	for i, name := range sub.ComplainantName {
		n.Complainants = append(n.Complainants, Party{
			Name:     name,
			Address:  at(sub.ComplainantAddress, i),
			Resident: at(sub.ComplainantResident, i),
		})
	}

	for i, name := range sub.RespondentName {
		n.Respondents = append(n.Respondents, Party{
			Name:     name,
			Address:  at(sub.RespondentAddress, i),
			Resident: at(sub.RespondentResident, i),
		})
	}

	for i, name := range sub.ChildName {
		n.Children = append(n.Children, Child{
			Name:    name,
			Age:     ParseAge(at(sub.ChildAge, i)),
			Gender:  at(sub.ChildGender, i),
			Address: at(sub.ChildAddress, i),
		})
	}

	for i, caseType := range sub.CaseType {
		n.CaseTypes = append(n.CaseTypes, CaseType{
			CaseType:    caseType,
			InitialCase: at(sub.InitialCase, i),
		})
	}

	if sub.IncidentTime != nil {
		t, err := ParseIncidentTime(*sub.IncidentTime, now)
		if err != nil {
			return Normalized{}, err
		}
		n.IncidentTime = t
	}

	if sub.IncidentDate != nil {
		d, err := ParseIncidentDate(*sub.IncidentDate)
		if err != nil {
			return Normalized{}, err
		}
		n.IncidentDate = d
	}

	return n, nil
}

// ParseAge reads a child's age. Anything that is not a finite number
// becomes 0; fractions are truncated and negatives clamp to 0.
func ParseAge(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// ParseIncidentTime converts "15:04" input into "15:04:05-07:00" using the
// day and zone of now.
func ParseIncidentTime(raw string, now time.Time) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return "", &FormatError{Field: "incident_case_time", Value: raw, Err: err}
	}
	local := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	return local.Format(TimeLayout), nil
}

// ParseIncidentDate converts "2006-1-2" input into "2006-01-02"
func ParseIncidentDate(raw string) (string, error) {
	d, err := time.Parse("2006-1-2", strings.TrimSpace(raw))
	if err != nil {
		return "", &FormatError{Field: "incident_date", Value: raw, Err: err}
	}
	return d.Format(DateLayout), nil
}

// at returns values[i], or "" when the companion array is shorter
func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
