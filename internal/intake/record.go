// Package intake turns a submitted complaint form into a case record and
// decides which department tables receive it.
package intake

import "time"

// Department affiliation values accepted from the special_case field
const (
	AffiliationNone      = "None"
	AffiliationBCPC      = "BCPC"
	AffiliationBADAC     = "BADAC"
	AffiliationBADACBCPC = "BADAC & BCPC"
	AffiliationVAWC      = "VAWC"
)

// StatusOngoing is the status of every newly filed case
const StatusOngoing = "Ongoing"

// Case numbers are 10 digits
const (
	MinCaseNumber int64 = 1_000_000_000
	MaxCaseNumber int64 = 9_999_999_999
)

// Layouts of the normalized date and time fields
const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05-07:00"
	TimestampLayout = "2006-01-02T15:04:05-07:00"
)

// Party is a complainant or a respondent
type Party struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Resident string `json:"resident"`
}

// Child is a minor involved in a child-welfare case
type Child struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
}

// CaseType pairs a case type with its initial case
type CaseType struct {
	CaseType    string `json:"case_type"`
	InitialCase string `json:"initial_case"`
}

// CaseRecord is the document written to every destination table.
// It is built once per submission and never updated. SubmissionID tells
// apart records that drew the same case number.
type CaseRecord struct {
	CaseNumber            int64      `json:"case_number"`
	SubmissionID          string     `json:"submission_id"`
	Complainants          []Party    `json:"complainants"`
	Respondents           []Party    `json:"respondents"`
	CaseTypes             []CaseType `json:"case_types"`
	PlaceOfIncident       string     `json:"place_of_incident"`
	IncidentDate          string     `json:"incident_date"`
	IncidentTime          string     `json:"incident_time"`
	Description           string     `json:"description"`
	DrugRelatedInfo       string     `json:"drug_related_info"`
	DepartmentAffiliation string     `json:"department_affiliation"`
	Status                string     `json:"status"`
	CreatedAt             string     `json:"created_at"`
	Children              []Child    `json:"children,omitempty"`
}

// Created parses CreatedAt; the zero time is returned when it is malformed
func (r *CaseRecord) Created() time.Time {
	t, err := time.Parse(TimestampLayout, r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
