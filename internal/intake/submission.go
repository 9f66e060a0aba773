package intake

// Submission is the complaint form as posted by the browser. Repeated
// groups arrive as parallel arrays joined by index.
type Submission struct {
	ComplainantName     []string `form:"complainant_name[]"`
	ComplainantAddress  []string `form:"complainant_address[]"`
	ComplainantResident []string `form:"is_complainant_resident[]"`

	RespondentName     []string `form:"respondent_name[]"`
	RespondentAddress  []string `form:"respondent_address[]"`
	RespondentResident []string `form:"is_respondent_resident[]"`

	ChildName    []string `form:"child_name[]"`
	ChildAge     []string `form:"child_age[]"`
	ChildGender  []string `form:"child_gender[]"`
	ChildAddress []string `form:"child_address[]"`

	CaseType    []string `form:"case_type[]"`
	InitialCase []string `form:"initial_case[]"`

	PlaceOfIncident        string  `form:"place_of_incident"`
	IncidentDate           *string `form:"incident_date"`
	IncidentTime           *string `form:"incident_case_time"`
	Description            string  `form:"case_description"`
	DrugRelatedDescription string  `form:"case_drug_related_description"`
	SpecialCase            *string `form:"special_case"`
}

// Affiliation returns the submitted department affiliation, "None" when absent
func (s Submission) Affiliation() string {
	if s.SpecialCase == nil {
		return AffiliationNone
	}
	return *s.SpecialCase
}
