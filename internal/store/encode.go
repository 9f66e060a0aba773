package store

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/JustJay7/bpso-complaint-intake/internal/intake"
)

// Attribute names of a persisted case item
const (
	AttrCaseNumber      = "case_number"
	AttrSubmissionID    = "submission_id"
	AttrComplainants    = "case_complainants"
	AttrRespondents     = "case_respondents"
	AttrCaseType        = "case_type"
	AttrPlaceOfIncident = "place_of_incident"
	AttrIncidentDate    = "incident_case_issued"
	AttrIncidentTime    = "incident_case_time"
	AttrDescription     = "case_description"
	AttrDrugRelated     = "case_drug_related_information"
	AttrAffiliation     = "affiliated_dept_case"
	AttrStatus          = "case_status"
	AttrCreated         = "case_created"
	AttrChildren        = "bcpc_children_infos"
)

// EncodeRecord converts a record into DynamoDB's tagged attribute-value
// form. The children list is omitted when empty.
func EncodeRecord(r *intake.CaseRecord) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		AttrCaseNumber:      num(r.CaseNumber),
		AttrSubmissionID:    str(r.SubmissionID),
		AttrComplainants:    parties(r.Complainants, "is_complainant_resident"),
		AttrRespondents:     parties(r.Respondents, "is_respondent_resident"),
		AttrCaseType:        caseTypes(r.CaseTypes),
		AttrPlaceOfIncident: str(r.PlaceOfIncident),
		AttrIncidentDate:    str(r.IncidentDate),
		AttrIncidentTime:    str(r.IncidentTime),
		AttrDescription:     str(r.Description),
		AttrDrugRelated:     str(r.DrugRelatedInfo),
		AttrAffiliation:     str(r.DepartmentAffiliation),
		AttrStatus:          str(r.Status),
		AttrCreated:         str(r.CreatedAt),
	}

	if len(r.Children) > 0 {
		children := make([]types.AttributeValue, 0, len(r.Children))
		for _, c := range r.Children {
			children = append(children, &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"child_name":    str(c.Name),
				"child_age":     num(int64(c.Age)),
				"child_gender":  str(c.Gender),
				"child_address": str(c.Address),
			}})
		}
		item[AttrChildren] = &types.AttributeValueMemberL{Value: children}
	}

	return item
}

// Key returns the primary key of the item for caseNumber
func Key(caseNumber int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{AttrCaseNumber: num(caseNumber)}
}

func parties(ps []intake.Party, residentAttr string) *types.AttributeValueMemberL {
	list := make([]types.AttributeValue, 0, len(ps))
	for _, p := range ps {
		list = append(list, &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"name":       str(p.Name),
			"address":    str(p.Address),
			residentAttr: str(p.Resident),
		}})
	}
	return &types.AttributeValueMemberL{Value: list}
}

func caseTypes(cts []intake.CaseType) *types.AttributeValueMemberL {
	list := make([]types.AttributeValue, 0, len(cts))
	for _, ct := range cts {
		list = append(list, &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"case_type":    str(ct.CaseType),
			"initial_case": str(ct.InitialCase),
		}})
	}
	return &types.AttributeValueMemberL{Value: list}
}

func str(s string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: s}
}

func num(n int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}

// caseItem mirrors the persisted layout for decoding
type caseItem struct {
	CaseNumber      int64             `dynamodbav:"case_number"`
	SubmissionID    string            `dynamodbav:"submission_id"`
	Complainants    []complainantItem `dynamodbav:"case_complainants"`
	Respondents     []respondentItem  `dynamodbav:"case_respondents"`
	CaseTypes       []caseTypeItem    `dynamodbav:"case_type"`
	PlaceOfIncident string            `dynamodbav:"place_of_incident"`
	IncidentDate    string            `dynamodbav:"incident_case_issued"`
	IncidentTime    string            `dynamodbav:"incident_case_time"`
	Description     string            `dynamodbav:"case_description"`
	DrugRelated     string            `dynamodbav:"case_drug_related_information"`
	Affiliation     string            `dynamodbav:"affiliated_dept_case"`
	Status          string            `dynamodbav:"case_status"`
	Created         string            `dynamodbav:"case_created"`
	Children        []childItem       `dynamodbav:"bcpc_children_infos"`
}

type complainantItem struct {
	Name     string `dynamodbav:"name"`
	Address  string `dynamodbav:"address"`
	Resident string `dynamodbav:"is_complainant_resident"`
}

type respondentItem struct {
	Name     string `dynamodbav:"name"`
	Address  string `dynamodbav:"address"`
	Resident string `dynamodbav:"is_respondent_resident"`
}

type caseTypeItem struct {
	CaseType    string `dynamodbav:"case_type"`
	InitialCase string `dynamodbav:"initial_case"`
}

type childItem struct {
	Name    string `dynamodbav:"child_name"`
	Age     int    `dynamodbav:"child_age"`
	Gender  string `dynamodbav:"child_gender"`
	Address string `dynamodbav:"child_address"`
}

// DecodeRecord converts a stored item back into a record
func DecodeRecord(item map[string]types.AttributeValue) (*intake.CaseRecord, error) {
	var doc caseItem
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, err
	}

	r := &intake.CaseRecord{
		CaseNumber:            doc.CaseNumber,
		SubmissionID:          doc.SubmissionID,
		Complainants:          make([]intake.Party, 0, len(doc.Complainants)),
		Respondents:           make([]intake.Party, 0, len(doc.Respondents)),
		CaseTypes:             make([]intake.CaseType, 0, len(doc.CaseTypes)),
		PlaceOfIncident:       doc.PlaceOfIncident,
		IncidentDate:          doc.IncidentDate,
		IncidentTime:          doc.IncidentTime,
		Description:           doc.Description,
		DrugRelatedInfo:       doc.DrugRelated,
		DepartmentAffiliation: doc.Affiliation,
		Status:                doc.Status,
		CreatedAt:             doc.Created,
	}
	for _, c := range doc.Complainants {
		r.Complainants = append(r.Complainants, intake.Party(c))
	}
	for _, p := range doc.Respondents {
		r.Respondents = append(r.Respondents, intake.Party(p))
	}
	for _, ct := range doc.CaseTypes {
		r.CaseTypes = append(r.CaseTypes, intake.CaseType(ct))
	}
	for _, c := range doc.Children {
		r.Children = append(r.Children, intake.Child(c))
	}
	return r, nil
}
