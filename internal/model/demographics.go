package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValidationError reports a missing or malformed input field. Callers should
// re-prompt the user; the request is not retryable as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// DemographicProfile is the strongly-typed respondent context consumed by the
// classifier. It is produced once per assessment attempt from a
// DemographicInput and is read-only afterward.
type DemographicProfile struct {
	Name           string `json:"name" bson:"name"`
	Industry       string `json:"industry" bson:"industry"`
	CompanySize    int    `json:"companySize" bson:"companySize"`
	Department     string `json:"department" bson:"department"`
	JobTitle       string `json:"jobTitle" bson:"jobTitle"`
	DirectReports  int    `json:"directReports" bson:"directReports"`
	ReportingRoles string `json:"reportingRoles" bson:"reportingRoles"`
	DecisionLevel  string `json:"decisionLevel" bson:"decisionLevel"`
	TypicalProject string `json:"typicalProject" bson:"typicalProject"`
	LevelsToCEO    int    `json:"levelsToCEO" bson:"levelsToCEO"`
	ManagesBudget  bool   `json:"managesBudget" bson:"managesBudget"`
}

// Validate checks the fields the classifier depends on.
func (p *DemographicProfile) Validate() error {
	if strings.TrimSpace(p.JobTitle) == "" {
		return &ValidationError{Field: "jobTitle", Message: "required"}
	}
	if strings.TrimSpace(p.DecisionLevel) == "" {
		return &ValidationError{Field: "decisionLevel", Message: "required"}
	}
	if p.DirectReports < 0 {
		return &ValidationError{Field: "directReports", Message: "must be 0 or greater"}
	}
	if p.LevelsToCEO < 0 {
		return &ValidationError{Field: "levelsToCEO", Message: "must be 0 or greater"}
	}
	return nil
}

// flexValue accepts a JSON string, number, or bool. Demographic forms submit
// numeric fields as strings, so the boundary has to coerce rather than assume.
type flexValue struct {
	raw string
	set bool
}

func (f *flexValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		f.raw = v
	} else {
		f.raw = s
	}
	f.set = true
	return nil
}

func (f flexValue) String() string { return strings.TrimSpace(f.raw) }

// DemographicInput is the raw form payload. Numeric and boolean fields may
// arrive as strings; Profile performs the coercion and rejects anything that
// does not parse instead of defaulting to zero.
type DemographicInput struct {
	Name           flexValue `json:"name"`
	Industry       flexValue `json:"industry"`
	CompanySize    flexValue `json:"companySize"`
	Department     flexValue `json:"department"`
	JobTitle       flexValue `json:"jobTitle"`
	DirectReports  flexValue `json:"directReports"`
	ReportingRoles flexValue `json:"reportingRoles"`
	DecisionLevel  flexValue `json:"decisionLevel"`
	TypicalProject flexValue `json:"typicalProject"`
	LevelsToCEO    flexValue `json:"levelsToCEO"`
	ManagesBudget  flexValue `json:"managesBudget"`
}

// Profile coerces the raw input into a DemographicProfile.
func (in *DemographicInput) Profile() (*DemographicProfile, error) {
	directReports, err := requireInt("directReports", in.DirectReports)
	if err != nil {
		return nil, err
	}
	levelsToCEO, err := requireInt("levelsToCEO", in.LevelsToCEO)
	if err != nil {
		return nil, err
	}
	companySize, err := requireInt("companySize", in.CompanySize)
	if err != nil {
		return nil, err
	}
	if companySize < 1 {
		return nil, &ValidationError{Field: "companySize", Message: "must be a positive number"}
	}
	managesBudget, err := requireBool("managesBudget", in.ManagesBudget)
	if err != nil {
		return nil, err
	}
	if !in.JobTitle.set || in.JobTitle.String() == "" {
		return nil, &ValidationError{Field: "jobTitle", Message: "required"}
	}
	if !in.DecisionLevel.set || in.DecisionLevel.String() == "" {
		return nil, &ValidationError{Field: "decisionLevel", Message: "required"}
	}
	switch strings.ToLower(in.DecisionLevel.String()) {
	case "operational", "tactical", "strategic":
	default:
		return nil, &ValidationError{Field: "decisionLevel", Message: "must be operational, tactical, or strategic"}
	}

	return &DemographicProfile{
		Name:           in.Name.String(),
		Industry:       in.Industry.String(),
		CompanySize:    companySize,
		Department:     in.Department.String(),
		JobTitle:       in.JobTitle.String(),
		DirectReports:  directReports,
		ReportingRoles: in.ReportingRoles.String(),
		DecisionLevel:  in.DecisionLevel.String(),
		TypicalProject: in.TypicalProject.String(),
		LevelsToCEO:    levelsToCEO,
		ManagesBudget:  managesBudget,
	}, nil
}

func requireInt(field string, v flexValue) (int, error) {
	if !v.set || v.String() == "" {
		return 0, &ValidationError{Field: field, Message: "required"}
	}
	n, err := strconv.Atoi(v.String())
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "must be a whole number"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: field, Message: "must be 0 or greater"}
	}
	return n, nil
}

func requireBool(field string, v flexValue) (bool, error) {
	if !v.set || v.String() == "" {
		return false, &ValidationError{Field: field, Message: "required"}
	}
	b, err := strconv.ParseBool(strings.ToLower(v.String()))
	if err != nil {
		return false, &ValidationError{Field: field, Message: "must be true or false"}
	}
	return b, nil
}
