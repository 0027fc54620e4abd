package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeInput(t *testing.T, raw string) *DemographicInput {
	t.Helper()
	var in DemographicInput
	require.NoError(t, json.Unmarshal([]byte(raw), &in))
	return &in
}

const completeForm = `{
	"name": "Dana",
	"industry": "Technology",
	"companySize": "500",
	"department": "Engineering",
	"jobTitle": "Engineering Manager",
	"directReports": 6,
	"reportingRoles": "Team Leads",
	"decisionLevel": "Tactical",
	"typicalProject": "Quarterly platform upgrades",
	"levelsToCEO": "3",
	"managesBudget": "true"
}`

func TestProfileCoercesStringsAndNumbers(t *testing.T) {
	in := decodeInput(t, completeForm)

	profile, err := in.Profile()
	require.NoError(t, err)

	assert.Equal(t, 500, profile.CompanySize)
	assert.Equal(t, 6, profile.DirectReports)
	assert.Equal(t, 3, profile.LevelsToCEO)
	assert.True(t, profile.ManagesBudget)
	assert.Equal(t, "Tactical", profile.DecisionLevel)
}

func TestProfileBooleanVariants(t *testing.T) {
	for raw, want := range map[string]bool{
		`"true"`: true, `"1"`: true, `true`: true,
		`"false"`: false, `"0"`: false, `false`: false,
	} {
		var v flexValue
		require.NoError(t, json.Unmarshal([]byte(raw), &v))
		got, err := requireBool("managesBudget", v)
		require.NoError(t, err, "raw %s", raw)
		assert.Equal(t, want, got, "raw %s", raw)
	}
}

func TestProfileRejectsUnparseableNumber(t *testing.T) {
	in := decodeInput(t, completeForm)
	in.DirectReports = flexValue{raw: "several", set: true}

	_, err := in.Profile()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "directReports", vErr.Field)
}

func TestProfileRejectsMissingFields(t *testing.T) {
	cases := map[string]func(*DemographicInput){
		"jobTitle":      func(in *DemographicInput) { in.JobTitle = flexValue{} },
		"decisionLevel": func(in *DemographicInput) { in.DecisionLevel = flexValue{} },
		"companySize":   func(in *DemographicInput) { in.CompanySize = flexValue{} },
		"managesBudget": func(in *DemographicInput) { in.ManagesBudget = flexValue{} },
	}

	for field, mutate := range cases {
		in := decodeInput(t, completeForm)
		mutate(in)

		_, err := in.Profile()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "field %s", field)
		assert.Equal(t, field, vErr.Field)
	}
}

func TestProfileRejectsUnknownDecisionLevel(t *testing.T) {
	in := decodeInput(t, completeForm)
	in.DecisionLevel = flexValue{raw: "visionary", set: true}

	_, err := in.Profile()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "decisionLevel", vErr.Field)
}

func TestProfileRejectsNonPositiveCompanySize(t *testing.T) {
	in := decodeInput(t, completeForm)
	in.CompanySize = flexValue{raw: "0", set: true}

	_, err := in.Profile()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "companySize", vErr.Field)
}

func TestValidateProfile(t *testing.T) {
	p := &DemographicProfile{JobTitle: "Manager", DecisionLevel: "tactical"}
	assert.NoError(t, p.Validate())

	p.DirectReports = -1
	var vErr *ValidationError
	require.ErrorAs(t, p.Validate(), &vErr)
	assert.Equal(t, "directReports", vErr.Field)
}
