package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkstore/resume-dashboard/internal/types"
)

func TestReportSchema_IsValidJSON(t *testing.T) {
	var v interface{}
	assert.NoError(t, json.Unmarshal([]byte(reportSchema), &v))
}

func TestValidateReportJSON_ValidReport(t *testing.T) {
	report := types.Report{
		ID:              "42",
		Summary:         "Strong backend profile.",
		ATSScore:        87,
		JobMatch:        74,
		Strengths:       []string{"Go", "Kubernetes"},
		MissingKeywords: []string{"Terraform"},
	}
	encoded, err := json.Marshal(report)
	require.NoError(t, err)

	assert.NoError(t, ValidateReportJSON(string(encoded)))
}

func TestValidateReportJSON_ScoreOutOfRange(t *testing.T) {
	err := ValidateReportJSON(`{"id":"1","summary":"s","atsScore":130,"jobMatch":50}`)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Equal(t, "atsScore", verr.Errors[0].Field)
}

func TestValidateReportJSON_MissingRequiredFields(t *testing.T) {
	err := ValidateReportJSON(`{"summary":"s"}`)
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)
	assert.Error(t, err)
}
