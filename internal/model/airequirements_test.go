package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIRequirementsRoundTrip(t *testing.T) {
	// Every non-empty subset of the allowed options must survive the trip.
	n := len(AIRequirementOptions)
	for mask := 1; mask < 1<<n; mask++ {
		subset := []string{}
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, AIRequirementOptions[i])
			}
		}

		encoded, err := EncodeAIRequirements(subset)
		assert.NoError(t, err)

		decoded, err := DecodeAIRequirements(encoded)
		assert.NoError(t, err)
		assert.ElementsMatch(t, subset, decoded)
	}
}

func TestDecodeAIRequirementsRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"a":1}`, `"ML"`} {
		_, err := DecodeAIRequirements(raw)
		assert.Error(t, err, "raw %q should not decode", raw)
	}
}

func TestLegacyProjectMapsToCanonicalShape(t *testing.T) {
	budget := "$50k-$100k"
	legacy := ProjectSubmission{
		ID:                   7,
		CompanyName:          "DataForge",
		Industry:             "Consulting",
		CompanySize:          "51-200",
		ContactPerson:        "B. Somsak",
		Email:                "contact@dataforge.example",
		ProjectTitle:         "Churn prediction",
		ProblemDescription:   "We need to predict customer churn from usage logs.",
		AIRequirements:       `["ML","Predictive Analytics"]`,
		EstimatedTimeline:    "3 months",
		DataAvailability:     "Yes",
		SecurityRequirements: "SOC2, data stays in EU region",
		BudgetRange:          &budget,
	}

	canonical, err := legacy.ToEnterpriseProject()
	assert.NoError(t, err)
	assert.Equal(t, legacy.ID, canonical.ID)
	assert.Equal(t, legacy.CompanyName, canonical.CompanyName)
	assert.Equal(t, []string{"ML", "Predictive Analytics"}, []string(canonical.AIRequirements))
	assert.Equal(t, &budget, canonical.BudgetRange)
}

func TestLegacyProjectDecodeFailureSurfaces(t *testing.T) {
	legacy := ProjectSubmission{AIRequirements: "ML, NLP"}
	_, err := legacy.ToEnterpriseProject()
	assert.Error(t, err)
}
