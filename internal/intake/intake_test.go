package intake

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/hamedazad/synurix/internal/database"
	"github.com/hamedazad/synurix/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var testTeardown func(context.Context, ...testcontainers.TerminateOption) error
	testTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if testTeardown != nil {
		_ = testTeardown(ctx)
	}
	os.Exit(code)
}

func intPtr(v int) *int { return &v }

func validCareerRequest() CareerApplicationRequest {
	return CareerApplicationRequest{
		FullName:          "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "+10000000000",
		Location:          "Berlin",
		RoleOfInterest:    "AI Engineer",
		YearsOfExperience: intPtr(5),
		KeySkills:         "Python, ML",
		Motivation:        "I have spent five years building ML systems and want to apply that at Synurix.",
		Availability:      "Full-time",
	}
}

func validProjectRequest() EnterpriseProjectRequest {
	return EnterpriseProjectRequest{
		CompanyName:          "TechNova",
		Industry:             "Software",
		CompanySize:          "51-200",
		ContactPerson:        "Carol Lim",
		Email:                "carol@technova.example",
		ProjectTitle:         "Support ticket triage",
		ProblemDescription:   "We receive thousands of support tickets every week and need automated routing.",
		AIRequirements:       []string{"NLP", "ML"},
		EstimatedTimeline:    "3 months",
		DataAvailability:     "Yes",
		SecurityRequirements: "Data must stay within our VPC.",
	}
}

func TestValidateAcceptsValidCareerRequest(t *testing.T) {
	assert.Nil(t, Validate(validCareerRequest()))
}

func TestValidateEnumeratesMissingFields(t *testing.T) {
	verr := Validate(CareerApplicationRequest{})
	assert.NotNil(t, verr)

	for _, field := range []string{
		"fullName", "email", "phone", "location",
		"roleOfInterest", "yearsOfExperience", "keySkills", "motivation", "availability",
	} {
		assert.Contains(t, verr.Fields, field)
		assert.Equal(t, "is required", verr.Fields[field])
	}
	// Optional field must not be reported.
	assert.NotContains(t, verr.Fields, "profileUrl")
}

func TestValidateRejectsValuesOutsideClosedSets(t *testing.T) {
	req := validCareerRequest()
	req.RoleOfInterest = "Chief Vibes Officer"
	req.Availability = "Weekends"

	verr := Validate(req)
	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "roleOfInterest")
	assert.Contains(t, verr.Fields, "availability")
	assert.Len(t, verr.Fields, 2)
}

func TestValidateYearsOfExperienceBounds(t *testing.T) {
	for _, years := range []int{0, 40} {
		req := validCareerRequest()
		req.YearsOfExperience = intPtr(years)
		assert.Nil(t, Validate(req), "%d years should be valid", years)
	}
	for _, years := range []int{-1, 41} {
		req := validCareerRequest()
		req.YearsOfExperience = intPtr(years)
		verr := Validate(req)
		assert.NotNil(t, verr, "%d years should be invalid", years)
		assert.Contains(t, verr.Fields, "yearsOfExperience")
	}
}

func TestValidateOptionalURLs(t *testing.T) {
	req := validCareerRequest()
	req.ProfileURL = ""
	assert.Nil(t, Validate(req))

	req.ProfileURL = "https://github.com/janedoe"
	assert.Nil(t, Validate(req))

	req.ProfileURL = "not a url"
	verr := Validate(req)
	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "profileUrl")
}

func TestValidateCooperationMotivationLength(t *testing.T) {
	req := CooperationRequest{
		FullName:   "Bob Somsak",
		Email:      "bob@example.com",
		Role:       "Other",
		Skills:     "Rust, distributed systems",
		Motivation: "too short",
	}
	verr := Validate(req)
	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "motivation")
}

func TestValidateAIRequirementsSet(t *testing.T) {
	req := validProjectRequest()
	req.AIRequirements = []string{}
	verr := Validate(req)
	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "aiRequirements")

	req.AIRequirements = []string{"Quantum"}
	verr = Validate(req)
	assert.NotNil(t, verr)
	assert.NotEmpty(t, verr.Fields)
}

func TestSubmitCareerApplicationPersistsRow(t *testing.T) {
	service := NewService(testDB)

	app, err := service.SubmitCareerApplication(context.Background(), validCareerRequest())
	assert.NoError(t, err)
	assert.NotZero(t, app.ID)
	assert.False(t, app.CreatedAt.IsZero())

	apps, err := testDB.ListCareerApplications(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, app.ID, apps[0].ID)
	assert.Equal(t, "Jane Doe", apps[0].FullName)
}

func TestSubmitRejectedRequestLeavesNoRow(t *testing.T) {
	service := NewService(testDB)

	var before int64
	assert.NoError(t, testDB.Model(&model.CareerApplication{}).Count(&before).Error)

	req := validCareerRequest()
	req.Email = "not-an-email"
	_, err := service.SubmitCareerApplication(context.Background(), req)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")

	var after int64
	assert.NoError(t, testDB.Model(&model.CareerApplication{}).Count(&after).Error)
	assert.Equal(t, before, after, "no row may be persisted for a rejected submission")
}

func TestSubmitLegacyProjectEncodesRequirements(t *testing.T) {
	service := NewService(testDB)

	sub, err := service.SubmitLegacyProject(context.Background(), validProjectRequest())
	assert.NoError(t, err)
	assert.NotZero(t, sub.ID)

	decoded, err := model.DecodeAIRequirements(sub.AIRequirements)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"NLP", "ML"}, decoded)
}

func TestSubmitLegacyCooperateWritesShadowTable(t *testing.T) {
	service := NewService(testDB)

	var before int64
	assert.NoError(t, testDB.Model(&model.CareerSubmission{}).Count(&before).Error)

	req := CooperationRequest{
		FullName:   "Grace Ho",
		Email:      "grace@example.com",
		Role:       "Frontend Engineer",
		Skills:     "React, TypeScript, design systems",
		Motivation: "Would like to cooperate on the marketing site revamp.",
	}
	sub, err := service.SubmitLegacyCooperate(context.Background(), req)
	assert.NoError(t, err)
	assert.NotZero(t, sub.ID)

	var after int64
	assert.NoError(t, testDB.Model(&model.CareerSubmission{}).Count(&after).Error)
	assert.Equal(t, before+1, after)
}
