package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/hamedazad/synurix/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded submissions, one per table. Timestamps are fixed relative
// to container start so ordering assertions stay deterministic.
var (
	TestCareerApp1     m.CareerApplication
	TestCooperation1   m.CooperationApplication
	TestEnterprise1    m.EnterpriseProject
	TestLegacyProject1 m.ProjectSubmission
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		UseConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts one known submission per table if the tables are empty.
func seedTestData(db *DBinstanceStruct) error {
	var careerCount int64
	if err := db.Model(&m.CareerApplication{}).Count(&careerCount).Error; err != nil {
		return err
	}
	if careerCount > 0 {
		return loadTestData(db)
	}

	now := time.Now().UTC().Truncate(time.Second)

	profileURL := "https://linkedin.com/in/alice-nguyen"
	TestCareerApp1 = m.CareerApplication{
		FullName:          "Alice Nguyen",
		Email:             "alice@example.com",
		Phone:             "+66810000001",
		Location:          "Bangkok",
		ProfileURL:        &profileURL,
		RoleOfInterest:    "Backend Engineer",
		YearsOfExperience: 4,
		KeySkills:         "Go, PostgreSQL, Docker",
		Motivation:        "I want to build reliable backend systems for AI products and grow with the team.",
		Availability:      "Full-time",
		CreatedAt:         now.Add(-48 * time.Hour),
	}
	if err := db.Create(&TestCareerApp1).Error; err != nil {
		return err
	}

	TestCooperation1 = m.CooperationApplication{
		FullName:   "Bob Somsak",
		Email:      "bob@example.com",
		Role:       "Data Scientist",
		Skills:     "Python, pandas, scikit-learn",
		Motivation: "Looking to cooperate on applied ML projects.",
		CreatedAt:  now.Add(-36 * time.Hour),
	}
	if err := db.Create(&TestCooperation1).Error; err != nil {
		return err
	}

	budget := "$25k-$50k"
	TestEnterprise1 = m.EnterpriseProject{
		CompanyName:          "TechNova",
		Industry:             "Software",
		CompanySize:          "51-200",
		ContactPerson:        "Carol Lim",
		Email:                "carol@technova.example",
		ProjectTitle:         "Support ticket triage",
		ProblemDescription:   "We receive thousands of support tickets a week and need automated routing by topic and urgency.",
		AIRequirements:       []string{"NLP", "ML"},
		EstimatedTimeline:    "3 months",
		DataAvailability:     "Yes",
		SecurityRequirements: "Data must stay within our VPC.",
		BudgetRange:          &budget,
		CreatedAt:            now.Add(-24 * time.Hour),
	}
	if err := db.Create(&TestEnterprise1).Error; err != nil {
		return err
	}

	TestLegacyProject1 = m.ProjectSubmission{
		CompanyName:          "DataForge",
		Industry:             "Consulting",
		CompanySize:          "11-50",
		ContactPerson:        "Dan Ford",
		Email:                "dan@dataforge.example",
		ProjectTitle:         "Churn prediction",
		ProblemDescription:   "Customer churn is rising and we want an early warning model over usage logs.",
		AIRequirements:       `["ML","Predictive Analytics"]`,
		EstimatedTimeline:    "6 months",
		DataAvailability:     "Not sure",
		SecurityRequirements: "SOC2 compliance required.",
		CreatedAt:            now.Add(-72 * time.Hour),
	}
	if err := db.Create(&TestLegacyProject1).Error; err != nil {
		return err
	}

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.Order("id ASC").First(&TestCareerApp1).Error; err != nil {
		return err
	}
	if err := db.Order("id ASC").First(&TestCooperation1).Error; err != nil {
		return err
	}
	if err := db.Order("id ASC").First(&TestEnterprise1).Error; err != nil {
		return err
	}
	return db.Order("id ASC").First(&TestLegacyProject1).Error
}
