// Command-line tool to fold the legacy project_submissions rows into the
// canonical enterprise_projects table. Dry run by default; pass --apply to
// copy the rows and delete them from the legacy table in one transaction.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/hamedazad/synurix/internal/database"
	"github.com/hamedazad/synurix/internal/model"
)

func main() {
	apply := flag.Bool("apply", false, "perform the migration instead of reporting it")
	flag.Parse()

	config, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Database not configured: %v", err)
	}
	db, err := database.NewDBInstance(config)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	subs, err := db.ListProjectSubmissions(context.Background())
	if err != nil {
		log.Fatalf("Failed to read legacy submissions: %v", err)
	}
	if len(subs) == 0 {
		fmt.Println("No legacy project submissions to migrate.")
		return
	}

	// Decode every row first so a malformed one stops the run before any write.
	projects := make([]model.EnterpriseProject, 0, len(subs))
	for _, sub := range subs {
		project, err := sub.ToEnterpriseProject()
		if err != nil {
			log.Fatalf("Legacy submission %d cannot be decoded: %v", sub.ID, err)
		}
		project.ID = 0
		projects = append(projects, project)
	}

	if !*apply {
		fmt.Printf("Would migrate %d legacy project submissions:\n", len(subs))
		for i, sub := range subs {
			fmt.Printf("  %d  %s  %q  %s\n", sub.ID, sub.CompanyName, projects[i].ProjectTitle, sub.CreatedAt.Format("2006-01-02"))
		}
		fmt.Println("Re-run with --apply to perform the migration.")
		return
	}

	fmt.Printf("This will move %d rows from project_submissions into enterprise_projects\n", len(subs))
	fmt.Print("and delete the legacy rows. Continue? (yes/no): ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	if strings.TrimSpace(strings.ToLower(input)) != "yes" {
		fmt.Println("Operation cancelled.")
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range projects {
			if err := tx.Create(&projects[i]).Error; err != nil {
				return fmt.Errorf("insert project from legacy submission %d: %w", subs[i].ID, err)
			}
		}
		if err := tx.Delete(&model.ProjectSubmission{}, "id IN ?", submissionIDs(subs)).Error; err != nil {
			return fmt.Errorf("delete legacy submissions: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Migration failed, nothing was changed: %v", err)
	}

	fmt.Printf("Migrated %d legacy project submissions.\n", len(subs))
}

func submissionIDs(subs []model.ProjectSubmission) []uint {
	ids := make([]uint, len(subs))
	for i, sub := range subs {
		ids[i] = sub.ID
	}
	return ids
}
