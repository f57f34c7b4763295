package seeder

import (
	"context"
	"fmt"

	"resume-match/internal/database"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "company", "description", "required_skills", "requirements", "required_experience", "salary_min", "salary_max", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title      string
		Company    string
		Desc       string
		Skills     []string
		Experience string
		SalaryMin  int
		SalaryMax  int
	}{
		{
			Title:      "Senior Backend Engineer",
			Company:    "Nimbus Labs",
			Desc:       "We are looking for a team player to own our Python services. Fast-paced startup culture with a strong focus on collaboration and mentoring.",
			Skills:     []string{"python", "postgresql", "docker", "aws"},
			Experience: "5 years",
			SalaryMin:  120000,
			SalaryMax:  160000,
		},
		{
			Title:      "Frontend Developer",
			Company:    "Brightpath",
			Desc:       "Independent self-starter wanted to build our React dashboard. Remote friendly.",
			Skills:     []string{"react", "typescript", "graphql"},
			Experience: "2 years",
			SalaryMin:  85000,
			SalaryMax:  110000,
		},
		{
			Title:      "Platform Engineer",
			Company:    "Corewire",
			Desc:       "Own our Kubernetes platform end to end. You will lead infrastructure initiatives and mentor junior engineers in a collaborative environment.",
			Skills:     []string{"kubernetes", "docker", "aws", "terraform"},
			Experience: "4 years",
			SalaryMin:  130000,
			SalaryMax:  170000,
		},
		{
			Title:      "Machine Learning Engineer",
			Company:    "Signalfield",
			Desc:       "Build and ship ML models into production. Innovation driven culture, cutting-edge stack.",
			Skills:     []string{"python", "machine learning", "aws"},
			Experience: "3 years",
			SalaryMin:  140000,
			SalaryMax:  190000,
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, title, company, description, required_skills, requirements, required_experience, salary_min, salary_max)
			 SELECT gen_random_uuid(), $1, $2, $3, $4, '{}', $5, $6, $7
			 WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $1 AND company = $2)`,
			it.Title,
			it.Company,
			it.Desc,
			it.Skills,
			it.Experience,
			it.SalaryMin,
			it.SalaryMax,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
