package seeder

import (
	"context"
	"fmt"

	"resume-match/internal/database"
)

// TrendingSkillsSeeder loads a market snapshot so gap analysis works before
// the first collector run. The collector overwrites these rows on refresh.
type TrendingSkillsSeeder struct{}

func (TrendingSkillsSeeder) Name() string { return "trending_skills" }

func (TrendingSkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "trending_skills", "skill", "demand", "relevance", "salary_impact", "source", "updated_at"); err != nil {
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
		Skill        string
		Demand       int
		Relevance    float64
		SalaryImpact float64
	}{
		{Skill: "python", Demand: 9500, Relevance: 0.95, SalaryImpact: 15000},
		{Skill: "react", Demand: 8200, Relevance: 0.92, SalaryImpact: 12000},
		{Skill: "aws", Demand: 7800, Relevance: 0.90, SalaryImpact: 18000},
		{Skill: "docker", Demand: 6500, Relevance: 0.88, SalaryImpact: 10000},
		{Skill: "kubernetes", Demand: 6200, Relevance: 0.87, SalaryImpact: 16000},
		{Skill: "machine learning", Demand: 5800, Relevance: 0.93, SalaryImpact: 25000},
		{Skill: "node.js", Demand: 5500, Relevance: 0.85, SalaryImpact: 11000},
		{Skill: "typescript", Demand: 5300, Relevance: 0.86, SalaryImpact: 9000},
		{Skill: "microservices", Demand: 4800, Relevance: 0.84, SalaryImpact: 14000},
		{Skill: "graphql", Demand: 4200, Relevance: 0.82, SalaryImpact: 12000},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO trending_skills (skill, demand, relevance, salary_impact, source, updated_at)
			 VALUES ($1, $2, $3, $4, 'seed', NOW())
			 ON CONFLICT (skill) DO NOTHING`,
			it.Skill,
			it.Demand,
			it.Relevance,
			it.SalaryImpact,
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
