package repository

import (
	"context"
	"time"

	"resume-match/internal/database"
	"resume-match/internal/domain/trending"
)

type PostgresTrendingSkillRepository struct {
	db database.DB
}

func NewPostgresTrendingSkillRepository(db database.DB) *PostgresTrendingSkillRepository {
	return &PostgresTrendingSkillRepository{db: db}
}

func (r *PostgresTrendingSkillRepository) ListAll(ctx context.Context) ([]trending.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill, demand, relevance, salary_impact, source, updated_at
		 FROM trending_skills ORDER BY skill ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]trending.Skill, 0)
	for rows.Next() {
		var s trending.Skill
		if err := rows.Scan(&s.Name, &s.Demand, &s.Relevance, &s.SalaryImpact, &s.Source, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTrendingSkillRepository) Upsert(ctx context.Context, s trending.Skill) error {
	if s.Name == "" {
		return nil
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO trending_skills (skill, demand, relevance, salary_impact, source, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (skill) DO UPDATE SET
			demand = EXCLUDED.demand,
			relevance = EXCLUDED.relevance,
			salary_impact = EXCLUDED.salary_impact,
			source = EXCLUDED.source,
			updated_at = EXCLUDED.updated_at`,
		s.Name, s.Demand, s.Relevance, s.SalaryImpact, s.Source, s.UpdatedAt,
	)
	return err
}
