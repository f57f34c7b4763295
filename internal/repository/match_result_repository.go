package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resume-match/internal/database"
	"resume-match/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresMatchResultRepository struct {
	db database.DB
}

func NewPostgresMatchResultRepository(db database.DB) *PostgresMatchResultRepository {
	return &PostgresMatchResultRepository{db: db}
}

func (r *PostgresMatchResultRepository) Upsert(ctx context.Context, res match.Result) error {
	if res.ResumeID == uuid.Nil || res.JobID == uuid.Nil {
		return nil
	}
	if res.ComputedAt.IsZero() {
		res.ComputedAt = time.Now().UTC()
	}
	related, err := json.Marshal(res.RelatedSkills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO match_results (id, resume_id, job_id, score, matched_skills, missing_skills, related_skills,
		                            resume_months, required_months, experience_match,
		                            overall_score, semantic_similarity, skill_relevance, experience_fit,
		                            cultural_fit, salary_alignment, computed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		 ON CONFLICT (resume_id, job_id) DO UPDATE SET
			score = EXCLUDED.score,
			matched_skills = EXCLUDED.matched_skills,
			missing_skills = EXCLUDED.missing_skills,
			related_skills = EXCLUDED.related_skills,
			resume_months = EXCLUDED.resume_months,
			required_months = EXCLUDED.required_months,
			experience_match = EXCLUDED.experience_match,
			overall_score = EXCLUDED.overall_score,
			semantic_similarity = EXCLUDED.semantic_similarity,
			skill_relevance = EXCLUDED.skill_relevance,
			experience_fit = EXCLUDED.experience_fit,
			cultural_fit = EXCLUDED.cultural_fit,
			salary_alignment = EXCLUDED.salary_alignment,
			computed_at = EXCLUDED.computed_at`,
		uuid.New(), res.ResumeID, res.JobID, res.Score, res.MatchedSkills, res.MissingSkills, related,
		res.ResumeMonths, res.RequiredMonths, res.ExperienceMatch,
		res.OverallScore, res.SemanticSimilarity, res.SkillRelevance, res.ExperienceFit,
		res.CulturalFit, res.SalaryAlignment, res.ComputedAt,
	)
	return err
}

func (r *PostgresMatchResultRepository) Get(ctx context.Context, resumeID, jobID uuid.UUID) (match.Result, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, resume_id, job_id, score, matched_skills, missing_skills, related_skills,
		        resume_months, required_months, experience_match,
		        overall_score, semantic_similarity, skill_relevance, experience_fit,
		        cultural_fit, salary_alignment, computed_at
		 FROM match_results WHERE resume_id = $1 AND job_id = $2`,
		resumeID, jobID,
	)
	return scanMatchResult(row)
}

func (r *PostgresMatchResultRepository) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]match.Result, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, resume_id, job_id, score, matched_skills, missing_skills, related_skills,
		        resume_months, required_months, experience_match,
		        overall_score, semantic_similarity, skill_relevance, experience_fit,
		        cultural_fit, salary_alignment, computed_at
		 FROM match_results WHERE resume_id = $1 ORDER BY score DESC, computed_at DESC`,
		resumeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Result, 0)
	for rows.Next() {
		res, err := scanMatchResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatchResult(row database.Row) (match.Result, error) {
	var res match.Result
	var related []byte
	err := row.Scan(
		&res.ID, &res.ResumeID, &res.JobID, &res.Score, &res.MatchedSkills, &res.MissingSkills, &related,
		&res.ResumeMonths, &res.RequiredMonths, &res.ExperienceMatch,
		&res.OverallScore, &res.SemanticSimilarity, &res.SkillRelevance, &res.ExperienceFit,
		&res.CulturalFit, &res.SalaryAlignment, &res.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Result{}, match.ErrNotFound
		}
		return match.Result{}, err
	}
	if len(related) > 0 {
		if err := json.Unmarshal(related, &res.RelatedSkills); err != nil {
			return match.Result{}, err
		}
	}
	return res, nil
}
