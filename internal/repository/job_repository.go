package repository

import (
	"context"
	"errors"

	"resume-match/internal/database"
	"resume-match/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, company, description, required_skills, requirements,
		                   required_experience, salary_min, salary_max, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		j.ID, j.Title, j.Company, j.Description, j.RequiredSkills, j.Requirements,
		j.RequiredExperience, j.SalaryMin, j.SalaryMax, j.CreatedAt, j.UpdatedAt,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	var j job.Job
	err := r.db.QueryRow(ctx,
		`SELECT id, title, company, description, required_skills, requirements,
		        required_experience, salary_min, salary_max, created_at, updated_at
		 FROM jobs WHERE id = $1`, id).Scan(
		&j.ID, &j.Title, &j.Company, &j.Description, &j.RequiredSkills, &j.Requirements,
		&j.RequiredExperience, &j.SalaryMin, &j.SalaryMax, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, description, required_skills, requirements,
		        required_experience, salary_min, salary_max, created_at, updated_at
		 FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Description, &j.RequiredSkills, &j.Requirements,
			&j.RequiredExperience, &j.SalaryMin, &j.SalaryMax, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
