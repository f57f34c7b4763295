package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resume-match/internal/database"
	"resume-match/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Create(ctx context.Context, rec resume.Resume) error {
	parsed, err := json.Marshal(rec.Parsed)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO resumes (id, user_id, filename, content_type, raw_text, parsed, status, uploaded_at, parsed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rec.ID, rec.UserID, rec.Filename, rec.ContentType, rec.RawText, parsed, rec.Status, rec.UploadedAt, rec.ParsedAt,
	)
	return err
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, filename, content_type, raw_text, parsed, status, uploaded_at, parsed_at
		 FROM resumes WHERE id = $1`, id)
	return scanResume(row)
}

func (r *PostgresResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, filename, content_type, raw_text, parsed, status, uploaded_at, parsed_at
		 FROM resumes WHERE user_id = $1 ORDER BY uploaded_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResumeRepository) UpdateParsed(ctx context.Context, id uuid.UUID, parsed resume.Parsed, status string) error {
	b, err := json.Marshal(parsed)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE resumes SET parsed = $2, status = $3, parsed_at = $4 WHERE id = $1`,
		id, b, status, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *PostgresResumeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	n, err := r.db.Exec(ctx, `UPDATE resumes SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if n == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func scanResume(row database.Row) (resume.Resume, error) {
	var rec resume.Resume
	var parsed []byte
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Filename, &rec.ContentType, &rec.RawText,
		&parsed, &rec.Status, &rec.UploadedAt, &rec.ParsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	if len(parsed) > 0 {
		if err := json.Unmarshal(parsed, &rec.Parsed); err != nil {
			return resume.Resume{}, err
		}
	}
	return rec, nil
}
