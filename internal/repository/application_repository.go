package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kolnlaviste/HireLink/internal/domain"
)

// ApplicationRepository defines persistence access for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	ListByPoster(ctx context.Context, posterID string) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `a.id, a.job_id, a.applicant_id, a.status, a.cover_note, a.created_at, a.updated_at`

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, applicant_id, status, cover_note)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		application.JobID,
		application.ApplicantID,
		application.Status,
		application.CoverNote,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	const query = `
        UPDATE applications SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING id, job_id, applicant_id, status, cover_note, created_at, updated_at`

	return scanApplication(r.pool.QueryRow(ctx, query, status, id))
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	const query = `
        SELECT id, job_id, applicant_id, status, cover_note, created_at, updated_at
        FROM applications WHERE id=$1`

	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *applicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	const query = `
        SELECT id, job_id, applicant_id, status, cover_note, created_at, updated_at
        FROM applications WHERE job_id=$1 AND applicant_id=$2`

	return scanApplication(r.pool.QueryRow(ctx, query, jobID, applicantID))
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]domain.Application, error) {
	const query = `
        SELECT id, job_id, applicant_id, status, cover_note, created_at, updated_at
        FROM applications ORDER BY created_at DESC`

	return r.queryMany(ctx, query)
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	const query = `
        SELECT id, job_id, applicant_id, status, cover_note, created_at, updated_at
        FROM applications WHERE applicant_id=$1 ORDER BY created_at DESC`

	return r.queryMany(ctx, query, applicantID)
}

func (r *applicationRepository) ListByPoster(ctx context.Context, posterID string) ([]domain.Application, error) {
	const query = `
        SELECT ` + applicationColumns + `
        FROM applications a
        JOIN jobs j ON j.id = a.job_id
        WHERE j.posted_by_id=$1
        ORDER BY a.created_at DESC`

	return r.queryMany(ctx, query, posterID)
}

func (r *applicationRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var application domain.Application
		if err := rows.Scan(
			&application.ID,
			&application.JobID,
			&application.ApplicantID,
			&application.Status,
			&application.CoverNote,
			&application.CreatedAt,
			&application.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var application domain.Application
	if err := row.Scan(
		&application.ID,
		&application.JobID,
		&application.ApplicantID,
		&application.Status,
		&application.CoverNote,
		&application.CreatedAt,
		&application.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &application, nil
}
