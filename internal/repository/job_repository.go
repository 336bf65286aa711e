package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kolnlaviste/HireLink/internal/domain"
)

// JobFilter narrows job listings.
type JobFilter struct {
	CompanyID string
	Type      domain.JobType
	Location  string
	Tag       string
	Status    domain.JobStatus
	Offset    int
	Limit     int
}

// JobRepository defines persistence access for job listings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository returns a Postgres-backed implementation.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, company_id, posted_by_id, title, location, job_type, salary, tags, description, apply_info, status, created_at, updated_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (company_id, posted_by_id, title, location, job_type, salary, tags, description, apply_info, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		job.CompanyID,
		job.PostedByID,
		job.Title,
		job.Location,
		job.Type,
		job.Salary,
		job.Tags,
		job.Description,
		job.ApplyInfo,
		job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs
        SET title=$1, location=$2, job_type=$3, salary=$4, tags=$5, description=$6, apply_info=$7, status=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Location,
		job.Type,
		job.Salary,
		job.Tags,
		job.Description,
		job.ApplyInfo,
		job.Status,
		job.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id=$1`, jobColumns)

	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.CompanyID,
		&job.PostedByID,
		&job.Title,
		&job.Location,
		&job.Type,
		&job.Salary,
		&job.Tags,
		&job.Description,
		&job.ApplyInfo,
		&job.Status,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.CompanyID != "" {
		addCondition("company_id=$%d", filter.CompanyID)
	}
	if filter.Type != "" {
		addCondition("job_type=$%d", filter.Type)
	}
	if filter.Location != "" {
		addCondition("location ILIKE $%d", "%"+filter.Location+"%")
	}
	if filter.Tag != "" {
		addCondition("$%d = ANY(tags)", filter.Tag)
	}
	if filter.Status != "" {
		addCondition("status=$%d", filter.Status)
	}

	query := fmt.Sprintf(`SELECT %s FROM jobs`, jobColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID,
			&job.CompanyID,
			&job.PostedByID,
			&job.Title,
			&job.Location,
			&job.Type,
			&job.Salary,
			&job.Tags,
			&job.Description,
			&job.ApplyInfo,
			&job.Status,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
