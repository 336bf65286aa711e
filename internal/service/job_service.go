package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kolnlaviste/HireLink/internal/auth"
	"github.com/kolnlaviste/HireLink/internal/domain"
	"github.com/kolnlaviste/HireLink/internal/events"
	"github.com/kolnlaviste/HireLink/internal/repository"
	apperrors "github.com/kolnlaviste/HireLink/pkg/util"
)

// JobService manages job listings.
type JobService struct {
	jobs       repository.JobRepository
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
}

// NewJobService builds the service.
func NewJobService(jobs repository.JobRepository, companies repository.CompanyRepository, dispatcher events.Dispatcher) *JobService {
	return &JobService{jobs: jobs, companies: companies, dispatcher: dispatcher}
}

// JobInput carries create/update fields.
type JobInput struct {
	CompanyID   string
	Title       string
	Location    string
	Type        domain.JobType
	Salary      string
	Tags        []string
	Description string
	ApplyInfo   string
	Status      domain.JobStatus
}

// Create posts a job under a company. The company must belong to the
// caller unless the caller is an admin.
func (s *JobService) Create(ctx context.Context, principal *auth.Principal, input JobInput) (*domain.Job, error) {
	if input.CompanyID == "" || strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("company_id and title required", nil)
	}

	company, err := s.companies.GetByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company", map[string]any{"id": input.CompanyID})
		}
		return nil, err
	}
	if !auth.CanModify(company.OwnerID, principal) {
		return nil, apperrors.NewForbiddenOwnership("company belongs to another employer")
	}

	job := &domain.Job{
		CompanyID:   company.ID,
		PostedByID:  principal.IdentityID,
		Title:       input.Title,
		Location:    input.Location,
		Type:        input.Type,
		Salary:      input.Salary,
		Tags:        input.Tags,
		Description: input.Description,
		ApplyInfo:   input.ApplyInfo,
		Status:      domain.JobStatusOpen,
	}
	if job.Type == "" {
		job.Type = domain.JobTypeFullTime
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventJobPosted,
		SubjectID: job.ID,
		Actor:     events.Actor{IdentityID: principal.IdentityID, Role: principal.Role},
		Timestamp: time.Now(),
		Payload: events.JobPostedPayload{
			CompanyID: job.CompanyID,
			Title:     job.Title,
			Type:      job.Type,
			Location:  job.Location,
		},
	})

	return job, nil
}

// Update mutates a listing after checking the poster owns it.
func (s *JobService) Update(ctx context.Context, principal *auth.Principal, id string, input JobInput) (*domain.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanModify(job.PostedByID, principal) {
		return nil, apperrors.NewForbiddenOwnership("job was posted by another user")
	}

	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Location != "" {
		job.Location = input.Location
	}
	if input.Type != "" {
		job.Type = input.Type
	}
	if input.Salary != "" {
		job.Salary = input.Salary
	}
	if input.Tags != nil {
		job.Tags = input.Tags
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	if input.ApplyInfo != "" {
		job.ApplyInfo = input.ApplyInfo
	}
	if input.Status != "" {
		job.Status = input.Status
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a listing after checking the poster owns it.
func (s *JobService) Delete(ctx context.Context, principal *auth.Principal, id string) error {
	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanModify(job.PostedByID, principal) {
		return apperrors.NewForbiddenOwnership("job was posted by another user")
	}
	return s.jobs.Delete(ctx, id)
}

// Get loads a listing.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": id})
		}
		return nil, err
	}
	return job, nil
}

// List returns listings matching the filter.
func (s *JobService) List(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
