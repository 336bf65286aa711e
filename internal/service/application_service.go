package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kolnlaviste/HireLink/internal/auth"
	"github.com/kolnlaviste/HireLink/internal/domain"
	"github.com/kolnlaviste/HireLink/internal/events"
	"github.com/kolnlaviste/HireLink/internal/repository"
	apperrors "github.com/kolnlaviste/HireLink/pkg/util"
)

// ApplicationService manages job applications.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService builds the service.
func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, dispatcher: dispatcher}
}

// Submit creates an application for the calling jobseeker. One application
// per job per applicant.
func (s *ApplicationService) Submit(ctx context.Context, principal *auth.Principal, jobID, coverNote string) (*domain.Application, error) {
	if jobID == "" {
		return nil, apperrors.NewValidationError("job_id required", nil)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": jobID})
		}
		return nil, err
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperrors.NewValidationError("job is not accepting applications", map[string]any{"status": string(job.Status)})
	}

	if _, err := s.applications.GetByJobAndApplicant(ctx, jobID, principal.IdentityID); err == nil {
		return nil, apperrors.NewConflict("already applied to this job", map[string]any{"job_id": jobID})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	application := &domain.Application{
		JobID:       jobID,
		ApplicantID: principal.IdentityID,
		Status:      domain.ApplicationStatusPending,
		CoverNote:   coverNote,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationSubmitted,
		SubjectID: application.ID,
		Actor:     events.Actor{IdentityID: principal.IdentityID, Role: principal.Role},
		Timestamp: time.Now(),
		Payload: events.ApplicationSubmittedPayload{
			JobID:       application.JobID,
			ApplicantID: application.ApplicantID,
		},
	})

	return application, nil
}

// UpdateStatus moves an application through review. Only the poster of the
// underlying job (or an admin) may do this.
func (s *ApplicationService) UpdateStatus(ctx context.Context, principal *auth.Principal, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": string(status)})
	}

	application, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}
	if !auth.CanModify(job.PostedByID, principal) {
		return nil, apperrors.NewForbiddenOwnership("application belongs to another poster's job")
	}

	oldStatus := application.Status
	updated, err := s.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationStatusChanged,
		SubjectID: updated.ID,
		Actor:     events.Actor{IdentityID: principal.IdentityID, Role: principal.Role},
		Timestamp: time.Now(),
		Payload: events.ApplicationStatusChangedPayload{
			JobID:     updated.JobID,
			OldStatus: oldStatus,
			NewStatus: updated.Status,
		},
	})

	return updated, nil
}

// Withdraw deletes an application. Only the applicant (or an admin) may do this.
func (s *ApplicationService) Withdraw(ctx context.Context, principal *auth.Principal, id string) error {
	application, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanModify(application.ApplicantID, principal) {
		return apperrors.NewForbiddenOwnership("not the applicant")
	}
	return s.applications.Delete(ctx, id)
}

// Get loads a single application.
func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.Application, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", map[string]any{"id": id})
		}
		return nil, err
	}
	return application, nil
}

// ListFor returns the applications visible to the principal: admins see
// all, employers see applications to their own jobs, jobseekers see their
// own submissions.
func (s *ApplicationService) ListFor(ctx context.Context, principal *auth.Principal) ([]domain.Application, error) {
	switch principal.Role {
	case domain.RoleAdmin:
		return s.applications.ListAll(ctx)
	case domain.RoleEmployer:
		return s.applications.ListByPoster(ctx, principal.IdentityID)
	default:
		return s.applications.ListByApplicant(ctx, principal.IdentityID)
	}
}

func (s *ApplicationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
