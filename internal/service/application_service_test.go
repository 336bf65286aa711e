package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/kolnlaviste/HireLink/internal/auth"
	"github.com/kolnlaviste/HireLink/internal/domain"
)

type fakeApplicationRepo struct {
	applications map[string]*domain.Application
	jobs         *fakeJobRepo
	nextID       int
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*domain.Application), jobs: jobs}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *domain.Application) error {
	r.nextID++
	application.ID = fmt.Sprintf("application-%d", r.nextID)
	application.Status = domain.ApplicationStatusPending
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	application.Status = status
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.applications[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.applications, id)
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) GetByJobAndApplicant(_ context.Context, jobID, applicantID string) (*domain.Application, error) {
	for _, application := range r.applications {
		if application.JobID == jobID && application.ApplicantID == applicantID {
			copied := *application
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeApplicationRepo) ListAll(_ context.Context) ([]domain.Application, error) {
	applications := make([]domain.Application, 0, len(r.applications))
	for _, application := range r.applications {
		applications = append(applications, *application)
	}
	return applications, nil
}

func (r *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]domain.Application, error) {
	var applications []domain.Application
	for _, application := range r.applications {
		if application.ApplicantID == applicantID {
			applications = append(applications, *application)
		}
	}
	return applications, nil
}

func (r *fakeApplicationRepo) ListByPoster(ctx context.Context, posterID string) ([]domain.Application, error) {
	var applications []domain.Application
	for _, application := range r.applications {
		job, err := r.jobs.GetByID(ctx, application.JobID)
		if err != nil {
			continue
		}
		if job.PostedByID == posterID {
			applications = append(applications, *application)
		}
	}
	return applications, nil
}

func TestApplicationSubmitAndDuplicate(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	svc := NewApplicationService(applications, jobs, nil)
	job := seedJob(t, companies, jobs, "7")

	applicant := &auth.Principal{IdentityID: "3", Role: domain.RoleJobseeker}

	application, err := svc.Submit(context.Background(), applicant, job.ID, "hello")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if application.Status != domain.ApplicationStatusPending {
		t.Errorf("status = %q, want PENDING", application.Status)
	}

	_, err = svc.Submit(context.Background(), applicant, job.ID, "again")
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Errorf("code = %q, want CONFLICT", code)
	}
}

func TestApplicationSubmitClosedJob(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	svc := NewApplicationService(newFakeApplicationRepo(jobs), jobs, nil)
	job := seedJob(t, companies, jobs, "7")

	job.Status = domain.JobStatusClosed
	if err := jobs.Update(context.Background(), job); err != nil {
		t.Fatalf("close job: %v", err)
	}

	_, err := svc.Submit(context.Background(), &auth.Principal{IdentityID: "3", Role: domain.RoleJobseeker}, job.ID, "")
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Errorf("code = %q, want VALIDATION_FAILED", code)
	}
}

func TestApplicationUpdateStatusOwnership(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	svc := NewApplicationService(applications, jobs, nil)
	job := seedJob(t, companies, jobs, "7")

	application, err := svc.Submit(context.Background(), &auth.Principal{IdentityID: "3", Role: domain.RoleJobseeker}, job.ID, "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), &auth.Principal{IdentityID: "8", Role: domain.RoleEmployer}, application.ID, domain.ApplicationStatusReviewed)
	if code := domainCode(t, err); code != "FORBIDDEN_OWNERSHIP" {
		t.Errorf("code = %q, want FORBIDDEN_OWNERSHIP", code)
	}

	updated, err := svc.UpdateStatus(context.Background(), &auth.Principal{IdentityID: "7", Role: domain.RoleEmployer}, application.ID, domain.ApplicationStatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus by poster: %v", err)
	}
	if updated.Status != domain.ApplicationStatusAccepted {
		t.Errorf("status = %q, want ACCEPTED", updated.Status)
	}
}

func TestApplicationWithdrawOwnership(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	svc := NewApplicationService(applications, jobs, nil)
	job := seedJob(t, companies, jobs, "7")

	application, err := svc.Submit(context.Background(), &auth.Principal{IdentityID: "3", Role: domain.RoleJobseeker}, job.ID, "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	err = svc.Withdraw(context.Background(), &auth.Principal{IdentityID: "4", Role: domain.RoleJobseeker}, application.ID)
	if code := domainCode(t, err); code != "FORBIDDEN_OWNERSHIP" {
		t.Errorf("code = %q, want FORBIDDEN_OWNERSHIP", code)
	}

	if err := svc.Withdraw(context.Background(), &auth.Principal{IdentityID: "3", Role: domain.RoleJobseeker}, application.ID); err != nil {
		t.Fatalf("Withdraw by applicant: %v", err)
	}
}

func TestApplicationListForRoles(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	svc := NewApplicationService(applications, jobs, nil)
	job := seedJob(t, companies, jobs, "7")

	ctx := context.Background()
	if _, err := svc.Submit(ctx, &auth.Principal{IdentityID: "3", Role: domain.RoleJobseeker}, job.ID, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := svc.Submit(ctx, &auth.Principal{IdentityID: "4", Role: domain.RoleJobseeker}, job.ID, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	tests := []struct {
		name      string
		principal *auth.Principal
		want      int
	}{
		{"admin sees all", &auth.Principal{IdentityID: "9", Role: domain.RoleAdmin}, 2},
		{"poster sees applications to their jobs", &auth.Principal{IdentityID: "7", Role: domain.RoleEmployer}, 2},
		{"other employer sees none", &auth.Principal{IdentityID: "8", Role: domain.RoleEmployer}, 0},
		{"applicant sees own", &auth.Principal{IdentityID: "3", Role: domain.RoleJobseeker}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListFor(ctx, tt.principal)
			if err != nil {
				t.Fatalf("ListFor: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}
