package dto

import (
	"time"

	"github.com/kolnlaviste/HireLink/internal/domain"
)

// ApplicationRequest payload for submitting an application.
type ApplicationRequest struct {
	JobID     string `json:"job_id"`
	CoverNote string `json:"cover_note"`
}

// ApplicationStatusRequest payload for review updates.
type ApplicationStatusRequest struct {
	Status string `json:"status"`
}

// ApplicationResponse is the public shape of an application.
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	ApplicantID string                   `json:"applicant_id"`
	Status      domain.ApplicationStatus `json:"status"`
	CoverNote   string                   `json:"cover_note"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// NewApplicationResponse maps a domain application.
func NewApplicationResponse(application *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		ApplicantID: application.ApplicantID,
		Status:      application.Status,
		CoverNote:   application.CoverNote,
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}
}
