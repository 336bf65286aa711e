package domain

import "time"

// ApplicationStatus enumerates review states for a submitted application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusReviewed ApplicationStatus = "REVIEWED"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// ValidApplicationStatus reports whether the value is a known status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links a jobseeker to a job listing.
type Application struct {
	ID          string
	JobID       string
	ApplicantID string
	Status      ApplicationStatus
	CoverNote   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
