package dto

import (
	"time"

	"github.com/kolnlaviste/HireLink/internal/domain"
)

// JobRequest payload for create/update.
type JobRequest struct {
	CompanyID   string   `json:"company_id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Salary      string   `json:"salary"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	ApplyInfo   string   `json:"apply_info"`
	Status      string   `json:"status"`
}

// JobResponse is the public shape of a listing.
type JobResponse struct {
	ID          string           `json:"id"`
	CompanyID   string           `json:"company_id"`
	PostedByID  string           `json:"posted_by_id"`
	Title       string           `json:"title"`
	Location    string           `json:"location"`
	Type        domain.JobType   `json:"type"`
	Salary      string           `json:"salary"`
	Tags        []string         `json:"tags"`
	Description string           `json:"description"`
	ApplyInfo   string           `json:"apply_info"`
	Status      domain.JobStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewJobResponse maps a domain job.
func NewJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		CompanyID:   job.CompanyID,
		PostedByID:  job.PostedByID,
		Title:       job.Title,
		Location:    job.Location,
		Type:        job.Type,
		Salary:      job.Salary,
		Tags:        job.Tags,
		Description: job.Description,
		ApplyInfo:   job.ApplyInfo,
		Status:      job.Status,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}
