package domain

import "time"

// JobStatus enumerates listing lifecycle states.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// JobType enumerates employment arrangements.
type JobType string

const (
	JobTypeFullTime JobType = "FULL_TIME"
	JobTypePartTime JobType = "PART_TIME"
	JobTypeContract JobType = "CONTRACT"
	JobTypeIntern   JobType = "INTERNSHIP"
)

// Job is a listing posted by an employer under a company.
type Job struct {
	ID          string
	CompanyID   string
	PostedByID  string
	Title       string
	Location    string
	Type        JobType
	Salary      string
	Tags        []string
	Description string
	ApplyInfo   string
	Status      JobStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
