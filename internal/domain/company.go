package domain

import "time"

// Company is an employer profile that jobs are posted under.
type Company struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Location    string
	Website     string
	Industry    string
	LogoURL     string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
