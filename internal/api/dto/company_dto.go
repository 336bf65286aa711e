package dto

import (
	"time"

	"github.com/kolnlaviste/HireLink/internal/domain"
)

// CompanyRequest payload for create/update.
type CompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	LogoURL     string `json:"logo_url"`
}

// CompanyResponse is the public shape of a company.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Website     string    `json:"website"`
	Industry    string    `json:"industry"`
	LogoURL     string    `json:"logo_url"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCompanyResponse maps a domain company.
func NewCompanyResponse(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Slug:        company.Slug,
		Description: company.Description,
		Location:    company.Location,
		Website:     company.Website,
		Industry:    company.Industry,
		LogoURL:     company.LogoURL,
		OwnerID:     company.OwnerID,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}
