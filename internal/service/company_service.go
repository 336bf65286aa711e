package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/kolnlaviste/HireLink/internal/auth"
	"github.com/kolnlaviste/HireLink/internal/domain"
	"github.com/kolnlaviste/HireLink/internal/repository"
	apperrors "github.com/kolnlaviste/HireLink/pkg/util"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// CompanyService manages employer company profiles.
type CompanyService struct {
	companies repository.CompanyRepository
}

// NewCompanyService builds the service.
func NewCompanyService(companies repository.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// CompanyInput carries create/update fields.
type CompanyInput struct {
	Name        string
	Description string
	Location    string
	Website     string
	Industry    string
	LogoURL     string
}

// Create registers a company owned by the calling principal.
func (s *CompanyService) Create(ctx context.Context, principal *auth.Principal, input CompanyInput) (*domain.Company, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	slug := Slugify(input.Name)
	if _, err := s.companies.GetBySlug(ctx, slug); err == nil {
		return nil, apperrors.NewConflict("company already exists", map[string]any{"slug": slug})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	company := &domain.Company{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Location:    input.Location,
		Website:     input.Website,
		Industry:    input.Industry,
		LogoURL:     input.LogoURL,
		OwnerID:     principal.IdentityID,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update mutates a company after an ownership check.
func (s *CompanyService) Update(ctx context.Context, principal *auth.Principal, id string, input CompanyInput) (*domain.Company, error) {
	company, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanModify(company.OwnerID, principal) {
		return nil, apperrors.NewForbiddenOwnership("not the company owner")
	}

	if input.Name != "" {
		company.Name = input.Name
		company.Slug = Slugify(input.Name)
	}
	if input.Description != "" {
		company.Description = input.Description
	}
	if input.Location != "" {
		company.Location = input.Location
	}
	if input.Website != "" {
		company.Website = input.Website
	}
	if input.Industry != "" {
		company.Industry = input.Industry
	}
	if input.LogoURL != "" {
		company.LogoURL = input.LogoURL
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes a company after an ownership check.
func (s *CompanyService) Delete(ctx context.Context, principal *auth.Principal, id string) error {
	company, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanModify(company.OwnerID, principal) {
		return apperrors.NewForbiddenOwnership("not the company owner")
	}
	return s.companies.Delete(ctx, id)
}

// Get loads a company by id or slug.
func (s *CompanyService) Get(ctx context.Context, idOrSlug string) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, idOrSlug)
	if err == nil {
		return company, nil
	}
	company, err = s.companies.GetBySlug(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company", map[string]any{"id": idOrSlug})
		}
		return nil, err
	}
	return company, nil
}

// List returns all companies.
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *CompanyService) get(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company", map[string]any{"id": id})
		}
		return nil, err
	}
	return company, nil
}

// Slugify lowercases a name and collapses non-alphanumerics into hyphens.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
