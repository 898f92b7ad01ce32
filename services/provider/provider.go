package provider

import (
	"context"

	providerRepo "aamer/database/repository/provider"
	"aamer/models"
	"aamer/utils"
)

// ProviderService manages provider profiles.
type ProviderService interface {
	Create(ctx context.Context, in CreateProviderInput) (*models.Provider, error)
	GetAll(ctx context.Context) ([]models.Provider, error)
}

// CreateProviderInput holds a standalone provider profile creation.
type CreateProviderInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Location      string `json:"location"`
	LicenseNumber int64  `json:"licenseNumber"`
	CompanyName   string `json:"companyName"`
	ServiceType   string `json:"serviceType"`
	UserID        string `json:"userId"`
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

func (s *DefaultProviderService) Create(ctx context.Context, in CreateProviderInput) (*models.Provider, error) {
	if in.FirstName == "" || in.LastName == "" || in.Location == "" || in.LicenseNumber == 0 ||
		in.CompanyName == "" || in.ServiceType == "" || in.UserID == "" {
		return nil, utils.NewValidationError("All fields are required.")
	}

	provider := &models.Provider{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Location:      in.Location,
		LicenseNumber: in.LicenseNumber,
		CompanyName:   in.CompanyName,
		ServiceType:   in.ServiceType,
		UserID:        in.UserID,
	}
	if err := s.Repo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

func (s *DefaultProviderService) GetAll(ctx context.Context) ([]models.Provider, error) {
	return s.Repo.GetAll(ctx)
}
