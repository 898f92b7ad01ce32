package offering

import (
	"context"

	offeringRepo "aamer/database/repository/offering"
	"aamer/models"
	"aamer/utils"
)

// OfferingService manages provider service offerings.
type OfferingService interface {
	Create(ctx context.Context, in CreateOfferingInput) (*models.Offering, error)
	GetAll(ctx context.Context) ([]models.Offering, error)
	GetByID(ctx context.Context, offerID string) (*models.Offering, error)
	GetByStatus(ctx context.Context, status string) ([]models.Offering, error)
	GetByProviderAndStatus(ctx context.Context, providerID, status string) ([]models.Offering, error)
	UpdateStatus(ctx context.Context, offerID, status string) (*models.Offering, error)
}

// CreateOfferingInput holds a new offering posting.
type CreateOfferingInput struct {
	ProviderID  string  `json:"providerId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	ServiceType string  `json:"serviceType"`
}

// DefaultOfferingService is the production implementation.
type DefaultOfferingService struct {
	Repo offeringRepo.OfferingRepository
}

func (s *DefaultOfferingService) Create(ctx context.Context, in CreateOfferingInput) (*models.Offering, error) {
	if in.ProviderID == "" || in.Title == "" || in.Description == "" || in.Price == 0 ||
		in.Location == "" || in.ServiceType == "" {
		return nil, utils.NewValidationError("All fields are required.")
	}

	offering := &models.Offering{
		ProviderID:  in.ProviderID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		ServiceType: in.ServiceType,
	}
	if err := s.Repo.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *DefaultOfferingService) GetAll(ctx context.Context) ([]models.Offering, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultOfferingService) GetByID(ctx context.Context, offerID string) (*models.Offering, error) {
	offering, err := s.Repo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, utils.NewNotFoundError("Offering not found")
	}
	return offering, nil
}

func (s *DefaultOfferingService) GetByStatus(ctx context.Context, status string) ([]models.Offering, error) {
	return s.Repo.GetByStatus(ctx, status)
}

func (s *DefaultOfferingService) GetByProviderAndStatus(ctx context.Context, providerID, status string) ([]models.Offering, error) {
	return s.Repo.GetByProviderAndStatus(ctx, providerID, status)
}

// UpdateStatus validates the status value and returns the updated offering.
func (s *DefaultOfferingService) UpdateStatus(ctx context.Context, offerID, status string) (*models.Offering, error) {
	if !models.ValidOfferingStatus(status) {
		return nil, utils.NewValidationError("Invalid status value")
	}

	offering, err := s.Repo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, utils.NewNotFoundError("Offering not found")
	}

	if err := s.Repo.UpdateStatus(ctx, offerID, status); err != nil {
		return nil, err
	}
	offering.Status = status
	return offering, nil
}
