package request

import (
	"context"

	requestRepo "aamer/database/repository/request"
	"aamer/models"
	"aamer/utils"
)

// RequestService manages customer service requests.
type RequestService interface {
	Create(ctx context.Context, in CreateRequestInput) (*models.Request, error)
	GetAll(ctx context.Context, status string) ([]models.Request, error)
	GetByUser(ctx context.Context, userID string) ([]models.Request, error)
	UpdateStatus(ctx context.Context, requestID, status string) error
	GetByID(ctx context.Context, requestID string) (*models.Request, error)
}

// CreateRequestInput holds a new request posting.
type CreateRequestInput struct {
	UserID      string  `json:"userId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	ServiceType string  `json:"serviceType"`
}

// DefaultRequestService is the production implementation.
type DefaultRequestService struct {
	Repo requestRepo.RequestRepository
}

func (s *DefaultRequestService) Create(ctx context.Context, in CreateRequestInput) (*models.Request, error) {
	if in.UserID == "" || in.Title == "" || in.Description == "" || in.Price == 0 ||
		in.Location == "" || in.ServiceType == "" {
		return nil, utils.NewValidationError("All fields are required")
	}

	req := &models.Request{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		ServiceType: in.ServiceType,
	}
	if err := s.Repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetAll lists requests newest first, optionally filtered by status.
func (s *DefaultRequestService) GetAll(ctx context.Context, status string) ([]models.Request, error) {
	return s.Repo.GetAll(ctx, status)
}

// GetByUser lists a user's requests with blank fields backfilled so clients
// always receive displayable values.
func (s *DefaultRequestService) GetByUser(ctx context.Context, userID string) ([]models.Request, error) {
	requests, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ServiceType == "" {
			requests[i].ServiceType = "Other"
		}
		if requests[i].Title == "" {
			requests[i].Title = "Untitled Request"
		}
		if requests[i].Location == "" {
			requests[i].Location = "Location not specified"
		}
		if requests[i].Description == "" {
			requests[i].Description = "No description provided"
		}
	}
	return requests, nil
}

// UpdateStatus sets a request's status. An unknown request ID is not an
// error; the update simply matches nothing.
func (s *DefaultRequestService) UpdateStatus(ctx context.Context, requestID, status string) error {
	if !models.ValidRequestStatus(status) {
		return utils.NewValidationError("Invalid status value")
	}
	return s.Repo.UpdateStatus(ctx, requestID, status)
}

// GetByID returns the request or nil when it does not exist.
func (s *DefaultRequestService) GetByID(ctx context.Context, requestID string) (*models.Request, error) {
	return s.Repo.GetByID(ctx, requestID)
}
