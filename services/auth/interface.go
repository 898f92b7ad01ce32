package auth

import (
	"context"

	providerRepo "aamer/database/repository/provider"
	userRepo "aamer/database/repository/user"
	"aamer/models"
)

// SignupInput carries the account fields plus the provider profile fields
// that become mandatory when UserType is "provider".
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`

	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Location      string `json:"location"`
	LicenseNumber int64  `json:"licenseNumber"`
	CompanyName   string `json:"companyName"`
	ServiceType   string `json:"serviceType"`
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token    string
	UserType string
	UserID   string
}

// AuthService manages account creation and credential verification.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetUsers(ctx context.Context) ([]models.User, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
}
