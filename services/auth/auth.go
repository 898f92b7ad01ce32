package auth

import (
	"context"
	"fmt"
	"time"

	"aamer/models"
	"aamer/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = time.Hour

// Signup creates a User and, for provider accounts, the Provider profile.
// If the provider fields are incomplete the freshly created User is rolled
// back so the email stays available.
func (s *DefaultAuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" || in.UserType == "" {
		return nil, utils.NewValidationError("Email, password, and userType are required")
	}

	existing, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    in.Email,
		Password: string(hashed),
		UserType: in.UserType,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		// The unique email index closes the check-then-insert race.
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("User already exists")
		}
		return nil, err
	}

	if in.UserType == models.UserTypeProvider {
		if in.FirstName == "" || in.LastName == "" || in.Location == "" ||
			in.LicenseNumber == 0 || in.CompanyName == "" || in.ServiceType == "" {
			if delErr := s.Users.DeleteByID(ctx, user.ID); delErr != nil {
				utils.GetLogger().Error("Failed to roll back user after incomplete provider signup",
					zap.String("userId", user.ID), zap.Error(delErr))
			}
			return nil, utils.NewValidationError("All provider fields are required")
		}

		provider := &models.Provider{
			UserID:        user.ID,
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			Location:      in.Location,
			LicenseNumber: in.LicenseNumber,
			CompanyName:   in.CompanyName,
			ServiceType:   in.ServiceType,
		}
		if err := s.Providers.Create(ctx, provider); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// Login verifies the credentials and issues a one-hour JWT. The token hash
// is cached so the auth middleware can skip signature verification on hot
// paths; a Redis outage only loses that shortcut.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewValidationError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.NewValidationError("Invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.UserType, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if utils.AuthCacheClient != nil {
		key := utils.AuthCachePrefix + utils.HashToken(token)
		value := user.ID + "|" + user.UserType
		if err := utils.AuthCacheClient.Set(ctx, key, value, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache auth token", zap.Error(err))
		}
	}

	return &LoginResult{Token: token, UserType: user.UserType, UserID: user.ID}, nil
}

func (s *DefaultAuthService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.GetAll(ctx)
}
