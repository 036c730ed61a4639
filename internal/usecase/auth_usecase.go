package usecase

import (
	"context"
	"time"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/internal/infrastructure/firebase"
	"huduma/pkg/errors"
	"huduma/pkg/logger"
)

// AuthUseCase manages accounts keyed by Firebase UID. Phone verification
// happens on the client; by the time a request reaches here it carries a
// verified ID token.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	authClient *firebase.AuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, authClient *firebase.AuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

type RegisterInput struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	UserType    string `json:"user_type" validate:"required,oneof=customer provider"`
	Location    string `json:"location" validate:"required"`
}

type UpdateProfileInput struct {
	FirstName       string `json:"first_name" validate:"omitempty"`
	LastName        string `json:"last_name" validate:"omitempty"`
	Email           string `json:"email" validate:"omitempty,email"`
	Location        string `json:"location" validate:"omitempty"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}

// Register creates the account record for an authenticated UID. The phone
// number must match the one Firebase verified for that UID.
func (uc *AuthUseCase) Register(ctx context.Context, uid string, input RegisterInput) (*entity.User, error) {
	if existing, err := uc.userRepo.GetByID(ctx, uid); err == nil && existing != nil {
		return nil, errors.Conflict("Account already registered")
	}

	verifiedUID, err := uc.authClient.GetUserByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil || verifiedUID != uid {
		return nil, errors.BadRequest("Phone number does not match the authenticated account", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:          uid,
		PhoneNumber: input.PhoneNumber,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		UserType:    input.UserType,
		Location:    input.Location,
		IsVerified:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		logger.Error("Register Error: %v", err)
		return nil, errors.Internal("Failed to register account", err)
	}

	return user, nil
}

func (uc *AuthUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Location != "" {
		user.Location = input.Location
	}
	if input.ProfileImageURL != "" {
		user.ProfileImageURL = input.ProfileImageURL
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Error("UpdateProfile Error: %v", err)
		return nil, errors.Internal("Failed to update profile", err)
	}

	return user, nil
}
