package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"gsvblog/internal/models"
	"gsvblog/internal/observability"
	"gsvblog/internal/repository"
	"gsvblog/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Username string
	Password string
}

type UpdateProfileInput struct {
	Username string
	Bio      string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account. The password is stored as a bcrypt hash,
// never in plain text.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		observability.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		observability.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		observability.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeDuplicateUsername {
			observability.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			observability.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	observability.RegistrationsTotal.WithLabelValues("created").Inc()
	return user, nil
}

// Authenticate verifies a username/password pair. It returns (nil, nil) both
// for an unknown username and for a wrong password, so callers cannot tell
// the two failure modes apart.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		observability.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, nil
	}

	observability.LoginsTotal.WithLabelValues("success").Inc()
	return user, nil
}

// GetByUsername returns (nil, nil) when no such account exists.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile replaces the bio of an existing account and returns the
// updated record.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	const maxBioLen = 500

	if len(in.Bio) > maxBioLen {
		return nil, models.NewValidationError("Bio too long (max 500 characters)")
	}

	if err := s.userRepo.UpdateBio(ctx, in.Username, in.Bio); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", in.Username)
	}
	return user, nil
}
