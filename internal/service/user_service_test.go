package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gsvblog/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateBioFn     func(context.Context, string, string) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) UpdateBio(ctx context.Context, username, bio string) error {
	return s.updateBioFn(ctx, username, bio)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateBioFn:     func(_ context.Context, _, _ string) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo())
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "secret"},
		{"username with spaces", "bad name", "secret"},
		{"username leading underscore", "_alice", "secret"},
		{"empty password", "alice", ""},
		{"password too long", "alice", strings.Repeat("x", 73)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Register(ctx, RegisterInput{Username: tc.username, Password: tc.password})
			assertValidationError(t, err)
		})
	}
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	var captured *models.User
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 1
		captured = u
		return nil
	}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret", captured.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(captured.Password), []byte("s3cret")))
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		return models.NewDuplicateUsernameError(u.Username)
	}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "s3cret"})
	assertAppErrorCode(t, err, models.CodeDuplicateUsername)
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username == "alice" {
			return &models.User{ID: 1, Username: "alice", Password: string(hash)}, nil
		}
		return nil, nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		user, err := svc.Authenticate(ctx, "nobody", "s3cret")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		user, err := svc.Authenticate(ctx, "alice", "wrong")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		user, err := svc.Authenticate(ctx, "alice", "s3cret")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, uint(1), user.ID)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("bio too long", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo())
		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			Username: "alice",
			Bio:      strings.Repeat("x", 501),
		})
		assertValidationError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.updateBioFn = func(_ context.Context, username, _ string) error {
			return models.NewNotFoundError("User", username)
		}
		svc := NewUserService(repo)

		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{Username: "nobody", Bio: "hi"})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("returns updated record", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		var gotBio string
		repo.updateBioFn = func(_ context.Context, _, bio string) error {
			gotBio = bio
			return nil
		}
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username, Bio: gotBio}, nil
		}
		svc := NewUserService(repo)

		user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{Username: "alice", Bio: "gardener"})
		require.NoError(t, err)
		assert.Equal(t, "gardener", user.Bio)
	})
}
