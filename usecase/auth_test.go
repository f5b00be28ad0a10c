package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/apperror"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/model"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/services"
)

// fakeUserRepo keeps users in memory with the same contract as the Mongo
// repo: FindByEmail/FindByID return (nil, nil) on a miss, Insert enforces
// email uniqueness.
type fakeUserRepo struct {
	users map[string]*model.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *model.User) error {
	if _, exists := f.users[user.Email]; exists {
		return fmt.Errorf("User already exists: %w", apperror.ErrConflict)
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, userID string) (*model.User, error) {
	for _, user := range f.users {
		if user.UserID == userID {
			return user, nil
		}
	}
	return nil, nil
}

func newAuthService() *AuthService {
	return &AuthService{
		Users:  newFakeUserRepo(),
		Tokens: services.NewTokenManager("test_secret_key", time.Hour),
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "a@x.com", "pw123456", "Alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "Alice", user.FullName)
	assert.NotEmpty(t, token)
	// the stored password is a hash, never the plain text
	assert.NotEqual(t, "pw123456", user.Password)

	loggedIn, loginToken, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, loggedIn.UserID)
	assert.NotEmpty(t, loginToken)

	// both tokens carry the same owner identity
	id1, err := svc.Tokens.Parse(token)
	require.NoError(t, err)
	id2, err := svc.Tokens.Parse(loginToken)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	tests := []struct {
		name                      string
		email, password, fullName string
	}{
		{"missing email", "", "pw123456", "Alice"},
		{"missing password", "a@x.com", "", "Alice"},
		{"missing full name", "a@x.com", "pw123456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, token, err := svc.Register(ctx, tt.email, tt.password, tt.fullName)
			require.ErrorIs(t, err, apperror.ErrValidation)
			assert.Empty(t, token)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@x.com", "pw123456", "Alice")
	require.NoError(t, err)

	_, token, err := svc.Register(ctx, "a@x.com", "different-pw", "Someone Else")
	require.ErrorIs(t, err, apperror.ErrConflict)
	assert.Empty(t, token)
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@x.com", "pw123456", "Alice")
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, token, err := svc.Login(ctx, "nobody@x.com", "pw123456")
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Empty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, token, err := svc.Login(ctx, "a@x.com", "wrong-password")
		require.ErrorIs(t, err, apperror.ErrAuthentication)
		assert.Empty(t, token)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, token, err := svc.Login(ctx, "", "")
		require.ErrorIs(t, err, apperror.ErrValidation)
		assert.Empty(t, token)
	})
}

func TestGetProfile(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "a@x.com", "pw123456", "Alice")
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.FullName)
	assert.Equal(t, "a@x.com", profile.Email)

	_, err = svc.GetProfile(ctx, "no-such-user")
	require.ErrorIs(t, err, apperror.ErrNotFound)
}
