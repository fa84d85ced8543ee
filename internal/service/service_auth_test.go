package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/mock"
	"github.com/MKhiriev/go-city-guide/internal/security"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:       "test-secret",
	TokenAlgorithm:     "HS256",
	TokenExpireMinutes: 60,
	PasswordHashCost:   bcrypt.MinCost,
	Version:            "test",
}

func newTestTokenManager(t *testing.T, opts ...security.TokenManagerOption) *security.TokenManager {
	t.Helper()
	tokens, err := security.NewTokenManager(testAppConfig, opts...)
	require.NoError(t, err)
	return tokens
}

func newTestAuthService(t *testing.T, repo store.UserRepository) (*authService, *security.Denylist) {
	t.Helper()
	denylist := security.NewDenylist()
	svc := NewAuthService(
		repo,
		security.NewBcryptHasher(bcrypt.MinCost),
		newTestTokenManager(t),
		denylist,
		validators.NewRequestValidator(),
		logger.Nop(),
	).(*authService)
	return svc, denylist
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.NewBcryptHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	return hash
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "Alice", u.Name)
			assert.Empty(t, u.Password)
			assert.NotEqual(t, "secret123", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
			u.UserID = 7
			return u, nil
		},
	)

	user, err := svc.Register(ctx, models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "not-an-email", Name: "Alice", Password: "secret123"})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "secret123"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{
		UserID:       1,
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "secret123"),
	}, nil)

	token, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "alice@example.com", token.Subject())
	assert.NotEmpty(t, token.ID())
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), token.ExpiresAt(), 5*time.Second)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{
		UserID:       1,
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "secret123"),
	}, nil)

	token, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token.SignedString)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "bob@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, store.ErrTemporarilyUnavailable)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, store.ErrTemporarilyUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

// ── Authenticate / Resolve ───────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	token, err := svc.tokens.Issue("alice@example.com")
	require.NoError(t, err)

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{UserID: 1, Email: "alice@example.com"}, nil)

	user, parsed, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, token.ID(), parsed.ID())
}

func TestAuthService_Authenticate_Rejects(t *testing.T) {
	foreign, err := security.NewTokenManager(config.App{TokenSignKey: "other-secret", TokenAlgorithm: "HS256"})
	require.NoError(t, err)
	foreignToken, err := foreign.Issue("alice@example.com")
	require.NoError(t, err)

	hs512, err := security.NewTokenManager(config.App{TokenSignKey: testAppConfig.TokenSignKey, TokenAlgorithm: "HS512"})
	require.NoError(t, err)
	hs512Token, err := hs512.Issue("alice@example.com")
	require.NoError(t, err)

	expired, err := newTestTokenManager(t, security.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	})).Issue("alice@example.com", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "malformed", token: "not.a.jwt"},
		{name: "different secret", token: foreignToken.SignedString},
		{name: "algorithm mismatch", token: hs512Token.SignedString},
		{name: "expired", token: expired.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)
			svc, _ := newTestAuthService(t, repo)

			_, _, err := svc.Authenticate(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestAuthService_Resolve_UnknownSubjectMatchesBadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	token, err := svc.tokens.Issue("ghost@example.com")
	require.NoError(t, err)
	repo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, unknownErr := svc.Resolve(ctx, token.SignedString)
	_, badSigErr := svc.Resolve(ctx, token.SignedString+"x")

	require.Error(t, unknownErr)
	require.Error(t, badSigErr)
	assert.Equal(t, badSigErr, unknownErr)
	assert.ErrorIs(t, unknownErr, ErrUnauthorized)
}

func TestAuthService_Authenticate_StoreFailureIsNotUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	token, err := svc.tokens.Issue("alice@example.com")
	require.NoError(t, err)
	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, store.ErrTemporarilyUnavailable)

	_, _, err = svc.Authenticate(ctx, token.SignedString)
	assert.ErrorIs(t, err, store.ErrTemporarilyUnavailable)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc, denylist := newTestAuthService(t, repo)
	ctx := context.Background()

	token, err := svc.tokens.Issue("alice@example.com")
	require.NoError(t, err)

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{UserID: 1, Email: "alice@example.com"}, nil)
	_, parsed, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, parsed))
	assert.True(t, denylist.IsRevoked(token.ID()))

	_, _, err = svc.Authenticate(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_Logout_TokenWithoutID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, mock.NewMockUserRepository(ctrl))

	err := svc.Logout(context.Background(), models.Token{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── End-to-end ───────────────────────────────────────────────────────────────

// memoryUserRepository is a goroutine-safe in-memory credential store.
type memoryUserRepository struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int64
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Email]; ok {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	m.nextID++
	user.UserID = m.nextID
	user.CreatedAt = time.Now().UTC()
	m.users[user.Email] = user
	return user, nil
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func TestAuthService_EndToEnd_RegisterLoginResolve(t *testing.T) {
	svc, _ := newTestAuthService(t, newMemoryUserRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "secret123"})
	require.NoError(t, err)

	token, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, err := svc.Resolve(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.Register(ctx, models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "secret123"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_EndToEnd_WrongPasswordIssuesNoToken(t *testing.T) {
	svc, _ := newTestAuthService(t, newMemoryUserRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "secret123"})
	require.NoError(t, err)

	token, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret124"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.Empty(t, token.SignedString)
}

func TestAuthService_EndToEnd_ExpiredToken(t *testing.T) {
	svc, _ := newTestAuthService(t, newMemoryUserRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "secret123"})
	require.NoError(t, err)

	past := newTestTokenManager(t, security.WithClock(func() time.Time {
		return time.Now().Add(-time.Hour)
	}))
	token, err := past.Issue("alice@example.com", 30*time.Minute)
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
