package usecase

import (
	"testing"
	"time"

	authdomain "taskstreak-backend/internal/auth/domain"
	authdto "taskstreak-backend/internal/auth/dto"
	"taskstreak-backend/internal/auth/repository"
	"taskstreak-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthUsecase(t *testing.T) AuthUsecase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}))

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
	return NewAuthUsecase(repository.NewUserRepository(db), cfg)
}

func register(t *testing.T, uc AuthUsecase) *authdto.TokenResponse {
	t.Helper()
	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "kim@example.com",
		Password: "hunter22",
		Name:     "Kim",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	uc := newAuthUsecase(t)

	resp := register(t, uc)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, authdomain.LevelBronze, resp.User.ProfileLevel)

	login, err := uc.Login(&authdto.LoginRequest{Email: "kim@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = uc.Login(&authdto.LoginRequest{Email: "kim@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc := newAuthUsecase(t)
	register(t, uc)

	_, err := uc.Register(&authdto.RegisterRequest{
		Email:    "kim@example.com",
		Password: "another",
		Name:     "Kim Again",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestFirstLoginHookRunsOnRegisterAndLogin(t *testing.T) {
	uc := newAuthUsecase(t)

	var calls []string
	uc.SetFirstLoginHook(func(userID string) { calls = append(calls, userID) })

	resp := register(t, uc)
	_, err := uc.Login(&authdto.LoginRequest{Email: "kim@example.com", Password: "hunter22"})
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, resp.User.ID, calls[0])
	assert.Equal(t, resp.User.ID, calls[1])
}

func TestValidateToken(t *testing.T) {
	uc := newAuthUsecase(t)
	resp := register(t, uc)

	user, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = uc.ValidateToken("garbage")
	assert.Error(t, err)
}

func TestRefreshTokenRotation(t *testing.T) {
	uc := newAuthUsecase(t)
	resp := register(t, uc)

	refreshed, err := uc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	_, err = uc.RefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	uc := newAuthUsecase(t)
	resp := register(t, uc)

	require.NoError(t, uc.Logout(resp.RefreshToken))

	_, err := uc.RefreshToken(resp.RefreshToken)
	assert.Error(t, err, "a logged-out refresh token is no longer stored")
}

func TestChangePassword(t *testing.T) {
	uc := newAuthUsecase(t)
	resp := register(t, uc)

	err := uc.ChangePassword(resp.User.ID, "wrong", "newpass99")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, uc.ChangePassword(resp.User.ID, "hunter22", "newpass99"))

	_, err = uc.Login(&authdto.LoginRequest{Email: "kim@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = uc.Login(&authdto.LoginRequest{Email: "kim@example.com", Password: "newpass99"})
	assert.NoError(t, err)
}
