package usecase

import (
	authdomain "taskstreak-backend/internal/auth/domain"
	authdto "taskstreak-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ChangePassword(userID, currentPassword, newPassword string) error

	// ValidateToken verifies an access token and returns its user
	ValidateToken(tokenString string) (*authdomain.User, error)

	// SetFirstLoginHook registers a hook that runs after every successful
	// login. The achievement engine uses it to seed the welcome badge.
	SetFirstLoginHook(hook func(userID string))
}
