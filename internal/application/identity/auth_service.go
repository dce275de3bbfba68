package identity

import (
	"context"

	"github.com/diskmensagem/backend/internal/domain/identity"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/diskmensagem/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  identity.AdminRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(adminRepo identity.AdminRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates an admin and returns a token pair. Unknown email
// and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !auth.VerifyPassword(admin.PasswordHash, req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", admin.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	pair, err := s.jwtService.GenerateTokenPair(admin.ID, admin.Email)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Admin logged in", zap.String("email", admin.Email))
	return toTokenResponse(pair), nil
}

// Refresh rotates a valid refresh token into a new pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	adminID, err := claims.GetAdminUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	// The account must still exist; deleted admins lose their sessions
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	pair, err := s.jwtService.GenerateTokenPair(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}
	return toTokenResponse(pair), nil
}

// ChangePassword replaces the password of the authenticated admin
func (s *AuthService) ChangePassword(ctx context.Context, adminID uuid.UUID, req ChangePasswordRequest) error {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !auth.VerifyPassword(admin.PasswordHash, req.CurrentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if len(req.NewPassword) < auth.MinPasswordLength {
		return shared.NewDomainError("WEAK_PASSWORD", "New password is too short")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := admin.ChangePassword(hash); err != nil {
		return err
	}

	if err := s.adminRepo.Save(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Admin password changed", zap.String("email", admin.Email))
	return nil
}

// Me returns the authenticated admin's account
func (s *AuthService) Me(ctx context.Context, adminID uuid.UUID) (*AdminResponse, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return &AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
	}, nil
}

// Seed creates the first admin account when none exists yet
func (s *AuthService) Seed(ctx context.Context, email, password string) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin, err := identity.NewAdmin(email, hash)
	if err != nil {
		return err
	}
	if err := s.adminRepo.Save(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Seeded initial admin account", zap.String("email", admin.Email))
	return nil
}

func toTokenResponse(pair *auth.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}
}
