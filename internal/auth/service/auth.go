package service

import (
	"context"
	"errors"
	"strings"

	"beautycabin/internal/auth/denylist"
	autherrors "beautycabin/internal/auth/errors"
	"beautycabin/internal/auth/hasher"
	"beautycabin/internal/auth/repository"
	"beautycabin/internal/auth/token"
	"beautycabin/pkg/config"
	apperrors "beautycabin/pkg/errors"
	"beautycabin/pkg/model"

	"github.com/go-playground/validator/v10"
)

// dummyHash is compared against when the username is unknown so that both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3e2hI4Gk8sQy0hjWwkS3yBO"

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error)
	Verify(ctx context.Context, raw string) (*model.AdminIdentity, error)
	Logout(ctx context.Context, raw string) error
}

type authService struct {
	repo     repository.AdminRepository
	hasher   hasher.PasswordHasher
	tokens   *token.Manager
	denylist denylist.Denylist
	validate *validator.Validate
	cfg      *config.Config
}

func NewAuthService(
	repo repository.AdminRepository,
	hasher hasher.PasswordHasher,
	tokens *token.Manager,
	denylist denylist.Denylist,
	cfg *config.Config,
) AuthService {
	return &authService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		denylist: denylist,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cfg:      cfg,
	}
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error) {
	if req == nil {
		return nil, apperrors.InvalidCredentials()
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := s.validate.Struct(req); err != nil {
		s.cfg.Log.Warn("Login rejected", "reason", "missing credentials")
		return nil, apperrors.InvalidCredentials()
	}

	admin, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, autherrors.ErrAdminNotFound) {
			s.hasher.Check(req.Password, dummyHash)
			s.cfg.Log.Warn("Login rejected", "reason", "unknown username")
			return nil, apperrors.InvalidCredentials()
		}
		s.cfg.Log.Error("Failed to load admin credential", "error", err)
		return nil, apperrors.StoreUnavailable("load admin credential", err)
	}

	if !s.hasher.Check(req.Password, admin.PasswordHash) {
		s.cfg.Log.Warn("Login rejected", "reason", "password mismatch", "admin_id", admin.ID)
		return nil, apperrors.InvalidCredentials()
	}

	signed, claims, err := s.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		s.cfg.Log.Error("Failed to issue session token", "admin_id", admin.ID, "error", err)
		return nil, apperrors.Internal("Failed to issue session token", err)
	}

	s.cfg.Log.Info("Admin logged in successfully", "admin_id", admin.ID)
	return &model.LoginResult{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) Verify(ctx context.Context, raw string) (*model.AdminIdentity, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		s.cfg.Log.Debug("Token rejected", "error", err)
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.cfg.Log.Error("Failed to check token denylist", "error", err)
		return nil, apperrors.StoreUnavailable("check token revocation", err)
	}
	if revoked {
		s.cfg.Log.Debug("Token rejected", "error", autherrors.ErrTokenRevoked)
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	return &model.AdminIdentity{
		AdminID:   claims.Subject,
		Username:  claims.Username,
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedTime(),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the token until its own expiry. Logging out an already
// revoked token is rejected like any other invalid token.
func (s *authService) Logout(ctx context.Context, raw string) error {
	identity, err := s.Verify(ctx, raw)
	if err != nil {
		return err
	}

	if err := s.denylist.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		s.cfg.Log.Error("Failed to revoke token", "admin_id", identity.AdminID, "error", err)
		return apperrors.StoreUnavailable("revoke token", err)
	}

	s.cfg.Log.Info("Admin logged out successfully", "admin_id", identity.AdminID)
	return nil
}
