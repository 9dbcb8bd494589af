package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/SscSPs/gcash_pos_backend/internal/utils"
)

// MinPasswordLength applies to provisioned operators.
const MinPasswordLength = 8

// TokenSettings carries the JWT signing parameters.
type TokenSettings struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

type authService struct {
	BaseService
	operatorRepo portsrepo.OperatorRepositoryFacade
	tokens       TokenSettings
}

// NewAuthService creates a new operator authentication service
func NewAuthService(operatorRepo portsrepo.OperatorRepositoryFacade, tokens TokenSettings, options ...Option) portssvc.AuthSvcFacade {
	svc := &authService{operatorRepo: operatorRepo, tokens: tokens}
	svc.apply(options)
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials. Unknown users and wrong passwords produce the
// same error.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, *domain.Operator, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", time.Time{}, nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	operator, err := s.operatorRepo.FindOperatorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown operator", slog.String("username", username))
			return "", time.Time{}, nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up operator", slog.String("username", username))
		return "", time.Time{}, nil, fmt.Errorf("failed to look up operator: %w", err)
	}

	if !utils.CheckPasswordHash(password, operator.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("username", username))
		return "", time.Time{}, nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(operator.Username, string(operator.Role), s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("username", username))
		return "", time.Time{}, nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("username", username), slog.String("role", string(operator.Role)))
	return token, expiresAt, operator, nil
}

func (s *authService) EnsureOperator(ctx context.Context, username, password string, role domain.OperatorRole) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return false, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, MinPasswordLength)
	}
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return false, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.operatorRepo.CreateOperatorIfAbsent(ctx, domain.Operator{Username: username, PasswordHash: hash, Role: role})
	if err != nil {
		s.LogError(ctx, err, "Failed to provision operator", slog.String("username", username))
		return false, err
	}
	if created {
		s.LogInfo(ctx, "Operator provisioned", slog.String("username", username), slog.String("role", string(role)))
	}
	return created, nil
}
