package dto

import (
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// LoginRequest holds operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	Username  string              `json:"username"`
	Role      domain.OperatorRole `json:"role"`
}
