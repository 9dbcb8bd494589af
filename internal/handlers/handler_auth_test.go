package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestLogin_Success() {
	expires := time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC)
	op := &domain.Operator{Username: "owner", Role: domain.RoleAdmin}
	suite.mockAuth.On("Login", mock.Anything, "owner", "s3cret").Return("signed.jwt.token", expires, op, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "owner", Password: "s3cret"}, "", "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("signed.jwt.token", resp.Token)
	suite.Equal(domain.RoleAdmin, resp.Role)
	suite.True(expires.Equal(resp.ExpiresAt))
}

func (suite *HandlerTestSuite) TestLogin_WrongPassword() {
	suite.mockAuth.On("Login", mock.Anything, "owner", "nope").
		Return("", time.Time{}, nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "owner", Password: "nope"}, "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_MissingFields() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "owner"}, "", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}
