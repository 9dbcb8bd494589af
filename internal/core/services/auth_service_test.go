package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/SscSPs/gcash_pos_backend/internal/core/services"
	"github.com/SscSPs/gcash_pos_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

type AuthServiceTestSuite struct {
	suite.Suite
	operatorRepo *MockOperatorRepository
	service      portssvc.AuthSvcFacade
	operator     *domain.Operator
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.operatorRepo = new(MockOperatorRepository)
	suite.service = services.NewAuthService(suite.operatorRepo, services.TokenSettings{
		Secret: testJWTSecret,
		Expiry: time.Hour,
		Issuer: "test-issuer",
	})

	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	suite.operator = &domain.Operator{Username: "cashier1", PasswordHash: hash, Role: domain.RoleUser}
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.operatorRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	suite.operatorRepo.On("FindOperatorByUsername", ctx, "cashier1").Return(suite.operator, nil).Once()

	token, expiresAt, operator, err := suite.service.Login(ctx, " cashier1 ", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal("cashier1", operator.Username)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal("cashier1", claims.Subject)
	suite.Equal("user", claims.Role)
	suite.Equal("test-issuer", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	suite.operatorRepo.On("FindOperatorByUsername", ctx, "cashier1").Return(suite.operator, nil).Once()

	token, _, _, err := suite.service.Login(ctx, "cashier1", "wrong")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Empty(token)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()
	suite.operatorRepo.On("FindOperatorByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, _, _, err := suite.service.Login(ctx, "ghost", "whatever")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestLogin_RepoError() {
	ctx := context.Background()
	suite.operatorRepo.On("FindOperatorByUsername", ctx, "cashier1").Return(nil, assert.AnError).Once()

	_, _, _, err := suite.service.Login(ctx, "cashier1", "correct-horse")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *AuthServiceTestSuite) TestLogin_MissingCredentials() {
	_, _, _, err := suite.service.Login(context.Background(), "", "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthServiceTestSuite) TestEnsureOperator_Creates() {
	ctx := context.Background()
	suite.operatorRepo.On("CreateOperatorIfAbsent", ctx, mock.MatchedBy(func(op domain.Operator) bool {
		return op.Username == "owner" && op.Role == domain.RoleAdmin && utils.CheckPasswordHash("long-enough-pw", op.PasswordHash)
	})).Return(true, nil).Once()

	created, err := suite.service.EnsureOperator(ctx, " owner ", "long-enough-pw", domain.RoleAdmin)

	suite.NoError(err)
	suite.True(created)
}

func (suite *AuthServiceTestSuite) TestEnsureOperator_ExistingUntouched() {
	ctx := context.Background()
	suite.operatorRepo.On("CreateOperatorIfAbsent", ctx, mock.Anything).Return(false, nil).Once()

	created, err := suite.service.EnsureOperator(ctx, "owner", "long-enough-pw", domain.RoleAdmin)

	suite.NoError(err)
	suite.False(created)
}

func (suite *AuthServiceTestSuite) TestEnsureOperator_Validation() {
	ctx := context.Background()
	_, err := suite.service.EnsureOperator(ctx, "", "long-enough-pw", domain.RoleAdmin)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.EnsureOperator(ctx, "owner", "short", domain.RoleAdmin)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.EnsureOperator(ctx, "owner", "long-enough-pw", domain.OperatorRole("root"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
