//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"product-reviews/internal/pkg/clock"
	"product-reviews/internal/pkg/jwt"
	"product-reviews/internal/pkg/password"
	"product-reviews/internal/usecase/commands"
	"product-reviews/internal/usecase/shared"
	sharedmock "product-reviews/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockUoW   *sharedmock.MockUnitOfWork
	mockReads *sharedmock.MockCommandReads
	jwtSvc    *jwt.Service
	clock     *clock.MockClock
	commands  commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.jwtSvc = jwt.NewService("test-secret", time.Hour)
	// Token validation checks expiry against the wall clock, so the mock
	// must not sit in the past.
	s.clock = clock.NewMockClock(time.Now())
	s.commands = commands.NewAuthCommands(s.mockUoW, s.jwtSvc, s.clock)

	s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) seller(email, plain string) *shared.SellerCredentials {
	hash, err := password.HashPassword(plain)
	s.Require().NoError(err)
	return &shared.SellerCredentials{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success: issues a token carrying the seller id", func() {
		seller := s.seller("seller@example.com", "password123")
		s.mockReads.EXPECT().SellerByEmail(ctx, seller.Email).Return(seller, nil)

		result, err := s.commands.Login(ctx, seller.Email, "password123")
		s.Require().NoError(err)
		s.Equal(seller.ID, result.SellerID)

		claims, err := s.jwtSvc.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(seller.ID, claims.SellerID)
	})

	s.Run("error: unknown email", func() {
		s.mockReads.EXPECT().SellerByEmail(ctx, "missing@example.com").Return(nil, notFound())

		_, err := s.commands.Login(ctx, "missing@example.com", "password123")
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: wrong password", func() {
		seller := s.seller("seller@example.com", "password123")
		s.mockReads.EXPECT().SellerByEmail(ctx, seller.Email).Return(seller, nil)

		_, err := s.commands.Login(ctx, seller.Email, "wrong-password")
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})
}
