package commands

import (
	"context"

	"product-reviews/internal/infra"
	"product-reviews/internal/pkg/clock"
	"product-reviews/internal/pkg/errs"
	"product-reviews/internal/pkg/jwt"
	"product-reviews/internal/pkg/password"
	"product-reviews/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

type LoginResult struct {
	Token    string
	SellerID uuid.UUID
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	uow   shared.UnitOfWork
	jwt   *jwt.Service
	clock clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtSvc *jwt.Service, clk clock.Clock) AuthCommands {
	return &authUseCaseImpl{uow: uow, jwt: jwtSvc, clock: clk}
}

func (uc *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	seller, err := uc.uow.CommandReads().SellerByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(seller.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwt.GenerateToken(seller.ID, uc.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{Token: token, SellerID: seller.ID}, nil
}
