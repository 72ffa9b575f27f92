package commands

import (
	"context"

	domreview "product-reviews/internal/domain/review"
	"product-reviews/internal/infra"
	"product-reviews/internal/pkg/clock"
	"product-reviews/internal/pkg/errs"
	"product-reviews/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotAuthorized    = errs.New("purchase authorization failed")
	ErrNotEligible      = errs.New("purchase is outside the seller's review window")
	ErrPurchaseNotFound = errs.New("purchase not found for product")
	ErrProductNotFound  = errs.New("product not found")
)

// ValidationError carries the one failure class allowed to surface its
// specific reason to the buyer.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

type SubmitReviewRequest struct {
	ProductExternalID  string
	PurchaseExternalID string
	EmailDigest        string
	Rating             int
	Message            string
	VideoOps           []domreview.VideoOp
}

type SubmitReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	Submit(ctx context.Context, req SubmitReviewRequest) (*SubmitReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// Submit runs the full write path: authorization against the purchase
// record, the eligibility window, then an atomic create-or-update of the
// review together with its video attachment commands.
func (uc *reviewUseCaseImpl) Submit(ctx context.Context, req SubmitReviewRequest) (*SubmitReviewResult, error) {
	prod, err := uc.uow.CommandReads().ProductByExternalID(ctx, req.ProductExternalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// The purchase lookup is scoped to this product's sales: a purchase id
	// from another product never matches.
	purch, err := uc.uow.CommandReads().PurchaseByExternalID(ctx, prod.ID, req.PurchaseExternalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}

	sale := purch.ToDomain()
	if !sale.Authorize(req.EmailDigest) {
		return nil, ErrNotAuthorized
	}

	if !sale.EligibleForReview(prod.DisableReviewsAfterOneYear, uc.clock.Now()) {
		return nil, ErrNotEligible
	}

	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	message, err := domreview.NewMessage(req.Message)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	var reviewID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev := domreview.NewReview(purch.ID, prod.ID, rating, message, uc.clock.Now())

		id, derr := tx.Reviews().Upsert(ctx, tx.DB(), rev)
		if derr != nil {
			return derr
		}
		reviewID = id

		for _, op := range req.VideoOps {
			switch op.Kind {
			case domreview.VideoOpDestroy:
				if derr = tx.Videos().Delete(ctx, tx.DB(), id, op.VideoID); derr != nil {
					return derr
				}
			case domreview.VideoOpCreate:
				if _, derr = tx.Videos().Create(ctx, tx.DB(), id, op.URL, op.ThumbnailRef); derr != nil {
					return derr
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SubmitReviewResult{ReviewID: reviewID}, nil
}
