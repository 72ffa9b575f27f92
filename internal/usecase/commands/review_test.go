//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domreview "product-reviews/internal/domain/review"
	"product-reviews/internal/infra"
	"product-reviews/internal/pkg/clock"
	"product-reviews/internal/pkg/errs"
	"product-reviews/internal/usecase/commands"
	"product-reviews/internal/usecase/shared"
	"product-reviews/tests/common/builder"
	sharedmock "product-reviews/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUoW     *sharedmock.MockUnitOfWork
	mockReads   *sharedmock.MockCommandReads
	mockTx      *sharedmock.MockTx
	mockReviews *sharedmock.MockReviewRepository
	mockVideos  *sharedmock.MockVideoRepository
	clock       *clock.MockClock
	commands    commands.ReviewCommands
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReviews = sharedmock.NewMockReviewRepository(s.mockCtrl)
	s.mockVideos = sharedmock.NewMockVideoRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewReviewCommands(s.mockUoW, s.clock)

	s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Reviews().Return(s.mockReviews).AnyTimes()
	s.mockTx.EXPECT().Videos().Return(s.mockVideos).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *ReviewCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

// expectWithin routes the transactional closure through the mock Tx.
func (s *ReviewCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
}

func notFound() error {
	return infra.WrapRepoErr("no rows", errs.New("no rows"), infra.KindNotFound)
}

func (s *ReviewCommandsTestSuite) TestSubmit() {
	ctx := context.Background()

	s.Run("success: review is upserted and its id returned", func() {
		b := builder.NewReviewBuilder()
		reviewID := uuid.New()

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
		s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(b.BuildPurchaseSnapshot(), nil)
		s.expectWithin()
		s.mockReviews.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(reviewID, nil)

		result, err := s.commands.Submit(ctx, b.BuildCommand())
		s.Require().NoError(err)
		s.Equal(reviewID, result.ReviewID)
	})

	s.Run("success: resubmitting lands on the same review row", func() {
		b := builder.NewReviewBuilder()
		reviewID := uuid.New()

		for range 2 {
			s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
			s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(b.BuildPurchaseSnapshot(), nil)
			s.expectWithin()
			s.mockReviews.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(reviewID, nil)
		}

		first, err := s.commands.Submit(ctx, b.Clone().WithRating(2).BuildCommand())
		s.Require().NoError(err)
		second, err := s.commands.Submit(ctx, b.Clone().WithRating(4).BuildCommand())
		s.Require().NoError(err)

		s.Equal(first.ReviewID, second.ReviewID)
	})

	s.Run("success: video ops run destroys before creates in the same transaction", func() {
		b := builder.NewReviewBuilder()
		reviewID := uuid.New()
		videoID := uuid.New()

		cmd := b.BuildCommand()
		createOp, err := domreview.NewCreateVideoOp("https://example.com/v.mp4", "thumb")
		s.Require().NoError(err)
		cmd.VideoOps = []domreview.VideoOp{domreview.NewDestroyVideoOp(videoID), createOp}

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
		s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(b.BuildPurchaseSnapshot(), nil)
		s.expectWithin()

		upsert := s.mockReviews.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(reviewID, nil)
		destroy := s.mockVideos.EXPECT().Delete(gomock.Any(), gomock.Any(), reviewID, videoID).Return(nil)
		create := s.mockVideos.EXPECT().Create(gomock.Any(), gomock.Any(), reviewID, "https://example.com/v.mp4", "thumb").Return(uuid.New(), nil)
		gomock.InOrder(upsert, destroy, create)

		result, err := s.commands.Submit(ctx, cmd)
		s.Require().NoError(err)
		s.Equal(reviewID, result.ReviewID)
	})

	s.Run("error: unknown product", func() {
		b := builder.NewReviewBuilder()

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(nil, notFound())

		_, err := s.commands.Submit(ctx, b.BuildCommand())
		s.Require().ErrorIs(err, commands.ErrProductNotFound)
	})

	s.Run("error: purchase does not belong to the product", func() {
		b := builder.NewReviewBuilder()

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
		s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(nil, notFound())

		_, err := s.commands.Submit(ctx, b.BuildCommand())
		s.Require().ErrorIs(err, commands.ErrPurchaseNotFound)
	})

	s.Run("error: wrong email digest is rejected", func() {
		b := builder.NewReviewBuilder()

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
		s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(b.BuildPurchaseSnapshot(), nil)

		cmd := b.BuildCommand()
		cmd.EmailDigest = "wrong-digest"

		_, err := s.commands.Submit(ctx, cmd)
		s.Require().ErrorIs(err, commands.ErrNotAuthorized)
	})

	s.Run("error: purchase outside the one-year window", func() {
		b := builder.NewReviewBuilder().
			WithOneYearWindow().
			WithPurchasedAt(s.clock.Now().AddDate(0, 0, -400))

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
		s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(b.BuildPurchaseSnapshot(), nil)

		_, err := s.commands.Submit(ctx, b.BuildCommand())
		s.Require().ErrorIs(err, commands.ErrNotEligible)
	})

	s.Run("success: purchase aged exactly one year is still eligible", func() {
		b := builder.NewReviewBuilder().
			WithOneYearWindow().
			WithPurchasedAt(s.clock.Now().AddDate(-1, 0, 0))
		reviewID := uuid.New()

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
		s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(b.BuildPurchaseSnapshot(), nil)
		s.expectWithin()
		s.mockReviews.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(reviewID, nil)

		_, err := s.commands.Submit(ctx, b.BuildCommand())
		s.Require().NoError(err)
	})

	s.Run("error: invalid rating surfaces as a validation error", func() {
		b := builder.NewReviewBuilder().WithRating(0)

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
		s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(b.BuildPurchaseSnapshot(), nil)

		_, err := s.commands.Submit(ctx, b.BuildCommand())

		var vErr *commands.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal(domreview.ErrInvalidRating.Error(), vErr.Reason)
	})

	s.Run("error: transaction failure propagates", func() {
		b := builder.NewReviewBuilder()
		txErr := errs.New("tx failed")

		s.mockReads.EXPECT().ProductByExternalID(ctx, b.ProductExternalID).Return(b.BuildProductSnapshot(), nil)
		s.mockReads.EXPECT().PurchaseByExternalID(ctx, b.ProductID, b.PurchaseExternalID).Return(b.BuildPurchaseSnapshot(), nil)
		s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).Return(txErr)

		_, err := s.commands.Submit(ctx, b.BuildCommand())
		s.Require().ErrorIs(err, txErr)
	})
}
