//go:build unit || e2e

package builder

import (
	"time"

	domreview "product-reviews/internal/domain/review"
	reqdto "product-reviews/internal/handler/dto/request"
	"product-reviews/internal/usecase/commands"
	"product-reviews/internal/usecase/queries"
	"product-reviews/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewBuilder struct {
	ProductID                  uuid.UUID
	ProductExternalID          string
	SellerID                   uuid.UUID
	ReviewsPubliclyVisible     bool
	DisableReviewsAfterOneYear bool
	PurchaseID                 uuid.UUID
	PurchaseExternalID         string
	EmailDigest                string
	PurchasedAt                time.Time
	Rating                     int
	Message                    string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ProductID:                  uuid.New(),
		ProductExternalID:          "prod_" + uuid.NewString()[:8],
		SellerID:                   uuid.New(),
		ReviewsPubliclyVisible:     true,
		DisableReviewsAfterOneYear: false,
		PurchaseID:                 uuid.New(),
		PurchaseExternalID:         "purch_" + uuid.NewString()[:8],
		EmailDigest:                "digest-abc123",
		PurchasedAt:                now.AddDate(0, -1, 0),
		Rating:                     5,
		Message:                    "Excellent product!",
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Clone returns an independent copy so one scenario can fork another
// without sharing state.
func (r *ReviewBuilder) Clone() *ReviewBuilder {
	c := &ReviewBuilder{}
	_ = copier.Copy(c, r)
	return c
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	message, err := domreview.NewMessage(r.Message)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.PurchaseID, r.ProductID, rating, message, r.CreatedAt), nil
}

func (r *ReviewBuilder) BuildSubmitRequestDTO() reqdto.SubmitReviewRequest {
	return reqdto.SubmitReviewRequest{
		PurchaseID:          r.PurchaseExternalID,
		PurchaseEmailDigest: r.EmailDigest,
		Rating:              r.Rating,
		Message:             r.Message,
	}
}

func (r *ReviewBuilder) BuildCommand() commands.SubmitReviewRequest {
	return commands.SubmitReviewRequest{
		ProductExternalID:  r.ProductExternalID,
		PurchaseExternalID: r.PurchaseExternalID,
		EmailDigest:        r.EmailDigest,
		Rating:             r.Rating,
		Message:            r.Message,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:                     uuid.New(),
		ExternalID:             uuid.NewString(),
		Rating:                 int32(r.Rating),
		Message:                r.Message,
		Alive:                  true,
		VisibleOnProductPage:   true,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
		ProductID:              r.ProductID,
		ProductExternalID:      r.ProductExternalID,
		ProductSellerID:        r.SellerID,
		ReviewsPubliclyVisible: r.ReviewsPubliclyVisible,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:         uuid.New(),
		ExternalID: uuid.NewString(),
		Rating:     int32(r.Rating),
		Message:    r.Message,
		CreatedAt:  r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildFormView() *queries.ReviewFormView {
	return &queries.ReviewFormView{
		ID:         uuid.New(),
		ExternalID: uuid.NewString(),
		Rating:     int32(r.Rating),
		Message:    r.Message,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		Videos:     []queries.VideoView{},
	}
}

func (r *ReviewBuilder) BuildProductView() *queries.ProductView {
	return &queries.ProductView{
		ID:                         r.ProductID,
		ExternalID:                 r.ProductExternalID,
		SellerID:                   r.SellerID,
		ReviewsPubliclyVisible:     r.ReviewsPubliclyVisible,
		DisableReviewsAfterOneYear: r.DisableReviewsAfterOneYear,
	}
}

func (r *ReviewBuilder) BuildProductSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:                         r.ProductID,
		ExternalID:                 r.ProductExternalID,
		SellerID:                   r.SellerID,
		ReviewsPubliclyVisible:     r.ReviewsPubliclyVisible,
		DisableReviewsAfterOneYear: r.DisableReviewsAfterOneYear,
	}
}

func (r *ReviewBuilder) BuildPurchaseSnapshot() *shared.PurchaseSnapshot {
	return &shared.PurchaseSnapshot{
		ID:          r.PurchaseID,
		ExternalID:  r.PurchaseExternalID,
		ProductID:   r.ProductID,
		EmailDigest: r.EmailDigest,
		CreatedAt:   r.PurchasedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithMessage(message string) *ReviewBuilder {
	r.Message = message
	return r
}

func (r *ReviewBuilder) WithEmailDigest(digest string) *ReviewBuilder {
	r.EmailDigest = digest
	return r
}

func (r *ReviewBuilder) WithPurchasedAt(t time.Time) *ReviewBuilder {
	r.PurchasedAt = t
	return r
}

func (r *ReviewBuilder) WithHiddenReviews() *ReviewBuilder {
	r.ReviewsPubliclyVisible = false
	return r
}

func (r *ReviewBuilder) WithOneYearWindow() *ReviewBuilder {
	r.DisableReviewsAfterOneYear = true
	return r
}
