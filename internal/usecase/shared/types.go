package shared

import (
	"time"

	"product-reviews/internal/domain/purchase"

	"github.com/google/uuid"
)

// ProductSnapshot carries the product plus the owning seller's review
// policy flags, joined in one read.
type ProductSnapshot struct {
	ID                         uuid.UUID
	ExternalID                 string
	SellerID                   uuid.UUID
	ReviewsPubliclyVisible     bool
	DisableReviewsAfterOneYear bool
}

type PurchaseSnapshot struct {
	ID          uuid.UUID
	ExternalID  string
	ProductID   uuid.UUID
	EmailDigest string
	CreatedAt   time.Time
	ReviewID    *uuid.UUID
}

func (s *PurchaseSnapshot) ToDomain() purchase.Purchase {
	return purchase.Purchase{
		ID:          s.ID,
		ExternalID:  s.ExternalID,
		ProductID:   s.ProductID,
		EmailDigest: s.EmailDigest,
		CreatedAt:   s.CreatedAt,
		ReviewID:    s.ReviewID,
	}
}

type SellerCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}
