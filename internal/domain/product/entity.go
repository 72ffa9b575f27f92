package product

import "github.com/google/uuid"

// Product is the reviewable item as the review paths see it: ownership and
// the seller's visibility setting, nothing else.
type Product struct {
	ID                     uuid.UUID
	ExternalID             string
	SellerID               uuid.UUID
	ReviewsPubliclyVisible bool
}

type Seller struct {
	ID                         uuid.UUID
	DisableReviewsAfterOneYear bool
}

// ReviewsVisibleTo is the product-level visibility gate: reviews hidden by
// the seller are still visible to the seller themselves.
func (p Product) ReviewsVisibleTo(requester *uuid.UUID) bool {
	if p.ReviewsPubliclyVisible {
		return true
	}
	return requester != nil && *requester == p.SellerID
}
