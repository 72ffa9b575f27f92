package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is the single review a purchase may carry. Resubmitting mutates
// this aggregate in place; a purchase never owns two reviews.
type Review struct {
	id                   uuid.UUID
	externalID           string
	purchaseID           uuid.UUID
	productID            uuid.UUID
	rating               Rating
	message              Message
	alive                bool
	visibleOnProductPage bool
	createdAt            time.Time
	updatedAt            time.Time
}

func NewReview(purchaseID, productID uuid.UUID, rating Rating, message Message, now time.Time) *Review {
	return &Review{
		id:                   uuid.New(),
		externalID:           uuid.NewString(),
		purchaseID:           purchaseID,
		productID:            productID,
		rating:               rating,
		message:              message,
		alive:                true,
		visibleOnProductPage: true,
		createdAt:            now,
		updatedAt:            now,
	}
}

// ReconstructReview rebuilds the aggregate from stored state.
func ReconstructReview(id uuid.UUID, externalID string, purchaseID, productID uuid.UUID, rating Rating, message Message, alive, visibleOnProductPage bool, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:                   id,
		externalID:           externalID,
		purchaseID:           purchaseID,
		productID:            productID,
		rating:               rating,
		message:              message,
		alive:                alive,
		visibleOnProductPage: visibleOnProductPage,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// IsVisible is the review-level read gate: the soft-delete flag and the
// moderation flag are both mandatory, on every read path.
func (r *Review) IsVisible() bool {
	return Visible(r.alive, r.visibleOnProductPage)
}

func (r *Review) ID() uuid.UUID              { return r.id }
func (r *Review) ExternalID() string         { return r.externalID }
func (r *Review) PurchaseID() uuid.UUID      { return r.purchaseID }
func (r *Review) ProductID() uuid.UUID       { return r.productID }
func (r *Review) Rating() Rating             { return r.rating }
func (r *Review) Message() Message           { return r.message }
func (r *Review) Alive() bool                { return r.alive }
func (r *Review) VisibleOnProductPage() bool { return r.visibleOnProductPage }
func (r *Review) CreatedAt() time.Time       { return r.createdAt }
func (r *Review) UpdatedAt() time.Time       { return r.updatedAt }
