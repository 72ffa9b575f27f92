package repository

import (
	"context"

	"product-reviews/internal/domain/review"
	"product-reviews/internal/infra"
	"product-reviews/internal/infra/db"

	"github.com/google/uuid"
)

// Upsert is a single conditional insert keyed by purchase_id, so two
// concurrent submissions for the same purchase cannot create two rows. On
// conflict the existing row keeps its id, external id and created_at; only
// the submitted fields move.
const upsertReviewSQL = `
INSERT INTO reviews (id, external_id, purchase_id, product_id, rating, message,
                     alive, visible_on_product_page, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (purchase_id) DO UPDATE
SET rating = EXCLUDED.rating,
    message = EXCLUDED.message,
    updated_at = EXCLUDED.updated_at
RETURNING id`

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Upsert(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, upsertReviewSQL,
		rev.ID(),
		rev.ExternalID(),
		rev.PurchaseID(),
		rev.ProductID(),
		int32(rev.Rating().Value()),
		rev.Message().String(),
		rev.Alive(),
		rev.VisibleOnProductPage(),
		rev.CreatedAt(),
		rev.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert review", err)
	}
	return id, nil
}
