package readstore

import (
	"context"

	"product-reviews/internal/infra"
	"product-reviews/internal/infra/db"
	"product-reviews/internal/pkg/pgconv"
	"product-reviews/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Scoped to the product's sales on purpose: a purchase external id that
// belongs to a different product must not match.
const purchaseByExternalIDSQL = `
SELECT pu.id, pu.external_id, pu.product_id, pu.email_digest, pu.created_at, r.id
FROM purchases pu
LEFT JOIN reviews r ON r.purchase_id = pu.id
WHERE pu.product_id = $1 AND pu.external_id = $2`

type PurchaseReadStore struct {
	db db.DBTX
}

func NewPurchaseReadStore(dbtx db.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{db: dbtx}
}

func (r *PurchaseReadStore) FindByExternalID(ctx context.Context, productID uuid.UUID, externalID string) (*shared.PurchaseSnapshot, error) {
	var snap shared.PurchaseSnapshot
	var createdAt pgtype.Timestamptz
	var reviewID pgtype.UUID
	err := r.db.QueryRow(ctx, purchaseByExternalIDSQL, productID, externalID).Scan(
		&snap.ID,
		&snap.ExternalID,
		&snap.ProductID,
		&snap.EmailDigest,
		&createdAt,
		&reviewID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get purchase by external id", err)
	}
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.ReviewID = pgconv.UUIDPtrFromPgtype(reviewID)
	return &snap, nil
}
