package readstore

import (
	"context"

	"product-reviews/internal/infra"
	"product-reviews/internal/infra/db"
	"product-reviews/internal/pkg/pgconv"
	"product-reviews/internal/usecase/queries"
)

const productByExternalIDSQL = `
SELECT p.id, p.external_id, p.seller_id, p.reviews_publicly_visible,
       s.disable_reviews_after_one_year
FROM products p
JOIN sellers s ON s.id = p.seller_id
WHERE p.external_id = $1`

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

func (r *ProductReadStore) FindByExternalID(ctx context.Context, externalID string) (*queries.ProductView, error) {
	var view queries.ProductView
	err := r.db.QueryRow(ctx, productByExternalIDSQL, externalID).Scan(
		&view.ID,
		&view.ExternalID,
		&view.SellerID,
		&view.ReviewsPubliclyVisible,
		&view.DisableReviewsAfterOneYear,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by external id", err)
	}
	return &view, nil
}
