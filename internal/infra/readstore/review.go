package readstore

import (
	"context"

	"product-reviews/internal/infra"
	"product-reviews/internal/infra/db"
	"product-reviews/internal/pkg/pgconv"
	"product-reviews/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const countVisibleByProductSQL = `
SELECT count(*)
FROM reviews
WHERE product_id = $1 AND alive AND visible_on_product_page`

// The third sort key exists only to break ties deterministically, so that
// pagination never reorders equal-rank rows across pages.
const listVisibleByProductSQL = `
SELECT id, external_id, rating, message, created_at
FROM reviews
WHERE product_id = $1 AND alive AND visible_on_product_page
ORDER BY rating DESC, created_at DESC, id DESC
LIMIT $2 OFFSET $3`

const reviewByExternalIDSQL = `
SELECT r.id, r.external_id, r.rating, r.message, r.alive, r.visible_on_product_page,
       r.created_at, r.updated_at,
       p.id, p.external_id, p.seller_id, p.reviews_publicly_visible
FROM reviews r
JOIN products p ON p.id = r.product_id
WHERE r.external_id = $1`

const reviewFormByIDSQL = `
SELECT id, external_id, rating, message, created_at, updated_at
FROM reviews
WHERE id = $1`

const videosByReviewSQL = `
SELECT id, url, thumbnail_ref, approved, created_at
FROM review_videos
WHERE review_id = $1
ORDER BY created_at, id`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) CountVisibleByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countVisibleByProductSQL, productID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count reviews by product", err)
	}
	return count, nil
}

func (r *ReviewReadStore) ListVisibleByProduct(ctx context.Context, productID uuid.UUID, limit, offset int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, listVisibleByProductSQL, productID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by product", err)
	}
	defer rows.Close()

	items := make([]*queries.ReviewListItem, 0, limit)
	for rows.Next() {
		var item queries.ReviewListItem
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(&item.ID, &item.ExternalID, &item.Rating, &item.Message, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return items, nil
}

func (r *ReviewReadStore) FindByExternalID(ctx context.Context, externalID string) (*queries.ReviewView, error) {
	var view queries.ReviewView
	var createdAt, updatedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, reviewByExternalIDSQL, externalID).Scan(
		&view.ID,
		&view.ExternalID,
		&view.Rating,
		&view.Message,
		&view.Alive,
		&view.VisibleOnProductPage,
		&createdAt,
		&updatedAt,
		&view.ProductID,
		&view.ProductExternalID,
		&view.ProductSellerID,
		&view.ReviewsPubliclyVisible,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by external id", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *ReviewReadStore) FindFormByID(ctx context.Context, id uuid.UUID) (*queries.ReviewFormView, error) {
	var form queries.ReviewFormView
	var createdAt, updatedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, reviewFormByIDSQL, id).Scan(
		&form.ID,
		&form.ExternalID,
		&form.Rating,
		&form.Message,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review form view", err)
	}
	form.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	form.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	videos, err := r.videosByReview(ctx, id)
	if err != nil {
		return nil, err
	}
	form.Videos = videos
	return &form, nil
}

func (r *ReviewReadStore) videosByReview(ctx context.Context, reviewID uuid.UUID) ([]queries.VideoView, error) {
	rows, err := r.db.Query(ctx, videosByReviewSQL, reviewID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list review videos", err)
	}
	defer rows.Close()

	videos := []queries.VideoView{}
	for rows.Next() {
		var v queries.VideoView
		var thumbnailRef pgtype.Text
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(&v.ID, &v.URL, &thumbnailRef, &v.Approved, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review video row", err)
		}
		if ref := pgconv.StringPtrFromPgtype(thumbnailRef); ref != nil {
			v.ThumbnailRef = *ref
		}
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review video rows", err)
	}
	return videos, nil
}
