package repository

import (
	"context"

	"product-reviews/internal/infra"
	"product-reviews/internal/infra/db"
	"product-reviews/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// The review_id predicate makes the delete idempotent: an id that belongs
// to another review (or nothing) removes zero rows and is not an error.
const deleteVideoSQL = `
DELETE FROM review_videos
WHERE id = $1 AND review_id = $2`

// New attachments always start unapproved; moderation flips the flag.
const createVideoSQL = `
INSERT INTO review_videos (id, review_id, url, thumbnail_ref, approved, created_at)
VALUES ($1, $2, $3, $4, false, now())
RETURNING id`

type VideoRepository struct{}

func NewVideoRepository() *VideoRepository {
	return &VideoRepository{}
}

func (r *VideoRepository) Delete(ctx context.Context, tx db.DBTX, reviewID, videoID uuid.UUID) error {
	if _, err := tx.Exec(ctx, deleteVideoSQL, videoID, reviewID); err != nil {
		return infra.WrapRepoErr("failed to delete review video", err)
	}
	return nil
}

func (r *VideoRepository) Create(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, url, thumbnailRef string) (uuid.UUID, error) {
	var ref *string
	if thumbnailRef != "" {
		ref = &thumbnailRef
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, createVideoSQL, uuid.New(), reviewID, url, pgconv.StringPtrToPgtype(ref)).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review video", err)
	}
	return id, nil
}
