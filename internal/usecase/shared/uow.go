package shared

import (
	"context"

	"product-reviews/internal/domain/review"
	"product-reviews/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reviews() ReviewRepository
	Videos() VideoRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductByExternalID(ctx context.Context, externalID string) (*ProductSnapshot, error)
	PurchaseByExternalID(ctx context.Context, productID uuid.UUID, externalID string) (*PurchaseSnapshot, error)
	SellerByEmail(ctx context.Context, email string) (*SellerCredentials, error)
}

type ReviewRepository interface {
	// Upsert persists the review as a single conditional insert keyed by
	// purchase id and returns the id of the row that actually holds the
	// review, whether freshly inserted or already present.
	Upsert(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
}

type VideoRepository interface {
	// Delete is scoped to the review; an id belonging elsewhere is a no-op.
	Delete(ctx context.Context, tx db.DBTX, reviewID, videoID uuid.UUID) error
	Create(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, url, thumbnailRef string) (uuid.UUID, error)
}
