package purchase

import (
	"time"

	"product-reviews/internal/pkg/digest"

	"github.com/google/uuid"
)

// Purchase is the sale record a review hangs off. EmailDigest and CreatedAt
// are immutable once the purchase exists.
type Purchase struct {
	ID          uuid.UUID
	ExternalID  string
	ProductID   uuid.UUID
	EmailDigest string
	CreatedAt   time.Time
	ReviewID    *uuid.UUID
}

// Authorize compares the supplied digest against the stored one in constant
// time. This is the only purchase-level credential check in the system.
func (p Purchase) Authorize(suppliedDigest string) bool {
	return digest.SecureCompare(p.EmailDigest, suppliedDigest)
}

// EligibleForReview applies the seller's review window. The boundary is a
// strict inequality: a purchase aged exactly one year can still be reviewed.
func (p Purchase) EligibleForReview(disableAfterOneYear bool, now time.Time) bool {
	if !disableAfterOneYear {
		return true
	}
	oneYearAgo := now.AddDate(-1, 0, 0)
	return !p.CreatedAt.Before(oneYearAgo)
}
