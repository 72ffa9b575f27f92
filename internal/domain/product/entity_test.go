//go:build unit

package product_test

import (
	"testing"

	"product-reviews/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReviewsVisibleTo(t *testing.T) {
	sellerID := uuid.New()
	otherID := uuid.New()

	t.Run("public reviews are visible to everyone", func(t *testing.T) {
		p := product.Product{SellerID: sellerID, ReviewsPubliclyVisible: true}

		assert.True(t, p.ReviewsVisibleTo(nil))
		assert.True(t, p.ReviewsVisibleTo(&otherID))
		assert.True(t, p.ReviewsVisibleTo(&sellerID))
	})

	t.Run("hidden reviews are visible only to the owning seller", func(t *testing.T) {
		p := product.Product{SellerID: sellerID, ReviewsPubliclyVisible: false}

		assert.False(t, p.ReviewsVisibleTo(nil))
		assert.False(t, p.ReviewsVisibleTo(&otherID))
		assert.True(t, p.ReviewsVisibleTo(&sellerID))
	})
}
