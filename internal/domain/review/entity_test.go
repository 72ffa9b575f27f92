//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"product-reviews/internal/domain/review"
	"product-reviews/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.NotEmpty(t, actual.ExternalID())
		assert.True(t, actual.Alive())
		assert.True(t, actual.VisibleOnProductPage())
		assert.True(t, actual.IsVisible())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent product!", actual.Message().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("message validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty message is allowed",
				mutate: func(b *builder.ReviewBuilder) { b.WithMessage("") },
			},
			{
				name:   "whitespace only message collapses to empty",
				mutate: func(b *builder.ReviewBuilder) { b.WithMessage("   ") },
			},
			{
				name: "maximum length message",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithMessage(strings.Repeat("a", review.MaxMessageLength))
				},
			},
			{
				name: "message exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithMessage(strings.Repeat("a", review.MaxMessageLength+1))
				},
				errIs: review.ErrMessageTooLong,
			},
		})
	})

	t.Run("message trimming", func(t *testing.T) {
		msg, err := review.NewMessage("  Trimmed message  ")
		require.NoError(t, err)
		assert.Equal(t, "Trimmed message", msg.String())
	})

	t.Run("ID uniqueness", func(t *testing.T) {
		b := builder.NewReviewBuilder()

		review1, err1 := b.BuildDomain()
		review2, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, review1.ID(), review2.ID())
		assert.NotEqual(t, review1.ExternalID(), review2.ExternalID())
	})

	t.Run("reconstruct preserves stored state", func(t *testing.T) {
		id := uuid.New()
		externalID := uuid.NewString()
		purchaseID := uuid.New()
		productID := uuid.New()
		rating, _ := review.NewRating(3)
		message, _ := review.NewMessage("ok")
		createdAt := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		actual := review.ReconstructReview(id, externalID, purchaseID, productID, rating, message, false, true, createdAt, updatedAt)

		assert.Equal(t, id, actual.ID())
		assert.Equal(t, externalID, actual.ExternalID())
		assert.Equal(t, purchaseID, actual.PurchaseID())
		assert.Equal(t, productID, actual.ProductID())
		assert.False(t, actual.Alive())
		assert.False(t, actual.IsVisible())
		assert.Equal(t, createdAt, actual.CreatedAt())
		assert.Equal(t, updatedAt, actual.UpdatedAt())
	})
}

func TestVisible(t *testing.T) {
	cases := []struct {
		name    string
		alive   bool
		visible bool
		want    bool
	}{
		{name: "alive and visible", alive: true, visible: true, want: true},
		{name: "soft deleted", alive: false, visible: true, want: false},
		{name: "hidden from product page", alive: true, visible: false, want: false},
		{name: "deleted and hidden", alive: false, visible: false, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, review.Visible(c.alive, c.visible))
		})
	}
}

func TestVideoOps(t *testing.T) {
	t.Run("destroy op carries the video id", func(t *testing.T) {
		id := uuid.New()
		op := review.NewDestroyVideoOp(id)

		assert.Equal(t, review.VideoOpDestroy, op.Kind)
		assert.Equal(t, id, op.VideoID)
	})

	t.Run("create op requires a url", func(t *testing.T) {
		_, err := review.NewCreateVideoOp("", "thumb")
		require.ErrorIs(t, err, review.ErrVideoURLRequired)

		_, err = review.NewCreateVideoOp("   ", "thumb")
		require.ErrorIs(t, err, review.ErrVideoURLRequired)
	})

	t.Run("create op trims the url", func(t *testing.T) {
		op, err := review.NewCreateVideoOp("  https://example.com/v.mp4  ", "thumb")
		require.NoError(t, err)

		assert.Equal(t, review.VideoOpCreate, op.Kind)
		assert.Equal(t, "https://example.com/v.mp4", op.URL)
		assert.Equal(t, "thumb", op.ThumbnailRef)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
