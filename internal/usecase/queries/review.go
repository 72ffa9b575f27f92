package queries

import (
	"context"
	"time"

	"product-reviews/internal/domain/product"
	"product-reviews/internal/domain/review"
	"product-reviews/internal/infra"
	"product-reviews/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrReviewNotFound  = errs.New("review not found")
	ErrReviewsHidden   = errs.New("reviews are hidden for this requester")
)

// ReviewView is the public product-page shape of a single review, with the
// product fields the visibility gate needs.
type ReviewView struct {
	ID                     uuid.UUID
	ExternalID             string
	Rating                 int32
	Message                string
	Alive                  bool
	VisibleOnProductPage   bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
	ProductID              uuid.UUID
	ProductExternalID      string
	ProductSellerID        uuid.UUID
	ReviewsPubliclyVisible bool
}

type ReviewListItem struct {
	ID         uuid.UUID
	ExternalID string
	Rating     int32
	Message    string
	CreatedAt  time.Time
}

// ReviewFormView is the shape the submitter gets back: their own review
// with every attachment, approved or not.
type ReviewFormView struct {
	ID         uuid.UUID
	ExternalID string
	Rating     int32
	Message    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Videos     []VideoView
}

type VideoView struct {
	ID           uuid.UUID
	URL          string
	ThumbnailRef string
	Approved     bool
	CreatedAt    time.Time
}

type ProductView struct {
	ID                         uuid.UUID
	ExternalID                 string
	SellerID                   uuid.UUID
	ReviewsPubliclyVisible     bool
	DisableReviewsAfterOneYear bool
}

type ReviewReadStore interface {
	CountVisibleByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	ListVisibleByProduct(ctx context.Context, productID uuid.UUID, limit, offset int32) ([]*ReviewListItem, error)
	FindByExternalID(ctx context.Context, externalID string) (*ReviewView, error)
	FindFormByID(ctx context.Context, id uuid.UUID) (*ReviewFormView, error)
}

type ProductReadStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*ProductView, error)
}

type ReviewQueries interface {
	ListByProduct(ctx context.Context, productExternalID string, requester *uuid.UUID, page int) (Pagination, []*ReviewListItem, error)
	GetByExternalID(ctx context.Context, externalID string, requester *uuid.UUID) (*ReviewView, error)
	GetFormByID(ctx context.Context, id uuid.UUID) (*ReviewFormView, error)
}

type reviewQueriesImpl struct {
	reviews  ReviewReadStore
	products ProductReadStore
}

func NewReviewQueries(reviews ReviewReadStore, products ProductReadStore) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, products: products}
}

func (q *reviewQueriesImpl) ListByProduct(ctx context.Context, productExternalID string, requester *uuid.UUID, page int) (Pagination, []*ReviewListItem, error) {
	prod, err := q.products.FindByExternalID(ctx, productExternalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return Pagination{}, nil, ErrProductNotFound
		}
		return Pagination{}, nil, err
	}

	gate := product.Product{ID: prod.ID, ExternalID: prod.ExternalID, SellerID: prod.SellerID, ReviewsPubliclyVisible: prod.ReviewsPubliclyVisible}
	if !gate.ReviewsVisibleTo(requester) {
		return Pagination{}, nil, ErrReviewsHidden
	}

	page = ClampPage(page)
	count, err := q.reviews.CountVisibleByProduct(ctx, prod.ID)
	if err != nil {
		return Pagination{}, nil, err
	}

	// A page past the end has nothing to fetch. Short-circuiting here also
	// keeps an arbitrarily large page number from overflowing the int32
	// offset the read store takes.
	if page > TotalPages(count) {
		return NewPagination(page, count), []*ReviewListItem{}, nil
	}

	offset := int32((page - 1) * PerPage)
	items, err := q.reviews.ListVisibleByProduct(ctx, prod.ID, PerPage, offset)
	if err != nil {
		return Pagination{}, nil, err
	}

	return NewPagination(page, count), items, nil
}

func (q *reviewQueriesImpl) GetByExternalID(ctx context.Context, externalID string, requester *uuid.UUID) (*ReviewView, error) {
	view, err := q.reviews.FindByExternalID(ctx, externalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	// Soft-deleted or unmoderated reviews are indistinguishable from absent ones.
	if !review.Visible(view.Alive, view.VisibleOnProductPage) {
		return nil, ErrReviewNotFound
	}

	gate := product.Product{ID: view.ProductID, ExternalID: view.ProductExternalID, SellerID: view.ProductSellerID, ReviewsPubliclyVisible: view.ReviewsPubliclyVisible}
	if !gate.ReviewsVisibleTo(requester) {
		return nil, ErrReviewsHidden
	}

	return view, nil
}

func (q *reviewQueriesImpl) GetFormByID(ctx context.Context, id uuid.UUID) (*ReviewFormView, error) {
	form, err := q.reviews.FindFormByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return form, nil
}
