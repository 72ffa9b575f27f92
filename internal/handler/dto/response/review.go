package response

import (
	"product-reviews/internal/usecase/queries"
)

type PaginationResponse struct {
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Count int64 `json:"count"`
	Next  *int  `json:"next"`
	Prev  *int  `json:"prev"`
}

func FromPagination(p queries.Pagination) PaginationResponse {
	return PaginationResponse{
		Page:  p.Page,
		Pages: p.Pages,
		Count: p.Count,
		Next:  p.Next,
		Prev:  p.Prev,
	}
}

type ReviewListItemResponse struct {
	ID        string `json:"id"`
	Rating    int32  `json:"rating"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
}

type ListReviewsResponse struct {
	Pagination PaginationResponse        `json:"pagination"`
	Reviews    []*ReviewListItemResponse `json:"reviews"`
}

func FromReviewList(p queries.Pagination, items []*queries.ReviewListItem) *ListReviewsResponse {
	reviews := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		reviews[i] = &ReviewListItemResponse{
			ID:        it.ExternalID,
			Rating:    it.Rating,
			Message:   it.Message,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return &ListReviewsResponse{
		Pagination: FromPagination(p),
		Reviews:    reviews,
	}
}

type ReviewResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Rating    int32  `json:"rating"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type GetReviewResponse struct {
	Review *ReviewResponse `json:"review"`
}

func FromReviewView(v *queries.ReviewView) *GetReviewResponse {
	return &GetReviewResponse{
		Review: &ReviewResponse{
			ID:        v.ExternalID,
			ProductID: v.ProductExternalID,
			Rating:    v.Rating,
			Message:   v.Message,
			CreatedAt: v.CreatedAt.Unix(),
			UpdatedAt: v.UpdatedAt.Unix(),
		},
	}
}

type VideoResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailRef string `json:"thumbnail_ref,omitempty"`
	Approved     bool   `json:"approved"`
	CreatedAt    int64  `json:"created_at"`
}

// ReviewFormResponse is the submitter-facing shape: the review as it would
// populate the edit form, unapproved attachments included.
type ReviewFormResponse struct {
	ID        string           `json:"id"`
	Rating    int32            `json:"rating"`
	Message   string           `json:"message"`
	Videos    []*VideoResponse `json:"videos"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt int64            `json:"updated_at"`
}

type SubmitReviewResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Review  *ReviewFormResponse `json:"review,omitempty"`
}

func SubmitSuccess(form *queries.ReviewFormView) *SubmitReviewResponse {
	videos := make([]*VideoResponse, len(form.Videos))
	for i, v := range form.Videos {
		videos[i] = &VideoResponse{
			ID:           v.ID.String(),
			URL:          v.URL,
			ThumbnailRef: v.ThumbnailRef,
			Approved:     v.Approved,
			CreatedAt:    v.CreatedAt.Unix(),
		}
	}
	return &SubmitReviewResponse{
		Success: true,
		Review: &ReviewFormResponse{
			ID:        form.ExternalID,
			Rating:    form.Rating,
			Message:   form.Message,
			Videos:    videos,
			CreatedAt: form.CreatedAt.Unix(),
			UpdatedAt: form.UpdatedAt.Unix(),
		},
	}
}

func SubmitFailure(message string) *SubmitReviewResponse {
	return &SubmitReviewResponse{Success: false, Message: message}
}
