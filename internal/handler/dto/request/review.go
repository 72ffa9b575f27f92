package request

import (
	domreview "product-reviews/internal/domain/review"
	"product-reviews/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	PurchaseID          string       `json:"purchase_id" binding:"required"`
	PurchaseEmailDigest string       `json:"purchase_email_digest" binding:"required"`
	Rating              int          `json:"rating"`
	Message             string       `json:"message"`
	VideoOptions        VideoOptions `json:"video_options"`
}

// VideoOptions mirrors the submitted attachment commands: existing videos
// to remove and new ones to add, applied destroys-first.
type VideoOptions struct {
	Destroy []VideoDestroyParams `json:"destroy"`
	Create  []VideoCreateParams  `json:"create"`
}

type VideoDestroyParams struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

type VideoCreateParams struct {
	URL          string `json:"url" binding:"required"`
	ThumbnailRef string `json:"thumbnail_signed_id"`
}

func (r *SubmitReviewRequest) ToCommand(productExternalID string) (commands.SubmitReviewRequest, error) {
	ops := make([]domreview.VideoOp, 0, len(r.VideoOptions.Destroy)+len(r.VideoOptions.Create))
	for _, d := range r.VideoOptions.Destroy {
		ops = append(ops, domreview.NewDestroyVideoOp(d.ID))
	}
	for _, cr := range r.VideoOptions.Create {
		op, err := domreview.NewCreateVideoOp(cr.URL, cr.ThumbnailRef)
		if err != nil {
			return commands.SubmitReviewRequest{}, err
		}
		ops = append(ops, op)
	}

	return commands.SubmitReviewRequest{
		ProductExternalID:  productExternalID,
		PurchaseExternalID: r.PurchaseID,
		EmailDigest:        r.PurchaseEmailDigest,
		Rating:             r.Rating,
		Message:            r.Message,
		VideoOps:           ops,
	}, nil
}
