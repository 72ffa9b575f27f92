package review

import (
	"strings"

	"github.com/google/uuid"
)

type VideoOpKind string

const (
	VideoOpDestroy VideoOpKind = "destroy"
	VideoOpCreate  VideoOpKind = "create"
)

// VideoOp is one attachment command from a submission. Ops apply in order
// inside the same transaction as the rating/message change.
type VideoOp struct {
	Kind         VideoOpKind
	VideoID      uuid.UUID
	URL          string
	ThumbnailRef string
}

func NewDestroyVideoOp(id uuid.UUID) VideoOp {
	return VideoOp{Kind: VideoOpDestroy, VideoID: id}
}

func NewCreateVideoOp(url, thumbnailRef string) (VideoOp, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return VideoOp{}, ErrVideoURLRequired
	}
	return VideoOp{Kind: VideoOpCreate, URL: url, ThumbnailRef: thumbnailRef}, nil
}
