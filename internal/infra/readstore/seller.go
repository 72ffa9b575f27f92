package readstore

import (
	"context"

	"product-reviews/internal/infra"
	"product-reviews/internal/infra/db"
	"product-reviews/internal/pkg/pgconv"
	"product-reviews/internal/usecase/shared"
)

const sellerByEmailSQL = `
SELECT id, email, password_hash
FROM sellers
WHERE email = $1`

type SellerReadStore struct {
	db db.DBTX
}

func NewSellerReadStore(dbtx db.DBTX) *SellerReadStore {
	return &SellerReadStore{db: dbtx}
}

func (r *SellerReadStore) FindByEmail(ctx context.Context, email string) (*shared.SellerCredentials, error) {
	var creds shared.SellerCredentials
	err := r.db.QueryRow(ctx, sellerByEmailSQL, email).Scan(&creds.ID, &creds.Email, &creds.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seller not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get seller by email", err)
	}
	return &creds, nil
}
