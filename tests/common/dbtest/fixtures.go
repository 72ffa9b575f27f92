//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"product-reviews/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext every seeded seller logs in with.
const TestPassword = "password123"

var (
	hashOnce         sync.Once
	testPasswordHash string
)

func CreateTestSeller(t *testing.T, db DBLike, email string, disableAfterOneYear bool) uuid.UUID {
	t.Helper()

	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		testPasswordHash = h
	})

	sellerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO sellers (id, email, password_hash, disable_reviews_after_one_year) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		sellerID, email, testPasswordHash, disableAfterOneYear)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM sellers WHERE email = $1", email).Scan(&sellerID)
	}

	return sellerID
}

func CreateTestProduct(t *testing.T, db DBLike, sellerID uuid.UUID, externalID string, reviewsVisible bool) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (id, external_id, seller_id, name, reviews_publicly_visible) VALUES ($1, $2, $3, $4, $5)",
		productID, externalID, sellerID, "Test Product", reviewsVisible)
	require.NoError(t, err)

	return productID
}

func CreateTestPurchase(t *testing.T, db DBLike, productID uuid.UUID, externalID, emailDigest string, purchasedAt time.Time) uuid.UUID {
	t.Helper()

	purchaseID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO purchases (id, external_id, product_id, email_digest, created_at) VALUES ($1, $2, $3, $4, $5)",
		purchaseID, externalID, productID, emailDigest, purchasedAt)
	require.NoError(t, err)

	return purchaseID
}

func CreateTestReview(t *testing.T, db DBLike, purchaseID, productID uuid.UUID, rating int, message string, alive, visible bool, createdAt time.Time) uuid.UUID {
	t.Helper()

	reviewID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO reviews (id, external_id, purchase_id, product_id, rating, message, alive, visible_on_product_page, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)",
		reviewID, uuid.NewString(), purchaseID, productID, rating, message, alive, visible, createdAt)
	require.NoError(t, err)

	return reviewID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
