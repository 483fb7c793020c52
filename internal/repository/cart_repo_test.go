package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimart/internal/apperr"
)

func cartFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCartRepo_Bucket_CreatesOnFirstUse(t *testing.T) {
	path := cartFile(t, `{"users": []}`)
	repo := NewCartRepository(path)

	bucket, err := repo.Bucket("1")

	require.NoError(t, err)
	assert.Equal(t, "1", bucket.UserID)
	assert.Empty(t, bucket.Cart)

	// The new bucket is persisted, not just returned.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"userid": "1"`)
}

func TestCartRepo_Bucket_LastMatchWins(t *testing.T) {
	path := cartFile(t, `{"users": [
        {"userid": "1", "cart": [{"id": 1, "name": "Old", "quantity": 1, "price": 1.00, "amount": 1.00}]},
        {"userid": "1", "cart": [{"id": 1, "name": "New", "quantity": 1, "price": 2.00, "amount": 2.00}]}
    ]}`)
	repo := NewCartRepository(path)

	bucket, err := repo.Bucket("1")

	require.NoError(t, err)
	require.Len(t, bucket.Cart, 1)
	assert.Equal(t, "New", bucket.Cart[0].Name)
}

func TestCartRepo_AddItem_SequentialIDsAndAmount(t *testing.T) {
	path := cartFile(t, `{"users": []}`)
	repo := NewCartRepository(path)

	first, err := repo.AddItem("1", "Baked Beans", 2, decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	second, err := repo.AddItem("1", "Apple", 3, decimal.RequireFromString("0.80"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "5.00", first.Amount.StringFixed(2))
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "2.40", second.Amount.StringFixed(2))

	bucket, err := repo.Bucket("1")
	require.NoError(t, err)
	require.Len(t, bucket.Cart, 2)
}

func TestCartRepo_AddItem_IsolatedPerUser(t *testing.T) {
	path := cartFile(t, `{"users": []}`)
	repo := NewCartRepository(path)

	_, err := repo.AddItem("1", "Carrot", 1, decimal.RequireFromString("1.10"))
	require.NoError(t, err)
	_, err = repo.AddItem("2", "Apple", 1, decimal.RequireFromString("0.80"))
	require.NoError(t, err)

	one, err := repo.Bucket("1")
	require.NoError(t, err)
	two, err := repo.Bucket("2")
	require.NoError(t, err)

	require.Len(t, one.Cart, 1)
	require.Len(t, two.Cart, 1)
	assert.Equal(t, "Carrot", one.Cart[0].Name)
	assert.Equal(t, "Apple", two.Cart[0].Name)
}

func TestCartRepo_RemoveItem_RenumbersRemaining(t *testing.T) {
	path := cartFile(t, `{"users": []}`)
	repo := NewCartRepository(path)
	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.AddItem("1", name, 1, decimal.RequireFromString("1.00"))
		require.NoError(t, err)
	}

	removed, err := repo.RemoveItem("1", 2)

	require.NoError(t, err)
	assert.Equal(t, "B", removed.Name)

	bucket, err := repo.Bucket("1")
	require.NoError(t, err)
	require.Len(t, bucket.Cart, 2)
	assert.Equal(t, 1, bucket.Cart[0].ID)
	assert.Equal(t, "A", bucket.Cart[0].Name)
	assert.Equal(t, 2, bucket.Cart[1].ID)
	assert.Equal(t, "C", bucket.Cart[1].Name)
}

func TestCartRepo_RemoveItem_OutOfRange(t *testing.T) {
	path := cartFile(t, `{"users": []}`)
	repo := NewCartRepository(path)
	_, err := repo.AddItem("1", "A", 1, decimal.RequireFromString("1.00"))
	require.NoError(t, err)

	_, err = repo.RemoveItem("1", 0)
	assert.ErrorIs(t, err, apperr.ErrProductIndexOutOfRange)

	_, err = repo.RemoveItem("1", 2)
	assert.ErrorIs(t, err, apperr.ErrProductIndexOutOfRange)

	_, err = repo.RemoveItem("ghost", 1)
	assert.ErrorIs(t, err, apperr.ErrProductIndexOutOfRange)
}

func TestCartRepo_Clear(t *testing.T) {
	path := cartFile(t, `{"users": []}`)
	repo := NewCartRepository(path)
	_, err := repo.AddItem("1", "A", 1, decimal.RequireFromString("1.00"))
	require.NoError(t, err)

	require.NoError(t, repo.Clear("1"))

	bucket, err := repo.Bucket("1")
	require.NoError(t, err)
	assert.Empty(t, bucket.Cart)

	// The bucket itself survives with an empty cart array.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cart": []`)
}

func TestCartRepo_MissingFile(t *testing.T) {
	repo := NewCartRepository(filepath.Join(t.TempDir(), "nope.json"))

	_, err := repo.Bucket("1")

	assert.ErrorIs(t, err, apperr.ErrStorageUnavailable)
}
