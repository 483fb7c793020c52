package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimart/internal/apperr"
)

func TestCatalogService_Menu(t *testing.T) {
	svc := NewCatalogService(newStubCatalog())

	opts, err := svc.Menu()

	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, "canned_food", opts[0].Key)
	assert.Equal(t, "Canned Food", opts[0].Label)
	assert.Equal(t, "fruits", opts[1].Key)
	assert.Equal(t, "Fruits", opts[1].Label)
}

func TestCatalogService_Browse(t *testing.T) {
	svc := NewCatalogService(newStubCatalog())

	view, err := svc.Browse("fruits")

	require.NoError(t, err)
	assert.Equal(t, "Fruits", view.Label)
	require.Len(t, view.Products, 1)
	assert.Equal(t, "Apple", view.Products[0].Name)
}

func TestCatalogService_Browse_UnknownCategory(t *testing.T) {
	svc := NewCatalogService(newStubCatalog())

	_, err := svc.Browse("dairy")

	assert.ErrorIs(t, err, apperr.ErrStorageUnavailable)
}
