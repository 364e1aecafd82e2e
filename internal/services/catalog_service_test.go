package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv_backend/internal/models"
)

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func newCatalogFixture() (*fakeProductRepo, *fakeAddOnRepo, CatalogService) {
	productRepo := newFakeProductRepo()
	addOnRepo := newFakeAddOnRepo()
	return productRepo, addOnRepo, NewCatalogService(productRepo, addOnRepo)
}

func TestCreateProduct(t *testing.T) {
	_, _, service := newCatalogFixture()

	product, err := service.CreateProduct(ProductInput{Name: "XR Burguer", Price: dec(18.00), Category: "Lanches"})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.True(t, product.Active)
	assert.Equal(t, "18.00", product.Price.StringFixed(2))
}

func TestCreateProductValidation(t *testing.T) {
	repo, _, service := newCatalogFixture()

	testCases := []struct {
		name  string
		input ProductInput
	}{
		{"missing name", ProductInput{Price: dec(10), Category: "Lanches"}},
		{"missing price", ProductInput{Name: "X", Category: "Lanches"}},
		{"zero price", ProductInput{Name: "X", Price: dec(0), Category: "Lanches"}},
		{"negative price", ProductInput{Name: "X", Price: dec(-1), Category: "Lanches"}},
		{"missing category", ProductInput{Name: "X", Price: dec(10)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateProduct(tc.input)
			assert.True(t, models.IsValidation(err), "expected validation error, got %v", err)
		})
	}
	assert.Empty(t, repo.products)
}

func TestUpdateProduct(t *testing.T) {
	repo, _, service := newCatalogFixture()
	created, err := service.CreateProduct(ProductInput{Name: "XR Burguer", Price: dec(18.00), Category: "Lanches"})
	require.NoError(t, err)

	inactive := false
	updated, err := service.UpdateProduct(created.ID, ProductInput{
		Name: "XR Burguer Duplo", Price: dec(24.00), Category: "Lanches", Active: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "XR Burguer Duplo", updated.Name)
	assert.Equal(t, "24.00", updated.Price.StringFixed(2))
	assert.False(t, updated.Active)
	assert.Equal(t, "XR Burguer Duplo", repo.products[created.ID].Name)
}

func TestUpdateProductNotFound(t *testing.T) {
	_, _, service := newCatalogFixture()
	_, err := service.UpdateProduct(99, ProductInput{Name: "X", Price: dec(10), Category: "C"})
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestDeactivateProduct(t *testing.T) {
	_, _, service := newCatalogFixture()
	created, err := service.CreateProduct(ProductInput{Name: "XR Burguer", Price: dec(18.00), Category: "Lanches"})
	require.NoError(t, err)

	deactivated, err := service.DeactivateProduct(created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	// Gone from the active listing, still retrievable by id.
	active, err := service.ListProducts(true)
	require.NoError(t, err)
	assert.Empty(t, active)

	fetched, err := service.GetProduct(created.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Active)

	all, err := service.ListProducts(false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeactivateProductNotFound(t *testing.T) {
	_, _, service := newCatalogFixture()
	_, err := service.DeactivateProduct(5)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestCreateAddOnAllowsZeroPrice(t *testing.T) {
	_, _, service := newCatalogFixture()

	addOn, err := service.CreateAddOn(AddOnInput{Name: "Sem Cebola", Price: dec(0)})
	require.NoError(t, err)
	assert.True(t, addOn.Active)
	assert.Equal(t, "0.00", addOn.Price.StringFixed(2))
}

func TestCreateAddOnValidation(t *testing.T) {
	_, _, service := newCatalogFixture()

	_, err := service.CreateAddOn(AddOnInput{Price: dec(1)})
	assert.True(t, models.IsValidation(err))

	_, err = service.CreateAddOn(AddOnInput{Name: "Bacon"})
	assert.True(t, models.IsValidation(err))

	_, err = service.CreateAddOn(AddOnInput{Name: "Bacon", Price: dec(-0.5)})
	assert.True(t, models.IsValidation(err))
}

func TestDeactivateAddOnKeepsRow(t *testing.T) {
	_, addOnRepo, service := newCatalogFixture()

	created, err := service.CreateAddOn(AddOnInput{Name: "Bacon Extra", Price: dec(4.00)})
	require.NoError(t, err)

	_, err = service.DeactivateAddOn(created.ID)
	require.NoError(t, err)

	// Soft delete only: the row stays for historical orders.
	stored, ok := addOnRepo.addOns[created.ID]
	require.True(t, ok)
	assert.False(t, stored.Active)

	active, err := service.ListAddOns(true)
	require.NoError(t, err)
	assert.Empty(t, active)
}
