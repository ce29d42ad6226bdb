package catalog

import (
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSeedData(t *testing.T) {
	svc := NewCatalogService()

	labTests := svc.LabTests()
	require.Len(t, labTests, 5)
	for _, item := range labTests {
		assert.Equal(t, models.CatalogItemKindLabTest, item.Kind)
		assert.Greater(t, item.Price, 0.0)
	}

	medications := svc.Medications()
	require.Len(t, medications, 5)
	for _, item := range medications {
		assert.Equal(t, models.CatalogItemKindMedication, item.Kind)
	}

	bloodTest, err := svc.FindItemByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Blood Test (Full)", bloodTest.Name)
	assert.Equal(t, 2500.0, bloodTest.Price)

	paracetamol, err := svc.FindItemByID("M1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, paracetamol.Price)
}

func TestCatalogFindUnknownItem(t *testing.T) {
	svc := NewCatalogService()

	_, err := svc.FindItemByID("M99")
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
}

func TestCatalogUpdatePrice(t *testing.T) {
	svc := NewCatalogService()

	updated, err := svc.UpdatePrice("M3", 95)
	require.NoError(t, err)
	assert.Equal(t, 95.0, updated.Price)

	again, err := svc.FindItemByID("M3")
	require.NoError(t, err)
	assert.Equal(t, 95.0, again.Price)

	_, err = svc.UpdatePrice("nope", 10)
	require.Error(t, err)
}

func TestCatalogReturnsCopies(t *testing.T) {
	svc := NewCatalogService()

	item, err := svc.FindItemByID("2")
	require.NoError(t, err)
	item.Price = 1

	again, err := svc.FindItemByID("2")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, again.Price)
}
