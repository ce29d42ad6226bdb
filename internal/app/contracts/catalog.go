package contracts

import "medipos-service/internal/app/models"

type CatalogService interface {
	LabTests() []models.CatalogItem
	Medications() []models.CatalogItem
	FindItemByID(itemID string) (*models.CatalogItem, error)
	UpdatePrice(itemID string, price float64) (*models.CatalogItem, error)
}
