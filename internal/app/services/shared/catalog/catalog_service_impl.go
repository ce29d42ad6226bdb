package catalog

import (
	"fmt"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/exceptions"
	"sync"
)

type catalogService struct {
	mu    sync.RWMutex
	items []models.CatalogItem
	index map[string]int
}

// NewCatalogService seeds the reference data the front desk, lab and
// pharmacy work from. Prices are in naira.
func NewCatalogService() contracts.CatalogService {
	items := []models.CatalogItem{
		{ID: "1", Kind: models.CatalogItemKindLabTest, Name: "Blood Test (Full)", Price: 2500, Description: "Complete blood count"},
		{ID: "2", Kind: models.CatalogItemKindLabTest, Name: "Urine Test", Price: 1500, Description: "Urinalysis"},
		{ID: "3", Kind: models.CatalogItemKindLabTest, Name: "X-Ray Chest", Price: 3000, Description: "Chest X-ray examination"},
		{ID: "4", Kind: models.CatalogItemKindLabTest, Name: "Blood Sugar", Price: 800, Description: "Glucose level test"},
		{ID: "5", Kind: models.CatalogItemKindLabTest, Name: "ECG", Price: 2000, Description: "Electrocardiogram"},
		{ID: "M1", Kind: models.CatalogItemKindMedication, Name: "Paracetamol 500mg", Price: 50},
		{ID: "M2", Kind: models.CatalogItemKindMedication, Name: "Amoxicillin 250mg", Price: 120},
		{ID: "M3", Kind: models.CatalogItemKindMedication, Name: "Ibuprofen 400mg", Price: 80},
		{ID: "M4", Kind: models.CatalogItemKindMedication, Name: "Vitamin C 1000mg", Price: 30},
		{ID: "M5", Kind: models.CatalogItemKindMedication, Name: "Omeprazole 20mg", Price: 150},
	}
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item.ID] = i
	}
	return &catalogService{items: items, index: index}
}

func (c *catalogService) LabTests() []models.CatalogItem {
	return c.itemsOfKind(models.CatalogItemKindLabTest)
}

func (c *catalogService) Medications() []models.CatalogItem {
	return c.itemsOfKind(models.CatalogItemKindMedication)
}

func (c *catalogService) itemsOfKind(kind models.CatalogItemKind) []models.CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var items []models.CatalogItem
	for _, item := range c.items {
		if item.Kind == kind {
			items = append(items, item)
		}
	}
	return items
}

func (c *catalogService) FindItemByID(itemID string) (*models.CatalogItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.index[itemID]
	if !ok {
		return nil, exceptions.ErrCatalogItemNotFound(fmt.Errorf("item %s", itemID))
	}
	item := c.items[idx]
	return &item, nil
}

func (c *catalogService) UpdatePrice(itemID string, price float64) (*models.CatalogItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.index[itemID]
	if !ok {
		return nil, exceptions.ErrCatalogItemNotFound(fmt.Errorf("item %s", itemID))
	}
	c.items[idx].Price = price
	item := c.items[idx]
	return &item, nil
}
