package models

type CatalogItemKind string

const (
	CatalogItemKindLabTest    CatalogItemKind = "lab_test"
	CatalogItemKindMedication CatalogItemKind = "medication"
)

type CatalogItem struct {
	ID          string          `json:"id"`
	Kind        CatalogItemKind `json:"kind"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Description string          `json:"description,omitempty"`
}
