package requests

type UpdateCatalogPrice struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}
