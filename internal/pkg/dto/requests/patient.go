package requests

type RegisterPatient struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Age         int    `json:"age" validate:"required,gt=0,lt=150"`
	Gender      string `json:"gender" validate:"required,gender"`
	Contact     string `json:"contact" validate:"required,min=5,max=30"`
	IsReturning bool   `json:"is_returning"`
	// PaymentPending marks registrations taken at the cashier desk where
	// the consultation fee is collected in the same flow.
	PaymentPending bool `json:"payment_pending"`
}
