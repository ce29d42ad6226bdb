package requests

type RecordPayment struct {
	PatientID   string  `json:"patient_id" validate:"required"`
	Type        string  `json:"type" validate:"required,payment_type"`
	Amount      float64 `json:"amount" validate:"required"`
	Description string  `json:"description" validate:"max=500"`
}

type BreakdownLine struct {
	ServiceLabel string   `json:"service_label" validate:"required"`
	Amount       float64  `json:"amount" validate:"gte=0"`
	Items        []string `json:"items"`
}

type RecordCombinedPayment struct {
	PatientID   string          `json:"patient_id" validate:"required"`
	ServiceIDs  []string        `json:"service_ids" validate:"required,min=1"`
	TotalAmount float64         `json:"total_amount" validate:"required"`
	Breakdown   []BreakdownLine `json:"breakdown" validate:"required,min=1,dive"`
}
