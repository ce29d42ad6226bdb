package responses

type PaymentReceipt struct {
	ReceiptNumber string  `json:"receipt_number"`
	PaymentID     string  `json:"payment_id"`
	PatientID     string  `json:"patient_id"`
	Amount        float64 `json:"amount"`
	PatientStatus string  `json:"patient_status"`
}
