package models

import "time"

type PaymentType string

const (
	PaymentTypeConsultation PaymentType = "consultation"
	PaymentTypeLab          PaymentType = "lab"
	PaymentTypePharmacy     PaymentType = "pharmacy"
	PaymentTypeCombined     PaymentType = "combined"
)

// BreakdownLine is one service line of a combined payment receipt.
// ServiceLabel "Consultation" marks the optional consultation fee.
type BreakdownLine struct {
	ServiceLabel string   `json:"service_label" bson:"serviceLabel"`
	Amount       float64  `json:"amount" bson:"amount"`
	Items        []string `json:"items,omitempty" bson:"items,omitempty"`
}

// Payment is immutable once created. Payments are only appended, never
// edited or deleted.
type Payment struct {
	ID            string          `json:"id" bson:"_id"`
	PatientID     string          `json:"patient_id" bson:"patientId"`
	Type          PaymentType     `json:"type" bson:"type"`
	Amount        float64         `json:"amount" bson:"amount"`
	Description   string          `json:"description" bson:"description"`
	PaidAt        time.Time       `json:"paid_at" bson:"paidAt"`
	ReceiptNumber string          `json:"receipt_number" bson:"receiptNumber"`
	Breakdown     []BreakdownLine `json:"breakdown,omitempty" bson:"breakdown,omitempty"`
}

// Breakdown service labels shared between the cashier flow and revenue
// attribution. ConsultationLabel marks the consultation fee line of a
// combined payment.
const (
	ConsultationLabel     = "Consultation"
	LabServicesLabel      = "Lab Tests"
	PharmacyServicesLabel = "Pharmacy"
)
