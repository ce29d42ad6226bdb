package models

import "time"

type ServiceType string

const (
	ServiceTypeLab      ServiceType = "lab"
	ServiceTypePharmacy ServiceType = "pharmacy"
)

type ServiceStatus string

const (
	ServiceStatusPending   ServiceStatus = "pending"
	ServiceStatusPaid      ServiceStatus = "paid"
	ServiceStatusCompleted ServiceStatus = "completed"
	ServiceStatusDispensed ServiceStatus = "dispensed"
)

// Service tracks a lab-test or prescription bundle through
// pending -> paid -> completed/dispensed. TotalAmount is frozen at
// creation time from catalog prices and never recomputed.
type Service struct {
	ID          string        `json:"id" bson:"_id"`
	PatientID   string        `json:"patient_id" bson:"patientId"`
	ServiceType ServiceType   `json:"service_type" bson:"serviceType"`
	Items       []string      `json:"items" bson:"items"`
	TotalAmount float64       `json:"total_amount" bson:"totalAmount"`
	Status      ServiceStatus `json:"status" bson:"status"`
	CompletedAt *time.Time    `json:"completed_at,omitempty" bson:"completedAt,omitempty"`
	DispensedBy string        `json:"dispensed_by,omitempty" bson:"dispensedBy,omitempty"`
	CompletedBy string        `json:"completed_by,omitempty" bson:"completedBy,omitempty"`
}
