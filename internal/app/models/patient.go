package models

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type PatientStatus string

const (
	PatientStatusPaymentPending   PatientStatus = "payment_pending"
	PatientStatusRegistered       PatientStatus = "registered"
	PatientStatusPaidConsultation PatientStatus = "paid_consultation"
	PatientStatusDiagnosed        PatientStatus = "diagnosed"
	PatientStatusLabReferred      PatientStatus = "lab_referred"
	PatientStatusPharmacyReferred PatientStatus = "pharmacy_referred"
	PatientStatusCompleted        PatientStatus = "completed"
)

// PatientStatuses is the closed set of legal patient lifecycle values.
var PatientStatuses = map[PatientStatus]bool{
	PatientStatusPaymentPending:   true,
	PatientStatusRegistered:       true,
	PatientStatusPaidConsultation: true,
	PatientStatusDiagnosed:        true,
	PatientStatusLabReferred:      true,
	PatientStatusPharmacyReferred: true,
	PatientStatusCompleted:        true,
}

type Patient struct {
	ID           string        `json:"id" bson:"_id"`
	Name         string        `json:"name" bson:"name"`
	Age          int           `json:"age" bson:"age"`
	Gender       Gender        `json:"gender" bson:"gender"`
	Contact      string        `json:"contact" bson:"contact"`
	RegisteredAt time.Time     `json:"registered_at" bson:"registeredAt"`
	Status       PatientStatus `json:"status" bson:"status"`
	IsReturning  bool          `json:"is_returning" bson:"isReturning"`
	VisitIDs     []string      `json:"visit_ids,omitempty" bson:"visitIds,omitempty"`
}
