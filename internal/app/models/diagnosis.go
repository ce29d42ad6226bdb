package models

import "time"

// PrescriptionLine carries the unit price copied from the catalog at
// prescribing time. Catalog price changes never alter historical lines.
type PrescriptionLine struct {
	DrugName     string  `json:"drug_name" bson:"drugName"`
	Dosage       string  `json:"dosage" bson:"dosage"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	Instructions string  `json:"instructions" bson:"instructions"`
	UnitPrice    float64 `json:"unit_price" bson:"unitPrice"`
}

type Diagnosis struct {
	ID            string             `json:"id" bson:"_id"`
	PatientID     string             `json:"patient_id" bson:"patientId"`
	DoctorID      string             `json:"doctor_id" bson:"doctorId"`
	Diagnosis     string             `json:"diagnosis" bson:"diagnosis"`
	LabTestIDs    []string           `json:"lab_test_ids,omitempty" bson:"labTestIds,omitempty"`
	Prescriptions []PrescriptionLine `json:"prescriptions,omitempty" bson:"prescriptions,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
}
