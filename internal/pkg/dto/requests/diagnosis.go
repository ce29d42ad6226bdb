package requests

type PrescriptionLine struct {
	DrugID       string `json:"drug_id" validate:"required"`
	Dosage       string `json:"dosage" validate:"required,max=100"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Instructions string `json:"instructions" validate:"max=500"`
}

type RecordDiagnosis struct {
	PatientID     string             `json:"patient_id" validate:"required"`
	Diagnosis     string             `json:"diagnosis" validate:"required,max=2000"`
	LabTestIDs    []string           `json:"lab_test_ids"`
	Prescriptions []PrescriptionLine `json:"prescriptions" validate:"dive"`
}
