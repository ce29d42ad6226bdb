package responses

type RecordDiagnosis struct {
	DiagnosisID       string `json:"diagnosis_id"`
	LabServiceID      string `json:"lab_service_id,omitempty"`
	PharmacyServiceID string `json:"pharmacy_service_id,omitempty"`
	PatientStatus     string `json:"patient_status"`
}
