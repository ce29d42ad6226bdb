package responses

type RegisterPatient struct {
	PatientID string `json:"patient_id"`
	Status    string `json:"status"`
}
