package recordstore

import (
	"context"
	"fmt"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/exceptions"
)

func (s *Store) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) (string, error) {
	if diagnosis == nil || diagnosis.PatientID == "" || diagnosis.DoctorID == "" || diagnosis.Diagnosis == "" {
		return "", exceptions.ErrMissingRequiredEntityField(fmt.Errorf("diagnosis patient id, doctor id and text are required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := cloneDiagnosis(*diagnosis)
	record.ID = timestampID("DIAG")
	s.diagnoses = append(s.diagnoses, record)
	return record.ID, nil
}

func (s *Store) FindDiagnosesByPatientID(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var diagnoses []models.Diagnosis
	for _, d := range s.diagnoses {
		if d.PatientID == patientID {
			diagnoses = append(diagnoses, cloneDiagnosis(d))
		}
	}
	return diagnoses, nil
}
