package recordstore

import (
	"context"
	"fmt"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/exceptions"
)

func (s *Store) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	if patient == nil || patient.Name == "" || patient.Contact == "" {
		return "", exceptions.ErrMissingRequiredEntityField(fmt.Errorf("patient name and contact are required"))
	}
	if patient.Age <= 0 {
		return "", exceptions.ErrMissingRequiredEntityField(fmt.Errorf("patient age must be positive"))
	}
	if patient.Gender != models.GenderMale && patient.Gender != models.GenderFemale && patient.Gender != models.GenderOther {
		return "", exceptions.ErrMissingRequiredEntityField(fmt.Errorf("unknown gender %q", patient.Gender))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := clonePatient(*patient)
	record.ID = s.nextPatientID()
	s.patientIndex[record.ID] = len(s.patients)
	s.patients = append(s.patients, record)
	return record.ID, nil
}

func (s *Store) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.patientIndex[patientID]
	if !ok {
		return nil, nil
	}
	patient := clonePatient(s.patients[idx])
	return &patient, nil
}

func (s *Store) FindAllPatients(ctx context.Context) ([]models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]models.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		patients = append(patients, clonePatient(p))
	}
	return patients, nil
}

func (s *Store) UpdatePatientStatus(ctx context.Context, patientID string, status models.PatientStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.patientIndex[patientID]
	if !ok {
		return exceptions.ErrPatientNotFound(fmt.Errorf("patient %s", patientID))
	}
	s.patients[idx].Status = status
	return nil
}
