package recordstore

import (
	"fmt"
	"medipos-service/internal/app/models"
	"sync"
	"time"
)

// Store is the in-memory record store used in demo/offline mode. It holds
// the four entity collections insertion-ordered and keyed by generated
// identifiers, and implements the same repository contracts as the mongo
// repositories. Reads hand out copies so an iteration never observes a
// concurrent mutation.
type Store struct {
	mu sync.RWMutex

	patients  []models.Patient
	payments  []models.Payment
	diagnoses []models.Diagnosis
	services  []models.Service

	patientIndex map[string]int
	serviceIndex map[string]int

	patientSeq int
	serviceSeq int
	receiptSeq int
}

// Receipt numbers start at 1000 and increase strictly in assignment order.
const receiptSeqSeed = 1000

func NewStore() *Store {
	return &Store{
		patientIndex: make(map[string]int),
		serviceIndex: make(map[string]int),
		receiptSeq:   receiptSeqSeed,
	}
}

func (s *Store) nextPatientID() string {
	s.patientSeq++
	return fmt.Sprintf("P%04d", s.patientSeq)
}

func (s *Store) nextServiceID() string {
	s.serviceSeq++
	return fmt.Sprintf("SVC%04d", s.serviceSeq)
}

func (s *Store) nextReceiptNumber() string {
	receipt := fmt.Sprintf("RCP%d", s.receiptSeq)
	s.receiptSeq++
	return receipt
}

func timestampID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
}

func clonePatient(p models.Patient) models.Patient {
	clone := p
	clone.VisitIDs = append([]string(nil), p.VisitIDs...)
	return clone
}

func clonePayment(p models.Payment) models.Payment {
	clone := p
	clone.Breakdown = append([]models.BreakdownLine(nil), p.Breakdown...)
	return clone
}

func cloneDiagnosis(d models.Diagnosis) models.Diagnosis {
	clone := d
	clone.LabTestIDs = append([]string(nil), d.LabTestIDs...)
	clone.Prescriptions = append([]models.PrescriptionLine(nil), d.Prescriptions...)
	return clone
}

func cloneService(svc models.Service) models.Service {
	clone := svc
	clone.Items = append([]string(nil), svc.Items...)
	if svc.CompletedAt != nil {
		completedAt := *svc.CompletedAt
		clone.CompletedAt = &completedAt
	}
	return clone
}
