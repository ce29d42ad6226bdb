package recordstore

import (
	"context"
	"fmt"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/exceptions"
)

func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) (string, string, error) {
	if payment == nil || payment.PatientID == "" || payment.Type == "" {
		return "", "", exceptions.ErrMissingRequiredEntityField(fmt.Errorf("payment patient id and type are required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := clonePayment(*payment)
	record.ID = timestampID("PAY")
	record.ReceiptNumber = s.nextReceiptNumber()
	s.payments = append(s.payments, record)
	return record.ID, record.ReceiptNumber, nil
}

func (s *Store) FindPaymentsByPatientID(ctx context.Context, patientID string) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payments []models.Payment
	for _, p := range s.payments {
		if p.PatientID == patientID {
			payments = append(payments, clonePayment(p))
		}
	}
	return payments, nil
}

func (s *Store) FindAllPayments(ctx context.Context) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make([]models.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		payments = append(payments, clonePayment(p))
	}
	return payments, nil
}
