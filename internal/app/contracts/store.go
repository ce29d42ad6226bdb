package contracts

import (
	"context"
	"medipos-service/internal/app/models"
	"time"
)

// Repositories over the four entity collections. Create methods assign the
// entity identifier (and receipt number for payments) and return it; the
// find methods return copies in insertion order. A missing record is
// reported as (nil, nil) by FindXByID, in line with the house convention.

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAllPatients(ctx context.Context) ([]models.Patient, error)
	UpdatePatientStatus(ctx context.Context, patientID string, status models.PatientStatus) error
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (paymentID, receiptNumber string, err error)
	FindPaymentsByPatientID(ctx context.Context, patientID string) ([]models.Payment, error)
	FindAllPayments(ctx context.Context) ([]models.Payment, error)
}

type DiagnosisRepository interface {
	CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) (string, error)
	FindDiagnosesByPatientID(ctx context.Context, patientID string) ([]models.Diagnosis, error)
}

type ServiceRepository interface {
	CreateService(ctx context.Context, service *models.Service) (string, error)
	FindServiceByID(ctx context.Context, serviceID string) (*models.Service, error)
	FindServicesByPatientID(ctx context.Context, patientID string) ([]models.Service, error)
	FindAllServices(ctx context.Context) ([]models.Service, error)
	UpdateServiceStatus(ctx context.Context, serviceID string, status models.ServiceStatus) error
	MarkServiceCompleted(ctx context.Context, serviceID, completedBy string, completedAt time.Time) error
	MarkServiceDispensed(ctx context.Context, serviceID, dispensedBy string, completedAt time.Time) error
}
