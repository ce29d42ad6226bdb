package contracts

import (
	"context"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/dto/responses"
)

// ReportUsecase is the read-only query layer. Every method recomputes its
// view from current repository contents; nothing is cached.
type ReportUsecase interface {
	PatientsByStatus(ctx context.Context, status models.PatientStatus) ([]models.Patient, error)
	AllPatients(ctx context.Context) ([]models.Patient, error)
	PatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	PaymentsForPatient(ctx context.Context, patientID string) ([]models.Payment, error)
	ServicesForPatient(ctx context.Context, patientID string) ([]models.Service, error)
	PendingServicesForPatient(ctx context.Context, patientID string) ([]models.Service, error)
	DiagnosesForPatient(ctx context.Context, patientID string) ([]models.Diagnosis, error)
	PaidServiceQueue(ctx context.Context, serviceType models.ServiceType) ([]models.Service, error)
	RevenueByType(ctx context.Context, paymentType models.PaymentType) (*responses.Revenue, error)
	TopItems(ctx context.Context, serviceType models.ServiceType, limit int) ([]responses.TopItem, error)
	StaffPerformance(ctx context.Context, serviceType models.ServiceType) ([]responses.StaffPerformance, error)
}
