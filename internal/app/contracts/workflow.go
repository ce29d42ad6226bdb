package contracts

import (
	"context"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/dto/responses"
)

// WorkflowUsecase encodes every legal state transition of the patient,
// payment and service workflow. All side effects are confined to the
// injected repositories.
type WorkflowUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error)
	RecordPayment(ctx context.Context, request *requests.RecordPayment) (*responses.PaymentReceipt, error)
	RecordCombinedPayment(ctx context.Context, request *requests.RecordCombinedPayment) (*responses.PaymentReceipt, error)
	RecordDiagnosis(ctx context.Context, doctorID string, request *requests.RecordDiagnosis) (*responses.RecordDiagnosis, error)
	CompleteService(ctx context.Context, serviceID, completedBy string) (*models.Service, error)
	DispenseService(ctx context.Context, serviceID, dispensedBy string) (*models.Service, error)
}
