package workflow

import (
	"context"
	"fmt"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/dto/responses"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// workflowUsecase encodes the patient/payment/service transition rules.
// Every operation that reads and then conditionally writes runs under the
// per-patient lock, so two concurrent payments can never both match the
// same pending service. Event publishing and receipt archiving happen
// after the local mutation and are best-effort.
type workflowUsecase struct {
	PatientRepository   contracts.PatientRepository
	PaymentRepository   contracts.PaymentRepository
	DiagnosisRepository contracts.DiagnosisRepository
	ServiceRepository   contracts.ServiceRepository
	CatalogService      contracts.CatalogService
	LockerService       contracts.LockerService
	EventPublisher      contracts.EventPublisher
	ReceiptArchiver     contracts.ReceiptArchiver
	Log                 *zap.Logger
	PatientLockTTL      time.Duration
}

func NewWorkflowUsecase(
	patientRepository contracts.PatientRepository,
	paymentRepository contracts.PaymentRepository,
	diagnosisRepository contracts.DiagnosisRepository,
	serviceRepository contracts.ServiceRepository,
	catalogService contracts.CatalogService,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	receiptArchiver contracts.ReceiptArchiver,
	logger *zap.Logger,
	patientLockTTL time.Duration,
) contracts.WorkflowUsecase {
	return &workflowUsecase{
		PatientRepository:   patientRepository,
		PaymentRepository:   paymentRepository,
		DiagnosisRepository: diagnosisRepository,
		ServiceRepository:   serviceRepository,
		CatalogService:      catalogService,
		LockerService:       lockerService,
		EventPublisher:      eventPublisher,
		ReceiptArchiver:     receiptArchiver,
		Log:                 logger,
		PatientLockTTL:      patientLockTTL,
	}
}

func (uc *workflowUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error) {
	status := models.PatientStatusRegistered
	if request.PaymentPending {
		status = models.PatientStatusPaymentPending
	}

	patient := &models.Patient{
		Name:         request.Name,
		Age:          request.Age,
		Gender:       models.Gender(request.Gender),
		Contact:      request.Contact,
		RegisteredAt: time.Now(),
		Status:       status,
		IsReturning:  request.IsReturning,
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_registered", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &responses.RegisterPatient{
		PatientID: patientID,
		Status:    string(status),
	}, nil
}

func (uc *workflowUsecase) RecordPayment(ctx context.Context, request *requests.RecordPayment) (*responses.PaymentReceipt, error) {
	if request.Amount <= 0 {
		return nil, exceptions.ErrAmountNotPositive(fmt.Errorf("amount %.2f", request.Amount))
	}

	var receipt *responses.PaymentReceipt
	err := uc.withPatientLock(ctx, request.PatientID, func() error {
		patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return exceptions.ErrPatientNotFound(fmt.Errorf("patient %s", request.PatientID))
		}

		paymentType := models.PaymentType(request.Type)

		// For lab and pharmacy payments the single oldest pending service
		// of the matching type gets paid. No match means the money was
		// taken with nothing to fulfil, so the patient drops back to
		// registered.
		var matchedService *models.Service
		newStatus := models.PatientStatusRegistered
		switch paymentType {
		case models.PaymentTypeConsultation:
			newStatus = models.PatientStatusPaidConsultation
		case models.PaymentTypeLab, models.PaymentTypePharmacy:
			matchedService, err = uc.oldestPendingService(ctx, request.PatientID, models.ServiceType(paymentType))
			if err != nil {
				return err
			}
			if matchedService != nil {
				if paymentType == models.PaymentTypeLab {
					newStatus = models.PatientStatusLabReferred
				} else {
					newStatus = models.PatientStatusPharmacyReferred
				}
			}
		}

		payment := &models.Payment{
			PatientID:   request.PatientID,
			Type:        paymentType,
			Amount:      request.Amount,
			Description: request.Description,
			PaidAt:      time.Now(),
		}
		paymentID, receiptNumber, err := uc.PaymentRepository.CreatePayment(ctx, payment)
		if err != nil {
			return err
		}

		if matchedService != nil {
			err = uc.ServiceRepository.UpdateServiceStatus(ctx, matchedService.ID, models.ServiceStatusPaid)
			if err != nil {
				return err
			}
		}
		err = uc.PatientRepository.UpdatePatientStatus(ctx, request.PatientID, newStatus)
		if err != nil {
			return err
		}

		receipt = &responses.PaymentReceipt{
			ReceiptNumber: receiptNumber,
			PaymentID:     paymentID,
			PatientID:     request.PatientID,
			Amount:        request.Amount,
			PatientStatus: string(newStatus),
		}
		payment.ID = paymentID
		payment.ReceiptNumber = receiptNumber
		uc.afterPaymentRecorded(ctx, payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (uc *workflowUsecase) RecordCombinedPayment(ctx context.Context, request *requests.RecordCombinedPayment) (*responses.PaymentReceipt, error) {
	if request.TotalAmount <= 0 {
		return nil, exceptions.ErrAmountNotPositive(fmt.Errorf("total amount %.2f", request.TotalAmount))
	}

	var receipt *responses.PaymentReceipt
	err := uc.withPatientLock(ctx, request.PatientID, func() error {
		patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return exceptions.ErrPatientNotFound(fmt.Errorf("patient %s", request.PatientID))
		}

		// Validate every selected service before mutating anything, so a
		// rejected service leaves the whole payment unapplied.
		for _, serviceID := range request.ServiceIDs {
			service, err := uc.ServiceRepository.FindServiceByID(ctx, serviceID)
			if err != nil {
				return err
			}
			if service == nil || service.PatientID != request.PatientID {
				return exceptions.ErrServiceNotFound(fmt.Errorf("service %s for patient %s", serviceID, request.PatientID))
			}
			if service.Status != models.ServiceStatusPending {
				return exceptions.ErrServiceNotPending(fmt.Errorf("service %s is %s", serviceID, service.Status))
			}
		}

		breakdown := make([]models.BreakdownLine, 0, len(request.Breakdown))
		consultationIncluded := false
		for _, line := range request.Breakdown {
			if line.ServiceLabel == models.ConsultationLabel {
				consultationIncluded = true
			}
			breakdown = append(breakdown, models.BreakdownLine{
				ServiceLabel: line.ServiceLabel,
				Amount:       line.Amount,
				Items:        line.Items,
			})
		}

		payment := &models.Payment{
			PatientID: request.PatientID,
			Type:      models.PaymentTypeCombined,
			Amount:    request.TotalAmount,
			PaidAt:    time.Now(),
			Breakdown: breakdown,
		}
		paymentID, receiptNumber, err := uc.PaymentRepository.CreatePayment(ctx, payment)
		if err != nil {
			return err
		}

		// Only the selected services move to paid. Anything not named in
		// the request stays pending.
		for _, serviceID := range request.ServiceIDs {
			err = uc.ServiceRepository.UpdateServiceStatus(ctx, serviceID, models.ServiceStatusPaid)
			if err != nil {
				return err
			}
		}

		newStatus := patient.Status
		if consultationIncluded {
			newStatus = models.PatientStatusPaidConsultation
			err = uc.PatientRepository.UpdatePatientStatus(ctx, request.PatientID, newStatus)
			if err != nil {
				return err
			}
		}

		receipt = &responses.PaymentReceipt{
			ReceiptNumber: receiptNumber,
			PaymentID:     paymentID,
			PatientID:     request.PatientID,
			Amount:        request.TotalAmount,
			PatientStatus: string(newStatus),
		}
		payment.ID = paymentID
		payment.ReceiptNumber = receiptNumber
		uc.afterPaymentRecorded(ctx, payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (uc *workflowUsecase) RecordDiagnosis(ctx context.Context, doctorID string, request *requests.RecordDiagnosis) (*responses.RecordDiagnosis, error) {
	var response *responses.RecordDiagnosis
	err := uc.withPatientLock(ctx, request.PatientID, func() error {
		patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return exceptions.ErrPatientNotFound(fmt.Errorf("patient %s", request.PatientID))
		}

		// Resolve every catalog reference up front. Prices are copied
		// here and never re-read, so later catalog changes cannot alter
		// this diagnosis or its services.
		var labTotal float64
		for _, testID := range request.LabTestIDs {
			item, err := uc.CatalogService.FindItemByID(testID)
			if err != nil {
				return err
			}
			labTotal += item.Price
		}

		var pharmacyTotal float64
		prescriptions := make([]models.PrescriptionLine, 0, len(request.Prescriptions))
		drugNames := make([]string, 0, len(request.Prescriptions))
		for _, line := range request.Prescriptions {
			item, err := uc.CatalogService.FindItemByID(line.DrugID)
			if err != nil {
				return err
			}
			prescriptions = append(prescriptions, models.PrescriptionLine{
				DrugName:     item.Name,
				Dosage:       line.Dosage,
				Quantity:     line.Quantity,
				Instructions: line.Instructions,
				UnitPrice:    item.Price,
			})
			drugNames = append(drugNames, item.Name)
			pharmacyTotal += item.Price * float64(line.Quantity)
		}

		diagnosis := &models.Diagnosis{
			PatientID:     request.PatientID,
			DoctorID:      doctorID,
			Diagnosis:     request.Diagnosis,
			LabTestIDs:    request.LabTestIDs,
			Prescriptions: prescriptions,
			CreatedAt:     time.Now(),
		}
		diagnosisID, err := uc.DiagnosisRepository.CreateDiagnosis(ctx, diagnosis)
		if err != nil {
			return err
		}

		var labServiceID, pharmacyServiceID string
		if len(request.LabTestIDs) > 0 {
			labServiceID, err = uc.ServiceRepository.CreateService(ctx, &models.Service{
				PatientID:   request.PatientID,
				ServiceType: models.ServiceTypeLab,
				Items:       request.LabTestIDs,
				TotalAmount: labTotal,
				Status:      models.ServiceStatusPending,
			})
			if err != nil {
				return err
			}
		}
		if len(prescriptions) > 0 {
			pharmacyServiceID, err = uc.ServiceRepository.CreateService(ctx, &models.Service{
				PatientID:   request.PatientID,
				ServiceType: models.ServiceTypePharmacy,
				Items:       drugNames,
				TotalAmount: pharmacyTotal,
				Status:      models.ServiceStatusPending,
			})
			if err != nil {
				return err
			}
		}

		err = uc.PatientRepository.UpdatePatientStatus(ctx, request.PatientID, models.PatientStatusDiagnosed)
		if err != nil {
			return err
		}

		utils.LogBusinessEvent(uc.Log, "diagnosis_recorded", utils.GetRequestID(ctx),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.String(constvars.LoggingDiagnosisIDKey, diagnosisID),
		)
		response = &responses.RecordDiagnosis{
			DiagnosisID:       diagnosisID,
			LabServiceID:      labServiceID,
			PharmacyServiceID: pharmacyServiceID,
			PatientStatus:     string(models.PatientStatusDiagnosed),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *workflowUsecase) CompleteService(ctx context.Context, serviceID, completedBy string) (*models.Service, error) {
	return uc.finishService(ctx, serviceID, completedBy, models.ServiceStatusCompleted)
}

func (uc *workflowUsecase) DispenseService(ctx context.Context, serviceID, dispensedBy string) (*models.Service, error) {
	return uc.finishService(ctx, serviceID, dispensedBy, models.ServiceStatusDispensed)
}

// finishService moves a paid service to its terminal state and stamps the
// acting staff member. Any state other than paid is rejected, including a
// repeat call on an already finished service.
func (uc *workflowUsecase) finishService(ctx context.Context, serviceID, actorID string, terminal models.ServiceStatus) (*models.Service, error) {
	service, err := uc.ServiceRepository.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(fmt.Errorf("service %s", serviceID))
	}

	var updated *models.Service
	err = uc.withPatientLock(ctx, service.PatientID, func() error {
		current, err := uc.ServiceRepository.FindServiceByID(ctx, serviceID)
		if err != nil {
			return err
		}
		if current == nil {
			return exceptions.ErrServiceNotFound(fmt.Errorf("service %s", serviceID))
		}
		if current.Status != models.ServiceStatusPaid {
			return exceptions.ErrServiceNotPaid(fmt.Errorf("service %s is %s", serviceID, current.Status))
		}

		now := time.Now()
		eventType := constvars.EventServiceCompleted
		if terminal == models.ServiceStatusDispensed {
			eventType = constvars.EventServiceDispensed
			err = uc.ServiceRepository.MarkServiceDispensed(ctx, serviceID, actorID, now)
		} else {
			err = uc.ServiceRepository.MarkServiceCompleted(ctx, serviceID, actorID, now)
		}
		if err != nil {
			return err
		}

		updated, err = uc.ServiceRepository.FindServiceByID(ctx, serviceID)
		if err != nil {
			return err
		}

		uc.publishEvent(ctx, eventType, updated)
		utils.LogBusinessEvent(uc.Log, eventType, utils.GetRequestID(ctx),
			zap.String(constvars.LoggingServiceIDKey, serviceID),
			zap.String(constvars.LoggingUserIDKey, actorID),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// oldestPendingService returns the first pending service of the given type
// in creation order, or nil when the patient has none.
func (uc *workflowUsecase) oldestPendingService(ctx context.Context, patientID string, serviceType models.ServiceType) (*models.Service, error) {
	services, err := uc.ServiceRepository.FindServicesByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ServiceType == serviceType && services[i].Status == models.ServiceStatusPending {
			return &services[i], nil
		}
	}
	return nil, nil
}

func (uc *workflowUsecase) withPatientLock(ctx context.Context, patientID string, fn func() error) error {
	lockKey := constvars.RedisPatientLockKeyPrefix + patientID
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.PatientLockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrPatientLockNotAcquired(fmt.Errorf("patient %s", patientID))
	}
	defer func() {
		unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Warn("workflowUsecase failed to release patient lock",
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.Error(unlockErr),
			)
		}
	}()
	return fn()
}

// afterPaymentRecorded runs the best-effort side channel: the event queue
// and the receipt archive. Failures are logged and never surfaced to the
// cashier.
func (uc *workflowUsecase) afterPaymentRecorded(ctx context.Context, payment *models.Payment) {
	uc.publishEvent(ctx, constvars.EventPaymentRecorded, payment)

	err := uc.ReceiptArchiver.ArchiveReceipt(ctx, payment.ReceiptNumber, payment)
	if err != nil {
		uc.Log.Warn("workflowUsecase failed to archive receipt",
			zap.String(constvars.LoggingReceiptNumberKey, payment.ReceiptNumber),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, constvars.EventPaymentRecorded, utils.GetRequestID(ctx),
		zap.String(constvars.LoggingPatientIDKey, payment.PatientID),
		zap.String(constvars.LoggingReceiptNumberKey, payment.ReceiptNumber),
		zap.Float64(constvars.LoggingAmountKey, payment.Amount),
	)
}

func (uc *workflowUsecase) publishEvent(ctx context.Context, eventType string, payload interface{}) {
	err := uc.EventPublisher.Publish(ctx, eventType, payload)
	if err != nil {
		uc.Log.Warn("workflowUsecase failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
