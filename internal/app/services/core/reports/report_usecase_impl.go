package reports

import (
	"context"
	"fmt"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/dto/responses"
	"medipos-service/internal/pkg/exceptions"
	"sort"
)

// reportUsecase recomputes every view from current repository contents on
// each call. Revenue means cash actually collected: the sum of payment
// amounts, with combined payments attributed per breakdown line. Service
// totals in a billable-or-further state are reported separately as
// billable value and never mixed into revenue.
type reportUsecase struct {
	PatientRepository   contracts.PatientRepository
	PaymentRepository   contracts.PaymentRepository
	DiagnosisRepository contracts.DiagnosisRepository
	ServiceRepository   contracts.ServiceRepository
}

func NewReportUsecase(
	patientRepository contracts.PatientRepository,
	paymentRepository contracts.PaymentRepository,
	diagnosisRepository contracts.DiagnosisRepository,
	serviceRepository contracts.ServiceRepository,
) contracts.ReportUsecase {
	return &reportUsecase{
		PatientRepository:   patientRepository,
		PaymentRepository:   paymentRepository,
		DiagnosisRepository: diagnosisRepository,
		ServiceRepository:   serviceRepository,
	}
}

func (uc *reportUsecase) PatientsByStatus(ctx context.Context, status models.PatientStatus) ([]models.Patient, error) {
	patients, err := uc.PatientRepository.FindAllPatients(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if patient.Status == status {
			filtered = append(filtered, patient)
		}
	}
	return filtered, nil
}

func (uc *reportUsecase) AllPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindAllPatients(ctx)
}

func (uc *reportUsecase) PatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s", patientID))
	}
	return patient, nil
}

func (uc *reportUsecase) PaymentsForPatient(ctx context.Context, patientID string) ([]models.Payment, error) {
	return uc.PaymentRepository.FindPaymentsByPatientID(ctx, patientID)
}

func (uc *reportUsecase) ServicesForPatient(ctx context.Context, patientID string) ([]models.Service, error) {
	return uc.ServiceRepository.FindServicesByPatientID(ctx, patientID)
}

func (uc *reportUsecase) PendingServicesForPatient(ctx context.Context, patientID string) ([]models.Service, error) {
	services, err := uc.ServiceRepository.FindServicesByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	pending := make([]models.Service, 0, len(services))
	for _, service := range services {
		if service.Status == models.ServiceStatusPending {
			pending = append(pending, service)
		}
	}
	return pending, nil
}

func (uc *reportUsecase) DiagnosesForPatient(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	return uc.DiagnosisRepository.FindDiagnosesByPatientID(ctx, patientID)
}

func (uc *reportUsecase) PaidServiceQueue(ctx context.Context, serviceType models.ServiceType) ([]models.Service, error) {
	services, err := uc.ServiceRepository.FindAllServices(ctx)
	if err != nil {
		return nil, err
	}
	queue := make([]models.Service, 0, len(services))
	for _, service := range services {
		if service.ServiceType == serviceType && service.Status == models.ServiceStatusPaid {
			queue = append(queue, service)
		}
	}
	return queue, nil
}

func (uc *reportUsecase) RevenueByType(ctx context.Context, paymentType models.PaymentType) (*responses.Revenue, error) {
	payments, err := uc.PaymentRepository.FindAllPayments(ctx)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, payment := range payments {
		if payment.Type == paymentType {
			revenue += payment.Amount
			continue
		}
		if payment.Type == models.PaymentTypeCombined {
			revenue += combinedShare(payment.Breakdown, paymentType)
		}
	}

	billable, err := uc.billableValue(ctx, paymentType)
	if err != nil {
		return nil, err
	}
	return &responses.Revenue{
		Type:          string(paymentType),
		Revenue:       revenue,
		BillableValue: billable,
	}, nil
}

// combinedShare attributes a combined payment's breakdown lines to a
// payment type by the shared service labels. Lines with an unrecognized
// label stay with the combined type only.
func combinedShare(breakdown []models.BreakdownLine, paymentType models.PaymentType) float64 {
	var label string
	switch paymentType {
	case models.PaymentTypeConsultation:
		label = models.ConsultationLabel
	case models.PaymentTypeLab:
		label = models.LabServicesLabel
	case models.PaymentTypePharmacy:
		label = models.PharmacyServicesLabel
	default:
		return 0
	}

	var sum float64
	for _, line := range breakdown {
		if line.ServiceLabel == label {
			sum += line.Amount
		}
	}
	return sum
}

func (uc *reportUsecase) billableValue(ctx context.Context, paymentType models.PaymentType) (float64, error) {
	if paymentType != models.PaymentTypeLab && paymentType != models.PaymentTypePharmacy {
		return 0, nil
	}

	services, err := uc.ServiceRepository.FindAllServices(ctx)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, service := range services {
		if service.ServiceType != models.ServiceType(paymentType) {
			continue
		}
		switch service.Status {
		case models.ServiceStatusPaid, models.ServiceStatusCompleted, models.ServiceStatusDispensed:
			sum += service.TotalAmount
		}
	}
	return sum, nil
}

func (uc *reportUsecase) TopItems(ctx context.Context, serviceType models.ServiceType, limit int) ([]responses.TopItem, error) {
	services, err := uc.ServiceRepository.FindAllServices(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order int
	for _, service := range services {
		if service.ServiceType != serviceType {
			continue
		}
		for _, label := range service.Items {
			if _, seen := counts[label]; !seen {
				firstSeen[label] = order
				order++
			}
			counts[label]++
		}
	}

	items := make([]responses.TopItem, 0, len(counts))
	for label, count := range counts {
		items = append(items, responses.TopItem{Label: label, Count: count})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return firstSeen[items[i].Label] < firstSeen[items[j].Label]
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// StaffPerformance aggregates finished services per acting staff member.
// Lab services count toward whoever completed them, pharmacy services
// toward whoever dispensed them.
func (uc *reportUsecase) StaffPerformance(ctx context.Context, serviceType models.ServiceType) ([]responses.StaffPerformance, error) {
	services, err := uc.ServiceRepository.FindAllServices(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]*responses.StaffPerformance)
	firstSeen := make(map[string]int)
	var order int
	for _, service := range services {
		if service.ServiceType != serviceType {
			continue
		}
		var actorID string
		switch {
		case service.Status == models.ServiceStatusCompleted:
			actorID = service.CompletedBy
		case service.Status == models.ServiceStatusDispensed:
			actorID = service.DispensedBy
		}
		if actorID == "" {
			continue
		}
		entry, ok := counts[actorID]
		if !ok {
			entry = &responses.StaffPerformance{ActorID: actorID}
			counts[actorID] = entry
			firstSeen[actorID] = order
			order++
		}
		entry.HandledCount++
		entry.TotalValue += service.TotalAmount
	}

	performances := make([]responses.StaffPerformance, 0, len(counts))
	for _, entry := range counts {
		performances = append(performances, *entry)
	}
	sort.SliceStable(performances, func(i, j int) bool {
		if performances[i].HandledCount != performances[j].HandledCount {
			return performances[i].HandledCount > performances[j].HandledCount
		}
		return firstSeen[performances[i].ActorID] < firstSeen[performances[j].ActorID]
	})
	return performances, nil
}
