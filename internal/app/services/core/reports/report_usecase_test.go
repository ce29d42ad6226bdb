package reports

import (
	"context"
	"testing"
	"time"

	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/app/services/core/workflow"
	"medipos-service/internal/app/services/shared/catalog"
	"medipos-service/internal/app/services/shared/events"
	"medipos-service/internal/app/services/shared/locker"
	"medipos-service/internal/app/services/shared/receipts"
	"medipos-service/internal/app/services/shared/recordstore"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reportFixture struct {
	reports  contracts.ReportUsecase
	workflow contracts.WorkflowUsecase
	store    *recordstore.Store
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	store := recordstore.NewStore()
	workflowUsecase := workflow.NewWorkflowUsecase(
		store, store, store, store,
		catalog.NewCatalogService(),
		locker.NewMemoryLocker(),
		events.NewNoopPublisher(),
		receipts.NewNoopReceiptArchiver(),
		zap.NewNop(),
		5*time.Second,
	)
	return &reportFixture{
		reports:  NewReportUsecase(store, store, store, store),
		workflow: workflowUsecase,
		store:    store,
	}
}

func (f *reportFixture) registerPatient(t *testing.T, name string) string {
	t.Helper()
	response, err := f.workflow.RegisterPatient(context.Background(), &requests.RegisterPatient{
		Name:    name,
		Age:     30,
		Gender:  "female",
		Contact: "0800000000",
	})
	require.NoError(t, err)
	return response.PatientID
}

func TestPatientViews(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	firstID := f.registerPatient(t, "Jane Doe")
	secondID := f.registerPatient(t, "John Doe")
	_, err := f.workflow.RecordPayment(ctx, &requests.RecordPayment{PatientID: secondID, Type: "consultation", Amount: 2000})
	require.NoError(t, err)

	t.Run("patients by status", func(t *testing.T) {
		registered, err := f.reports.PatientsByStatus(ctx, models.PatientStatusRegistered)
		require.NoError(t, err)
		require.Len(t, registered, 1)
		assert.Equal(t, firstID, registered[0].ID)

		paid, err := f.reports.PatientsByStatus(ctx, models.PatientStatusPaidConsultation)
		require.NoError(t, err)
		require.Len(t, paid, 1)
		assert.Equal(t, secondID, paid[0].ID)
	})

	t.Run("patient by id", func(t *testing.T) {
		patient, err := f.reports.PatientByID(ctx, firstID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", patient.Name)

		_, err = f.reports.PatientByID(ctx, "P9999")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})

	t.Run("pending services filter", func(t *testing.T) {
		_, err := f.workflow.RecordDiagnosis(ctx, "doc1", &requests.RecordDiagnosis{
			PatientID:  secondID,
			Diagnosis:  "Malaria",
			LabTestIDs: []string{"1"},
		})
		require.NoError(t, err)

		pending, err := f.reports.PendingServicesForPatient(ctx, secondID)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		_, err = f.workflow.RecordPayment(ctx, &requests.RecordPayment{PatientID: secondID, Type: "lab", Amount: 2500})
		require.NoError(t, err)

		pending, err = f.reports.PendingServicesForPatient(ctx, secondID)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestPaidServiceQueue(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	patientID := f.registerPatient(t, "Jane Doe")
	diagnosis, err := f.workflow.RecordDiagnosis(ctx, "doc1", &requests.RecordDiagnosis{
		PatientID:  patientID,
		Diagnosis:  "Malaria",
		LabTestIDs: []string{"1"},
		Prescriptions: []requests.PrescriptionLine{
			{DrugID: "M1", Dosage: "500mg", Quantity: 4},
		},
	})
	require.NoError(t, err)

	queue, err := f.reports.PaidServiceQueue(ctx, models.ServiceTypeLab)
	require.NoError(t, err)
	assert.Empty(t, queue)

	_, err = f.workflow.RecordPayment(ctx, &requests.RecordPayment{PatientID: patientID, Type: "lab", Amount: 2500})
	require.NoError(t, err)

	queue, err = f.reports.PaidServiceQueue(ctx, models.ServiceTypeLab)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, diagnosis.LabServiceID, queue[0].ID)

	pharmacyQueue, err := f.reports.PaidServiceQueue(ctx, models.ServiceTypePharmacy)
	require.NoError(t, err)
	assert.Empty(t, pharmacyQueue)
}

func TestRevenueByType(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	patientID := f.registerPatient(t, "Jane Doe")
	diagnosis, err := f.workflow.RecordDiagnosis(ctx, "doc1", &requests.RecordDiagnosis{
		PatientID:  patientID,
		Diagnosis:  "Malaria",
		LabTestIDs: []string{"1"}, // 2500
	})
	require.NoError(t, err)

	_, err = f.workflow.RecordPayment(ctx, &requests.RecordPayment{PatientID: patientID, Type: "consultation", Amount: 2000})
	require.NoError(t, err)

	_, err = f.workflow.RecordCombinedPayment(ctx, &requests.RecordCombinedPayment{
		PatientID:   patientID,
		ServiceIDs:  []string{diagnosis.LabServiceID},
		TotalAmount: 4500,
		Breakdown: []requests.BreakdownLine{
			{ServiceLabel: models.ConsultationLabel, Amount: 2000},
			{ServiceLabel: models.LabServicesLabel, Amount: 2500, Items: []string{"1"}},
		},
	})
	require.NoError(t, err)

	t.Run("combined breakdown lines are attributed per type", func(t *testing.T) {
		consultation, err := f.reports.RevenueByType(ctx, models.PaymentTypeConsultation)
		require.NoError(t, err)
		assert.Equal(t, 4000.0, consultation.Revenue) // 2000 direct + 2000 combined line

		lab, err := f.reports.RevenueByType(ctx, models.PaymentTypeLab)
		require.NoError(t, err)
		assert.Equal(t, 2500.0, lab.Revenue)

		combined, err := f.reports.RevenueByType(ctx, models.PaymentTypeCombined)
		require.NoError(t, err)
		assert.Equal(t, 4500.0, combined.Revenue)
	})

	t.Run("billable value tracks paid-or-further service totals", func(t *testing.T) {
		lab, err := f.reports.RevenueByType(ctx, models.PaymentTypeLab)
		require.NoError(t, err)
		assert.Equal(t, 2500.0, lab.BillableValue)

		pharmacy, err := f.reports.RevenueByType(ctx, models.PaymentTypePharmacy)
		require.NoError(t, err)
		assert.Equal(t, 0.0, pharmacy.BillableValue)
	})
}

func TestTopItems(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	// Three services: X-Ray appears twice, ECG and Blood Sugar once each.
	// ECG is seen before Blood Sugar, so it wins the tie.
	for _, testIDs := range [][]string{{"3", "5"}, {"3", "4"}} {
		patientID := f.registerPatient(t, "Visit")
		_, err := f.workflow.RecordDiagnosis(ctx, "doc1", &requests.RecordDiagnosis{
			PatientID:  patientID,
			Diagnosis:  "Checkup",
			LabTestIDs: testIDs,
		})
		require.NoError(t, err)
	}

	items, err := f.reports.TopItems(ctx, models.ServiceTypeLab, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[0].Label)
	assert.Equal(t, 2, items[0].Count)
	assert.Equal(t, "5", items[1].Label)
	assert.Equal(t, 1, items[1].Count)

	all, err := f.reports.TopItems(ctx, models.ServiceTypeLab, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStaffPerformance(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	finishLabService := func(t *testing.T, technicianID string) {
		t.Helper()
		patientID := f.registerPatient(t, "Visit")
		diagnosis, err := f.workflow.RecordDiagnosis(ctx, "doc1", &requests.RecordDiagnosis{
			PatientID:  patientID,
			Diagnosis:  "Checkup",
			LabTestIDs: []string{"4"}, // 800
		})
		require.NoError(t, err)
		_, err = f.workflow.RecordPayment(ctx, &requests.RecordPayment{PatientID: patientID, Type: "lab", Amount: 800})
		require.NoError(t, err)
		_, err = f.workflow.CompleteService(ctx, diagnosis.LabServiceID, technicianID)
		require.NoError(t, err)
	}

	finishLabService(t, "lab1")
	finishLabService(t, "lab2")
	finishLabService(t, "lab2")

	performances, err := f.reports.StaffPerformance(ctx, models.ServiceTypeLab)
	require.NoError(t, err)
	require.Len(t, performances, 2)

	assert.Equal(t, "lab2", performances[0].ActorID)
	assert.Equal(t, 2, performances[0].HandledCount)
	assert.Equal(t, 1600.0, performances[0].TotalValue)

	assert.Equal(t, "lab1", performances[1].ActorID)
	assert.Equal(t, 1, performances[1].HandledCount)

	pharmacy, err := f.reports.StaffPerformance(ctx, models.ServiceTypePharmacy)
	require.NoError(t, err)
	assert.Empty(t, pharmacy)
}
