package recordstore

import (
	"context"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatient(name string) *models.Patient {
	return &models.Patient{
		Name:         name,
		Age:          30,
		Gender:       models.GenderFemale,
		Contact:      "0801111111",
		Status:       models.PatientStatusRegistered,
		RegisteredAt: time.Now(),
	}
}

func TestStorePatients(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	t.Run("ids are sequential and zero padded", func(t *testing.T) {
		first, err := store.CreatePatient(ctx, validPatient("Amaka"))
		require.NoError(t, err)
		second, err := store.CreatePatient(ctx, validPatient("Bode"))
		require.NoError(t, err)

		assert.Equal(t, "P0001", first)
		assert.Equal(t, "P0002", second)
	})

	t.Run("reads hand out copies", func(t *testing.T) {
		patient, err := store.FindPatientByID(ctx, "P0001")
		require.NoError(t, err)
		require.NotNil(t, patient)

		patient.Name = "mutated"
		patient.Status = models.PatientStatusCompleted

		again, err := store.FindPatientByID(ctx, "P0001")
		require.NoError(t, err)
		assert.Equal(t, "Amaka", again.Name)
		assert.Equal(t, models.PatientStatusRegistered, again.Status)
	})

	t.Run("unknown patient id yields nil without error", func(t *testing.T) {
		patient, err := store.FindPatientByID(ctx, "P9999")
		require.NoError(t, err)
		assert.Nil(t, patient)
	})

	t.Run("status update on unknown patient fails", func(t *testing.T) {
		err := store.UpdatePatientStatus(ctx, "P9999", models.PatientStatusDiagnosed)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})

	t.Run("rejects incomplete records", func(t *testing.T) {
		_, err := store.CreatePatient(ctx, &models.Patient{Name: "No Contact", Age: 20, Gender: models.GenderMale})
		require.Error(t, err)

		_, err = store.CreatePatient(ctx, &models.Patient{Name: "Bad Gender", Age: 20, Gender: "unknown", Contact: "0800"})
		require.Error(t, err)
	})
}

func TestStoreServices(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	serviceID, err := store.CreateService(ctx, &models.Service{
		PatientID:   "P0001",
		ServiceType: models.ServiceTypeLab,
		Items:       []string{"1", "4"},
		TotalAmount: 3300,
		Status:      models.ServiceStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "SVC0001", serviceID)

	t.Run("items slice is isolated from callers", func(t *testing.T) {
		service, err := store.FindServiceByID(ctx, serviceID)
		require.NoError(t, err)
		service.Items[0] = "mutated"

		again, err := store.FindServiceByID(ctx, serviceID)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "4"}, again.Items)
	})

	t.Run("completion stamps actor and time", func(t *testing.T) {
		completedAt := time.Now()
		require.NoError(t, store.MarkServiceCompleted(ctx, serviceID, "U0003", completedAt))

		service, err := store.FindServiceByID(ctx, serviceID)
		require.NoError(t, err)
		assert.Equal(t, models.ServiceStatusCompleted, service.Status)
		assert.Equal(t, "U0003", service.CompletedBy)
		require.NotNil(t, service.CompletedAt)
		assert.WithinDuration(t, completedAt, *service.CompletedAt, time.Second)
	})

	t.Run("rejects unknown service type", func(t *testing.T) {
		_, err := store.CreateService(ctx, &models.Service{
			PatientID:   "P0001",
			ServiceType: "surgery",
			Items:       []string{"1"},
		})
		require.Error(t, err)
	})
}

func TestStoreReceiptNumbers(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	var receipts []string
	for i := 0; i < 3; i++ {
		_, receipt, err := store.CreatePayment(ctx, &models.Payment{
			PatientID: "P0001",
			Type:      models.PaymentTypeConsultation,
			Amount:    2000,
			PaidAt:    time.Now(),
		})
		require.NoError(t, err)
		receipts = append(receipts, receipt)
	}

	assert.Equal(t, []string{"RCP1000", "RCP1001", "RCP1002"}, receipts)
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	userID, err := store.CreateUser(ctx, &models.User{
		Email:    "cashier@clinic.test",
		FullName: "Front Desk",
		Role:     models.RoleCashier,
	})
	require.NoError(t, err)
	assert.Equal(t, "U0001", userID)

	t.Run("email is unique", func(t *testing.T) {
		_, err := store.CreateUser(ctx, &models.User{
			Email:    "cashier@clinic.test",
			FullName: "Duplicate",
			Role:     models.RoleCashier,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})

	t.Run("lookup by email and id", func(t *testing.T) {
		byEmail, err := store.FindUserByEmail(ctx, "cashier@clinic.test")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, userID, byEmail.ID)

		byID, err := store.FindUserByID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "Front Desk", byID.FullName)

		missing, err := store.FindUserByEmail(ctx, "nobody@clinic.test")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
