package controllers

import (
	"context"
	"fmt"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
	ReportUsecase   contracts.ReportUsecase
}

func NewPatientController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase, reportUsecase contracts.ReportUsecase) *PatientController {
	return &PatientController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
		ReportUsecase:   reportUsecase,
	}
}

func (ctrl *PatientController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterPatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.RegisterPatient(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientRegisteredSuccess, response)
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status := r.URL.Query().Get(constvars.URLQueryParamStatus)
	var patients []models.Patient
	var err error
	if status == "" {
		patients, err = ctrl.ReportUsecase.AllPatients(ctx)
	} else {
		if !models.PatientStatuses[models.PatientStatus(status)] {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidQueryParam(fmt.Errorf("status %q", status), constvars.URLQueryParamStatus))
			return
		}
		patients, err = ctrl.ReportUsecase.PatientsByStatus(ctx, models.PatientStatus(status))
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientListSuccess, patients)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.ReportUsecase.PatientByID(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDetailSuccess, patient)
}

func (ctrl *PatientController) GetPatientPayments(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payments, err := ctrl.ReportUsecase.PaymentsForPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientPaymentsSuccess, payments)
}

func (ctrl *PatientController) GetPatientServices(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	services, err := ctrl.ReportUsecase.ServicesForPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientServicesSuccess, services)
}

func (ctrl *PatientController) GetPendingServices(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	services, err := ctrl.ReportUsecase.PendingServicesForPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientServicesSuccess, services)
}
