package controllers

import (
	"context"
	"fmt"
	"medipos-service/internal/app/contracts"
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

type DiagnosisController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
	ReportUsecase   contracts.ReportUsecase
}

func NewDiagnosisController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase, reportUsecase contracts.ReportUsecase) *DiagnosisController {
	return &DiagnosisController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
		ReportUsecase:   reportUsecase,
	}
}

func (ctrl *DiagnosisController) RecordDiagnosis(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(fmt.Errorf("no user id in context")))
		return
	}

	request := new(requests.RecordDiagnosis)
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

	response, err := ctrl.WorkflowUsecase.RecordDiagnosis(ctx, doctorID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DiagnosisRecordedSuccess, response)
}

func (ctrl *DiagnosisController) GetPatientDiagnoses(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	diagnoses, err := ctrl.ReportUsecase.DiagnosesForPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDiagnosesSuccess, diagnoses)
}
