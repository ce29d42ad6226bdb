package controllers

import (
	"context"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
}

func NewPaymentController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase) *PaymentController {
	return &PaymentController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
	}
}

func (ctrl *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RecordPayment)
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

	receipt, err := ctrl.WorkflowUsecase.RecordPayment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentRecordedSuccess, receipt)
}

func (ctrl *PaymentController) RecordCombinedPayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RecordCombinedPayment)
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

	receipt, err := ctrl.WorkflowUsecase.RecordCombinedPayment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CombinedPaymentRecordedSuccess, receipt)
}
