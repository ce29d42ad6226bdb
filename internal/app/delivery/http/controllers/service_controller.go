package controllers

import (
	"context"
	"fmt"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ServiceController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
	ReportUsecase   contracts.ReportUsecase
}

func NewServiceController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase, reportUsecase contracts.ReportUsecase) *ServiceController {
	return &ServiceController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
		ReportUsecase:   reportUsecase,
	}
}

func (ctrl *ServiceController) CompleteService(w http.ResponseWriter, r *http.Request) {
	ctrl.finishService(w, r, false)
}

func (ctrl *ServiceController) DispenseService(w http.ResponseWriter, r *http.Request) {
	ctrl.finishService(w, r, true)
}

func (ctrl *ServiceController) finishService(w http.ResponseWriter, r *http.Request, dispense bool) {
	serviceID := chi.URLParam(r, constvars.URLParamServiceID)
	if serviceID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamServiceID))
		return
	}
	actorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || actorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(fmt.Errorf("no user id in context")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var service *models.Service
	var err error
	message := constvars.ServiceCompletedSuccess
	if dispense {
		message = constvars.ServiceDispensedSuccess
		service, err = ctrl.WorkflowUsecase.DispenseService(ctx, serviceID, actorID)
	} else {
		service, err = ctrl.WorkflowUsecase.CompleteService(ctx, serviceID, actorID)
	}
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, service)
}

func (ctrl *ServiceController) GetLabQueue(w http.ResponseWriter, r *http.Request) {
	ctrl.serviceQueue(w, r, models.ServiceTypeLab)
}

func (ctrl *ServiceController) GetPharmacyQueue(w http.ResponseWriter, r *http.Request) {
	ctrl.serviceQueue(w, r, models.ServiceTypePharmacy)
}

func (ctrl *ServiceController) serviceQueue(w http.ResponseWriter, r *http.Request, serviceType models.ServiceType) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	queue, err := ctrl.ReportUsecase.PaidServiceQueue(ctx, serviceType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceQueueSuccess, queue)
}
