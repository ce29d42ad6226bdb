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
	"strconv"
	"time"

	"go.uber.org/zap"
)

// defaultTopItemsLimit caps the top-items report when the caller does not
// ask for a specific size.
const defaultTopItemsLimit = 5

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase contracts.ReportUsecase
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase) *ReportController {
	return &ReportController{
		Log:           logger,
		ReportUsecase: reportUsecase,
	}
}

func (ctrl *ReportController) GetRevenue(w http.ResponseWriter, r *http.Request) {
	paymentType := models.PaymentType(r.URL.Query().Get(constvars.URLQueryParamType))
	switch paymentType {
	case models.PaymentTypeConsultation, models.PaymentTypeLab, models.PaymentTypePharmacy, models.PaymentTypeCombined:
	default:
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidQueryParam(fmt.Errorf("type %q", paymentType), constvars.URLQueryParamType))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	revenue, err := ctrl.ReportUsecase.RevenueByType(ctx, paymentType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RevenueReportSuccess, revenue)
}

func (ctrl *ReportController) GetTopItems(w http.ResponseWriter, r *http.Request) {
	serviceType, err := parseServiceType(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	limit := defaultTopItemsLimit
	if rawLimit := r.URL.Query().Get(constvars.URLQueryParamLimit); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidQueryParam(fmt.Errorf("limit %q", rawLimit), constvars.URLQueryParamLimit))
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := ctrl.ReportUsecase.TopItems(ctx, serviceType, limit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TopItemsReportSuccess, items)
}

func (ctrl *ReportController) GetStaffPerformance(w http.ResponseWriter, r *http.Request) {
	serviceType, err := parseServiceType(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	performances, err := ctrl.ReportUsecase.StaffPerformance(ctx, serviceType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PerformanceReportSuccess, performances)
}

func parseServiceType(r *http.Request) (models.ServiceType, error) {
	serviceType := models.ServiceType(r.URL.Query().Get(constvars.URLQueryParamServiceType))
	switch serviceType {
	case models.ServiceTypeLab, models.ServiceTypePharmacy:
		return serviceType, nil
	default:
		return "", exceptions.ErrInvalidQueryParam(fmt.Errorf("service_type %q", serviceType), constvars.URLQueryParamServiceType)
	}
}
