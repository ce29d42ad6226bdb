package controllers

import (
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogService contracts.CatalogService
}

func NewCatalogController(logger *zap.Logger, catalogService contracts.CatalogService) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogService: catalogService,
	}
}

func (ctrl *CatalogController) GetLabTests(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogListSuccess, ctrl.CatalogService.LabTests())
}

func (ctrl *CatalogController) GetMedications(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogListSuccess, ctrl.CatalogService.Medications())
}

func (ctrl *CatalogController) UpdateItemPrice(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, constvars.URLParamItemID)
	if itemID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamItemID))
		return
	}

	request := new(requests.UpdateCatalogPrice)
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

	item, err := ctrl.CatalogService.UpdatePrice(itemID, request.Price)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogPriceUpdateSuccess, item)
}
