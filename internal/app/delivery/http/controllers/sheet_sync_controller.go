package controllers

import (
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/dto/requests"
	"agenda-sync-service/internal/pkg/exceptions"
	"agenda-sync-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SheetSyncController struct {
	Log              *zap.Logger
	SheetSyncUsecase contracts.SheetSyncUsecase
}

func NewSheetSyncController(logger *zap.Logger, sheetSyncUsecase contracts.SheetSyncUsecase) *SheetSyncController {
	return &SheetSyncController{
		Log:              logger,
		SheetSyncUsecase: sheetSyncUsecase,
	}
}

func (ctrl *SheetSyncController) SyncAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("SheetSyncController.SyncAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("SheetSyncController.SyncAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.SyncAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("SheetSyncController.SyncAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSyncAppointmentRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("SheetSyncController.SyncAppointment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	record, err := request.ToRecord()
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.SheetSyncUsecase.SyncAppointment(r.Context(), record)
	if err != nil {
		ctrl.Log.Error("Error in SheetSyncUsecase.SyncAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SheetSyncController.SyncAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, response.Range))
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *SheetSyncController) DebugGrid(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("SheetSyncController.DebugGrid requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := &requests.DebugGrid{
		Sheet: r.URL.Query().Get("sheet"),
		Date:  r.URL.Query().Get("date"),
	}
	utils.SanitizeDebugGridRequest(request)
	ctrl.Log.Info("SheetSyncController.DebugGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryKey, request))

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.SheetSyncUsecase.DebugGrid(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("Error in SheetSyncUsecase.DebugGrid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SheetSyncController.DebugGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDateCellsKey, len(response.DateCells)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DebugGridSuccessMessage, response)
}
