package sheetsync

import (
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type CellWriter struct {
	Log *zap.Logger
}

func NewCellWriter(logger *zap.Logger) *CellWriter {
	return &CellWriter{Log: logger}
}

// WriteRange is the A1 range covered by one appointment row at target.
func WriteRange(title string, target models.TargetCell) string {
	return utils.RowRangeA1(title, target.Row, target.Column, constvars.AppointmentRowWidth)
}

// Write overwrites the four cells starting at target. Existing content is not
// inspected.
func (w *CellWriter) Write(ctx context.Context, svc contracts.SpreadsheetService, spreadsheetID, title string, target models.TargetCell, record models.AppointmentRecord) (string, error) {
	requestID := utils.GetRequestID(ctx)
	a1Range := WriteRange(title, target)
	w.Log.Info("CellWriter.Write called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, a1Range),
		zap.Int(constvars.LoggingTargetRowKey, target.Row),
		zap.Int(constvars.LoggingTargetColumnKey, target.Column),
	)

	if err := svc.UpdateRow(ctx, spreadsheetID, a1Range, record.SheetRow(), constvars.ValueInputOptionUserEntered); err != nil {
		return "", err
	}

	w.Log.Info("CellWriter.Write succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, a1Range),
	)
	return a1Range, nil
}
