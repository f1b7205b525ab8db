package sheetsync

import (
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

var (
	colorWhite = models.RGB{Red: 1.0, Green: 1.0, Blue: 1.0}

	statusColors = map[models.AppointmentStatus]models.RGB{
		models.AppointmentStatusConfirmed:   {Red: 0.8, Green: 1.0, Blue: 0.8},
		models.AppointmentStatusCancelled:   {Red: 1.0, Green: 0.8, Blue: 0.8},
		models.AppointmentStatusCompleted:   {Red: 0.8, Green: 0.9, Blue: 1.0},
		models.AppointmentStatusRescheduled: {Red: 1.0, Green: 1.0, Blue: 0.8},
	}
)

// StatusColor returns the background for status. Unknown statuses are white.
func StatusColor(status models.AppointmentStatus) models.RGB {
	canonical, ok := status.Canonical()
	if !ok {
		return colorWhite
	}
	return statusColors[canonical]
}

type ConditionalFormatter struct {
	Log *zap.Logger
}

func NewConditionalFormatter(logger *zap.Logger) *ConditionalFormatter {
	return &ConditionalFormatter{Log: logger}
}

// FormatRange is the grid range colored for an appointment row at target.
func FormatRange(sheetID int64, target models.TargetCell) models.GridRange {
	return models.GridRange{
		SheetID:          sheetID,
		StartRowIndex:    int64(target.Row),
		EndRowIndex:      int64(target.Row + 1),
		StartColumnIndex: int64(target.Column),
		EndColumnIndex:   int64(target.Column + constvars.AppointmentRowWidth),
	}
}

func (f *ConditionalFormatter) Apply(ctx context.Context, svc contracts.SpreadsheetService, spreadsheetID string, sheetID int64, target models.TargetCell, status models.AppointmentStatus) error {
	requestID := utils.GetRequestID(ctx)
	color := StatusColor(status)
	f.Log.Info("ConditionalFormatter.Apply called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentStatus, string(status)),
		zap.Float64s("rgb", []float64{color.Red, color.Green, color.Blue}),
	)

	return svc.RepeatBackground(ctx, spreadsheetID, FormatRange(sheetID, target), color)
}
