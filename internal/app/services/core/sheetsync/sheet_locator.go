package sheetsync

import (
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/exceptions"
	"agenda-sync-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// TabTitle names the monthly tab that holds date, e.g. "Novembro/2025".
func TabTitle(date time.Time) string {
	return fmt.Sprintf("%s%s%d", constvars.MonthNames[date.Month()-1], constvars.SheetTitleSeparator, date.Year())
}

type SheetLocator struct {
	Log *zap.Logger
}

func NewSheetLocator(logger *zap.Logger) *SheetLocator {
	return &SheetLocator{Log: logger}
}

// Resolve finds the tab whose title equals title exactly.
func (l *SheetLocator) Resolve(ctx context.Context, svc contracts.SpreadsheetService, spreadsheetID, title string) (models.SheetProperties, error) {
	requestID := utils.GetRequestID(ctx)
	l.Log.Info("SheetLocator.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSheetTitleKey, title),
	)

	sheets, err := svc.FetchSheets(ctx, spreadsheetID)
	if err != nil {
		return models.SheetProperties{}, err
	}

	titles := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		if sheet.Title == title {
			l.Log.Info("SheetLocator.Resolve succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSheetTitleKey, title),
				zap.Int64(constvars.LoggingSheetIDKey, sheet.SheetID),
			)
			return sheet, nil
		}
		titles = append(titles, sheet.Title)
	}

	l.Log.Warn("SheetLocator.Resolve sheet not found",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSheetTitleKey, title),
		zap.Strings("available_sheets", titles),
	)
	return models.SheetProperties{}, exceptions.ErrSheetNotFound(title, titles)
}
