package sheetsync

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/dto/requests"
	"agenda-sync-service/internal/pkg/dto/responses"
	"agenda-sync-service/internal/pkg/exceptions"
	"agenda-sync-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type sheetSyncUsecase struct {
	TokenProvider        contracts.TokenProvider
	ServiceFactory       contracts.SpreadsheetServiceFactory
	SheetLocator         *SheetLocator
	GridScanner          *GridScanner
	CellWriter           *CellWriter
	ConditionalFormatter *ConditionalFormatter
	DebugScanner         *DebugScanner
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

// NewSheetSyncUsecase wires the pipeline. tokenProvider may be nil when the
// credential bundle is missing; every call then fails with a configuration
// error instead of the process refusing to start.
func NewSheetSyncUsecase(
	tokenProvider contracts.TokenProvider,
	serviceFactory contracts.SpreadsheetServiceFactory,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SheetSyncUsecase {
	return &sheetSyncUsecase{
		TokenProvider:        tokenProvider,
		ServiceFactory:       serviceFactory,
		SheetLocator:         NewSheetLocator(logger),
		GridScanner:          NewGridScanner(internalConfig.Sheets),
		CellWriter:           NewCellWriter(logger),
		ConditionalFormatter: NewConditionalFormatter(logger),
		DebugScanner:         NewDebugScanner(internalConfig.Sheets, logger),
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *sheetSyncUsecase) SyncAppointment(ctx context.Context, record models.AppointmentRecord) (*responses.SheetSync, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sheetSyncUsecase.SyncAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentDate, record.Date.Format(constvars.RequestDateLayout)),
		zap.String(constvars.LoggingAppointmentTime, record.Time),
		zap.String(constvars.LoggingAppointmentStatus, string(record.Status)),
	)

	if err := uc.validateConfiguration(); err != nil {
		uc.Log.Error("sheetSyncUsecase.SyncAppointment configuration incomplete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := EnsureWeekday(record.Date); err != nil {
		uc.Log.Warn("sheetSyncUsecase.SyncAppointment unsupported weekday",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	svc, err := uc.openSpreadsheet(ctx)
	if err != nil {
		return nil, err
	}

	spreadsheetID := uc.InternalConfig.Sheets.SpreadsheetID
	title := TabTitle(record.Date)

	sheet, err := uc.SheetLocator.Resolve(ctx, svc, spreadsheetID, title)
	if err != nil {
		return nil, err
	}

	grid, err := svc.FetchGrid(ctx, spreadsheetID, utils.QuoteSheetTitle(title))
	if err != nil {
		return nil, err
	}

	target, err := uc.GridScanner.Locate(grid, record.Date, record.Time)
	if err != nil {
		uc.Log.Warn("sheetSyncUsecase.SyncAppointment cannot locate target cell",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSheetTitleKey, title),
			zap.Error(err),
		)
		return nil, err
	}

	a1Range, err := uc.CellWriter.Write(ctx, svc, spreadsheetID, title, target, record)
	if err != nil {
		uc.Log.Error("sheetSyncUsecase.SyncAppointment error writing row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Format failures are logged and do not fail the sync.
	if err := uc.ConditionalFormatter.Apply(ctx, svc, spreadsheetID, sheet.SheetID, target, record.Status); err != nil {
		uc.Log.Warn("sheetSyncUsecase.SyncAppointment background not applied",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRangeKey, a1Range),
			zap.String("kind", exceptions.KindOf(err)),
			zap.Error(err),
		)
	}

	uc.Log.Info("sheetSyncUsecase.SyncAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, a1Range),
	)
	return &responses.SheetSync{
		Success: true,
		Range:   a1Range,
		Sheet:   title,
	}, nil
}

func (uc *sheetSyncUsecase) DebugGrid(ctx context.Context, request *requests.DebugGrid) (*responses.DebugGrid, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sheetSyncUsecase.DebugGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSheetTitleKey, request.Sheet),
		zap.String(constvars.LoggingAppointmentDate, request.Date),
	)

	title := request.Sheet
	if title == "" {
		date, err := time.Parse(constvars.RequestDateLayout, request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		title = TabTitle(date)
	}

	if err := uc.validateConfiguration(); err != nil {
		return nil, err
	}

	svc, err := uc.openSpreadsheet(ctx)
	if err != nil {
		return nil, err
	}

	spreadsheetID := uc.InternalConfig.Sheets.SpreadsheetID
	if _, err := uc.SheetLocator.Resolve(ctx, svc, spreadsheetID, title); err != nil {
		return nil, err
	}

	result, err := uc.DebugScanner.Scan(ctx, svc, spreadsheetID, title)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("sheetSyncUsecase.DebugGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, result.Range),
	)
	return result, nil
}

func (uc *sheetSyncUsecase) validateConfiguration() error {
	var missing []string
	if uc.InternalConfig.Sheets.SpreadsheetID == "" {
		missing = append(missing, "GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	if uc.TokenProvider == nil || !uc.InternalConfig.ServiceAccount.HasCredentials() {
		missing = append(missing, "GOOGLE_SERVICE_ACCOUNT_EMAIL", "GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY")
	}
	if len(missing) > 0 {
		return exceptions.ErrConfiguration(missing...)
	}
	return nil
}

// openSpreadsheet authenticates and builds a client for this call only.
func (uc *sheetSyncUsecase) openSpreadsheet(ctx context.Context) (contracts.SpreadsheetService, error) {
	var svc contracts.SpreadsheetService
	err := utils.LogOperation(uc.Log, "sheetSyncUsecase.openSpreadsheet", utils.GetRequestID(ctx), func() error {
		token, err := uc.TokenProvider.FetchToken(ctx)
		if err != nil {
			return err
		}
		svc, err = uc.ServiceFactory.NewSpreadsheetService(ctx, token)
		return err
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}
