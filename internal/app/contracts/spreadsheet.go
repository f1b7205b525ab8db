package contracts

import (
	"agenda-sync-service/internal/app/models"
	"context"
)

type SpreadsheetServiceFactory interface {
	NewSpreadsheetService(ctx context.Context, token *models.CredentialToken) (SpreadsheetService, error)
}

type SpreadsheetService interface {
	FetchSheets(ctx context.Context, spreadsheetID string) ([]models.SheetProperties, error)
	FetchGrid(ctx context.Context, spreadsheetID, a1Range string) (models.Grid, error)
	UpdateRow(ctx context.Context, spreadsheetID, a1Range string, values []string, valueInputOption string) error
	RepeatBackground(ctx context.Context, spreadsheetID string, gridRange models.GridRange, color models.RGB) error
}
