package sheetsync

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/dto/responses"
	"agenda-sync-service/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
)

// DebugScanner dumps the top-left box of a tab for layout troubleshooting.
type DebugScanner struct {
	MaxRows      int
	MaxColumns   int
	DateScanRows int
	Log          *zap.Logger
}

func NewDebugScanner(sheetsConfig config.Sheets, logger *zap.Logger) *DebugScanner {
	scanner := &DebugScanner{
		MaxRows:      sheetsConfig.DebugMaxRows,
		MaxColumns:   sheetsConfig.DebugMaxColumns,
		DateScanRows: sheetsConfig.DebugDateScanRows,
		Log:          logger,
	}
	if scanner.MaxRows <= 0 {
		scanner.MaxRows = constvars.DefaultDebugMaxRows
	}
	if scanner.MaxColumns <= 0 {
		scanner.MaxColumns = constvars.DefaultDebugMaxColumns
	}
	if scanner.DateScanRows <= 0 {
		scanner.DateScanRows = constvars.DefaultDebugDateScanRows
	}
	return scanner
}

func (d *DebugScanner) Scan(ctx context.Context, svc contracts.SpreadsheetService, spreadsheetID, title string) (*responses.DebugGrid, error) {
	requestID := utils.GetRequestID(ctx)
	a1Range := utils.BoxRangeA1(title, d.MaxRows, d.MaxColumns)
	d.Log.Info("DebugScanner.Scan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, a1Range),
	)

	grid, err := svc.FetchGrid(ctx, spreadsheetID, a1Range)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(grid))
	for _, row := range grid {
		if len(row) > d.MaxColumns {
			row = row[:d.MaxColumns]
		}
		rows = append(rows, row)
		if len(rows) == d.MaxRows {
			break
		}
	}

	dateCells := []responses.DebugDateCell{}
	for row := 0; row < len(rows) && row < d.DateScanRows; row++ {
		for column, cell := range rows[row] {
			text := strings.TrimSpace(cell)
			if !IsSheetDate(text) {
				continue
			}
			dateCells = append(dateCells, responses.DebugDateCell{
				Row:    row,
				Column: column,
				A1:     utils.CellA1(row, column),
				Value:  text,
			})
		}
	}

	d.Log.Info("DebugScanner.Scan succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingGridRowsKey, len(rows)),
		zap.Int(constvars.LoggingDateCellsKey, len(dateCells)),
	)
	return &responses.DebugGrid{
		Sheet:     title,
		Range:     a1Range,
		Rows:      rows,
		DateCells: dateCells,
	}, nil
}
