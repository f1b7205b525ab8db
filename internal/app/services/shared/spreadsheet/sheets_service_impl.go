package spreadsheet

import (
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/exceptions"
	"agenda-sync-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/api/sheets/v4"
)

type sheetsService struct {
	svc     *sheets.Service
	limiter *rate.Limiter
	log     *zap.Logger
}

func (s *sheetsService) wait(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return nil
}

func (s *sheetsService) FetchSheets(ctx context.Context, spreadsheetID string) ([]models.SheetProperties, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("sheetsService.FetchSheets called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpreadsheetIDKey, spreadsheetID),
	)

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	spreadsheet, err := s.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties(sheetId,title)").
		Context(ctx).
		Do()
	if err != nil {
		s.log.Error("sheetsService.FetchSheets error fetching metadata",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSpreadsheetMetadata(err)
	}

	result := make([]models.SheetProperties, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet == nil || sheet.Properties == nil {
			continue
		}
		result = append(result, models.SheetProperties{
			Title:   sheet.Properties.Title,
			SheetID: sheet.Properties.SheetId,
		})
	}

	s.log.Info("sheetsService.FetchSheets succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("sheet_count", len(result)),
	)
	return result, nil
}

func (s *sheetsService) FetchGrid(ctx context.Context, spreadsheetID, a1Range string) (models.Grid, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("sheetsService.FetchGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, a1Range),
	)

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	valueRange, err := s.svc.Spreadsheets.Values.Get(spreadsheetID, a1Range).
		ValueRenderOption(constvars.ValueRenderFormattedValue).
		Context(ctx).
		Do()
	if err != nil {
		s.log.Error("sheetsService.FetchGrid error reading values",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRangeKey, a1Range),
			zap.Error(err),
		)
		return nil, exceptions.ErrSpreadsheetRead(err, a1Range)
	}

	grid := make(models.Grid, len(valueRange.Values))
	for rowIndex, row := range valueRange.Values {
		cells := make([]string, len(row))
		for columnIndex, value := range row {
			if value != nil {
				cells[columnIndex] = fmt.Sprint(value)
			}
		}
		grid[rowIndex] = cells
	}

	s.log.Info("sheetsService.FetchGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingGridRowsKey, len(grid)),
	)
	return grid, nil
}

func (s *sheetsService) UpdateRow(ctx context.Context, spreadsheetID, a1Range string, values []string, valueInputOption string) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("sheetsService.UpdateRow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, a1Range),
	)

	if err := s.wait(ctx); err != nil {
		return err
	}

	row := make([]interface{}, len(values))
	for i, value := range values {
		row[i] = value
	}

	_, err := s.svc.Spreadsheets.Values.Update(spreadsheetID, a1Range, &sheets.ValueRange{
		Range:  a1Range,
		Values: [][]interface{}{row},
	}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		s.log.Error("sheetsService.UpdateRow error writing values",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRangeKey, a1Range),
			zap.Error(err),
		)
		return exceptions.ErrSpreadsheetWrite(err, a1Range)
	}

	s.log.Info("sheetsService.UpdateRow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeKey, a1Range),
	)
	return nil
}

func (s *sheetsService) RepeatBackground(ctx context.Context, spreadsheetID string, gridRange models.GridRange, color models.RGB) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("sheetsService.RepeatBackground called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSheetIDKey, gridRange.SheetID),
	)

	if err := s.wait(ctx); err != nil {
		return err
	}

	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          gridRange.SheetID,
						StartRowIndex:    gridRange.StartRowIndex,
						EndRowIndex:      gridRange.EndRowIndex,
						StartColumnIndex: gridRange.StartColumnIndex,
						EndColumnIndex:   gridRange.EndColumnIndex,
						// Zero indexes are meaningful here (first tab, first row).
						ForceSendFields: []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							BackgroundColor: &sheets.Color{
								Red:             color.Red,
								Green:           color.Green,
								Blue:            color.Blue,
								ForceSendFields: []string{"Red", "Green", "Blue"},
							},
						},
					},
					Fields: constvars.BackgroundColorFieldMask,
				},
			},
		},
	}

	_, err := s.svc.Spreadsheets.BatchUpdate(spreadsheetID, request).Context(ctx).Do()
	if err != nil {
		a1Range := fmt.Sprintf("%s:%s",
			utils.CellA1(int(gridRange.StartRowIndex), int(gridRange.StartColumnIndex)),
			utils.CellA1(int(gridRange.EndRowIndex)-1, int(gridRange.EndColumnIndex)-1),
		)
		s.log.Warn("sheetsService.RepeatBackground error applying background",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSpreadsheetFormat(err, a1Range)
	}

	s.log.Info("sheetsService.RepeatBackground succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
