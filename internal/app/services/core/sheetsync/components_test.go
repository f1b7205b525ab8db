package sheetsync

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/models"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status models.AppointmentStatus
		want   models.RGB
	}{
		{models.AppointmentStatusConfirmed, models.RGB{Red: 0.8, Green: 1.0, Blue: 0.8}},
		{"Confirmed", models.RGB{Red: 0.8, Green: 1.0, Blue: 0.8}},
		{models.AppointmentStatusCancelled, models.RGB{Red: 1.0, Green: 0.8, Blue: 0.8}},
		{"canceled", models.RGB{Red: 1.0, Green: 0.8, Blue: 0.8}},
		{models.AppointmentStatusCompleted, models.RGB{Red: 0.8, Green: 0.9, Blue: 1.0}},
		{models.AppointmentStatusRescheduled, models.RGB{Red: 1.0, Green: 1.0, Blue: 0.8}},
		{"", models.RGB{Red: 1, Green: 1, Blue: 1}},
		{"pendente", models.RGB{Red: 1, Green: 1, Blue: 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusColor(tt.status), string(tt.status))
	}
}

func TestWriteRange(t *testing.T) {
	assert.Equal(t, "'Novembro/2025'!G9:J9", WriteRange("Novembro/2025", models.TargetCell{Row: 8, Column: 6}))
	assert.Equal(t, "'Maio/2026'!Z1:AC1", WriteRange("Maio/2026", models.TargetCell{Row: 0, Column: 25}))
}

func TestSheetLocator_ResolveExactTitle(t *testing.T) {
	spreadsheet := newFakeSpreadsheet()
	spreadsheet.addSheet("novembro/2025", 1, nil)
	spreadsheet.addSheet("Novembro/2025", 2, nil)

	sheet, err := NewSheetLocator(zap.NewNop()).Resolve(context.Background(), spreadsheet, testSpreadsheetID, "Novembro/2025")
	require.NoError(t, err)
	assert.Equal(t, int64(2), sheet.SheetID)
}

func TestDebugScanner_ScanLimits(t *testing.T) {
	grid := models.Grid{}
	for row := 0; row < 15; row++ {
		cells := make([]string, 8)
		for column := range cells {
			cells[column] = fmt.Sprintf("r%dc%d", row, column)
		}
		grid = append(grid, cells)
	}
	grid[1][3] = "10/11/2025"
	grid[11][0] = "17/11/2025"

	spreadsheet := newFakeSpreadsheet()
	spreadsheet.addSheet("Novembro/2025", 3, grid)

	scanner := NewDebugScanner(config.Sheets{DebugMaxRows: 12, DebugMaxColumns: 6}, zap.NewNop())
	result, err := scanner.Scan(context.Background(), spreadsheet, testSpreadsheetID, "Novembro/2025")
	require.NoError(t, err)

	assert.Equal(t, "'Novembro/2025'!A1:F12", result.Range)
	assert.Len(t, result.Rows, 12)
	assert.Len(t, result.Rows[0], 6)
	// Only the first ten rows are scanned for dates.
	require.Len(t, result.DateCells, 1)
	assert.Equal(t, "D2", result.DateCells[0].A1)
}
