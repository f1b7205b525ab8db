package sheetsync

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/exceptions"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	sheetDatePattern = regexp.MustCompile(constvars.RegexSheetDate)
	sheetTimePattern = regexp.MustCompile(constvars.RegexSheetTime)
)

// GridScanner locates the cell for an appointment inside a weekly grid. It
// performs no I/O.
//
// The grid is a sequence of week blocks BlockWidth columns wide. Each block
// carries the Monday of its week as a DD/MM/YYYY header, and the first column
// of the block lists the time slots below it.
type GridScanner struct {
	BlockWidth          int
	TimeSearchWindow    int
	TimeDiagnosticLimit int
}

func NewGridScanner(sheetsConfig config.Sheets) *GridScanner {
	scanner := &GridScanner{
		BlockWidth:          sheetsConfig.WeekBlockWidth,
		TimeSearchWindow:    sheetsConfig.TimeSearchWindow,
		TimeDiagnosticLimit: sheetsConfig.TimeDiagnosticLimit,
	}
	if scanner.BlockWidth <= 0 {
		scanner.BlockWidth = constvars.DefaultWeekBlockWidth
	}
	if scanner.TimeSearchWindow <= 0 {
		scanner.TimeSearchWindow = constvars.DefaultTimeSearchWindow
	}
	if scanner.TimeDiagnosticLimit <= 0 {
		scanner.TimeDiagnosticLimit = constvars.DefaultTimeDiagnosticLimit
	}
	return scanner
}

// Locate returns the 0-based cell where the record for date at clock starts.
func (s *GridScanner) Locate(grid models.Grid, date time.Time, clock string) (models.TargetCell, error) {
	if err := EnsureWeekday(date); err != nil {
		return models.TargetCell{}, err
	}

	wanted, ok := NormalizeClock(clock)
	if !ok {
		return models.TargetCell{}, exceptions.ErrInvalidClock(clock)
	}

	header := WeekHeader(date)
	headerRow, headerColumn, found := findHeader(grid, header)
	if !found {
		return models.TargetCell{}, exceptions.ErrHeaderDateNotFound(header, CollectDates(grid, len(grid)))
	}

	block := s.Block(headerColumn)
	firstRow := headerRow + 1
	lastRow := headerRow + s.TimeSearchWindow

	available := []string{}
	for row := firstRow; row <= lastRow && row < len(grid); row++ {
		text := strings.TrimSpace(grid.Cell(row, block.TimeColumn))
		normalized, isTime := NormalizeClock(text)
		if !isTime {
			continue
		}
		if normalized == wanted {
			return models.TargetCell{Row: row, Column: block.DataColumn}, nil
		}
		if len(available) < s.TimeDiagnosticLimit {
			available = append(available, text)
		}
	}

	return models.TargetCell{}, exceptions.ErrTimeRowNotFound(wanted, block.TimeColumn, firstRow, lastRow, available)
}

// Block returns the week block containing headerColumn. Every weekday writes
// to the column right after the time column.
func (s *GridScanner) Block(headerColumn int) models.WeekBlock {
	start := (headerColumn / s.BlockWidth) * s.BlockWidth
	return models.WeekBlock{
		StartColumn: start,
		TimeColumn:  start,
		DataColumn:  start + constvars.DataColumnOffset,
	}
}

// EnsureWeekday rejects Saturday and Sunday.
func EnsureWeekday(date time.Time) error {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return exceptions.ErrUnsupportedWeekday(date.Format(constvars.RequestDateLayout), date.Weekday().String())
	}
	return nil
}

// WeekHeader is the header text of the week block holding date: the Monday
// of that week as DD/MM/YYYY.
func WeekHeader(date time.Time) string {
	offset := (int(date.Weekday()) + 6) % 7
	monday := date.AddDate(0, 0, -offset)
	return monday.Format(constvars.SheetDateLayout)
}

// NormalizeClock turns "9:05", "09:05" and "09:05:00" into "09:05".
func NormalizeClock(text string) (string, bool) {
	match := sheetTimePattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return "", false
	}
	hour := match[1]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return fmt.Sprintf("%s:%s", hour, match[2]), true
}

// IsSheetDate reports whether text looks like a DD/MM/YYYY header.
func IsSheetDate(text string) bool {
	return sheetDatePattern.MatchString(strings.TrimSpace(text))
}

// findHeader scans row-major and returns the first cell equal to header.
func findHeader(grid models.Grid, header string) (int, int, bool) {
	for row := range grid {
		for column := range grid[row] {
			if strings.TrimSpace(grid[row][column]) == header {
				return row, column, true
			}
		}
	}
	return 0, 0, false
}

// CollectDates lists the distinct date-shaped cells of the first maxRows rows
// in scan order.
func CollectDates(grid models.Grid, maxRows int) []string {
	seen := make(map[string]struct{})
	dates := []string{}
	for row := 0; row < len(grid) && row < maxRows; row++ {
		for _, cell := range grid[row] {
			text := strings.TrimSpace(cell)
			if !IsSheetDate(text) {
				continue
			}
			if _, ok := seen[text]; ok {
				continue
			}
			seen[text] = struct{}{}
			dates = append(dates, text)
		}
	}
	return dates
}
