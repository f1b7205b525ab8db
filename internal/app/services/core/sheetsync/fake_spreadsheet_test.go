package sheetsync

import (
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/models"
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var a1Pattern = regexp.MustCompile(`^'((?:[^']|'')*)'(?:!([A-Z]+)(\d+)(?::([A-Z]+)(\d+))?)?$`)

type formatCall struct {
	SpreadsheetID string
	Range         models.GridRange
	Color         models.RGB
}

type updateCall struct {
	SpreadsheetID string
	Range         string
	Values        []string
	InputOption   string
}

// fakeSpreadsheet keeps tabs in memory and applies writes to them.
type fakeSpreadsheet struct {
	mu        sync.Mutex
	sheets    []models.SheetProperties
	grids     map[string]models.Grid
	updates   []updateCall
	formats   []formatCall
	reads     []string
	updateErr error
	formatErr error
	readErr   error
}

func newFakeSpreadsheet() *fakeSpreadsheet {
	return &fakeSpreadsheet{grids: map[string]models.Grid{}}
}

func (f *fakeSpreadsheet) addSheet(title string, sheetID int64, grid models.Grid) {
	f.sheets = append(f.sheets, models.SheetProperties{Title: title, SheetID: sheetID})
	f.grids[title] = grid
}

func (f *fakeSpreadsheet) FetchSheets(ctx context.Context, spreadsheetID string) ([]models.SheetProperties, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SheetProperties(nil), f.sheets...), nil
}

func (f *fakeSpreadsheet) FetchGrid(ctx context.Context, spreadsheetID, a1Range string) (models.Grid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads = append(f.reads, a1Range)
	if f.readErr != nil {
		return nil, f.readErr
	}
	title, _, _, err := parseA1(a1Range)
	if err != nil {
		return nil, err
	}
	grid := f.grids[title]
	copied := make(models.Grid, len(grid))
	for i, row := range grid {
		copied[i] = append([]string(nil), row...)
	}
	return copied, nil
}

func (f *fakeSpreadsheet) UpdateRow(ctx context.Context, spreadsheetID, a1Range string, values []string, valueInputOption string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updateCall{SpreadsheetID: spreadsheetID, Range: a1Range, Values: values, InputOption: valueInputOption})
	if f.updateErr != nil {
		return f.updateErr
	}
	title, row, column, err := parseA1(a1Range)
	if err != nil {
		return err
	}
	grid := f.grids[title]
	for len(grid) <= row {
		grid = append(grid, []string{})
	}
	for len(grid[row]) < column+len(values) {
		grid[row] = append(grid[row], "")
	}
	copy(grid[row][column:], values)
	f.grids[title] = grid
	return nil
}

func (f *fakeSpreadsheet) RepeatBackground(ctx context.Context, spreadsheetID string, gridRange models.GridRange, color models.RGB) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.formats = append(f.formats, formatCall{SpreadsheetID: spreadsheetID, Range: gridRange, Color: color})
	return f.formatErr
}

// parseA1 returns the tab title and the 0-based top-left cell of a range.
func parseA1(a1Range string) (string, int, int, error) {
	match := a1Pattern.FindStringSubmatch(a1Range)
	if match == nil {
		return "", 0, 0, errors.New("unsupported range " + a1Range)
	}
	title := strings.ReplaceAll(match[1], "''", "'")
	if match[2] == "" {
		return title, 0, 0, nil
	}
	row, _ := strconv.Atoi(match[3])
	column := 0
	for _, letter := range match[2] {
		column = column*26 + int(letter-'A') + 1
	}
	return title, row - 1, column - 1, nil
}

type fakeFactory struct {
	svc    contracts.SpreadsheetService
	tokens []string
}

func (f *fakeFactory) NewSpreadsheetService(ctx context.Context, token *models.CredentialToken) (contracts.SpreadsheetService, error) {
	f.tokens = append(f.tokens, token.AccessToken)
	return f.svc, nil
}

type fakeTokenProvider struct {
	calls int
	err   error
}

func (p *fakeTokenProvider) FetchToken(ctx context.Context) (*models.CredentialToken, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &models.CredentialToken{AccessToken: "token-" + strconv.Itoa(p.calls), TokenType: "Bearer"}, nil
}
