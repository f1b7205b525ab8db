package models

import "time"

// Grid is the cell text of one tab. Rows may be ragged.
type Grid [][]string

// Cell returns the text at (row, column), or "" outside the grid.
func (g Grid) Cell(row, column int) string {
	if row < 0 || row >= len(g) || column < 0 || column >= len(g[row]) {
		return ""
	}
	return g[row][column]
}

type SheetProperties struct {
	Title   string
	SheetID int64
}

type WeekBlock struct {
	StartColumn int
	TimeColumn  int
	DataColumn  int
}

type TargetCell struct {
	Row    int
	Column int
}

type GridRange struct {
	SheetID          int64
	StartRowIndex    int64
	EndRowIndex      int64
	StartColumnIndex int64
	EndColumnIndex   int64
}

type RGB struct {
	Red   float64
	Green float64
	Blue  float64
}

type CredentialToken struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
	Expiry      time.Time
}
