package utils

import (
	"fmt"
	"strings"
)

// ColumnLetter converts a 0-based column index to its A1 letters (0 -> A, 26 -> AA).
func ColumnLetter(index int) string {
	if index < 0 {
		return ""
	}
	letters := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		letters = string(rune('A'+(n-1)%26)) + letters
	}
	return letters
}

// QuoteSheetTitle wraps a tab title in single quotes so titles such as
// "Novembro/2025" are valid in A1 notation.
func QuoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// CellA1 renders a 0-based (row, column) pair as A1 notation, e.g. (8, 6) -> G9.
func CellA1(row, column int) string {
	return fmt.Sprintf("%s%d", ColumnLetter(column), row+1)
}

// RowRangeA1 renders a single-row span of width cells starting at (row, column)
// on the given tab.
func RowRangeA1(title string, row, column, width int) string {
	return fmt.Sprintf("%s!%s:%s", QuoteSheetTitle(title), CellA1(row, column), CellA1(row, column+width-1))
}

// BoxRangeA1 renders the top-left rows x columns box of a tab.
func BoxRangeA1(title string, rows, columns int) string {
	return fmt.Sprintf("%s!A1:%s", QuoteSheetTitle(title), CellA1(rows-1, columns-1))
}
