package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		0:   "A",
		5:   "F",
		6:   "G",
		25:  "Z",
		26:  "AA",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for index, want := range cases {
		assert.Equal(t, want, ColumnLetter(index), "index %d", index)
	}
	assert.Equal(t, "", ColumnLetter(-1))
}

func TestQuoteSheetTitle(t *testing.T) {
	assert.Equal(t, "'Novembro/2025'", QuoteSheetTitle("Novembro/2025"))
	assert.Equal(t, "'Dr''s agenda'", QuoteSheetTitle("Dr's agenda"))
}

func TestRowRangeA1(t *testing.T) {
	assert.Equal(t, "'Novembro/2025'!G9:J9", RowRangeA1("Novembro/2025", 8, 6, 4))
	assert.Equal(t, "'Março/2026'!A1:D1", RowRangeA1("Março/2026", 0, 0, 4))
}

func TestBoxRangeA1(t *testing.T) {
	assert.Equal(t, "'Novembro/2025'!A1:AZ100", BoxRangeA1("Novembro/2025", 100, 52))
}
