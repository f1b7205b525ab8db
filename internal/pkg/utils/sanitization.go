package utils

import (
	"agenda-sync-service/internal/pkg/dto/requests"
	"strings"
)

var formulaPrefixes = []string{"=", "+", "-", "@"}

// escapeFormula keeps free-text cells from being interpreted as formulas
// when written with USER_ENTERED.
func escapeFormula(s string) string {
	for _, prefix := range formulaPrefixes {
		if strings.HasPrefix(s, prefix) {
			return "'" + s
		}
	}
	return s
}

func SanitizeSyncAppointmentRequest(input *requests.SyncAppointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.PatientName = escapeFormula(strings.TrimSpace(input.PatientName))
	input.Procedure = escapeFormula(strings.TrimSpace(input.Procedure))
	input.AmountPaid = strings.TrimSpace(input.AmountPaid)
	input.Status = strings.TrimSpace(input.Status)
}

func SanitizeDebugGridRequest(input *requests.DebugGrid) {
	input.Sheet = strings.TrimSpace(input.Sheet)
	input.Date = strings.TrimSpace(input.Date)
}
