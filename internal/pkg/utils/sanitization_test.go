package utils

import (
	"agenda-sync-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSyncAppointmentRequest(t *testing.T) {
	t.Run("Whitespace Sanitization", func(t *testing.T) {
		request := &requests.SyncAppointment{
			Date:        " 2025-11-25 ",
			Time:        " 13:00",
			PatientName: "  Maria Souza  ",
			Procedure:   " Limpeza ",
			AmountPaid:  " 150,00 ",
			Status:      " confirmada ",
		}

		SanitizeSyncAppointmentRequest(request)

		assert.Equal(t, "2025-11-25", request.Date)
		assert.Equal(t, "13:00", request.Time)
		assert.Equal(t, "Maria Souza", request.PatientName)
		assert.Equal(t, "Limpeza", request.Procedure)
		assert.Equal(t, "150,00", request.AmountPaid)
		assert.Equal(t, "confirmada", request.Status)
	})

	t.Run("Formula Escaping", func(t *testing.T) {
		request := &requests.SyncAppointment{
			PatientName: "=HYPERLINK(\"x\")",
			Procedure:   " @import",
			AmountPaid:  "-10",
		}

		SanitizeSyncAppointmentRequest(request)

		assert.Equal(t, "'=HYPERLINK(\"x\")", request.PatientName)
		assert.Equal(t, "'@import", request.Procedure)
		assert.Equal(t, "-10", request.AmountPaid, "amount is left for the sheet to parse")
	})

	t.Run("Plain Text Untouched", func(t *testing.T) {
		request := &requests.SyncAppointment{PatientName: "Ana-Clara", Procedure: "Canal"}

		SanitizeSyncAppointmentRequest(request)

		assert.Equal(t, "Ana-Clara", request.PatientName)
		assert.Equal(t, "Canal", request.Procedure)
	})
}

func TestSanitizeDebugGridRequest(t *testing.T) {
	request := &requests.DebugGrid{Sheet: "  Novembro 2025 ", Date: " 2025-11-25"}

	SanitizeDebugGridRequest(request)

	assert.Equal(t, "Novembro 2025", request.Sheet)
	assert.Equal(t, "2025-11-25", request.Date)
}
