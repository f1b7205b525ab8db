package requests

import (
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncAppointment_ToRecord(t *testing.T) {
	req := &SyncAppointment{
		Date:        "2025-11-25",
		Time:        "13:00",
		PatientName: " Maria Silva ",
		Procedure:   "Botox",
		AmountPaid:  "250,00",
		Status:      "confirmada",
	}

	record, err := req.ToRecord()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, "Maria Silva", record.PatientName)
	assert.Equal(t, models.AppointmentStatusConfirmed, record.Status)
	assert.Equal(t, []string{"confirmada", "Maria Silva", "Botox", "250,00"}, record.SheetRow())
}

func TestSyncAppointment_ToRecordInvalidDate(t *testing.T) {
	req := &SyncAppointment{Date: "25/11/2025", Time: "13:00", PatientName: "Maria", Status: "confirmada"}

	_, err := req.ToRecord()
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, constvars.ErrKindValidation))
}
