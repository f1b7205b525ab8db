package requests

import (
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/exceptions"
	"strings"
	"time"
)

// SyncAppointment is the invocation payload shared by the HTTP endpoint and
// the queue consumer.
type SyncAppointment struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,clock_hhmm"`
	PatientName string `json:"patient_name" validate:"required,max=200"`
	Procedure   string `json:"procedure" validate:"max=200"`
	AmountPaid  string `json:"amount_paid" validate:"max=50"`
	Status      string `json:"status" validate:"required,max=50"`
}

// ToRecord converts a validated payload into the record written to the sheet.
func (r *SyncAppointment) ToRecord() (models.AppointmentRecord, error) {
	date, err := time.Parse(constvars.RequestDateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return models.AppointmentRecord{}, exceptions.ErrCannotParseDate(err)
	}
	return models.AppointmentRecord{
		Date:        date,
		Time:        strings.TrimSpace(r.Time),
		PatientName: strings.TrimSpace(r.PatientName),
		Procedure:   strings.TrimSpace(r.Procedure),
		AmountPaid:  strings.TrimSpace(r.AmountPaid),
		Status:      models.AppointmentStatus(strings.TrimSpace(r.Status)),
	}, nil
}

type DebugGrid struct {
	Sheet string `json:"sheet" validate:"required_without=Date"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
