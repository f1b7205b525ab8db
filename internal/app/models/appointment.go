package models

import (
	"strings"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusConfirmed   AppointmentStatus = "confirmada"
	AppointmentStatusCancelled   AppointmentStatus = "cancelada"
	AppointmentStatusCompleted   AppointmentStatus = "concluida"
	AppointmentStatusRescheduled AppointmentStatus = "remarcada"
)

var appointmentStatusAliases = map[string]AppointmentStatus{
	"confirmada":  AppointmentStatusConfirmed,
	"confirmed":   AppointmentStatusConfirmed,
	"cancelada":   AppointmentStatusCancelled,
	"cancelled":   AppointmentStatusCancelled,
	"canceled":    AppointmentStatusCancelled,
	"concluida":   AppointmentStatusCompleted,
	"concluída":   AppointmentStatusCompleted,
	"completed":   AppointmentStatusCompleted,
	"remarcada":   AppointmentStatusRescheduled,
	"rescheduled": AppointmentStatusRescheduled,
}

// Canonical maps status text, in Portuguese or English, onto one of the four
// known statuses. ok is false for anything else.
func (s AppointmentStatus) Canonical() (AppointmentStatus, bool) {
	canonical, ok := appointmentStatusAliases[strings.ToLower(strings.TrimSpace(string(s)))]
	return canonical, ok
}

// AppointmentRecord is owned by the scheduling system and never mutated here.
type AppointmentRecord struct {
	Date        time.Time
	Time        string
	PatientName string
	Procedure   string
	AmountPaid  string
	Status      AppointmentStatus
}

// SheetRow is the 4-field row written at the target cell.
func (r AppointmentRecord) SheetRow() []string {
	return []string{string(r.Status), r.PatientName, r.Procedure, r.AmountPaid}
}
