package models

import "time"

// 日历属性位
const (
	SystemPropertyCalendar = 1

	AppointmentPublic   = 1
	AppointmentPrivate  = 2
	AppointmentAlarm    = 4
	AppointmentDone     = 8
	AppointmentExport   = 16
	AppointmentExported = 32
)

// CalendarSystem is a system registered in OSWEBDB.
type CalendarSystem struct {
	Number     int
	Title      string
	Properties int
}

// HasCalendar reports whether the system uses the calendar.
func (s CalendarSystem) HasCalendar() bool {
	return s.Properties&SystemPropertyCalendar != 0
}

// CalendarUser is a user of a system's calendar.
type CalendarUser struct {
	System     int
	ID         int
	UserName   string
	Name       string
	Initials   string
	Properties int
}

// Appointment is a calendar entry. From and to times are "HH:MM".
type Appointment struct {
	System     int
	ID         int
	Date       time.Time
	FromTime   string
	ToTime     string
	Properties int
	Subject    string
	Note       string
}

// UserAppointment binds a calendar user to an appointment with the user's own flags.
type UserAppointment struct {
	System        int
	AppointmentID int
	UserID        int
	Properties    int
}

// AppointmentFlags holds the decoded property bits of an appointment.
type AppointmentFlags struct {
	Public   bool
	Private  bool
	Alarm    bool
	Done     bool
	Export   bool
	Exported bool
}

// DecodeAppointmentFlags splits properties into flags.
func DecodeAppointmentFlags(properties int) AppointmentFlags {
	return AppointmentFlags{
		Public:   properties&AppointmentPublic != 0,
		Private:  properties&AppointmentPrivate != 0,
		Alarm:    properties&AppointmentAlarm != 0,
		Done:     properties&AppointmentDone != 0,
		Export:   properties&AppointmentExport != 0,
		Exported: properties&AppointmentExported != 0,
	}
}

// Encode joins the flags into properties. Public and private exclude each
// other; public wins when both are set.
func (f AppointmentFlags) Encode() int {
	var properties int
	switch {
	case f.Public:
		properties |= AppointmentPublic
	case f.Private:
		properties |= AppointmentPrivate
	}
	if f.Alarm {
		properties |= AppointmentAlarm
	}
	if f.Done {
		properties |= AppointmentDone
	}
	if f.Export {
		properties |= AppointmentExport
	}
	if f.Exported {
		properties |= AppointmentExported
	}
	return properties
}

// SetPublic sets the public bit and clears private.
func SetPublic(properties int) int {
	return (properties | AppointmentPublic) &^ AppointmentPrivate
}

// SetPrivate sets the private bit and clears public.
func SetPrivate(properties int) int {
	return (properties | AppointmentPrivate) &^ AppointmentPublic
}
