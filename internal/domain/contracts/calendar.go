package contracts

import (
	"time"

	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
)

// SystemListGetQuery lists the systems using the calendar.
type SystemListGetQuery struct{}

// SystemView 系统视图
type SystemView struct {
	Number int    `json:"number" xml:"number"`
	Title  string `json:"title" xml:"title"`
}

// CalendarUserListGetQuery lists the calendar users of a system.
type CalendarUserListGetQuery struct {
	System int `json:"system" uri:"system" validate:"min=1"`
}

// CalendarUserView 日历用户视图
type CalendarUserView struct {
	System   int    `json:"system" xml:"system"`
	ID       int    `json:"id" xml:"id"`
	UserName string `json:"user_name" xml:"user_name"`
	Name     string `json:"name" xml:"name"`
	Initials string `json:"initials" xml:"initials"`
}

// CalendarUserAppointmentsGetQuery returns a user's appointments from a date.
type CalendarUserAppointmentsGetQuery struct {
	System   int       `json:"system" uri:"system" validate:"min=1"`
	Initials string    `json:"initials" uri:"initials" validate:"required,max=16"`
	FromDate time.Time `json:"from_date" form:"from_date" time_format:"2006-01-02" time_utc:"1"`
}

// CalendarUserAppointmentGetQuery returns one of a user's appointments.
type CalendarUserAppointmentGetQuery struct {
	System      int    `json:"system" uri:"system" validate:"min=1"`
	Initials    string `json:"initials" uri:"initials" validate:"required,max=16"`
	Appointment int    `json:"appointment" uri:"appointment" validate:"min=1"`
}

// AppointmentView 约会视图
type AppointmentView struct {
	System       int                `json:"system" xml:"system"`
	ID           int                `json:"id" xml:"id"`
	Date         time.Time          `json:"date" xml:"date"`
	FromTime     string             `json:"from_time" xml:"from_time"`
	ToTime       string             `json:"to_time" xml:"to_time"`
	Subject      string             `json:"subject" xml:"subject"`
	Note         string             `json:"note" xml:"note"`
	Public       bool               `json:"public" xml:"public"`
	Private      bool               `json:"private" xml:"private"`
	Alarm        bool               `json:"alarm" xml:"alarm"`
	Done         bool               `json:"done" xml:"done"`
	Export       bool               `json:"export" xml:"export"`
	Exported     bool               `json:"exported" xml:"exported"`
	Participants []CalendarUserView `json:"participants" xml:"participants>participant"`
}

// AppointmentData is shared by add and modify.
type AppointmentData struct {
	Date         time.Time `json:"date" validate:"required"`
	FromTime     string    `json:"from_time" validate:"required,clock"`
	ToTime       string    `json:"to_time" validate:"required,clock"`
	Subject      string    `json:"subject" validate:"required,max=255"`
	Note         string    `json:"note" validate:"max=4096"`
	Public       bool      `json:"public"`
	Private      bool      `json:"private"`
	Alarm        bool      `json:"alarm"`
	Participants []string  `json:"participants" validate:"dive,required,max=16"`
}

// Validate requires the appointment to end after it starts.
func (d *AppointmentData) Validate() error {
	// "HH:MM" compares correctly as a string.
	if d.FromTime >= d.ToTime {
		return intranet.NewBusinessError(code.ErrAppointmentTimeInvalid, d.FromTime, d.ToTime)
	}
	return nil
}

// AppointmentAddCommand 添加约会
type AppointmentAddCommand struct {
	System int `json:"system" uri:"system" validate:"min=1"`
	AppointmentData
}

// AppointmentModifyCommand 修改约会
type AppointmentModifyCommand struct {
	System      int  `json:"system" uri:"system" validate:"min=1"`
	Appointment int  `json:"appointment" uri:"appointment" validate:"min=1"`
	Done        bool `json:"done"`
	Export      bool `json:"export"`
	AppointmentData
}
