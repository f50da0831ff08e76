package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/infrastructure/repositories"
)

func newTestCalendar(t *testing.T) InterfaceCalendarService {
	t.Helper()
	db := newTestCalendarDB(t)
	for _, stmt := range []string{
		"INSERT INTO calsys (SystemNo, Title, Properties) VALUES (1, 'Privat', 1), (2, 'Gammel', 0)",
		"INSERT INTO caluser (SystemNo, UserId, UserName, Name, Initials, Properties) VALUES (1, 1, 'ole', 'Ole Sørensen', 'OS', 0), (1, 2, 'bente', 'Bente Hansen', 'BH', 0)",
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return NewCalendarService(repositories.NewCalendarRepository(db), fixedClock)
}

func TestAppointmentParticipants(t *testing.T) {
	ctx := context.Background()
	s := newTestCalendar(t)

	users, err := s.GetCalendarUsers(ctx, &contracts.CalendarUserListGetQuery{System: 1})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	result, err := s.AddAppointment(ctx, &contracts.AppointmentAddCommand{
		System: 1,
		AppointmentData: contracts.AppointmentData{
			Date:         day(2024, time.March, 20),
			FromTime:     "09:00",
			ToTime:       "10:30",
			Subject:      "Tandlæge",
			Private:      true,
			Participants: []string{"OS", " BH ", "OS"},
		},
	})
	require.NoError(t, err)
	id, err := strconv.Atoi(result.Identifier)
	require.NoError(t, err)

	appointments, err := s.GetUserAppointments(ctx, &contracts.CalendarUserAppointmentsGetQuery{System: 1, Initials: "BH"})
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Tandlæge", appointments[0].Subject)
	assert.True(t, appointments[0].Private)
	assert.False(t, appointments[0].Public)
	assert.Len(t, appointments[0].Participants, 2)

	// appointments before the from date are left out
	appointments, err = s.GetUserAppointments(ctx, &contracts.CalendarUserAppointmentsGetQuery{System: 1, Initials: "OS", FromDate: day(2024, time.March, 21)})
	require.NoError(t, err)
	assert.Empty(t, appointments)

	_, err = s.ModifyAppointment(ctx, &contracts.AppointmentModifyCommand{
		System:      1,
		Appointment: id,
		Done:        true,
		AppointmentData: contracts.AppointmentData{
			Date:         day(2024, time.March, 20),
			FromTime:     "11:00",
			ToTime:       "12:00",
			Subject:      "Tandlæge",
			Public:       true,
			Participants: []string{"OS"},
		},
	})
	require.NoError(t, err)

	appointment, err := s.GetUserAppointment(ctx, &contracts.CalendarUserAppointmentGetQuery{System: 1, Initials: "OS", Appointment: id})
	require.NoError(t, err)
	assert.Equal(t, "11:00", appointment.FromTime)
	assert.True(t, appointment.Public)
	assert.True(t, appointment.Done)
	assert.False(t, appointment.Exported)
	assert.Len(t, appointment.Participants, 1)

	_, err = s.GetUserAppointment(ctx, &contracts.CalendarUserAppointmentGetQuery{System: 1, Initials: "BH", Appointment: id})
	requireCode(t, err, code.ErrAppointmentNotFound)
}

func TestCalendarLookupsFail(t *testing.T) {
	ctx := context.Background()
	s := newTestCalendar(t)

	systems, err := s.GetSystems(ctx, &contracts.SystemListGetQuery{})
	require.NoError(t, err)
	assert.Len(t, systems, 2)

	// system 2 does not use the calendar
	_, err = s.GetCalendarUsers(ctx, &contracts.CalendarUserListGetQuery{System: 2})
	requireCode(t, err, code.ErrCalendarSystemNotFound)
	_, err = s.GetCalendarUsers(ctx, &contracts.CalendarUserListGetQuery{System: 9})
	requireCode(t, err, code.ErrCalendarSystemNotFound)

	_, err = s.GetUserAppointments(ctx, &contracts.CalendarUserAppointmentsGetQuery{System: 1, Initials: "XX"})
	requireCode(t, err, code.ErrCalendarUserNotFound)

	_, err = s.AddAppointment(ctx, &contracts.AppointmentAddCommand{
		System: 1,
		AppointmentData: contracts.AppointmentData{
			Date:         day(2024, time.March, 20),
			FromTime:     "09:00",
			ToTime:       "10:00",
			Subject:      "Møde",
			Participants: []string{"XX"},
		},
	})
	requireCode(t, err, code.ErrCalendarUserNotFound)

	_, err = s.ModifyAppointment(ctx, &contracts.AppointmentModifyCommand{
		System:      1,
		Appointment: 42,
		AppointmentData: contracts.AppointmentData{
			Date:     day(2024, time.March, 20),
			FromTime: "09:00",
			ToTime:   "10:00",
			Subject:  "Møde",
		},
	})
	requireCode(t, err, code.ErrAppointmentNotFound)
}

func TestModifyAppointmentWithSameValues(t *testing.T) {
	ctx := context.Background()
	s := newTestCalendar(t)

	data := contracts.AppointmentData{
		Date:         day(2024, time.March, 22),
		FromTime:     "13:00",
		ToTime:       "14:00",
		Subject:      "Frokost",
		Public:       true,
		Participants: []string{"OS"},
	}
	result, err := s.AddAppointment(ctx, &contracts.AppointmentAddCommand{System: 1, AppointmentData: data})
	require.NoError(t, err)
	id, err := strconv.Atoi(result.Identifier)
	require.NoError(t, err)

	// saving the form twice without changes
	for i := 0; i < 2; i++ {
		_, err = s.ModifyAppointment(ctx, &contracts.AppointmentModifyCommand{System: 1, Appointment: id, AppointmentData: data})
		require.NoError(t, err)
	}

	appointment, err := s.GetUserAppointment(ctx, &contracts.CalendarUserAppointmentGetQuery{System: 1, Initials: "OS", Appointment: id})
	require.NoError(t, err)
	assert.Equal(t, "Frokost", appointment.Subject)
	assert.True(t, appointment.Public)

	_, err = s.ModifyAppointment(ctx, &contracts.AppointmentModifyCommand{System: 1, Appointment: id + 1, AppointmentData: data})
	requireCode(t, err, code.ErrAppointmentNotFound)
}
