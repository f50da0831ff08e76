package services

import (
	"context"
	"strings"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/repositories"
)

// InterfaceCalendarService 日历服务接口
type InterfaceCalendarService interface {
	Registrar
	GetSystems(ctx context.Context, query *contracts.SystemListGetQuery) ([]contracts.SystemView, error)
	GetCalendarUsers(ctx context.Context, query *contracts.CalendarUserListGetQuery) ([]contracts.CalendarUserView, error)
	GetUserAppointments(ctx context.Context, query *contracts.CalendarUserAppointmentsGetQuery) ([]contracts.AppointmentView, error)
	GetUserAppointment(ctx context.Context, query *contracts.CalendarUserAppointmentGetQuery) (*contracts.AppointmentView, error)
	AddAppointment(ctx context.Context, command *contracts.AppointmentAddCommand) (*contracts.ServiceReceipt, error)
	ModifyAppointment(ctx context.Context, command *contracts.AppointmentModifyCommand) (*contracts.ServiceReceipt, error)
}

// CalendarService handles the OSWEBDB calendar.
type CalendarService struct {
	Calendar repositories.InterfaceCalendarRepository
	Now      Clock
}

// NewCalendarService 创建日历服务
func NewCalendarService(calendar repositories.InterfaceCalendarRepository, now Clock) InterfaceCalendarService {
	return &CalendarService{Calendar: calendar, Now: now}
}

// Register 注册处理器
func (s *CalendarService) Register(b *bus.Bus) {
	bus.RegisterQuery(b, s.GetSystems)
	bus.RegisterQuery(b, s.GetCalendarUsers)
	bus.RegisterQuery(b, s.GetUserAppointments)
	bus.RegisterQuery(b, s.GetUserAppointment)
	bus.RegisterCommand(b, s.AddAppointment)
	bus.RegisterCommand(b, s.ModifyAppointment)
}

// 1 GetSystems 获取使用日历的系统
func (s *CalendarService) GetSystems(ctx context.Context, _ *contracts.SystemListGetQuery) ([]contracts.SystemView, error) {
	systems, err := s.Calendar.ListSystems(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]contracts.SystemView, 0, len(systems))
	for _, system := range systems {
		views = append(views, contracts.SystemView{Number: system.Number, Title: system.Title})
	}
	return views, nil
}

// 2 GetCalendarUsers 获取日历用户
func (s *CalendarService) GetCalendarUsers(ctx context.Context, query *contracts.CalendarUserListGetQuery) ([]contracts.CalendarUserView, error) {
	if err := s.requireSystem(ctx, query.System); err != nil {
		return nil, err
	}
	users, err := s.Calendar.ListUsers(ctx, query.System)
	if err != nil {
		return nil, err
	}
	return calendarUserViews(users), nil
}

// 3 GetUserAppointments 获取用户从某日起的约会
func (s *CalendarService) GetUserAppointments(ctx context.Context, query *contracts.CalendarUserAppointmentsGetQuery) ([]contracts.AppointmentView, error) {
	user, err := s.getUser(ctx, query.System, query.Initials)
	if err != nil {
		return nil, err
	}
	entries, err := s.Calendar.ListUserAppointments(ctx, query.System, user.ID, statusDate(query.FromDate, s.Now))
	if err != nil {
		return nil, err
	}
	views := make([]contracts.AppointmentView, 0, len(entries))
	for _, entry := range entries {
		view, err := s.appointmentView(ctx, entry)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// 4 GetUserAppointment 获取用户的约会
func (s *CalendarService) GetUserAppointment(ctx context.Context, query *contracts.CalendarUserAppointmentGetQuery) (*contracts.AppointmentView, error) {
	user, err := s.getUser(ctx, query.System, query.Initials)
	if err != nil {
		return nil, err
	}
	entry, err := s.Calendar.GetUserAppointment(ctx, query.System, user.ID, query.Appointment)
	if err != nil {
		return nil, notFound(err, code.ErrAppointmentNotFound, query.Appointment)
	}
	view, err := s.appointmentView(ctx, *entry)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// 5 AddAppointment 添加约会
func (s *CalendarService) AddAppointment(ctx context.Context, command *contracts.AppointmentAddCommand) (*contracts.ServiceReceipt, error) {
	if err := s.requireSystem(ctx, command.System); err != nil {
		return nil, err
	}
	participants, err := s.resolveParticipants(ctx, command.System, command.Participants)
	if err != nil {
		return nil, err
	}
	appointment := appointmentModel(command.System, command.AppointmentData, models.AppointmentFlags{
		Public:  command.Public,
		Private: command.Private,
		Alarm:   command.Alarm,
	})
	if err := s.Calendar.AddAppointment(ctx, &appointment, participants); err != nil {
		return nil, err
	}
	return receipt(appointment.ID, s.Now()), nil
}

// 6 ModifyAppointment 修改约会并替换参与者
func (s *CalendarService) ModifyAppointment(ctx context.Context, command *contracts.AppointmentModifyCommand) (*contracts.ServiceReceipt, error) {
	if err := s.requireSystem(ctx, command.System); err != nil {
		return nil, err
	}
	participants, err := s.resolveParticipants(ctx, command.System, command.Participants)
	if err != nil {
		return nil, err
	}
	// a modified appointment has to be exported again
	appointment := appointmentModel(command.System, command.AppointmentData, models.AppointmentFlags{
		Public:  command.Public,
		Private: command.Private,
		Alarm:   command.Alarm,
		Done:    command.Done,
		Export:  command.Export,
	})
	appointment.ID = command.Appointment
	if err := s.Calendar.UpdateAppointment(ctx, &appointment, participants); err != nil {
		return nil, notFound(err, code.ErrAppointmentNotFound, command.Appointment)
	}
	return receipt(appointment.ID, s.Now()), nil
}

func (s *CalendarService) requireSystem(ctx context.Context, number int) error {
	system, err := s.Calendar.GetSystem(ctx, number)
	if err != nil {
		return notFound(err, code.ErrCalendarSystemNotFound, number)
	}
	if !system.HasCalendar() {
		return intranet.NewBusinessError(code.ErrCalendarSystemNotFound, number)
	}
	return nil
}

func (s *CalendarService) getUser(ctx context.Context, system int, initials string) (*models.CalendarUser, error) {
	if err := s.requireSystem(ctx, system); err != nil {
		return nil, err
	}
	user, err := s.Calendar.GetUserByInitials(ctx, system, initials)
	if err != nil {
		return nil, notFound(err, code.ErrCalendarUserNotFound, initials)
	}
	return user, nil
}

// resolveParticipants maps initials to calendar users. A user named twice
// takes part once.
func (s *CalendarService) resolveParticipants(ctx context.Context, system int, initials []string) ([]models.UserAppointment, error) {
	seen := make(map[int]bool, len(initials))
	participants := make([]models.UserAppointment, 0, len(initials))
	for _, i := range initials {
		user, err := s.Calendar.GetUserByInitials(ctx, system, strings.TrimSpace(i))
		if err != nil {
			return nil, notFound(err, code.ErrCalendarUserNotFound, i)
		}
		if seen[user.ID] {
			continue
		}
		seen[user.ID] = true
		participants = append(participants, models.UserAppointment{System: system, UserID: user.ID})
	}
	return participants, nil
}

func (s *CalendarService) appointmentView(ctx context.Context, entry repositories.CalendarEntry) (contracts.AppointmentView, error) {
	a := entry.Appointment
	participants, err := s.Calendar.ListParticipants(ctx, a.System, a.ID)
	if err != nil {
		return contracts.AppointmentView{}, err
	}
	flags := mergedFlags(a.Properties, entry.UserProperties)
	return contracts.AppointmentView{
		System:       a.System,
		ID:           a.ID,
		Date:         a.Date,
		FromTime:     a.FromTime,
		ToTime:       a.ToTime,
		Subject:      a.Subject,
		Note:         a.Note,
		Public:       flags.Public,
		Private:      flags.Private,
		Alarm:        flags.Alarm,
		Done:         flags.Done,
		Export:       flags.Export,
		Exported:     flags.Exported,
		Participants: calendarUserViews(participants),
	}, nil
}

// mergedFlags joins the appointment's flags with the participant's own.
// Public and private stay exclusive.
func mergedFlags(appointment, user int) models.AppointmentFlags {
	merged := appointment | user
	switch {
	case merged&models.AppointmentPublic != 0:
		merged = models.SetPublic(merged)
	case merged&models.AppointmentPrivate != 0:
		merged = models.SetPrivate(merged)
	}
	return models.DecodeAppointmentFlags(merged)
}

func appointmentModel(system int, data contracts.AppointmentData, flags models.AppointmentFlags) models.Appointment {
	return models.Appointment{
		System:     system,
		Date:       models.Date(data.Date),
		FromTime:   data.FromTime,
		ToTime:     data.ToTime,
		Properties: flags.Encode(),
		Subject:    data.Subject,
		Note:       data.Note,
	}
}

func calendarUserViews(users []models.CalendarUser) []contracts.CalendarUserView {
	views := make([]contracts.CalendarUserView, 0, len(users))
	for _, u := range users {
		views = append(views, contracts.CalendarUserView{
			System:   u.System,
			ID:       u.ID,
			UserName: u.UserName,
			Name:     u.Name,
			Initials: u.Initials,
		})
	}
	return views
}
