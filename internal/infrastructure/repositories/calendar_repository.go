package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/juju/errors"

	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// dataProxy pairs a row type with the SELECT that reads it.
type dataProxy[T any] struct {
	selectSQL string
	scan      func(rowScanner) (T, error)
}

func (p dataProxy[T]) list(ctx context.Context, db *sql.DB, where string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, p.selectSQL+" "+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []T
	for rows.Next() {
		item, err := p.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (p dataProxy[T]) get(ctx context.Context, db *sql.DB, where string, args ...any) (T, error) {
	return p.scan(db.QueryRowContext(ctx, p.selectSQL+" "+where, args...))
}

var systemProxy = dataProxy[models.CalendarSystem]{
	selectSQL: "SELECT SystemNo, Title, Properties FROM calsys",
	scan: func(row rowScanner) (models.CalendarSystem, error) {
		var s models.CalendarSystem
		err := row.Scan(&s.Number, &s.Title, &s.Properties)
		return s, err
	},
}

var calendarUserProxy = dataProxy[models.CalendarUser]{
	selectSQL: "SELECT u.SystemNo, u.UserId, u.UserName, u.Name, u.Initials, u.Properties FROM caluser u",
	scan: func(row rowScanner) (models.CalendarUser, error) {
		var u models.CalendarUser
		err := row.Scan(&u.System, &u.ID, &u.UserName, &u.Name, &u.Initials, &u.Properties)
		return u, err
	},
}

// CalendarEntry is an appointment seen by one of its participants.
type CalendarEntry struct {
	Appointment    models.Appointment
	UserProperties int
}

var calendarEntryProxy = dataProxy[CalendarEntry]{
	selectSQL: "SELECT a.SystemNo, a.CalId, a.Date, a.FromTime, a.ToTime, a.Properties, a.Subject, a.Note, m.Properties " +
		"FROM calapp a JOIN calmerge m ON m.SystemNo = a.SystemNo AND m.CalId = a.CalId",
	scan: func(row rowScanner) (CalendarEntry, error) {
		var e CalendarEntry
		var note sql.NullString
		a := &e.Appointment
		err := row.Scan(&a.System, &a.ID, &a.Date, &a.FromTime, &a.ToTime, &a.Properties, &a.Subject, &note, &e.UserProperties)
		a.Note = note.String
		a.Date = models.Date(a.Date)
		return e, err
	},
}

// InterfaceCalendarRepository 日历仓储接口
type InterfaceCalendarRepository interface {
	ListSystems(ctx context.Context) ([]models.CalendarSystem, error)
	GetSystem(ctx context.Context, system int) (*models.CalendarSystem, error)
	ListUsers(ctx context.Context, system int) ([]models.CalendarUser, error)
	GetUserByInitials(ctx context.Context, system int, initials string) (*models.CalendarUser, error)
	ListUserAppointments(ctx context.Context, system, userID int, fromDate time.Time) ([]CalendarEntry, error)
	GetUserAppointment(ctx context.Context, system, userID, appointmentID int) (*CalendarEntry, error)
	ListParticipants(ctx context.Context, system, appointmentID int) ([]models.CalendarUser, error)
	AddAppointment(ctx context.Context, appointment *models.Appointment, participants []models.UserAppointment) error
	UpdateAppointment(ctx context.Context, appointment *models.Appointment, participants []models.UserAppointment) error
}

// CalendarRepository reads and writes the OSWEBDB calendar tables with
// hand-written SQL.
type CalendarRepository struct {
	DB *sql.DB
}

// NewCalendarRepository 创建日历仓储
func NewCalendarRepository(db *sql.DB) InterfaceCalendarRepository {
	return &CalendarRepository{DB: db}
}

// 1 ListSystems returns the systems using the calendar ordered by number.
func (r *CalendarRepository) ListSystems(ctx context.Context) ([]models.CalendarSystem, error) {
	systems, err := systemProxy.list(ctx, r.DB, "WHERE (Properties & ?) = ? ORDER BY SystemNo",
		models.SystemPropertyCalendar, models.SystemPropertyCalendar)
	return systems, sqlError(err, "list calendar systems")
}

// 2 GetSystem 获取系统
func (r *CalendarRepository) GetSystem(ctx context.Context, system int) (*models.CalendarSystem, error) {
	s, err := systemProxy.get(ctx, r.DB, "WHERE SystemNo = ?", system)
	if err != nil {
		return nil, sqlError(err, "calendar system %d", system)
	}
	return &s, nil
}

// 3 ListUsers 获取系统的所有日历用户
func (r *CalendarRepository) ListUsers(ctx context.Context, system int) ([]models.CalendarUser, error) {
	users, err := calendarUserProxy.list(ctx, r.DB, "WHERE u.SystemNo = ? ORDER BY u.Name, u.UserId", system)
	return users, sqlError(err, "list calendar users of system %d", system)
}

// 4 GetUserByInitials 根据缩写获取日历用户
func (r *CalendarRepository) GetUserByInitials(ctx context.Context, system int, initials string) (*models.CalendarUser, error) {
	u, err := calendarUserProxy.get(ctx, r.DB, "WHERE u.SystemNo = ? AND UPPER(u.Initials) = ?", system, strings.ToUpper(initials))
	if err != nil {
		return nil, sqlError(err, "calendar user %s in system %d", initials, system)
	}
	return &u, nil
}

// 5 ListUserAppointments returns a user's appointments dated on or after
// fromDate ordered by date and start time.
func (r *CalendarRepository) ListUserAppointments(ctx context.Context, system, userID int, fromDate time.Time) ([]CalendarEntry, error) {
	entries, err := calendarEntryProxy.list(ctx, r.DB,
		"WHERE a.SystemNo = ? AND m.UserId = ? AND a.Date >= ? ORDER BY a.Date, a.FromTime, a.CalId",
		system, userID, models.Date(fromDate))
	return entries, sqlError(err, "appointments of user %d in system %d", userID, system)
}

// 6 GetUserAppointment 获取用户的约会
func (r *CalendarRepository) GetUserAppointment(ctx context.Context, system, userID, appointmentID int) (*CalendarEntry, error) {
	entry, err := calendarEntryProxy.get(ctx, r.DB,
		"WHERE a.SystemNo = ? AND m.UserId = ? AND a.CalId = ?", system, userID, appointmentID)
	if err != nil {
		return nil, sqlError(err, "appointment %d of user %d in system %d", appointmentID, userID, system)
	}
	return &entry, nil
}

// 7 ListParticipants returns the users taking part in an appointment.
func (r *CalendarRepository) ListParticipants(ctx context.Context, system, appointmentID int) ([]models.CalendarUser, error) {
	users, err := calendarUserProxy.list(ctx, r.DB,
		"JOIN calmerge m ON m.SystemNo = u.SystemNo AND m.UserId = u.UserId WHERE m.SystemNo = ? AND m.CalId = ? ORDER BY u.Name, u.UserId",
		system, appointmentID)
	return users, sqlError(err, "participants of appointment %d in system %d", appointmentID, system)
}

// 8 AddAppointment gives the appointment the next id of its system and
// stores it with its participants in one transaction.
func (r *CalendarRepository) AddAppointment(ctx context.Context, appointment *models.Appointment, participants []models.UserAppointment) error {
	err := r.inTransaction(ctx, func(tx *sql.Tx) error {
		var last sql.NullInt64
		if err := tx.QueryRowContext(ctx, "SELECT MAX(CalId) FROM calapp WHERE SystemNo = ?", appointment.System).Scan(&last); err != nil {
			return err
		}
		appointment.ID = int(last.Int64) + 1
		appointment.Date = models.Date(appointment.Date)

		_, err := tx.ExecContext(ctx,
			"INSERT INTO calapp (SystemNo, CalId, Date, FromTime, ToTime, Properties, Subject, Note) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			appointment.System, appointment.ID, appointment.Date, appointment.FromTime, appointment.ToTime,
			appointment.Properties, appointment.Subject, appointment.Note)
		if err != nil {
			return err
		}
		return insertParticipants(ctx, tx, appointment, participants)
	})
	return sqlError(err, "add appointment to system %d", appointment.System)
}

// 9 UpdateAppointment updates the appointment and replaces its participants.
func (r *CalendarRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment, participants []models.UserAppointment) error {
	err := r.inTransaction(ctx, func(tx *sql.Tx) error {
		// MySQL reports changed rows, not matched rows, so existence is checked first
		var found int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM calapp WHERE SystemNo = ? AND CalId = ?",
			appointment.System, appointment.ID).Scan(&found); err != nil {
			return err
		}

		appointment.Date = models.Date(appointment.Date)
		_, err := tx.ExecContext(ctx,
			"UPDATE calapp SET Date = ?, FromTime = ?, ToTime = ?, Properties = ?, Subject = ?, Note = ? WHERE SystemNo = ? AND CalId = ?",
			appointment.Date, appointment.FromTime, appointment.ToTime, appointment.Properties,
			appointment.Subject, appointment.Note, appointment.System, appointment.ID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM calmerge WHERE SystemNo = ? AND CalId = ?", appointment.System, appointment.ID); err != nil {
			return err
		}
		return insertParticipants(ctx, tx, appointment, participants)
	})
	return sqlError(err, "update appointment %d in system %d", appointment.ID, appointment.System)
}

func insertParticipants(ctx context.Context, tx *sql.Tx, appointment *models.Appointment, participants []models.UserAppointment) error {
	for _, p := range participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO calmerge (SystemNo, CalId, UserId, Properties) VALUES (?, ?, ?, ?)",
			appointment.System, appointment.ID, p.UserID, p.Properties)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *CalendarRepository) inTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func sqlError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFound(err, fmt.Sprintf(format, args...))
	}
	return intranet.NewRepositoryError(code.ErrDatabase, errors.Annotatef(err, format, args...))
}
