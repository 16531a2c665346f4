package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/psqlbuilder"
)

// pgExclusionViolation код ошибки PostgreSQL exclusion_violation
const pgExclusionViolation = "23P01"

// noOverlapConstraint имя exclusion constraint на (barber_id, интервал)
const noOverlapConstraint = "appointments_no_overlap"

var appointmentColumns = []string{
	"id",
	"barber_id",
	"service_id",
	"client_name",
	"client_phone",
	"starts_at",
	"ends_at",
	"duration_minutes",
	"status",
	"service_name",
	"price_cents",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями к барберам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Вставка, нарушающая exclusion constraint appointments_no_overlap,
// возвращает ErrOverlapConstraint - так проигравший гонку конкурентный
// запрос получает типизированный отказ, а не поврежденную запись.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"barber_id",
			"service_id",
			"client_name",
			"client_phone",
			"starts_at",
			"ends_at",
			"duration_minutes",
			"status",
			"service_name",
			"price_cents",
		).
		Values(
			appt.BarberID,
			appt.ServiceID,
			appt.ClientName,
			appt.ClientPhone,
			appt.StartsAt,
			appt.EndsAt,
			appt.DurationMinutes,
			appt.Status,
			appt.ServiceName,
			appt.PriceCents,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isOverlapViolation(err) {
			return nil, ErrOverlapConstraint
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// FindOverlapping возвращает неотмененные записи барбера, чьи интервалы
// пересекают [start, end) в полуоткрытой семантике:
// a.starts_at < end AND a.ends_at > start.
// Запись, заканчивающаяся ровно в start, пересечением не считается.
//
// Внутри транзакции выбранные строки блокируются (FOR UPDATE), чтобы
// предварительная проверка и вставка видели согласованное состояние.
func (r *Repository) FindOverlapping(
	ctx context.Context,
	barberID uuid.UUID,
	start, end time.Time,
	excludeID *uuid.UUID,
) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"starts_at": end}).
		Where(squirrel.Gt{"ends_at": start}).
		OrderBy("starts_at ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetByBarberAndRange получает записи барбера, начинающиеся внутри окна
// [filter.From, filter.To] (обе границы включительно), по возрастанию starts_at.
// Отмененные записи включаются только при filter.IncludeCancelled.
func (r *Repository) GetByBarberAndRange(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"barber_id": filter.BarberID}).
		Where(squirrel.GtOrEq{"starts_at": filter.From}).
		Where(squirrel.LtOrEq{"starts_at": filter.To}).
		OrderBy("starts_at ASC")

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus переводит запись в новый статус.
// Переход выполняется только из состояния scheduled - это зеркалирует
// машину состояний на уровне хранилища: терминальные статусы неизменяемы.
// Возвращает ErrAppointmentNotFound, если ни одна строка не обновлена
// (записи нет или она уже в терминальном статусе).
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusScheduled}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.BarberID,
		&appt.ServiceID,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.StartsAt,
		&appt.EndsAt,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.ServiceName,
		&appt.PriceCents,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.StartsAt = appt.StartsAt.UTC()
	appt.EndsAt = appt.EndsAt.UTC()
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// isOverlapViolation проверяет, что ошибка - нарушение exclusion constraint
// appointments_no_overlap
func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgExclusionViolation && pqErr.Constraint == noOverlapConstraint
}
