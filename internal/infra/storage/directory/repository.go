// Package directory - read-only справочник барберов и услуг.
// Планировщик никогда не мутирует эти данные.
package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий справочника
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBarberByID получает барбера по ID
func (r *Repository) GetBarberByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "active").
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(&barber.ID, &barber.Name, &barber.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - scan barber: %v", ErrScanRow, err)
	}

	return &barber, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price_cents", "active").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Name,
		&service.DurationMinutes,
		&service.PriceCents,
		&service.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}

// ListActiveBarbers возвращает активных барберов по имени (ASC)
func (r *Repository) ListActiveBarbers(ctx context.Context) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "active").
		From("barbers").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var barber domain.Barber
		if err := rows.Scan(&barber.ID, &barber.Name, &barber.Active); err != nil {
			return nil, fmt.Errorf("%w: ListActiveBarbers - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// ListActiveServices возвращает активные услуги по длительности (ASC)
func (r *Repository) ListActiveServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price_cents", "active").
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("duration_minutes ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.DurationMinutes,
			&service.PriceCents,
			&service.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
