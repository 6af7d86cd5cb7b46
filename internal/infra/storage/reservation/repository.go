package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBooking/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями и их диапазонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование вместе со всеми диапазонами.
// ID бронирования и диапазонов задаёт вызывающий код.
// Должен вызываться в транзакции: иначе при ошибке вставки диапазона останется бронирование без дней.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"user_id",
			"membership_id",
			"organization_id",
			"location_id",
			"space_id",
			"desk_id",
		).
		Values(
			reservation.ID,
			reservation.UserID,
			reservation.MembershipID,
			reservation.OrganizationID,
			reservation.LocationID,
			reservation.SpaceID,
			reservation.DeskID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	if len(reservation.TimeRanges) == 0 {
		return reservation, nil
	}

	rangesBuilder := psqlbuilder.Insert("reservation_time_ranges").
		Columns("id", "reservation_id", "start_at", "end_at")
	for _, tr := range reservation.TimeRanges {
		rangesBuilder = rangesBuilder.Values(tr.ID, reservation.ID, tr.Start, tr.End)
	}

	query, args, err = rangesBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert time ranges query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - insert time ranges: %v", ErrExecQuery, err)
	}

	return reservation, nil
}

// GetByID получает бронирование со всеми диапазонами
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().
		Where(squirrel.Eq{"r.id": id}).
		OrderBy("t.start_at ASC", "t.id ASC")

	// Внутри транзакции блокируем бронирование до удаления/изменения
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if len(reservations) == 0 {
		return nil, ErrReservationNotFound
	}

	return reservations[0], nil
}

// List получает бронирования с фильтрацией.
// У каждого бронирования остаются только диапазоны, заканчивающиеся после filter.From.
// Бронирования без подходящих диапазонов не возвращаются.
//
// Примеры:
//
// 1. Занятость столов начиная с даты (для карты конфликтов):
//    filter := domain.ReservationFilter{DeskIDs: ids, From: &from}
//
// 2. Бронирования пользователя в его организациях:
//    filter := domain.ReservationFilter{UserID: &userID, OrganizationIDs: orgIDs}
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations()

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.user_id": *filter.UserID})
	}
	if len(filter.OrganizationIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Expr("r.organization_id = ANY(?)", pq.Array(filter.OrganizationIDs)))
	}
	if len(filter.DeskIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Expr("r.desk_id = ANY(?)", pq.Array(filter.DeskIDs)))
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"t.end_at": *filter.From})
	}

	selectBuilder = selectBuilder.OrderBy("r.id ASC", "t.start_at ASC", "t.id ASC")

	// В транзакции (создание бронирования) блокируем занятость выбранных столов
	if dbmetrics.IsInTransaction(ctx) && len(filter.DeskIDs) > 0 {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// DeleteTimeRange удаляет один диапазон бронирования
func (r *Repository) DeleteTimeRange(ctx context.Context, reservationID, timeRangeID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservation_time_ranges").
		Where(squirrel.Eq{"id": timeRangeID, "reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteTimeRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteTimeRange - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteTimeRange - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTimeRangeNotFound
	}

	return nil
}

// Delete удаляет бронирование; диапазоны удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"r.id",
		"r.user_id",
		"r.membership_id",
		"r.organization_id",
		"r.location_id",
		"r.space_id",
		"r.desk_id",
		"r.created_at",
		"r.updated_at",
		"t.id",
		"t.start_at",
		"t.end_at",
	).
		From("reservations r").
		Join("reservation_time_ranges t ON t.reservation_id = r.id")
}

// scanReservations собирает строки (бронирование, диапазон) в бронирования.
// Строки одного бронирования должны идти подряд.
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)
	var current *domain.Reservation

	for rows.Next() {
		var reservation domain.Reservation
		var tr domain.TimeRange
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.MembershipID,
			&reservation.OrganizationID,
			&reservation.LocationID,
			&reservation.SpaceID,
			&reservation.DeskID,
			&createdAt,
			&updatedAt,
			&tr.ID,
			&tr.Start,
			&tr.End,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		if current == nil || current.ID != reservation.ID {
			reservation.CreatedAt = createdAt.Time
			reservation.UpdatedAt = updatedAt.Time
			current = &reservation
			reservations = append(reservations, current)
		}
		current.TimeRanges = append(current.TimeRanges, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
