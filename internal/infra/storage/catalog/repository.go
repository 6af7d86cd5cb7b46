package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBooking/pkg/psqlbuilder"
)

var organizationColumns = []string{
	"id",
	"name",
	"cleaning",
	"subscription_failed",
	"created_at",
	"updated_at",
}

var deskColumns = []string{
	"id",
	"space_id",
	"location_id",
	"organization_id",
	"name",
}

// Repository репозиторий каталога: организации, локации, пространства, столы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// anyOf условие "column = ANY($n)" с массивом PostgreSQL
func anyOf(column string, ids []string) squirrel.Sqlizer {
	return squirrel.Expr(column+" = ANY(?)", pq.Array(ids))
}

// GetOrganization получает организацию по ID
func (r *Repository) GetOrganization(ctx context.Context, id string) (*domain.Organization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(organizationColumns...).
		From("organizations").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку, чтобы флаги не менялись до её завершения
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrganization - build select query: %v", ErrBuildQuery, err)
	}

	org, err := scanOrganization(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrganization - scan organization: %v", ErrScanRow, err)
	}

	return org, nil
}

// ListOrganizations получает организации по списку ID.
// Пустой список - пустой результат.
func (r *Repository) ListOrganizations(ctx context.Context, ids []string) ([]*domain.Organization, error) {
	if len(ids) == 0 {
		return []*domain.Organization{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(organizationColumns...).
		From("organizations").
		Where(anyOf("id", ids)).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOrganizations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOrganizations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	organizations := make([]*domain.Organization, 0)
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOrganizations - scan row: %v", ErrScanRow, err)
		}
		organizations = append(organizations, org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOrganizations - rows error: %v", ErrScanRow, err)
	}

	return organizations, nil
}

// UpdateCleaning переключает флаг уборки организации
func (r *Repository) UpdateCleaning(ctx context.Context, id string, cleaning bool) (*domain.Organization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("organizations").
		Set("cleaning", cleaning).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(organizationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCleaning - build update query: %v", ErrBuildQuery, err)
	}

	org, err := scanOrganization(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCleaning - execute update: %v", ErrExecQuery, err)
	}

	return org, nil
}

// ListLocations получает локации организаций
func (r *Repository) ListLocations(ctx context.Context, organizationIDs []string) ([]*domain.Location, error) {
	if len(organizationIDs) == 0 {
		return []*domain.Location{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "organization_id", "name").
		From("locations").
		Where(anyOf("organization_id", organizationIDs)).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		var location domain.Location
		if err := rows.Scan(&location.ID, &location.OrganizationID, &location.Name); err != nil {
			return nil, fmt.Errorf("%w: ListLocations - scan row: %v", ErrScanRow, err)
		}
		locations = append(locations, &location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLocations - rows error: %v", ErrScanRow, err)
	}

	return locations, nil
}

// ListSpaces получает пространства всех локаций организаций
func (r *Repository) ListSpaces(ctx context.Context, organizationIDs []string) ([]*domain.Space, error) {
	if len(organizationIDs) == 0 {
		return []*domain.Space{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.id", "s.location_id", "s.name").
		From("spaces s").
		Join("locations l ON l.id = s.location_id").
		Where(anyOf("l.organization_id", organizationIDs)).
		OrderBy("s.name ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		var space domain.Space
		if err := rows.Scan(&space.ID, &space.LocationID, &space.Name); err != nil {
			return nil, fmt.Errorf("%w: ListSpaces - scan row: %v", ErrScanRow, err)
		}
		spaces = append(spaces, &space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// GetDesk получает стол по ID
func (r *Repository) GetDesk(ctx context.Context, id string) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDesk - build select query: %v", ErrBuildQuery, err)
	}

	var desk domain.Desk
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&desk.ID,
		&desk.SpaceID,
		&desk.LocationID,
		&desk.OrganizationID,
		&desk.Name,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDesk - scan desk: %v", ErrScanRow, err)
	}

	return &desk, nil
}

// ListDesks получает столы с фильтрацией по иерархии.
// Все условия фильтра объединяются через AND; незаданные условия не ограничивают выборку.
func (r *Repository) ListDesks(ctx context.Context, filter domain.DeskFilter) ([]*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(deskColumns...).
		From("desks")

	if len(filter.OrganizationIDs) > 0 {
		selectBuilder = selectBuilder.Where(anyOf("organization_id", filter.OrganizationIDs))
	}
	if filter.OrganizationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"organization_id": *filter.OrganizationID})
	}
	if filter.LocationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location_id": *filter.LocationID})
	}
	if filter.SpaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": *filter.SpaceID})
	}
	if len(filter.DeskIDs) > 0 {
		selectBuilder = selectBuilder.Where(anyOf("id", filter.DeskIDs))
	}

	query, args, err := selectBuilder.OrderBy("name ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDesks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDesks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]*domain.Desk, 0)
	for rows.Next() {
		var desk domain.Desk
		if err := rows.Scan(
			&desk.ID,
			&desk.SpaceID,
			&desk.LocationID,
			&desk.OrganizationID,
			&desk.Name,
		); err != nil {
			return nil, fmt.Errorf("%w: ListDesks - scan row: %v", ErrScanRow, err)
		}
		desks = append(desks, &desk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDesks - rows error: %v", ErrScanRow, err)
	}

	return desks, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrganization(row rowScanner) (*domain.Organization, error) {
	var org domain.Organization
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.Cleaning,
		&org.SubscriptionFailed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	org.CreatedAt = createdAt.Time
	org.UpdatedAt = updatedAt.Time

	return &org, nil
}
