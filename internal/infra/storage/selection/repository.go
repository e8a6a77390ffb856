package selection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const tableName = "salon_selections"

// Repository репозиторий последнего выбора пользователя в рамках сессии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет выбор сессии, перезаписывая предыдущий
// Возвращает выбор с проставленным временем обновления
func (r *Repository) Upsert(ctx context.Context, s *domain.Selection) (*domain.Selection, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"session_id",
			"service_id",
			"stylist_id",
			"booking_date",
			"start_time",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
			"updated_at",
		).
		Values(
			s.SessionID,
			nullIfEmpty(s.ServiceID),
			nullIfEmpty(s.StylistID),
			dateValue(s.Date),
			s.StartTime,
			s.Customer.Name,
			s.Customer.Email,
			s.Customer.Phone,
			s.Customer.Notes,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (session_id) DO UPDATE SET
			service_id = EXCLUDED.service_id,
			stylist_id = EXCLUDED.stylist_id,
			booking_date = EXCLUDED.booking_date,
			start_time = EXCLUDED.start_time,
			customer_name = EXCLUDED.customer_name,
			customer_email = EXCLUDED.customer_email,
			customer_phone = EXCLUDED.customer_phone,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	saved := *s
	saved.UpdatedAt = updatedAt
	return &saved, nil
}

// GetBySessionID получает сохраненный выбор сессии
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Selection, error) {
	query, args, err := psqlbuilder.Select(
		"session_id",
		"service_id",
		"stylist_id",
		"booking_date",
		"start_time",
		"customer_name",
		"customer_email",
		"customer_phone",
		"notes",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s           domain.Selection
		serviceID   sql.NullString
		stylistID   sql.NullString
		bookingDate sql.NullTime
		startTime   types.TimeString
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.SessionID,
		&serviceID,
		&stylistID,
		&bookingDate,
		&startTime,
		&s.Customer.Name,
		&s.Customer.Email,
		&s.Customer.Phone,
		&s.Customer.Notes,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSelectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - scan selection: %v", ErrScanRow, err)
	}

	s.ServiceID = serviceID.String
	s.StylistID = stylistID.String
	s.StartTime = startTime
	if bookingDate.Valid {
		s.Date = domain.DateOf(bookingDate.Time)
	}

	return &s, nil
}

// DeleteBySessionID удаляет сохраненный выбор сессии
func (r *Repository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteBySessionID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBySessionID - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBySessionID - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSelectionNotFound
	}

	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// dateValue дата без времени для колонки DATE; нулевая дата сохраняется как NULL
func dateValue(d domain.CalendarDate) interface{} {
	if d.IsZero() {
		return nil
	}
	return d.In(time.UTC)
}
