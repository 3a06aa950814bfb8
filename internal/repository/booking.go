package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.spot_id, b.user_id, b.start_date, b.end_date, b.created_at, b.updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts b if check accepts it. The spot row stays locked from the
// availability read to the insert, so bookings of one spot are serialized.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, check ports.CreateCheck) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockSpot(ctx, tx, b.SpotID); err != nil {
		return err
	}

	existing, err := spotBookings(ctx, tx, b.SpotID)
	if err != nil {
		return err
	}

	if err = check(existing); err != nil {
		return err
	}

	// dates go out as YYYY-MM-DD text so the session time zone cannot shift them
	query := `INSERT INTO bookings (id, spot_id, user_id, start_date, end_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.SpotID, b.UserID,
		domain.FormatDate(b.StartDate), domain.FormatDate(b.EndDate),
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		switch {
		case isCode(err, codeExclusionViolation):
			return domain.ErrBookingConflict
		case isCode(err, codeForeignKeyViolation):
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) Update(
	ctx context.Context,
	id string,
	dates domain.DateRange,
	check ports.UpdateCheck,
) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	current, err := lockBooking(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err = lockSpot(ctx, tx, current.SpotID); err != nil {
		return nil, err
	}

	existing, err := spotBookings(ctx, tx, current.SpotID)
	if err != nil {
		return nil, err
	}

	if err = check(current, existing); err != nil {
		return nil, err
	}

	query := `UPDATE bookings b
			  SET start_date = $2, end_date = $3, updated_at = now()
			  WHERE b.id = $1
			  RETURNING ` + bookingColumns
	updated, err := scanBooking(tx.QueryRowContext(
		ctx, query, id, domain.FormatDate(dates.Start), domain.FormatDate(dates.End),
	))
	if err != nil {
		if isCode(err, codeExclusionViolation) {
			return nil, domain.ErrBookingConflict
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return updated, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string, check ports.DeleteCheck) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	current, err := lockBooking(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err = check(current); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return current, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListBySpot(ctx context.Context, spotID string) ([]*domain.BookingDetails, error) {
	query := `SELECT ` + bookingColumns + `, u.id, u.first_name, u.last_name
              FROM bookings b
              JOIN users u ON u.id = b.user_id
              WHERE b.spot_id = $1
              ORDER BY b.start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, spotID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by spot: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingDetails
	for rows.Next() {
		var (
			d domain.BookingDetails
			u domain.UserSummary
		)
		if err = rows.Scan(
			&d.ID, &d.SpotID, &d.UserID, &d.StartDate, &d.EndDate, &d.CreatedAt, &d.UpdatedAt,
			&u.ID, &u.FirstName, &u.LastName,
		); err != nil {
			return nil, fmt.Errorf("scan booking by spot: %w", err)
		}
		normalizeDates(&d.Booking)
		d.User = &u
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error) {
	query := `SELECT ` + bookingColumns + `,
				s.id, s.owner_id, s.address, s.city, s.state, s.country,
				s.lat, s.lng, s.name, s.price,
				COALESCE((SELECT i.url FROM spot_images i
						  WHERE i.spot_id = s.id AND i.preview
						  ORDER BY i.created_at DESC LIMIT 1), '')
              FROM bookings b
              JOIN spots s ON s.id = b.spot_id
              WHERE b.user_id = $1
              ORDER BY b.start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingDetails
	for rows.Next() {
		var (
			d domain.BookingDetails
			s domain.SpotSummary
		)
		if err = rows.Scan(
			&d.ID, &d.SpotID, &d.UserID, &d.StartDate, &d.EndDate, &d.CreatedAt, &d.UpdatedAt,
			&s.ID, &s.OwnerID, &s.Address, &s.City, &s.State, &s.Country,
			&s.Lat, &s.Lng, &s.Name, &s.Price, &s.PreviewImage,
		); err != nil {
			return nil, fmt.Errorf("scan booking by user: %w", err)
		}
		normalizeDates(&d.Booking)
		d.Spot = &s
		res = append(res, &d)
	}

	return res, rows.Err()
}

// MarkReminded flags the not yet reminded bookings that start on startDate
// and returns them. Each booking is returned by exactly one call.
func (r *BookingRepository) MarkReminded(ctx context.Context, startDate time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings b
        SET reminded_at = now()
        WHERE b.start_date = $1
          AND b.reminded_at IS NULL
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.FormatDate(startDate))
	if err != nil {
		return nil, fmt.Errorf("mark reminded: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func lockSpot(ctx context.Context, tx *sql.Tx, spotID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM spots WHERE id = $1 FOR UPDATE`, spotID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("lock spot: %w", err)
	}
	return nil
}

func lockBooking(ctx context.Context, tx *sql.Tx, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.id = $1
			  FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	return b, nil
}

func spotBookings(ctx context.Context, tx *sql.Tx, spotID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.spot_id = $1
			  ORDER BY b.start_date`
	rows, err := tx.QueryContext(ctx, query, spotID)
	if err != nil {
		return nil, fmt.Errorf("load spot bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spot booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.SpotID, &b.UserID,
		&b.StartDate, &b.EndDate, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	normalizeDates(&b)
	return &b, nil
}

// normalizeDates keeps DATE columns at UTC midnight whatever zone the driver reports.
func normalizeDates(b *domain.Booking) {
	b.StartDate = domain.DateOf(b.StartDate)
	b.EndDate = domain.DateOf(b.EndDate)
}
