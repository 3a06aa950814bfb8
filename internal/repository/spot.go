package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const spotColumns = `s.id, s.owner_id, s.address, s.city, s.state, s.country,
		s.lat, s.lng, s.name, s.description, s.price, s.created_at, s.updated_at`

// listingQuery selects spots with their average rating and latest preview image.
const listingQuery = `
		SELECT ` + spotColumns + `,
			COALESCE(AVG(r.stars), 0)::float8 AS avg_rating,
			COALESCE((SELECT i.url FROM spot_images i
					  WHERE i.spot_id = s.id AND i.preview
					  ORDER BY i.created_at DESC LIMIT 1), '') AS preview_image
		FROM spots s
		LEFT JOIN reviews r ON r.spot_id = s.id`

type SpotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSpotRepo(db *dbpg.DB) *SpotRepository {
	return &SpotRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SpotRepository) Create(ctx context.Context, s *domain.Spot) error {
	query := `INSERT INTO spots (id, owner_id, address, city, state, country, lat, lng,
			  		name, description, price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.OwnerID, s.Address, s.City, s.State, s.Country, s.Lat, s.Lng,
		s.Name, s.Description, s.Price, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isCode(err, codeForeignKeyViolation) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert spot: %w", err)
	}

	return nil
}

func (r *SpotRepository) Update(ctx context.Context, s *domain.Spot) error {
	query := `UPDATE spots
			  SET address = $2, city = $3, state = $4, country = $5, lat = $6, lng = $7,
			      name = $8, description = $9, price = $10, updated_at = $11
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Address, s.City, s.State, s.Country, s.Lat, s.Lng,
		s.Name, s.Description, s.Price, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update spot: %w", err)
	}

	return affectedOne(res, domain.ErrSpotNotFound)
}

func (r *SpotRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM spots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete spot: %w", err)
	}

	return affectedOne(res, domain.ErrSpotNotFound)
}

func (r *SpotRepository) GetByID(ctx context.Context, id string) (*domain.Spot, error) {
	query := `SELECT ` + spotColumns + `
			  FROM spots s
			  WHERE s.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get spot: %w", err)
	}

	var s domain.Spot
	if err = scanSpot(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, fmt.Errorf("scan spot: %w", err)
	}

	return &s, nil
}

func (r *SpotRepository) GetDetails(ctx context.Context, id string) (*domain.SpotDetails, error) {
	query := `
		SELECT ` + spotColumns + `,
			u.id, u.first_name, u.last_name,
			(SELECT COUNT(*) FROM reviews r WHERE r.spot_id = s.id),
			(SELECT COALESCE(AVG(r.stars), 0)::float8 FROM reviews r WHERE r.spot_id = s.id)
		FROM spots s
		JOIN users u ON u.id = s.owner_id
		WHERE s.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get spot details: %w", err)
	}

	var d domain.SpotDetails
	err = row.Scan(
		&d.ID, &d.OwnerID, &d.Address, &d.City, &d.State, &d.Country,
		&d.Lat, &d.Lng, &d.Name, &d.Description, &d.Price, &d.CreatedAt, &d.UpdatedAt,
		&d.Owner.ID, &d.Owner.FirstName, &d.Owner.LastName,
		&d.NumReviews, &d.AvgStarRating,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, fmt.Errorf("scan spot details: %w", err)
	}

	images, err := listImages(ctx, r.db, r.strategy, spotImagesQuery, id)
	if err != nil {
		return nil, err
	}
	d.Images = images

	return &d, nil
}

func (r *SpotRepository) List(ctx context.Context) ([]*domain.SpotListing, error) {
	query := listingQuery + `
		GROUP BY s.id
		ORDER BY s.created_at DESC`

	return r.listings(ctx, query)
}

func (r *SpotRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.SpotListing, error) {
	query := listingQuery + `
		WHERE s.owner_id = $1
		GROUP BY s.id
		ORDER BY s.created_at DESC`

	return r.listings(ctx, query, ownerID)
}

func (r *SpotRepository) listings(ctx context.Context, query string, args ...any) ([]*domain.SpotListing, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}
	defer rows.Close()

	var res []*domain.SpotListing
	for rows.Next() {
		var l domain.SpotListing
		if err = rows.Scan(
			&l.ID, &l.OwnerID, &l.Address, &l.City, &l.State, &l.Country,
			&l.Lat, &l.Lng, &l.Name, &l.Description, &l.Price, &l.CreatedAt, &l.UpdatedAt,
			&l.AvgRating, &l.PreviewImage,
		); err != nil {
			return nil, fmt.Errorf("scan spot listing: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}

func scanSpot(row rowScanner, s *domain.Spot) error {
	return row.Scan(
		&s.ID, &s.OwnerID, &s.Address, &s.City, &s.State, &s.Country,
		&s.Lat, &s.Lng, &s.Name, &s.Description, &s.Price, &s.CreatedAt, &s.UpdatedAt,
	)
}

// affectedOne maps a statement that touched no rows to notFound.
func affectedOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
