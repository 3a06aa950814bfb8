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

const reviewColumns = `r.id, r.spot_id, r.user_id, r.review, r.stars, r.created_at, r.updated_at`

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	query := `INSERT INTO reviews (id, spot_id, user_id, review, stars, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rev.ID, rev.SpotID, rev.UserID, rev.Text, rev.Stars, rev.CreatedAt, rev.UpdatedAt,
	)
	if err != nil {
		switch {
		case isCode(err, codeUniqueViolation):
			return domain.ErrAlreadyReviewed
		case isCode(err, codeForeignKeyViolation):
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *domain.Review) error {
	query := `UPDATE reviews
			  SET review = $2, stars = $3, updated_at = $4
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, rev.ID, rev.Text, rev.Stars, rev.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	return affectedOne(res, domain.ErrReviewNotFound)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	return affectedOne(res, domain.ErrReviewNotFound)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
			  FROM reviews r
			  WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	var rev domain.Review
	if err = scanReview(row, &rev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return &rev, nil
}

func (r *ReviewRepository) ListBySpot(ctx context.Context, spotID string) ([]*domain.ReviewDetails, error) {
	query := `SELECT ` + reviewColumns + `, u.id, u.first_name, u.last_name
			  FROM reviews r
			  JOIN users u ON u.id = r.user_id
			  WHERE r.spot_id = $1
			  ORDER BY r.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, spotID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by spot: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReviewDetails
	for rows.Next() {
		var d domain.ReviewDetails
		if err = rows.Scan(
			&d.ID, &d.SpotID, &d.UserID, &d.Text, &d.Stars, &d.CreatedAt, &d.UpdatedAt,
			&d.User.ID, &d.User.FirstName, &d.User.LastName,
		); err != nil {
			return nil, fmt.Errorf("scan review by spot: %w", err)
		}
		res = append(res, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return r.withImages(ctx, res)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ReviewDetails, error) {
	query := `SELECT ` + reviewColumns + `,
				u.id, u.first_name, u.last_name,
				s.id, s.owner_id, s.address, s.city, s.state, s.country,
				s.lat, s.lng, s.name, s.price,
				COALESCE((SELECT i.url FROM spot_images i
						  WHERE i.spot_id = s.id AND i.preview
						  ORDER BY i.created_at DESC LIMIT 1), '')
			  FROM reviews r
			  JOIN users u ON u.id = r.user_id
			  JOIN spots s ON s.id = r.spot_id
			  WHERE r.user_id = $1
			  ORDER BY r.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReviewDetails
	for rows.Next() {
		var (
			d domain.ReviewDetails
			s domain.SpotSummary
		)
		if err = rows.Scan(
			&d.ID, &d.SpotID, &d.UserID, &d.Text, &d.Stars, &d.CreatedAt, &d.UpdatedAt,
			&d.User.ID, &d.User.FirstName, &d.User.LastName,
			&s.ID, &s.OwnerID, &s.Address, &s.City, &s.State, &s.Country,
			&s.Lat, &s.Lng, &s.Name, &s.Price, &s.PreviewImage,
		); err != nil {
			return nil, fmt.Errorf("scan review by user: %w", err)
		}
		d.Spot = &s
		res = append(res, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return r.withImages(ctx, res)
}

func (r *ReviewRepository) withImages(ctx context.Context, reviews []*domain.ReviewDetails) ([]*domain.ReviewDetails, error) {
	ids := make([]string, 0, len(reviews))
	for _, d := range reviews {
		ids = append(ids, d.ID)
	}

	byReview, err := reviewImages(ctx, r.db, r.strategy, ids)
	if err != nil {
		return nil, err
	}

	for _, d := range reviews {
		d.Images = byReview[d.ID]
		if d.Images == nil {
			d.Images = []domain.Image{}
		}
	}

	return reviews, nil
}

func scanReview(row rowScanner, rev *domain.Review) error {
	return row.Scan(&rev.ID, &rev.SpotID, &rev.UserID, &rev.Text, &rev.Stars, &rev.CreatedAt, &rev.UpdatedAt)
}
