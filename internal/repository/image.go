package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	spotImagesQuery = `SELECT id, spot_id, url, preview, created_at
					   FROM spot_images
					   WHERE spot_id = $1
					   ORDER BY created_at`

	reviewImagesQuery = `SELECT id, review_id, url, false, created_at
						 FROM review_images
						 WHERE review_id = ANY($1)
						 ORDER BY created_at`
)

type ImageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewImageRepo(db *dbpg.DB) *ImageRepository {
	return &ImageRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// AddSpotImage inserts img. A preview image demotes the spot's current preview.
func (r *ImageRepository) AddSpotImage(ctx context.Context, img *domain.Image) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if img.Preview {
		demote := `UPDATE spot_images SET preview = false WHERE spot_id = $1 AND preview`
		if _, err = tx.ExecContext(ctx, demote, img.ParentID); err != nil {
			return fmt.Errorf("demote preview: %w", err)
		}
	}

	query := `INSERT INTO spot_images (id, spot_id, url, preview, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, query, img.ID, img.ParentID, img.URL, img.Preview, img.CreatedAt); err != nil {
		if isCode(err, codeForeignKeyViolation) {
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("insert spot image: %w", err)
	}

	return tx.Commit()
}

func (r *ImageRepository) GetSpotImage(ctx context.Context, id string) (*domain.Image, error) {
	query := `SELECT id, spot_id, url, preview, created_at
			  FROM spot_images
			  WHERE id = $1`
	return r.getImage(ctx, query, id)
}

func (r *ImageRepository) DeleteSpotImage(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM spot_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete spot image: %w", err)
	}

	return affectedOne(res, domain.ErrImageNotFound)
}

// AddReviewImage inserts img unless the review already carries limit images.
// The review row is locked while counting.
func (r *ImageRepository) AddReviewImage(ctx context.Context, img *domain.Image, limit int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var reviewID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM reviews WHERE id = $1 FOR UPDATE`, img.ParentID).Scan(&reviewID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReviewNotFound
		}
		return fmt.Errorf("lock review: %w", err)
	}

	var count int
	countQuery := `SELECT COUNT(*) FROM review_images WHERE review_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, img.ParentID).Scan(&count); err != nil {
		return fmt.Errorf("count review images: %w", err)
	}

	if count >= limit {
		return domain.ErrImageLimitReached
	}

	query := `INSERT INTO review_images (id, review_id, url, created_at)
			  VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, query, img.ID, img.ParentID, img.URL, img.CreatedAt); err != nil {
		return fmt.Errorf("insert review image: %w", err)
	}

	return tx.Commit()
}

func (r *ImageRepository) GetReviewImage(ctx context.Context, id string) (*domain.Image, error) {
	query := `SELECT id, review_id, url, false, created_at
			  FROM review_images
			  WHERE id = $1`
	return r.getImage(ctx, query, id)
}

func (r *ImageRepository) DeleteReviewImage(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM review_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review image: %w", err)
	}

	return affectedOne(res, domain.ErrImageNotFound)
}

func (r *ImageRepository) getImage(ctx context.Context, query, id string) (*domain.Image, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}

	img, err := scanImage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("scan image: %w", err)
	}

	return img, nil
}

func listImages(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, query string, args ...any) ([]domain.Image, error) {
	rows, err := db.QueryWithRetry(ctx, strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	res := []domain.Image{}
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		res = append(res, *img)
	}

	return res, rows.Err()
}

// reviewImages loads the images of every listed review, keyed by review id.
func reviewImages(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, reviewIDs []string) (map[string][]domain.Image, error) {
	byReview := make(map[string][]domain.Image, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return byReview, nil
	}

	images, err := listImages(ctx, db, strategy, reviewImagesQuery, pq.Array(reviewIDs))
	if err != nil {
		return nil, err
	}

	for _, img := range images {
		byReview[img.ParentID] = append(byReview[img.ParentID], img)
	}

	return byReview, nil
}

func scanImage(row rowScanner) (*domain.Image, error) {
	var img domain.Image
	if err := row.Scan(&img.ID, &img.ParentID, &img.URL, &img.Preview, &img.CreatedAt); err != nil {
		return nil, err
	}
	return &img, nil
}
