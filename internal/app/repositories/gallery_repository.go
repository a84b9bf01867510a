package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/logger"
)

var galleryColumns = []string{
	"id", "title_en", "title_ar", "description_en", "description_ar",
	"image_url", "is_active", `"order"`, "created_at", "updated_at",
}

// GalleryRepository handles gallery image database operations
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanGalleryImage(row rowScanner) (*models.GalleryImage, error) {
	img := &models.GalleryImage{}
	err := row.Scan(
		&img.ID, &img.TitleEn, &img.TitleAr,
		&img.DescriptionEn, &img.DescriptionAr,
		&img.ImageURL, &img.IsActive, &img.Order,
		&img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GetAll retrieves gallery images ordered for display
func (r *GalleryRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.GalleryImage, error) {
	query := r.sb.Select(galleryColumns...).
		From("gallery_images").
		OrderBy(`"order" ASC`, "created_at ASC", "id ASC")
	if !includeInactive {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all gallery images SQL")
		return nil, fmt.Errorf("failed to build get all gallery images query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all gallery images query")
		return nil, fmt.Errorf("error querying gallery images: %w", err)
	}
	defer rows.Close()

	images := []*models.GalleryImage{}
	for rows.Next() {
		img, err := scanGalleryImage(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning gallery image row")
			return nil, fmt.Errorf("error scanning gallery image row: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery image rows: %w", err)
	}

	return images, nil
}

// GetByID retrieves a gallery image by ID
func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	sql, args, err := r.sb.Select(galleryColumns...).
		From("gallery_images").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get gallery image by ID SQL")
		return nil, fmt.Errorf("failed to build get gallery image query: %w", err)
	}

	img, err := scanGalleryImage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGalleryImageNotFound
		}
		logger.Error().Err(err).Str("imageID", id).Msg("Error scanning gallery image row")
		return nil, fmt.Errorf("error getting gallery image by ID: %w", err)
	}

	return img, nil
}

// Create inserts a new gallery image
func (r *GalleryRepository) Create(ctx context.Context, img *models.GalleryImage) error {
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	img.CreatedAt = now
	img.UpdatedAt = now

	sql, args, err := r.sb.Insert("gallery_images").
		Columns(galleryColumns...).
		Values(
			img.ID, img.TitleEn, img.TitleAr,
			img.DescriptionEn, img.DescriptionAr,
			img.ImageURL, img.IsActive, img.Order,
			img.CreatedAt, img.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create gallery image SQL")
		return fmt.Errorf("failed to build create gallery image query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create gallery image query")
		return fmt.Errorf("error creating gallery image: %w", err)
	}

	return nil
}

// Update persists changes to an existing gallery image
func (r *GalleryRepository) Update(ctx context.Context, img *models.GalleryImage) error {
	img.UpdatedAt = time.Now().UTC()

	sql, args, err := r.sb.Update("gallery_images").
		SetMap(map[string]interface{}{
			"title_en":       img.TitleEn,
			"title_ar":       img.TitleAr,
			"description_en": img.DescriptionEn,
			"description_ar": img.DescriptionAr,
			"image_url":      img.ImageURL,
			"is_active":      img.IsActive,
			`"order"`:        img.Order,
			"updated_at":     img.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": img.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update gallery image SQL")
		return fmt.Errorf("failed to build update gallery image query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("imageID", img.ID).Msg("Error executing update gallery image query")
		return fmt.Errorf("error updating gallery image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryImageNotFound
	}

	return nil
}

// Delete removes a gallery image by ID
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete gallery image SQL")
		return fmt.Errorf("failed to build delete gallery image query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("imageID", id).Msg("Error executing delete gallery image query")
		return fmt.Errorf("error deleting gallery image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryImageNotFound
	}

	return nil
}
