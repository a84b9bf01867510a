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

var testimonialColumns = []string{
	"id", "name_en", "name_ar", "text_en", "text_ar", "rating",
	"image_url", "is_active", `"order"`, "created_at", "updated_at",
}

// TestimonialRepository handles testimonial database operations
type TestimonialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanTestimonial(row rowScanner) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := row.Scan(
		&t.ID, &t.NameEn, &t.NameAr, &t.TextEn, &t.TextAr, &t.Rating,
		&t.ImageURL, &t.IsActive, &t.Order, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetAll retrieves testimonials ordered for display
func (r *TestimonialRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.Testimonial, error) {
	query := r.sb.Select(testimonialColumns...).
		From("testimonials").
		OrderBy(`"order" ASC`, "created_at ASC", "id ASC")
	if !includeInactive {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all testimonials SQL")
		return nil, fmt.Errorf("failed to build get all testimonials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all testimonials query")
		return nil, fmt.Errorf("error querying testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []*models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning testimonial row")
			return nil, fmt.Errorf("error scanning testimonial row: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testimonial rows: %w", err)
	}

	return testimonials, nil
}

// GetByID retrieves a testimonial by ID
func (r *TestimonialRepository) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	sql, args, err := r.sb.Select(testimonialColumns...).
		From("testimonials").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get testimonial by ID SQL")
		return nil, fmt.Errorf("failed to build get testimonial query: %w", err)
	}

	t, err := scanTestimonial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTestimonialNotFound
		}
		logger.Error().Err(err).Str("testimonialID", id).Msg("Error scanning testimonial row")
		return nil, fmt.Errorf("error getting testimonial by ID: %w", err)
	}

	return t, nil
}

// Create inserts a new testimonial
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	sql, args, err := r.sb.Insert("testimonials").
		Columns(testimonialColumns...).
		Values(
			t.ID, t.NameEn, t.NameAr, t.TextEn, t.TextAr, t.Rating,
			t.ImageURL, t.IsActive, t.Order, t.CreatedAt, t.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create testimonial SQL")
		return fmt.Errorf("failed to build create testimonial query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create testimonial query")
		return fmt.Errorf("error creating testimonial: %w", err)
	}

	return nil
}

// Update persists changes to an existing testimonial
func (r *TestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	t.UpdatedAt = time.Now().UTC()

	sql, args, err := r.sb.Update("testimonials").
		SetMap(map[string]interface{}{
			"name_en":    t.NameEn,
			"name_ar":    t.NameAr,
			"text_en":    t.TextEn,
			"text_ar":    t.TextAr,
			"rating":     t.Rating,
			"image_url":  t.ImageURL,
			"is_active":  t.IsActive,
			`"order"`:    t.Order,
			"updated_at": t.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update testimonial SQL")
		return fmt.Errorf("failed to build update testimonial query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("testimonialID", t.ID).Msg("Error executing update testimonial query")
		return fmt.Errorf("error updating testimonial: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestimonialNotFound
	}

	return nil
}

// Delete removes a testimonial by ID
func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("testimonials").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete testimonial SQL")
		return fmt.Errorf("failed to build delete testimonial query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("testimonialID", id).Msg("Error executing delete testimonial query")
		return fmt.Errorf("error deleting testimonial: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestimonialNotFound
	}

	return nil
}

// Insert adds a testimonial only when no row with its ID exists
func (r *TestimonialRepository) Insert(ctx context.Context, t *models.Testimonial) (bool, error) {
	if t.CreatedAt.IsZero() {
		now := time.Now().UTC()
		t.CreatedAt = now
		t.UpdatedAt = now
	}

	sql, args, err := r.sb.Insert("testimonials").
		Columns(testimonialColumns...).
		Values(
			t.ID, t.NameEn, t.NameAr, t.TextEn, t.TextAr, t.Rating,
			t.ImageURL, t.IsActive, t.Order, t.CreatedAt, t.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert testimonial query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("testimonialID", t.ID).Msg("Error executing insert testimonial query")
		return false, fmt.Errorf("error inserting testimonial: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}
