package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/logger"
)

var heroColumns = []string{
	"id", "title_en", "title_ar", "subtitle_en", "subtitle_ar",
	"description_en", "description_ar", "video_url", "created_at", "updated_at",
}

// HeroRepository handles hero content database operations. The table holds
// a single row keyed by models.HeroContentID; saves are upserts on that key.
type HeroRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHeroRepository creates a new HeroRepository
func NewHeroRepository(db *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Get retrieves the hero content row
func (r *HeroRepository) Get(ctx context.Context) (*models.HeroContent, error) {
	sql, args, err := r.sb.Select(heroColumns...).
		From("hero_content").
		Where(squirrel.Eq{"id": models.HeroContentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get hero content SQL")
		return nil, fmt.Errorf("failed to build get hero content query: %w", err)
	}

	hero := &models.HeroContent{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&hero.ID, &hero.TitleEn, &hero.TitleAr,
		&hero.SubtitleEn, &hero.SubtitleAr,
		&hero.DescriptionEn, &hero.DescriptionAr,
		&hero.VideoURL, &hero.CreatedAt, &hero.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHeroNotFound
		}
		logger.Error().Err(err).Msg("Error scanning hero content row")
		return nil, fmt.Errorf("error getting hero content: %w", err)
	}

	return hero, nil
}

// Save writes the hero content row, creating it on first save. The upsert
// is keyed on the fixed ID so concurrent saves cannot produce a second row.
func (r *HeroRepository) Save(ctx context.Context, hero *models.HeroContent) error {
	hero.ID = models.HeroContentID
	now := time.Now().UTC()
	if hero.CreatedAt.IsZero() {
		hero.CreatedAt = now
	}
	hero.UpdatedAt = now

	sql, args, err := r.sb.Insert("hero_content").
		Columns(heroColumns...).
		Values(
			hero.ID, hero.TitleEn, hero.TitleAr,
			hero.SubtitleEn, hero.SubtitleAr,
			hero.DescriptionEn, hero.DescriptionAr,
			hero.VideoURL, hero.CreatedAt, hero.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title_en = EXCLUDED.title_en,
			title_ar = EXCLUDED.title_ar,
			subtitle_en = EXCLUDED.subtitle_en,
			subtitle_ar = EXCLUDED.subtitle_ar,
			description_en = EXCLUDED.description_en,
			description_ar = EXCLUDED.description_ar,
			video_url = EXCLUDED.video_url,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save hero content SQL")
		return fmt.Errorf("failed to build save hero content query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing save hero content query")
		return fmt.Errorf("error saving hero content: %w", err)
	}

	return nil
}

// Insert writes the hero row only when it does not exist yet
func (r *HeroRepository) Insert(ctx context.Context, hero *models.HeroContent) (bool, error) {
	hero.ID = models.HeroContentID
	if hero.CreatedAt.IsZero() {
		now := time.Now().UTC()
		hero.CreatedAt = now
		hero.UpdatedAt = now
	}

	sql, args, err := r.sb.Insert("hero_content").
		Columns(heroColumns...).
		Values(
			hero.ID, hero.TitleEn, hero.TitleAr,
			hero.SubtitleEn, hero.SubtitleAr,
			hero.DescriptionEn, hero.DescriptionAr,
			hero.VideoURL, hero.CreatedAt, hero.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert hero content query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing insert hero content query")
		return false, fmt.Errorf("error inserting hero content: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}
