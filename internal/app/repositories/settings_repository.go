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

var settingsColumns = []string{
	"id", "site_name_en", "site_name_ar", "about_en", "about_ar",
	"facebook_url", "instagram_url", "youtube_url", "created_at", "updated_at",
}

// SettingsRepository handles the site settings singleton row, keyed by
// models.SiteSettingsID.
type SettingsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Get retrieves the site settings row
func (r *SettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	sql, args, err := r.sb.Select(settingsColumns...).
		From("site_settings").
		Where(squirrel.Eq{"id": models.SiteSettingsID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get site settings SQL")
		return nil, fmt.Errorf("failed to build get site settings query: %w", err)
	}

	settings := &models.SiteSettings{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&settings.ID, &settings.SiteNameEn, &settings.SiteNameAr,
		&settings.AboutEn, &settings.AboutAr,
		&settings.FacebookURL, &settings.InstagramURL, &settings.YoutubeURL,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("site settings not found")
		}
		logger.Error().Err(err).Msg("Error scanning site settings row")
		return nil, fmt.Errorf("error getting site settings: %w", err)
	}

	return settings, nil
}

// Save upserts the site settings row on its fixed ID
func (r *SettingsRepository) Save(ctx context.Context, settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	now := time.Now().UTC()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now

	sql, args, err := r.sb.Insert("site_settings").
		Columns(settingsColumns...).
		Values(
			settings.ID, settings.SiteNameEn, settings.SiteNameAr,
			settings.AboutEn, settings.AboutAr,
			settings.FacebookURL, settings.InstagramURL, settings.YoutubeURL,
			settings.CreatedAt, settings.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			site_name_en = EXCLUDED.site_name_en,
			site_name_ar = EXCLUDED.site_name_ar,
			about_en = EXCLUDED.about_en,
			about_ar = EXCLUDED.about_ar,
			facebook_url = EXCLUDED.facebook_url,
			instagram_url = EXCLUDED.instagram_url,
			youtube_url = EXCLUDED.youtube_url,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save site settings SQL")
		return fmt.Errorf("failed to build save site settings query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing save site settings query")
		return fmt.Errorf("error saving site settings: %w", err)
	}

	return nil
}

// Insert writes the settings row only when it does not exist yet
func (r *SettingsRepository) Insert(ctx context.Context, settings *models.SiteSettings) (bool, error) {
	settings.ID = models.SiteSettingsID
	if settings.CreatedAt.IsZero() {
		now := time.Now().UTC()
		settings.CreatedAt = now
		settings.UpdatedAt = now
	}

	sql, args, err := r.sb.Insert("site_settings").
		Columns(settingsColumns...).
		Values(
			settings.ID, settings.SiteNameEn, settings.SiteNameAr,
			settings.AboutEn, settings.AboutAr,
			settings.FacebookURL, settings.InstagramURL, settings.YoutubeURL,
			settings.CreatedAt, settings.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert site settings query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing insert site settings query")
		return false, fmt.Errorf("error inserting site settings: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}
