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

var coachColumns = []string{
	"id", "name_en", "name_ar", "title_en", "title_ar", "bio_en", "bio_ar",
	"experience", "specialties", "image_url", "is_active", `"order"`,
	"created_at", "updated_at",
}

// CoachRepository handles coach database operations
type CoachRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCoachRepository creates a new CoachRepository
func NewCoachRepository(db *pgxpool.Pool) *CoachRepository {
	return &CoachRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanCoach(row rowScanner) (*models.Coach, error) {
	coach := &models.Coach{}
	var specialties string
	err := row.Scan(
		&coach.ID, &coach.NameEn, &coach.NameAr,
		&coach.TitleEn, &coach.TitleAr, &coach.BioEn, &coach.BioAr,
		&coach.Experience, &specialties, &coach.ImageURL, &coach.IsActive,
		&coach.Order, &coach.CreatedAt, &coach.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	coach.Specialties, err = models.DecodeStringList(specialties)
	if err != nil {
		return nil, fmt.Errorf("coach %s: %w", coach.ID, err)
	}
	return coach, nil
}

// GetAll retrieves coaches ordered for display
func (r *CoachRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.Coach, error) {
	query := r.sb.Select(coachColumns...).
		From("coaches").
		OrderBy(`"order" ASC`, "created_at ASC", "id ASC")
	if !includeInactive {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all coaches SQL")
		return nil, fmt.Errorf("failed to build get all coaches query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all coaches query")
		return nil, fmt.Errorf("error querying coaches: %w", err)
	}
	defer rows.Close()

	coaches := []*models.Coach{}
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning coach row")
			return nil, fmt.Errorf("error scanning coach row: %w", err)
		}
		coaches = append(coaches, coach)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coach rows: %w", err)
	}

	return coaches, nil
}

// GetByID retrieves a coach by ID
func (r *CoachRepository) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	sql, args, err := r.sb.Select(coachColumns...).
		From("coaches").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get coach by ID SQL")
		return nil, fmt.Errorf("failed to build get coach query: %w", err)
	}

	coach, err := scanCoach(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCoachNotFound
		}
		logger.Error().Err(err).Str("coachID", id).Msg("Error scanning coach row")
		return nil, fmt.Errorf("error getting coach by ID: %w", err)
	}

	return coach, nil
}

// Create inserts a new coach
func (r *CoachRepository) Create(ctx context.Context, coach *models.Coach) error {
	if coach.ID == "" {
		coach.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	coach.CreatedAt = now
	coach.UpdatedAt = now

	specialties, err := coach.Specialties.Encode()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("coaches").
		Columns(coachColumns...).
		Values(
			coach.ID, coach.NameEn, coach.NameAr,
			coach.TitleEn, coach.TitleAr, coach.BioEn, coach.BioAr,
			coach.Experience, specialties, coach.ImageURL, coach.IsActive,
			coach.Order, coach.CreatedAt, coach.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create coach SQL")
		return fmt.Errorf("failed to build create coach query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create coach query")
		return fmt.Errorf("error creating coach: %w", err)
	}

	return nil
}

// Update persists changes to an existing coach
func (r *CoachRepository) Update(ctx context.Context, coach *models.Coach) error {
	coach.UpdatedAt = time.Now().UTC()

	specialties, err := coach.Specialties.Encode()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("coaches").
		SetMap(map[string]interface{}{
			"name_en":     coach.NameEn,
			"name_ar":     coach.NameAr,
			"title_en":    coach.TitleEn,
			"title_ar":    coach.TitleAr,
			"bio_en":      coach.BioEn,
			"bio_ar":      coach.BioAr,
			"experience":  coach.Experience,
			"specialties": specialties,
			"image_url":   coach.ImageURL,
			"is_active":   coach.IsActive,
			`"order"`:     coach.Order,
			"updated_at":  coach.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": coach.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update coach SQL")
		return fmt.Errorf("failed to build update coach query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("coachID", coach.ID).Msg("Error executing update coach query")
		return fmt.Errorf("error updating coach: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCoachNotFound
	}

	return nil
}

// Delete removes a coach by ID
func (r *CoachRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete coach SQL")
		return fmt.Errorf("failed to build delete coach query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("coachID", id).Msg("Error executing delete coach query")
		return fmt.Errorf("error deleting coach: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCoachNotFound
	}

	return nil
}

// Insert adds a coach only when no row with its ID exists
func (r *CoachRepository) Insert(ctx context.Context, coach *models.Coach) (bool, error) {
	if coach.CreatedAt.IsZero() {
		now := time.Now().UTC()
		coach.CreatedAt = now
		coach.UpdatedAt = now
	}

	specialties, err := coach.Specialties.Encode()
	if err != nil {
		return false, err
	}

	sql, args, err := r.sb.Insert("coaches").
		Columns(coachColumns...).
		Values(
			coach.ID, coach.NameEn, coach.NameAr,
			coach.TitleEn, coach.TitleAr, coach.BioEn, coach.BioAr,
			coach.Experience, specialties, coach.ImageURL, coach.IsActive,
			coach.Order, coach.CreatedAt, coach.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert coach query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("coachID", coach.ID).Msg("Error executing insert coach query")
		return false, fmt.Errorf("error inserting coach: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}
