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

// programColumns is the canonical column order for scanning programs.
var programColumns = []string{
	"id", "title_en", "title_ar", "description_en", "description_ar",
	"features", "image_url", "is_active", `"order"`, "created_at", "updated_at",
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ProgramRepository handles program database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanProgram(row rowScanner) (*models.Program, error) {
	program := &models.Program{}
	var features string
	err := row.Scan(
		&program.ID, &program.TitleEn, &program.TitleAr,
		&program.DescriptionEn, &program.DescriptionAr,
		&features, &program.ImageURL, &program.IsActive,
		&program.Order, &program.CreatedAt, &program.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	program.Features, err = models.DecodeStringList(features)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", program.ID, err)
	}
	return program, nil
}

// listQuery builds the display-order listing. Ties on "order" fall back
// to creation time and then ID, so rows inserted later never jump ahead
// of earlier rows sharing the same ordering key.
func (r *ProgramRepository) listQuery(includeInactive bool) squirrel.SelectBuilder {
	query := r.sb.Select(programColumns...).
		From("programs").
		OrderBy(`"order" ASC`, "created_at ASC", "id ASC")
	if !includeInactive {
		query = query.Where(squirrel.Eq{"is_active": true})
	}
	return query
}

// GetAll retrieves programs ordered for display. Inactive rows are
// included only when includeInactive is set.
func (r *ProgramRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.Program, error) {
	sql, args, err := r.listQuery(includeInactive).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all programs SQL")
		return nil, fmt.Errorf("failed to build get all programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all programs query")
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.Program{}
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning program row")
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating program rows")
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*models.Program, error) {
	sql, args, err := r.sb.Select(programColumns...).
		From("programs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get program by ID SQL")
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		logger.Error().Err(err).Str("programID", id).Msg("Error scanning program row")
		return nil, fmt.Errorf("error getting program by ID: %w", err)
	}

	return program, nil
}

// Create inserts a new program. The ID and timestamps are assigned here
// when not already set.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	if program.ID == "" {
		program.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now

	features, err := program.Features.Encode()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("programs").
		Columns(programColumns...).
		Values(
			program.ID, program.TitleEn, program.TitleAr,
			program.DescriptionEn, program.DescriptionAr,
			features, program.ImageURL, program.IsActive,
			program.Order, program.CreatedAt, program.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create program SQL")
		return fmt.Errorf("failed to build create program query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create program query")
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// Update persists changes to an existing program
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	program.UpdatedAt = time.Now().UTC()

	features, err := program.Features.Encode()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("programs").
		SetMap(map[string]interface{}{
			"title_en":       program.TitleEn,
			"title_ar":       program.TitleAr,
			"description_en": program.DescriptionEn,
			"description_ar": program.DescriptionAr,
			"features":       features,
			"image_url":      program.ImageURL,
			"is_active":      program.IsActive,
			`"order"`:        program.Order,
			"updated_at":     program.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": program.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update program SQL")
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programID", program.ID).Msg("Error executing update program query")
		return fmt.Errorf("error updating program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// Delete removes a program by ID
func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete program SQL")
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programID", id).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// seedInsertQuery builds the conditional insert used by seeding: an
// existing row with the same ID is left untouched.
func (r *ProgramRepository) seedInsertQuery(program *models.Program, features string) squirrel.InsertBuilder {
	return r.sb.Insert("programs").
		Columns(programColumns...).
		Values(
			program.ID, program.TitleEn, program.TitleAr,
			program.DescriptionEn, program.DescriptionAr,
			features, program.ImageURL, program.IsActive,
			program.Order, program.CreatedAt, program.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING")
}

// Insert adds a program only when no row with its ID exists. It reports
// whether a row was inserted, which lets seeding stay idempotent.
func (r *ProgramRepository) Insert(ctx context.Context, program *models.Program) (bool, error) {
	if program.CreatedAt.IsZero() {
		now := time.Now().UTC()
		program.CreatedAt = now
		program.UpdatedAt = now
	}

	features, err := program.Features.Encode()
	if err != nil {
		return false, err
	}

	sql, args, err := r.seedInsertQuery(program, features).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programID", program.ID).Msg("Error executing insert program query")
		return false, fmt.Errorf("error inserting program: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}
