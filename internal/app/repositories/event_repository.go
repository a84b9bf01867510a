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

var eventColumns = []string{
	"id", "title_en", "title_ar", "description_en", "description_ar",
	"event_date", "location_en", "location_ar", "event_type",
	"registration_url", "image_url", "is_active", "is_featured",
	"max_participants", "current_participants", "registration_deadline",
	"order_index", "created_at", "updated_at",
}

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanEvent(row rowScanner) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID, &event.TitleEn, &event.TitleAr,
		&event.DescriptionEn, &event.DescriptionAr,
		&event.EventDate, &event.LocationEn, &event.LocationAr,
		&event.EventType, &event.RegistrationURL, &event.ImageURL,
		&event.IsActive, &event.IsFeatured,
		&event.MaxParticipants, &event.CurrentParticipants,
		&event.RegistrationDeadline, &event.OrderIndex,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// listQuery builds the chronological listing with a stable tie-break on
// creation time and ID.
func (r *EventRepository) listQuery(includeInactive bool) squirrel.SelectBuilder {
	query := r.sb.Select(eventColumns...).
		From("events").
		OrderBy("event_date ASC", "created_at ASC", "id ASC")
	if !includeInactive {
		query = query.Where(squirrel.Eq{"is_active": true})
	}
	return query
}

// GetAll retrieves events in chronological order. Inactive rows are
// included only when includeInactive is set.
func (r *EventRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.Event, error) {
	sql, args, err := r.listQuery(includeInactive).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all events SQL")
		return nil, fmt.Errorf("failed to build get all events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning event row")
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get event by ID SQL")
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Str("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}

	return event, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	sql, args, err := r.sb.Insert("events").
		Columns(eventColumns...).
		Values(
			event.ID, event.TitleEn, event.TitleAr,
			event.DescriptionEn, event.DescriptionAr,
			event.EventDate, event.LocationEn, event.LocationAr,
			event.EventType, event.RegistrationURL, event.ImageURL,
			event.IsActive, event.IsFeatured,
			event.MaxParticipants, event.CurrentParticipants,
			event.RegistrationDeadline, event.OrderIndex,
			event.CreatedAt, event.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// Update persists changes to an existing event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()

	sql, args, err := r.sb.Update("events").
		SetMap(map[string]interface{}{
			"title_en":              event.TitleEn,
			"title_ar":              event.TitleAr,
			"description_en":        event.DescriptionEn,
			"description_ar":        event.DescriptionAr,
			"event_date":            event.EventDate,
			"location_en":           event.LocationEn,
			"location_ar":           event.LocationAr,
			"event_type":            event.EventType,
			"registration_url":      event.RegistrationURL,
			"image_url":             event.ImageURL,
			"is_active":             event.IsActive,
			"is_featured":           event.IsFeatured,
			"max_participants":      event.MaxParticipants,
			"current_participants":  event.CurrentParticipants,
			"registration_deadline": event.RegistrationDeadline,
			"order_index":           event.OrderIndex,
			"updated_at":            event.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update event SQL")
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", event.ID).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete event SQL")
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Insert adds an event only when no row with its ID exists
func (r *EventRepository) Insert(ctx context.Context, event *models.Event) (bool, error) {
	if event.CreatedAt.IsZero() {
		now := time.Now().UTC()
		event.CreatedAt = now
		event.UpdatedAt = now
	}

	sql, args, err := r.sb.Insert("events").
		Columns(eventColumns...).
		Values(
			event.ID, event.TitleEn, event.TitleAr,
			event.DescriptionEn, event.DescriptionAr,
			event.EventDate, event.LocationEn, event.LocationAr,
			event.EventType, event.RegistrationURL, event.ImageURL,
			event.IsActive, event.IsFeatured,
			event.MaxParticipants, event.CurrentParticipants,
			event.RegistrationDeadline, event.OrderIndex,
			event.CreatedAt, event.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", event.ID).Msg("Error executing insert event query")
		return false, fmt.Errorf("error inserting event: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}
