package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/pkg/logger"
)

var notificationColumns = []string{
	"id", "event_id", "notification_type", "recipients_count", "status", "created_at",
}

// NotificationRepository handles event notification audit records. The
// table is append-only; there are no update or delete operations.
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Create appends a notification audit record
func (r *NotificationRepository) Create(ctx context.Context, n *models.EventNotification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()

	sql, args, err := r.sb.Insert("event_notifications").
		Columns(notificationColumns...).
		Values(n.ID, n.EventID, n.NotificationType, n.RecipientsCount, n.Status, n.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create notification SQL")
		return fmt.Errorf("failed to build create notification query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("eventID", n.EventID).Msg("Error executing create notification query")
		return fmt.Errorf("error creating notification record: %w", err)
	}

	return nil
}

// GetByEventID retrieves the audit trail for one event, newest first
func (r *NotificationRepository) GetByEventID(ctx context.Context, eventID string) ([]*models.EventNotification, error) {
	sql, args, err := r.sb.Select(notificationColumns...).
		From("event_notifications").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get notifications SQL")
		return nil, fmt.Errorf("failed to build get notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get notifications query")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.EventNotification{}
	for rows.Next() {
		n := &models.EventNotification{}
		err := rows.Scan(&n.ID, &n.EventID, &n.NotificationType, &n.RecipientsCount, &n.Status, &n.CreatedAt)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning notification row")
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// GetRecent retrieves the most recent audit records across all events
func (r *NotificationRepository) GetRecent(ctx context.Context, limit uint64) ([]*models.EventNotification, error) {
	if limit == 0 {
		limit = 50
	}

	sql, args, err := r.sb.Select(notificationColumns...).
		From("event_notifications").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get recent notifications SQL")
		return nil, fmt.Errorf("failed to build get recent notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get recent notifications query")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.EventNotification{}
	for rows.Next() {
		n := &models.EventNotification{}
		err := rows.Scan(&n.ID, &n.EventID, &n.NotificationType, &n.RecipientsCount, &n.Status, &n.CreatedAt)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning notification row")
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}
