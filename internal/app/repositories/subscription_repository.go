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

var subscriptionColumns = []string{
	"id", "email", "name", "preferences", "is_active",
	"unsubscribed_at", "created_at", "updated_at",
}

// SubscriptionRepository handles email subscription database operations
type SubscriptionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanSubscription(row rowScanner) (*models.EmailSubscription, error) {
	sub := &models.EmailSubscription{}
	var preferences string
	err := row.Scan(
		&sub.ID, &sub.Email, &sub.Name, &preferences, &sub.IsActive,
		&sub.UnsubscribedAt, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.Preferences, err = models.DecodePreferences(preferences)
	if err != nil {
		return nil, fmt.Errorf("subscription %s: %w", sub.ID, err)
	}
	return sub, nil
}

// GetByEmail retrieves a subscription by its email natural key
func (r *SubscriptionRepository) GetByEmail(ctx context.Context, email string) (*models.EmailSubscription, error) {
	sql, args, err := r.sb.Select(subscriptionColumns...).
		From("email_subscriptions").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subscription by email SQL")
		return nil, fmt.Errorf("failed to build get subscription query: %w", err)
	}

	sub, err := scanSubscription(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning subscription row")
		return nil, fmt.Errorf("error getting subscription by email: %w", err)
	}

	return sub, nil
}

// GetAll retrieves every subscription, newest first
func (r *SubscriptionRepository) GetAll(ctx context.Context) ([]*models.EmailSubscription, error) {
	sql, args, err := r.sb.Select(subscriptionColumns...).
		From("email_subscriptions").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all subscriptions SQL")
		return nil, fmt.Errorf("failed to build get all subscriptions query: %w", err)
	}

	return r.querySubscriptions(ctx, sql, args)
}

// GetActive retrieves subscriptions that have not unsubscribed.
// Per-subscriber preference filtering happens in the service layer.
func (r *SubscriptionRepository) GetActive(ctx context.Context) ([]*models.EmailSubscription, error) {
	sql, args, err := r.sb.Select(subscriptionColumns...).
		From("email_subscriptions").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get active subscriptions SQL")
		return nil, fmt.Errorf("failed to build get active subscriptions query: %w", err)
	}

	return r.querySubscriptions(ctx, sql, args)
}

func (r *SubscriptionRepository) querySubscriptions(ctx context.Context, sql string, args []interface{}) ([]*models.EmailSubscription, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing subscriptions query")
		return nil, fmt.Errorf("error querying subscriptions: %w", err)
	}
	defer rows.Close()

	subscriptions := []*models.EmailSubscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning subscription row")
			return nil, fmt.Errorf("error scanning subscription row: %w", err)
		}
		subscriptions = append(subscriptions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}

	return subscriptions, nil
}

// Create inserts a new subscription. A concurrent subscribe with the
// same email surfaces as ErrAlreadySubscribed.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.EmailSubscription) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	preferences, err := sub.Preferences.Encode()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("email_subscriptions").
		Columns(subscriptionColumns...).
		Values(
			sub.ID, sub.Email, sub.Name, preferences, sub.IsActive,
			sub.UnsubscribedAt, sub.CreatedAt, sub.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create subscription SQL")
		return fmt.Errorf("failed to build create subscription query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrAlreadySubscribed
		}
		logger.Error().Err(err).Msg("Error executing create subscription query")
		return fmt.Errorf("error creating subscription: %w", err)
	}

	return nil
}

// Update persists changes to an existing subscription
func (r *SubscriptionRepository) Update(ctx context.Context, sub *models.EmailSubscription) error {
	sub.UpdatedAt = time.Now().UTC()

	preferences, err := sub.Preferences.Encode()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("email_subscriptions").
		SetMap(map[string]interface{}{
			"name":            sub.Name,
			"preferences":     preferences,
			"is_active":       sub.IsActive,
			"unsubscribed_at": sub.UnsubscribedAt,
			"updated_at":      sub.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": sub.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update subscription SQL")
		return fmt.Errorf("failed to build update subscription query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("subscriptionID", sub.ID).Msg("Error executing update subscription query")
		return fmt.Errorf("error updating subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubscriptionNotFound
	}

	return nil
}
