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

var contactColumns = []string{
	"id", "address_en", "address_ar", "phone", "whatsapp", "email",
	"map_url", "working_hours_en", "working_hours_ar", "created_at", "updated_at",
}

// ContactRepository handles the contact info singleton row, keyed by
// models.ContactInfoID.
type ContactRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Get retrieves the contact info row
func (r *ContactRepository) Get(ctx context.Context) (*models.ContactInfo, error) {
	sql, args, err := r.sb.Select(contactColumns...).
		From("contact_info").
		Where(squirrel.Eq{"id": models.ContactInfoID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get contact info SQL")
		return nil, fmt.Errorf("failed to build get contact info query: %w", err)
	}

	contact := &models.ContactInfo{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&contact.ID, &contact.AddressEn, &contact.AddressAr,
		&contact.Phone, &contact.Whatsapp, &contact.Email,
		&contact.MapURL, &contact.WorkingHoursEn, &contact.WorkingHoursAr,
		&contact.CreatedAt, &contact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("contact info not found")
		}
		logger.Error().Err(err).Msg("Error scanning contact info row")
		return nil, fmt.Errorf("error getting contact info: %w", err)
	}

	return contact, nil
}

// Save upserts the contact info row on its fixed ID
func (r *ContactRepository) Save(ctx context.Context, contact *models.ContactInfo) error {
	contact.ID = models.ContactInfoID
	now := time.Now().UTC()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = now
	}
	contact.UpdatedAt = now

	sql, args, err := r.sb.Insert("contact_info").
		Columns(contactColumns...).
		Values(
			contact.ID, contact.AddressEn, contact.AddressAr,
			contact.Phone, contact.Whatsapp, contact.Email,
			contact.MapURL, contact.WorkingHoursEn, contact.WorkingHoursAr,
			contact.CreatedAt, contact.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			address_en = EXCLUDED.address_en,
			address_ar = EXCLUDED.address_ar,
			phone = EXCLUDED.phone,
			whatsapp = EXCLUDED.whatsapp,
			email = EXCLUDED.email,
			map_url = EXCLUDED.map_url,
			working_hours_en = EXCLUDED.working_hours_en,
			working_hours_ar = EXCLUDED.working_hours_ar,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save contact info SQL")
		return fmt.Errorf("failed to build save contact info query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing save contact info query")
		return fmt.Errorf("error saving contact info: %w", err)
	}

	return nil
}

// Insert writes the contact row only when it does not exist yet
func (r *ContactRepository) Insert(ctx context.Context, contact *models.ContactInfo) (bool, error) {
	contact.ID = models.ContactInfoID
	if contact.CreatedAt.IsZero() {
		now := time.Now().UTC()
		contact.CreatedAt = now
		contact.UpdatedAt = now
	}

	sql, args, err := r.sb.Insert("contact_info").
		Columns(contactColumns...).
		Values(
			contact.ID, contact.AddressEn, contact.AddressAr,
			contact.Phone, contact.Whatsapp, contact.Email,
			contact.MapURL, contact.WorkingHoursEn, contact.WorkingHoursAr,
			contact.CreatedAt, contact.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert contact info query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing insert contact info query")
		return false, fmt.Errorf("error inserting contact info: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}
