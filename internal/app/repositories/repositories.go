package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sd13/academy/internal/pkg/apperrors"
)

// ErrNotFound is the shared not-found error for all repositories.
var ErrNotFound = apperrors.ErrResourceNotFound

// newStatementBuilder returns a squirrel builder configured for PostgreSQL
// positional placeholders.
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// Repositories holds all the repository instances
type Repositories struct {
	HeroRepository         *HeroRepository
	ProgramRepository      *ProgramRepository
	CoachRepository        *CoachRepository
	TestimonialRepository  *TestimonialRepository
	GalleryRepository      *GalleryRepository
	EventRepository        *EventRepository
	NotificationRepository *NotificationRepository
	SubscriptionRepository *SubscriptionRepository
	SettingsRepository     *SettingsRepository
	ContactRepository      *ContactRepository
	UserRepository         *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		HeroRepository:         NewHeroRepository(db),
		ProgramRepository:      NewProgramRepository(db),
		CoachRepository:        NewCoachRepository(db),
		TestimonialRepository:  NewTestimonialRepository(db),
		GalleryRepository:      NewGalleryRepository(db),
		EventRepository:        NewEventRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		SubscriptionRepository: NewSubscriptionRepository(db),
		SettingsRepository:     NewSettingsRepository(db),
		ContactRepository:      NewContactRepository(db),
		UserRepository:         NewUserRepository(db),
	}
}
