package services

import (
	"github.com/sd13/academy/internal/pkg/filestorage"
	"github.com/sd13/academy/internal/pkg/logger"
)

// Services defined in this package:
// - AuthService: admin login and token issuing
// - HeroService: hero section singleton content
// - ProgramService, CoachService, TestimonialService, GalleryService:
//   ordered content collections with media lifecycle
// - EventService: events plus notification side effects
// - NotificationService: subscriber fan-out and audit records
// - SubscriptionService: email subscription lifecycle
// - SettingsService, ContactService: sitewide singleton records

// deleteMediaQuietly removes a stored media file without letting cleanup
// failures bubble into the content operation itself. The reference may be
// empty or external, in which case storage treats the delete as a no-op.
func deleteMediaQuietly(storage filestorage.Storage, reference *string) {
	if reference == nil || *reference == "" {
		return
	}
	if err := storage.Delete(*reference); err != nil {
		logger.Warn().Err(err).Str("reference", *reference).Msg("Failed to delete media file")
	}
}
