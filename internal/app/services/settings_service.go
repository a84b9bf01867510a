package services

import (
	"context"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
)

type settingsStore interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Save(ctx context.Context, settings *models.SiteSettings) error
}

// SettingsService defines the interface for site settings operations
type SettingsService interface {
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	SaveSettings(ctx context.Context, req *dto.SaveSiteSettingsRequest) (*models.SiteSettings, error)
}

type settingsServiceImpl struct {
	settingsRepo settingsStore
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo settingsStore) SettingsService {
	return &settingsServiceImpl{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the site settings
func (s *settingsServiceImpl) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// SaveSettings creates or replaces the site settings singleton
func (s *settingsServiceImpl) SaveSettings(ctx context.Context, req *dto.SaveSiteSettingsRequest) (*models.SiteSettings, error) {
	settings := &models.SiteSettings{
		SiteNameEn:   req.SiteNameEn,
		SiteNameAr:   req.SiteNameAr,
		AboutEn:      req.AboutEn,
		AboutAr:      req.AboutAr,
		FacebookURL:  req.FacebookURL,
		InstagramURL: req.InstagramURL,
		YoutubeURL:   req.YoutubeURL,
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
