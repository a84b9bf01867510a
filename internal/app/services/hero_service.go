package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/filestorage"
)

const heroMediaFolder = "hero"

type heroStore interface {
	Get(ctx context.Context) (*models.HeroContent, error)
	Save(ctx context.Context, hero *models.HeroContent) error
}

// HeroService defines the interface for hero content operations
type HeroService interface {
	GetHero(ctx context.Context) (*models.HeroContent, error)
	SaveHero(ctx context.Context, req *dto.SaveHeroRequest, video *multipart.FileHeader) (*models.HeroContent, error)
}

type heroServiceImpl struct {
	heroRepo heroStore
	storage  filestorage.Storage
}

// NewHeroService creates a new hero service instance
func NewHeroService(heroRepo heroStore, storage filestorage.Storage) HeroService {
	return &heroServiceImpl{
		heroRepo: heroRepo,
		storage:  storage,
	}
}

// GetHero retrieves the hero content
func (s *heroServiceImpl) GetHero(ctx context.Context) (*models.HeroContent, error) {
	return s.heroRepo.Get(ctx)
}

// SaveHero creates or replaces the hero content. The first save creates
// the row; later saves overwrite it. The video lifecycle mirrors images:
// an explicit removal clears the stored file, a replacement upload
// deletes the old one first.
func (s *heroServiceImpl) SaveHero(ctx context.Context, req *dto.SaveHeroRequest, video *multipart.FileHeader) (*models.HeroContent, error) {
	hero, err := s.heroRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		hero = &models.HeroContent{}
	}

	if req.RemoveVideo {
		deleteMediaQuietly(s.storage, hero.VideoURL)
		hero.VideoURL = nil
	}
	if video != nil {
		deleteMediaQuietly(s.storage, hero.VideoURL)
		reference, err := s.storage.Save(video, heroMediaFolder)
		if err != nil {
			return nil, fmt.Errorf("error storing hero video: %w", err)
		}
		hero.VideoURL = &reference
	}

	hero.TitleEn = req.TitleEn
	hero.TitleAr = req.TitleAr
	hero.SubtitleEn = req.SubtitleEn
	hero.SubtitleAr = req.SubtitleAr
	hero.DescriptionEn = req.DescriptionEn
	hero.DescriptionAr = req.DescriptionAr

	if err := s.heroRepo.Save(ctx, hero); err != nil {
		return nil, err
	}

	return hero, nil
}
