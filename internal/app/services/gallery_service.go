package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/filestorage"
)

const galleryMediaFolder = "gallery"

type galleryStore interface {
	GetAll(ctx context.Context, includeInactive bool) ([]*models.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*models.GalleryImage, error)
	Create(ctx context.Context, img *models.GalleryImage) error
	Update(ctx context.Context, img *models.GalleryImage) error
	Delete(ctx context.Context, id string) error
}

// GalleryService defines the interface for gallery operations
type GalleryService interface {
	GetGalleryImages(ctx context.Context, includeInactive bool) ([]*models.GalleryImage, error)
	GetGalleryImageByID(ctx context.Context, id string) (*models.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, req *dto.CreateGalleryImageRequest, image *multipart.FileHeader) (*models.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, id string, req *dto.UpdateGalleryImageRequest, image *multipart.FileHeader) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id string) error
}

type galleryServiceImpl struct {
	galleryRepo galleryStore
	storage     filestorage.Storage
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(galleryRepo galleryStore, storage filestorage.Storage) GalleryService {
	return &galleryServiceImpl{
		galleryRepo: galleryRepo,
		storage:     storage,
	}
}

// GetGalleryImages retrieves gallery images in display order
func (s *galleryServiceImpl) GetGalleryImages(ctx context.Context, includeInactive bool) ([]*models.GalleryImage, error) {
	return s.galleryRepo.GetAll(ctx, includeInactive)
}

// GetGalleryImageByID retrieves a single gallery image
func (s *galleryServiceImpl) GetGalleryImageByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	return s.galleryRepo.GetByID(ctx, id)
}

// CreateGalleryImage creates a gallery entry. A gallery row without a
// binary is invalid, so the upload is mandatory here.
func (s *galleryServiceImpl) CreateGalleryImage(ctx context.Context, req *dto.CreateGalleryImageRequest, image *multipart.FileHeader) (*models.GalleryImage, error) {
	if image == nil {
		return nil, apperrors.ErrImageRequired
	}

	reference, err := s.storage.Save(image, galleryMediaFolder)
	if err != nil {
		return nil, fmt.Errorf("error storing gallery image: %w", err)
	}

	galleryImage := &models.GalleryImage{
		TitleEn:       req.TitleEn,
		TitleAr:       req.TitleAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		ImageURL:      reference,
		IsActive:      req.IsActive == nil || *req.IsActive,
		Order:         req.Order,
	}

	if err := s.galleryRepo.Create(ctx, galleryImage); err != nil {
		deleteMediaQuietly(s.storage, &reference)
		return nil, err
	}

	return galleryImage, nil
}

// UpdateGalleryImage applies field changes. A replacement upload deletes
// the old binary; the image itself can never be removed outright because
// the entry requires one.
func (s *galleryServiceImpl) UpdateGalleryImage(ctx context.Context, id string, req *dto.UpdateGalleryImageRequest, image *multipart.FileHeader) (*models.GalleryImage, error) {
	galleryImage, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if image != nil {
		deleteMediaQuietly(s.storage, &galleryImage.ImageURL)
		reference, err := s.storage.Save(image, galleryMediaFolder)
		if err != nil {
			return nil, fmt.Errorf("error storing gallery image: %w", err)
		}
		galleryImage.ImageURL = reference
	}

	galleryImage.TitleEn = req.TitleEn
	galleryImage.TitleAr = req.TitleAr
	galleryImage.DescriptionEn = req.DescriptionEn
	galleryImage.DescriptionAr = req.DescriptionAr
	if req.IsActive != nil {
		galleryImage.IsActive = *req.IsActive
	}
	galleryImage.Order = req.Order

	if err := s.galleryRepo.Update(ctx, galleryImage); err != nil {
		return nil, err
	}

	return galleryImage, nil
}

// DeleteGalleryImage removes the row first, then cleans up the stored media
func (s *galleryServiceImpl) DeleteGalleryImage(ctx context.Context, id string) error {
	galleryImage, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return err
	}

	deleteMediaQuietly(s.storage, &galleryImage.ImageURL)
	return nil
}
