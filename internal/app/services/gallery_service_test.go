package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
)

type fakeGalleryStore struct {
	GetByIDFunc func(ctx context.Context, id string) (*models.GalleryImage, error)
	CreateFunc  func(ctx context.Context, img *models.GalleryImage) error
	UpdateFunc  func(ctx context.Context, img *models.GalleryImage) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (f *fakeGalleryStore) GetAll(ctx context.Context, includeInactive bool) ([]*models.GalleryImage, error) {
	return nil, nil
}

func (f *fakeGalleryStore) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.ErrGalleryImageNotFound
}

func (f *fakeGalleryStore) Create(ctx context.Context, img *models.GalleryImage) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, img)
	}
	return nil
}

func (f *fakeGalleryStore) Update(ctx context.Context, img *models.GalleryImage) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, img)
	}
	return nil
}

func (f *fakeGalleryStore) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func TestCreateGalleryImageRequiresImage(t *testing.T) {
	svc := NewGalleryService(&fakeGalleryStore{}, &fakeStorage{})

	_, err := svc.CreateGalleryImage(context.Background(), &dto.CreateGalleryImageRequest{
		TitleEn: "Finals",
		TitleAr: "النهائيات",
	}, nil)
	if !errors.Is(err, apperrors.ErrImageRequired) {
		t.Errorf("expected ErrImageRequired, got %v", err)
	}
}

func TestCreateGalleryImageStoresBinaryFirst(t *testing.T) {
	var created *models.GalleryImage
	store := &fakeGalleryStore{
		CreateFunc: func(ctx context.Context, img *models.GalleryImage) error {
			created = img
			return nil
		},
	}
	storage := &fakeStorage{}
	svc := NewGalleryService(store, storage)

	_, err := svc.CreateGalleryImage(context.Background(), &dto.CreateGalleryImageRequest{
		TitleEn: "Finals",
		TitleAr: "النهائيات",
	}, &multipart.FileHeader{Filename: "finals.jpg"})
	if err != nil {
		t.Fatalf("CreateGalleryImage failed: %v", err)
	}
	if created.ImageURL != storage.saved[0] {
		t.Errorf("image reference mismatch: %q", created.ImageURL)
	}
	if !created.IsActive {
		t.Error("gallery image should default to active")
	}
}

func TestCreateGalleryImageCleansUpOnStoreFailure(t *testing.T) {
	store := &fakeGalleryStore{
		CreateFunc: func(ctx context.Context, img *models.GalleryImage) error {
			return errStoreDown
		},
	}
	storage := &fakeStorage{}
	svc := NewGalleryService(store, storage)

	_, err := svc.CreateGalleryImage(context.Background(), &dto.CreateGalleryImageRequest{
		TitleEn: "Finals",
		TitleAr: "النهائيات",
	}, &multipart.FileHeader{Filename: "finals.jpg"})
	if err == nil {
		t.Fatal("expected store error")
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != storage.saved[0] {
		t.Errorf("orphaned upload not cleaned up: %v", storage.deleted)
	}
}

func TestUpdateGalleryImageReplacesBinary(t *testing.T) {
	store := &fakeGalleryStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.GalleryImage, error) {
			return &models.GalleryImage{ID: id, ImageURL: "/uploads/gallery/old.jpg", IsActive: true}, nil
		},
	}
	storage := &fakeStorage{}
	svc := NewGalleryService(store, storage)

	updated, err := svc.UpdateGalleryImage(context.Background(), "img-1", &dto.UpdateGalleryImageRequest{
		TitleEn: "Finals",
		TitleAr: "النهائيات",
	}, &multipart.FileHeader{Filename: "new.jpg"})
	if err != nil {
		t.Fatalf("UpdateGalleryImage failed: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "/uploads/gallery/old.jpg" {
		t.Errorf("old binary not deleted: %v", storage.deleted)
	}
	if updated.ImageURL != storage.saved[0] {
		t.Errorf("new reference not applied: %q", updated.ImageURL)
	}
}

func TestUpdateGalleryImageKeepsBinaryWithoutUpload(t *testing.T) {
	store := &fakeGalleryStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.GalleryImage, error) {
			return &models.GalleryImage{ID: id, ImageURL: "/uploads/gallery/old.jpg", IsActive: true}, nil
		},
	}
	storage := &fakeStorage{}
	svc := NewGalleryService(store, storage)

	updated, err := svc.UpdateGalleryImage(context.Background(), "img-1", &dto.UpdateGalleryImageRequest{
		TitleEn: "Finals",
		TitleAr: "النهائيات",
	}, nil)
	if err != nil {
		t.Fatalf("UpdateGalleryImage failed: %v", err)
	}
	if updated.ImageURL != "/uploads/gallery/old.jpg" {
		t.Errorf("existing reference must survive, got %q", updated.ImageURL)
	}
	if len(storage.deleted) != 0 {
		t.Error("no delete expected without a replacement upload")
	}
}

func TestDeleteGalleryImageCleansUpMedia(t *testing.T) {
	store := &fakeGalleryStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.GalleryImage, error) {
			return &models.GalleryImage{ID: id, ImageURL: "/uploads/gallery/old.jpg"}, nil
		},
	}
	storage := &fakeStorage{}
	svc := NewGalleryService(store, storage)

	if err := svc.DeleteGalleryImage(context.Background(), "img-1"); err != nil {
		t.Fatalf("DeleteGalleryImage failed: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "/uploads/gallery/old.jpg" {
		t.Errorf("media not cleaned up: %v", storage.deleted)
	}
}
