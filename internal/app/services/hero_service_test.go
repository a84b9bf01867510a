package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
)

type fakeHeroStore struct {
	GetFunc  func(ctx context.Context) (*models.HeroContent, error)
	SaveFunc func(ctx context.Context, hero *models.HeroContent) error
}

func (f *fakeHeroStore) Get(ctx context.Context) (*models.HeroContent, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx)
	}
	return nil, apperrors.ErrHeroNotFound
}

func (f *fakeHeroStore) Save(ctx context.Context, hero *models.HeroContent) error {
	if f.SaveFunc != nil {
		return f.SaveFunc(ctx, hero)
	}
	return nil
}

func saveHeroRequest() *dto.SaveHeroRequest {
	return &dto.SaveHeroRequest{
		TitleEn:       "SD13 Basketball Academy",
		TitleAr:       "أكاديمية SD13",
		SubtitleEn:    "Where Champions Are Made",
		SubtitleAr:    "حيث يُصنع الأبطال",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
	}
}

func TestSaveHeroCreatesWhenMissing(t *testing.T) {
	var saved *models.HeroContent
	store := &fakeHeroStore{
		SaveFunc: func(ctx context.Context, hero *models.HeroContent) error {
			saved = hero
			return nil
		},
	}
	svc := NewHeroService(store, &fakeStorage{})

	hero, err := svc.SaveHero(context.Background(), saveHeroRequest(), nil)
	if err != nil {
		t.Fatalf("SaveHero failed: %v", err)
	}
	if saved == nil {
		t.Fatal("hero never reached the store")
	}
	if hero.TitleEn != "SD13 Basketball Academy" {
		t.Errorf("fields not applied: %+v", hero)
	}
}

func TestSaveHeroOverwritesExisting(t *testing.T) {
	existing := &models.HeroContent{ID: models.HeroContentID, TitleEn: "Old Title"}
	var saved *models.HeroContent
	store := &fakeHeroStore{
		GetFunc: func(ctx context.Context) (*models.HeroContent, error) { return existing, nil },
		SaveFunc: func(ctx context.Context, hero *models.HeroContent) error {
			saved = hero
			return nil
		},
	}
	svc := NewHeroService(store, &fakeStorage{})

	if _, err := svc.SaveHero(context.Background(), saveHeroRequest(), nil); err != nil {
		t.Fatalf("SaveHero failed: %v", err)
	}
	if saved.ID != models.HeroContentID || saved.TitleEn != "SD13 Basketball Academy" {
		t.Errorf("existing row not overwritten in place: %+v", saved)
	}
}

func TestSaveHeroRemoveVideo(t *testing.T) {
	videoRef := "/uploads/hero/intro.mp4"
	store := &fakeHeroStore{
		GetFunc: func(ctx context.Context) (*models.HeroContent, error) {
			return &models.HeroContent{ID: models.HeroContentID, VideoURL: &videoRef}, nil
		},
	}
	storage := &fakeStorage{}
	svc := NewHeroService(store, storage)

	req := saveHeroRequest()
	req.RemoveVideo = true

	hero, err := svc.SaveHero(context.Background(), req, nil)
	if err != nil {
		t.Fatalf("SaveHero failed: %v", err)
	}
	if hero.VideoURL != nil {
		t.Error("video reference should be cleared")
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != videoRef {
		t.Errorf("old video not deleted: %v", storage.deleted)
	}
}

func TestSaveHeroReplaceVideo(t *testing.T) {
	videoRef := "/uploads/hero/intro.mp4"
	store := &fakeHeroStore{
		GetFunc: func(ctx context.Context) (*models.HeroContent, error) {
			return &models.HeroContent{ID: models.HeroContentID, VideoURL: &videoRef}, nil
		},
	}
	storage := &fakeStorage{}
	svc := NewHeroService(store, storage)

	hero, err := svc.SaveHero(context.Background(), saveHeroRequest(), &multipart.FileHeader{Filename: "new.mp4"})
	if err != nil {
		t.Fatalf("SaveHero failed: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != videoRef {
		t.Errorf("old video not deleted before replacement: %v", storage.deleted)
	}
	if hero.VideoURL == nil || *hero.VideoURL != storage.saved[0] {
		t.Errorf("new video reference not applied: %v", hero.VideoURL)
	}
}

func TestSaveHeroPropagatesUnexpectedGetError(t *testing.T) {
	store := &fakeHeroStore{
		GetFunc: func(ctx context.Context) (*models.HeroContent, error) { return nil, errStoreDown },
	}
	svc := NewHeroService(store, &fakeStorage{})

	if _, err := svc.SaveHero(context.Background(), saveHeroRequest(), nil); err == nil {
		t.Error("unexpected store errors must propagate")
	}
}
