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

func TestCreateProgramDefaultsToActive(t *testing.T) {
	var created *models.Program
	store := &fakeProgramStore{
		CreateFunc: func(ctx context.Context, program *models.Program) error {
			created = program
			return nil
		},
	}
	svc := NewProgramService(store, &fakeStorage{})

	_, err := svc.CreateProgram(context.Background(), &dto.CreateProgramRequest{
		TitleEn:       "Juniors",
		TitleAr:       "الناشئون",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
		Features:      `["one","two"]`,
	}, nil)
	if err != nil {
		t.Fatalf("CreateProgram failed: %v", err)
	}
	if created == nil {
		t.Fatal("program never reached the store")
	}
	if !created.IsActive {
		t.Error("program should default to active when the flag is omitted")
	}
	if len(created.Features) != 2 {
		t.Errorf("expected 2 features, got %v", created.Features)
	}
}

func TestCreateProgramRejectsBadFeatures(t *testing.T) {
	svc := NewProgramService(&fakeProgramStore{}, &fakeStorage{})

	_, err := svc.CreateProgram(context.Background(), &dto.CreateProgramRequest{
		TitleEn:       "Juniors",
		TitleAr:       "الناشئون",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
		Features:      "not json",
	}, nil)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateProgramStoresImage(t *testing.T) {
	var created *models.Program
	store := &fakeProgramStore{
		CreateFunc: func(ctx context.Context, program *models.Program) error {
			created = program
			return nil
		},
	}
	storage := &fakeStorage{}
	svc := NewProgramService(store, storage)

	_, err := svc.CreateProgram(context.Background(), &dto.CreateProgramRequest{
		TitleEn:       "Juniors",
		TitleAr:       "الناشئون",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
	}, &multipart.FileHeader{Filename: "cover.jpg"})
	if err != nil {
		t.Fatalf("CreateProgram failed: %v", err)
	}
	if created.ImageURL == nil || *created.ImageURL != storage.saved[0] {
		t.Errorf("image reference not set on created program: %v", created.ImageURL)
	}
}

func TestCreateProgramCleansUpImageOnStoreFailure(t *testing.T) {
	store := &fakeProgramStore{
		CreateFunc: func(ctx context.Context, program *models.Program) error {
			return errStoreDown
		},
	}
	storage := &fakeStorage{}
	svc := NewProgramService(store, storage)

	_, err := svc.CreateProgram(context.Background(), &dto.CreateProgramRequest{
		TitleEn:       "Juniors",
		TitleAr:       "الناشئون",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
	}, &multipart.FileHeader{Filename: "cover.jpg"})
	if err == nil {
		t.Fatal("expected store error")
	}
	if len(storage.saved) != 1 || len(storage.deleted) != 1 || storage.deleted[0] != storage.saved[0] {
		t.Errorf("orphaned upload not cleaned up: saved=%v deleted=%v", storage.saved, storage.deleted)
	}
}

func TestUpdateProgramRemovesImage(t *testing.T) {
	oldRef := "/uploads/programs/old.jpg"
	store := &fakeProgramStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Program, error) {
			return &models.Program{ID: id, ImageURL: &oldRef, IsActive: true}, nil
		},
	}
	storage := &fakeStorage{}
	svc := NewProgramService(store, storage)

	updated, err := svc.UpdateProgram(context.Background(), "program-1", &dto.UpdateProgramRequest{
		TitleEn:       "Juniors",
		TitleAr:       "الناشئون",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
		RemoveImage:   true,
	}, nil)
	if err != nil {
		t.Fatalf("UpdateProgram failed: %v", err)
	}
	if updated.ImageURL != nil {
		t.Error("image reference should be cleared")
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != oldRef {
		t.Errorf("old image not deleted: %v", storage.deleted)
	}
}

func TestUpdateProgramReplacesImage(t *testing.T) {
	oldRef := "/uploads/programs/old.jpg"
	store := &fakeProgramStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Program, error) {
			return &models.Program{ID: id, ImageURL: &oldRef, IsActive: true}, nil
		},
	}
	storage := &fakeStorage{}
	svc := NewProgramService(store, storage)

	updated, err := svc.UpdateProgram(context.Background(), "program-1", &dto.UpdateProgramRequest{
		TitleEn:       "Juniors",
		TitleAr:       "الناشئون",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
	}, &multipart.FileHeader{Filename: "new.jpg"})
	if err != nil {
		t.Fatalf("UpdateProgram failed: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != oldRef {
		t.Errorf("old image not deleted before replacement: %v", storage.deleted)
	}
	if updated.ImageURL == nil || *updated.ImageURL != storage.saved[0] {
		t.Errorf("new image reference not applied: %v", updated.ImageURL)
	}
}

func TestUpdateProgramKeepsInactiveWhenFlagOmitted(t *testing.T) {
	store := &fakeProgramStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Program, error) {
			return &models.Program{ID: id, IsActive: false}, nil
		},
	}
	svc := NewProgramService(store, &fakeStorage{})

	updated, err := svc.UpdateProgram(context.Background(), "program-1", &dto.UpdateProgramRequest{
		TitleEn:       "Juniors",
		TitleAr:       "الناشئون",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
	}, nil)
	if err != nil {
		t.Fatalf("UpdateProgram failed: %v", err)
	}
	if updated.IsActive {
		t.Error("omitting the flag must not flip visibility")
	}
}

func TestUpdateProgramNotFound(t *testing.T) {
	store := &fakeProgramStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Program, error) {
			return nil, apperrors.ErrProgramNotFound
		},
	}
	svc := NewProgramService(store, &fakeStorage{})

	_, err := svc.UpdateProgram(context.Background(), "missing", &dto.UpdateProgramRequest{
		TitleEn:       "Juniors",
		TitleAr:       "الناشئون",
		DescriptionEn: "desc",
		DescriptionAr: "وصف",
	}, nil)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDeleteProgramCleansUpMediaAfterRow(t *testing.T) {
	ref := "/uploads/programs/cover.jpg"
	deletedRow := false
	store := &fakeProgramStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Program, error) {
			return &models.Program{ID: id, ImageURL: &ref}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			deletedRow = true
			return nil
		},
	}
	storage := &fakeStorage{}
	svc := NewProgramService(store, storage)

	if err := svc.DeleteProgram(context.Background(), "program-1"); err != nil {
		t.Fatalf("DeleteProgram failed: %v", err)
	}
	if !deletedRow {
		t.Error("row was not deleted")
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != ref {
		t.Errorf("media not cleaned up: %v", storage.deleted)
	}
}

func TestDeleteProgramKeepsMediaOnRowFailure(t *testing.T) {
	ref := "/uploads/programs/cover.jpg"
	store := &fakeProgramStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Program, error) {
			return &models.Program{ID: id, ImageURL: &ref}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			return errStoreDown
		},
	}
	storage := &fakeStorage{}
	svc := NewProgramService(store, storage)

	if err := svc.DeleteProgram(context.Background(), "program-1"); err == nil {
		t.Fatal("expected delete error")
	}
	if len(storage.deleted) != 0 {
		t.Error("media must survive when the row delete fails")
	}
}
