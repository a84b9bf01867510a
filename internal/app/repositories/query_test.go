package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/sd13/academy/internal/app/models"
)

func TestProgramListQueryOrdering(t *testing.T) {
	repo := NewProgramRepository(nil)

	sql, _, err := repo.listQuery(true).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, `ORDER BY "order" ASC, created_at ASC, id ASC`) {
		t.Errorf("expected insertion-order tie-break in listing, got: %s", sql)
	}
	if strings.Contains(sql, "is_active") {
		t.Errorf("admin listing must not filter on is_active: %s", sql)
	}
}

func TestProgramListQueryFiltersInactiveForPublic(t *testing.T) {
	repo := NewProgramRepository(nil)

	sql, args, err := repo.listQuery(false).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "is_active = $1") {
		t.Errorf("expected is_active filter in public listing, got: %s", sql)
	}
	if len(args) != 1 || args[0] != true {
		t.Errorf("expected single true arg, got %v", args)
	}
}

func TestProgramSeedInsertSkipsExistingRows(t *testing.T) {
	repo := NewProgramRepository(nil)
	program := &models.Program{
		ID:        "program-1",
		TitleEn:   "Juniors",
		TitleAr:   "الناشئين",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	sql, _, err := repo.seedInsertQuery(program, "[]").ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "ON CONFLICT (id) DO NOTHING") {
		t.Errorf("expected conditional insert for seeding, got: %s", sql)
	}
}

func TestEventListQueryOrdering(t *testing.T) {
	repo := NewEventRepository(nil)

	sql, _, err := repo.listQuery(true).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "ORDER BY event_date ASC, created_at ASC, id ASC") {
		t.Errorf("expected chronological ordering with stable tie-break, got: %s", sql)
	}
}
