package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newFileHeader builds a real multipart.FileHeader by round-tripping a
// form through the stdlib parser.
func newFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing form file failed: %v", err)
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndDelete(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	header := newFileHeader(t, "photo.jpg", "jpeg bytes")
	reference, err := storage.Save(header, "gallery")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !strings.HasPrefix(reference, "/uploads/gallery/") {
		t.Errorf("expected reference under /uploads/gallery/, got %q", reference)
	}
	if !strings.HasSuffix(reference, ".jpg") {
		t.Errorf("expected original extension preserved, got %q", reference)
	}

	physical, ok := storage.physicalPath(reference)
	if !ok {
		t.Fatalf("physicalPath rejected own reference %q", reference)
	}
	data, err := os.ReadFile(physical)
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}

	if err := storage.Delete(reference); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(physical); !os.IsNotExist(err) {
		t.Error("file still exists after delete")
	}
}

func TestSaveUniqueNames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	first, err := storage.Save(newFileHeader(t, "photo.jpg", "one"), "gallery")
	if err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	second, err := storage.Save(newFileHeader(t, "photo.jpg", "two"), "gallery")
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if first == second {
		t.Error("uploads sharing a filename must not collide")
	}
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	if err := storage.Delete("/uploads/gallery/gone.jpg"); err != nil {
		t.Errorf("deleting a missing file should succeed, got %v", err)
	}
	if err := storage.Delete(""); err != nil {
		t.Errorf("deleting an empty reference should succeed, got %v", err)
	}
}

func TestDeleteSkipsExternalURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	if err := storage.Delete("https://cdn.example.com/stock.jpg"); err != nil {
		t.Errorf("external URL delete should be skipped, got %v", err)
	}
}

func TestDeleteRejectsTraversal(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(filepath.Join(base, "uploads"), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	outside := filepath.Join(base, "secret.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0o644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}

	if err := storage.Delete("/uploads/../secret.txt"); err == nil {
		t.Error("expected error for traversal reference")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Error("file outside storage root was touched")
	}
}

func TestIsExternalURL(t *testing.T) {
	if !IsExternalURL("https://example.com/a.jpg") || !IsExternalURL("http://example.com/a.jpg") {
		t.Error("absolute URLs should be external")
	}
	if IsExternalURL("/uploads/gallery/a.jpg") {
		t.Error("root-relative references are not external")
	}
}
