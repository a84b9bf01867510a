package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sd13/academy/internal/pkg/logger"
)

// LocalStorage stores media files on the local filesystem. Files are kept
// under basePath, scoped by a category folder (coaches, programs, gallery,
// videos, ...), and addressed publicly through publicPath, the URL prefix
// the files are served from.
type LocalStorage struct {
	basePath   string
	publicPath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// publicPath is the URL path prefix the storage root is served under,
// e.g. "/uploads".
func NewLocalStorage(basePath, publicPath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath:   basePath,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}, nil
}

// Save persists an uploaded file under the given category folder and
// returns its public reference. Stored names are uuid-based to avoid
// collisions between uploads sharing an original filename.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, folder string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := ls.basePath
	if folder != "" {
		dirPath = filepath.Join(ls.basePath, folder)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create category folder")
			return "", fmt.Errorf("failed to create category folder: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	reference := path.Join(ls.publicPath, folder, storedName)
	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("reference", reference).
		Msg("File saved")
	return reference, nil
}

// Delete removes the file behind a reference previously returned by Save.
// References that point outside this storage (absolute URLs of seeded stock
// images) are skipped, and a reference whose file is already gone is treated
// as a successful delete; both cases occur routinely during speculative
// deletes in update/delete flows.
func (ls *LocalStorage) Delete(reference string) error {
	if reference == "" {
		return nil
	}

	if IsExternalURL(reference) {
		logger.Debug().Str("reference", reference).Msg("Skipping delete of external URL")
		return nil
	}

	physicalPath, ok := ls.physicalPath(reference)
	if !ok {
		return fmt.Errorf("reference outside storage root: %s", reference)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// physicalPath maps a public reference back to its on-disk location.
func (ls *LocalStorage) physicalPath(reference string) (string, bool) {
	rel := strings.TrimPrefix(reference, ls.publicPath)
	if rel == reference && !strings.HasPrefix(reference, "/") {
		// root-relative reference without the public prefix
		rel = "/" + reference
	}
	rel = strings.TrimPrefix(rel, "/")
	rel = path.Clean(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(rel)), true
}

// IsExternalURL reports whether a media reference points at a host outside
// this system's storage.
func IsExternalURL(reference string) bool {
	return strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://")
}
