package filestorage

import "mime/multipart"

// Storage defines the interface for media storage operations.
// References returned by Save are stored verbatim on content rows
// (image_url / video_url) and handed back to Delete when the row is
// updated or removed.
type Storage interface {
	// Save persists an uploaded file under the given category folder and
	// returns a stable public reference for it.
	Save(fileHeader *multipart.FileHeader, folder string) (string, error)

	// Delete reclaims the file behind a previously returned reference.
	// External URLs and already-missing files are not errors.
	Delete(reference string) error
}
