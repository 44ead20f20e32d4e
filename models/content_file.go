package models

import (
	"io"
	"log"
	"path/filepath"
	"strings"

	"clubserver/storage"

	"github.com/google/uuid"
)

// SaveContentFile stores an uploaded file under the given bucket location
// and returns its generated, immutable path.
func SaveContentFile(store storage.StorageAPI, reader io.Reader, fileName, location string) (path string, size int64, err error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	path = location + "/" + uuid.NewString() + ext
	size, err = store.Save(path, reader)
	if err != nil {
		return "", 0, storageError(err)
	}
	return path, size, nil
}

// DeleteContentFile is the best-effort companion delete; failures are
// logged, never surfaced.
func DeleteContentFile(store storage.StorageAPI, path string) {
	if store == nil || path == "" {
		return
	}
	if err := store.Delete(path); err != nil {
		log.Printf("file %s could not be removed: %v", path, err)
	}
}
