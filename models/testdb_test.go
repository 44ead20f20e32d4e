package models

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"

	"clubserver/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	Init(db)
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, name, email string) User {
	t.Helper()
	user, err := UserCreate(db, name, email, "secret-password")
	require.NoError(t, err)
	return user
}

func newTestAdmin(t *testing.T, db *gorm.DB) User {
	t.Helper()
	admin := newTestUser(t, db, "Admin", "admin@club.test")
	require.NoError(t, admin.Grant(db, admin.ID, PermissionAdmin))
	return admin
}

func newTestEvent(t *testing.T, db *gorm.DB, title string) Event {
	t.Helper()
	event, err := CreateEvent(db, Event{Title: title, Category: EventCategoryMatch})
	require.NoError(t, err)
	return event
}

// memStorage is an in-memory StorageAPI double.
type memStorage struct {
	bucket   storage.Bucket
	files    map[string][]byte
	failSave bool
}

func newMemStorage() *memStorage {
	return &memStorage{
		bucket: storage.Bucket{ID: 1, Name: "test"},
		files:  map[string][]byte{},
	}
}

func (m *memStorage) GetBucket() *storage.Bucket { return &m.bucket }

func (m *memStorage) Save(path string, reader io.Reader) (int64, error) {
	if m.failSave {
		return 0, errors.New("save failed")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return 0, err
	}
	m.files[path] = data
	return int64(len(data)), nil
}

func (m *memStorage) Load(path string, writer io.Writer) (int64, error) {
	data, ok := m.files[path]
	if !ok {
		return 0, errors.New("no such file")
	}
	return io.Copy(writer, bytes.NewReader(data))
}

func (m *memStorage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	if _, err := m.Load(path, writer); err != nil {
		http.Error(writer, "not found", http.StatusNotFound)
	}
}

func (m *memStorage) Delete(path string) error {
	if _, ok := m.files[path]; !ok {
		return errors.New("no such file")
	}
	delete(m.files, path)
	return nil
}

func (m *memStorage) GetTotalSpace() uint64 { return 0 }
func (m *memStorage) GetFreeSpace() uint64  { return 0 }
