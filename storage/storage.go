package storage

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"gorm.io/gorm"
)

// StorageAPI is the contract the content layer uploads through. Paths are
// opaque locators relative to the bucket root.
type StorageAPI interface {
	GetBucket() *Bucket
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetTotalSpace() uint64
	GetFreeSpace() uint64
}

type Storage struct {
	Bucket Bucket
}

func (s *Storage) GetBucket() *Bucket {
	return &s.Bucket
}

var cachedStorage []StorageAPI

func Init(db *gorm.DB) {
	cachedStorage = []StorageAPI{}
	var buckets []Bucket
	if err := db.Find(&buckets).Error; err != nil {
		panic(err)
	}
	log.Printf("Storage buckets found: %d\n", len(buckets))
	for _, bucket := range buckets {
		storage, err := New(&bucket)
		if err != nil {
			panic(err)
		}
		cachedStorage = append(cachedStorage, storage)
	}
}

// New instantiates the backend matching the bucket's storage type.
func New(bucket *Bucket) (StorageAPI, error) {
	switch bucket.StorageType {
	case StorageTypeFile:
		return NewDiskStorage(bucket), nil
	case StorageTypeS3:
		return NewS3Storage(bucket), nil
	}
	return nil, fmt.Errorf("storage type unavailable for bucket %d", bucket.ID)
}

// Register adds a freshly created bucket's backend to the cache.
func Register(bucket *Bucket) (StorageAPI, error) {
	storage, err := New(bucket)
	if err != nil {
		return nil, err
	}
	cachedStorage = append(cachedStorage, storage)
	return storage, nil
}

func StorageFrom(bucket *Bucket) StorageAPI {
	for _, s := range cachedStorage {
		if s.GetBucket().ID == bucket.ID {
			return s
		}
	}
	return nil
}

func GetDefaultStorage() StorageAPI {
	if len(cachedStorage) == 0 {
		panic("no storage available")
	}
	for _, s := range cachedStorage {
		if s.GetBucket().StorageType == StorageTypeFile {
			return s
		}
	}
	return cachedStorage[0]
}
