package models

import (
	"bytes"
	"io"
	"log"
	"path/filepath"
	"strings"

	"clubserver/config"
	"clubserver/storage"
	"clubserver/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
	Title       string  `gorm:"type:varchar(300)" json:"title"`
	AltText     string  `gorm:"type:varchar(300)" json:"alt_text"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"type:varchar(100)" json:"category"`
	AlbumID     *uint64 `gorm:"index" json:"album_id"`
	// Path is assigned at upload time and never changes. Replacing a picture
	// means uploading a new image record.
	Path      string `gorm:"type:varchar(300);index:uniq_image_path,unique" json:"path"`
	ThumbPath string `gorm:"type:varchar(300)" json:"thumb_path"`
	Size      int64  `json:"size"`
	ThumbSize int64  `json:"-"`
	Width     uint16 `json:"width"`
	Height    uint16 `json:"height"`
	BucketID  uint64 `json:"-"`
}

// ImageMeta carries the mutable fields of a gallery image.
type ImageMeta struct {
	Title       string
	AltText     string
	Description string
	Category    string
}

// UploadImage writes the file to the object store first, then records the
// metadata row. A failed write leaves no row behind; a failed insert
// triggers a best-effort delete of the already written file.
func UploadImage(db *gorm.DB, store storage.StorageAPI, reader io.Reader, fileName string, albumID *uint64, meta ImageMeta) (GalleryImage, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return GalleryImage{}, storageError(err)
	}
	if len(data) == 0 {
		return GalleryImage{}, validationError("empty file")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	path := storage.LocationGallery + "/" + uuid.NewString() + ext
	size, err := store.Save(path, bytes.NewReader(data))
	if err != nil {
		return GalleryImage{}, storageError(err)
	}

	image := GalleryImage{
		Title:       meta.Title,
		AltText:     meta.AltText,
		Description: meta.Description,
		Category:    meta.Category,
		AlbumID:     albumID,
		Path:        path,
		Size:        size,
		BucketID:    store.GetBucket().ID,
	}
	// Thumbnail is a companion artifact; skip it if the image won't decode
	var thumbBuf bytes.Buffer
	if thumb, err := utils.CreateThumb(uint(config.THUMB_SIZE), bytes.NewReader(data), &thumbBuf); err == nil {
		thumbPath := storage.LocationGallery + "/thumbs/" + filepath.Base(path)
		if _, err = store.Save(thumbPath, &thumbBuf); err == nil {
			image.ThumbPath = thumbPath
			image.ThumbSize = thumb.ThumbSize
			image.Width = thumb.OldX
			image.Height = thumb.OldY
		}
	}

	if err := db.Create(&image).Error; err != nil {
		// Compensate for the orphaned file; failure here is logged only
		if delErr := store.Delete(path); delErr != nil {
			log.Printf("orphaned file %s could not be removed: %v", path, delErr)
		}
		if image.ThumbPath != "" {
			_ = store.Delete(image.ThumbPath)
		}
		return GalleryImage{}, repositoryError(err)
	}
	return image, nil
}

// UpdateImage mutates metadata fields only; the storage path is immutable.
func UpdateImage(db *gorm.DB, id uint64, albumID *uint64, meta ImageMeta) (GalleryImage, error) {
	var image GalleryImage
	if err := db.First(&image, id).Error; err != nil {
		return image, ErrNotFound
	}
	image.Title = meta.Title
	image.AltText = meta.AltText
	image.Description = meta.Description
	image.Category = meta.Category
	image.AlbumID = albumID
	if err := db.Save(&image).Error; err != nil {
		return image, repositoryError(err)
	}
	return image, nil
}

// DeleteImage removes the metadata row and clears the cover reference of
// any album that used this image as its cover. The file delete is a
// best-effort companion step.
func DeleteImage(db *gorm.DB, store storage.StorageAPI, id uint64) error {
	var image GalleryImage
	if err := db.First(&image, id).Error; err != nil {
		return ErrNotFound
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Album{}).Where("cover_image_id = ?", image.ID).Update("cover_image_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&GalleryImage{}, id).Error
	})
	if err != nil {
		return repositoryError(err)
	}
	if store != nil {
		if err := store.Delete(image.Path); err != nil {
			log.Printf("file %s could not be removed: %v", image.Path, err)
		}
		if image.ThumbPath != "" {
			_ = store.Delete(image.ThumbPath)
		}
	}
	return nil
}

// GetImages lists gallery images, optionally restricted to one album.
func GetImages(db *gorm.DB, albumID *uint64) ([]GalleryImage, error) {
	images := []GalleryImage{}
	query := db.Order("created_at DESC")
	if albumID != nil {
		query = query.Where("album_id = ?", *albumID)
	}
	if err := query.Find(&images).Error; err != nil {
		return nil, repositoryError(err)
	}
	return images, nil
}

func GetImageByID(db *gorm.DB, id uint64) (GalleryImage, error) {
	var image GalleryImage
	if err := db.First(&image, id).Error; err != nil {
		return image, ErrNotFound
	}
	return image, nil
}
