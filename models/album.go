package models

import (
	"strings"

	"gorm.io/gorm"
)

type Album struct {
	ID           uint64        `gorm:"primaryKey" json:"id"`
	CreatedAt    int64         `json:"created_at"`
	UpdatedAt    int64         `json:"updated_at"`
	Title        string        `gorm:"type:varchar(300)" json:"title"`
	Description  string        `gorm:"type:text" json:"description"`
	CoverImageID *uint64       `json:"cover_image_id"`
	CoverImage   *GalleryImage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cover_image,omitempty"`
}

// CreateAlbum starts an album with no cover.
func CreateAlbum(db *gorm.DB, title, description string) (Album, error) {
	album := Album{
		Title:       strings.TrimSpace(title),
		Description: description,
	}
	if album.Title == "" {
		return album, validationError("album title is required")
	}
	if err := db.Create(&album).Error; err != nil {
		return album, repositoryError(err)
	}
	return album, nil
}

func UpdateAlbum(db *gorm.DB, id uint64, title, description string) (Album, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Album{}, validationError("album title is required")
	}
	var album Album
	if err := db.First(&album, id).Error; err != nil {
		return album, ErrNotFound
	}
	album.Title = title
	album.Description = description
	if err := db.Save(&album).Error; err != nil {
		return album, repositoryError(err)
	}
	return album, nil
}

// SetAlbumCover designates one of the album's own images as its cover.
// The image is addressed by its storage path.
func SetAlbumCover(db *gorm.DB, albumID uint64, imagePath string) error {
	var image GalleryImage
	if err := db.First(&image, "path = ?", imagePath).Error; err != nil {
		return ErrNotFound
	}
	if image.AlbumID == nil || *image.AlbumID != albumID {
		return validationError("image does not belong to album %d", albumID)
	}
	result := db.Model(&Album{}).Where("id = ?", albumID).Update("cover_image_id", image.ID)
	if result.Error != nil {
		return repositoryError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAlbumCover returns the album's cover image, or ErrNotFound when the
// album is missing or has no cover assigned.
func GetAlbumCover(db *gorm.DB, albumID uint64) (GalleryImage, error) {
	var album Album
	if err := db.First(&album, albumID).Error; err != nil {
		return GalleryImage{}, ErrNotFound
	}
	if album.CoverImageID == nil {
		return GalleryImage{}, ErrNotFound
	}
	var image GalleryImage
	if err := db.First(&image, *album.CoverImageID).Error; err != nil {
		return GalleryImage{}, ErrNotFound
	}
	return image, nil
}

// DeleteAlbum unassigns all member images (album reference goes to null)
// and removes the album row. Image rows and their files always survive.
func DeleteAlbum(db *gorm.DB, albumID uint64) error {
	var album Album
	if err := db.First(&album, albumID).Error; err != nil {
		return ErrNotFound
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&GalleryImage{}).Where("album_id = ?", albumID).Update("album_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&Album{}, albumID).Error
	})
	if err != nil {
		return repositoryError(err)
	}
	return nil
}

func GetAlbums(db *gorm.DB) ([]Album, error) {
	albums := []Album{}
	if err := db.Preload("CoverImage").Order("created_at DESC").Find(&albums).Error; err != nil {
		return nil, repositoryError(err)
	}
	return albums, nil
}

func GetAlbumByID(db *gorm.DB, id uint64) (Album, error) {
	var album Album
	if err := db.Preload("CoverImage").First(&album, id).Error; err != nil {
		return album, ErrNotFound
	}
	return album, nil
}
