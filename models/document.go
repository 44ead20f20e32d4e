package models

import (
	"strings"

	"clubserver/storage"

	"gorm.io/gorm"
)

type Document struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
	Title       string `gorm:"type:varchar(300)" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(100)" json:"category"`
	FileName    string `gorm:"type:varchar(300)" json:"file_name"`
	FilePath    string `gorm:"type:varchar(300)" json:"file_path"`
	FileSize    int64  `json:"file_size"`
}

func CreateDocument(db *gorm.DB, document Document) (Document, error) {
	document.ID = 0
	document.Title = strings.TrimSpace(document.Title)
	if document.Title == "" {
		return document, validationError("document title is required")
	}
	if document.FilePath == "" {
		return document, validationError("document file is required")
	}
	if err := db.Create(&document).Error; err != nil {
		return document, repositoryError(err)
	}
	return document, nil
}

// UpdateDocument changes descriptive fields; the stored file is replaced
// only when a new path is supplied (the old file goes away best-effort).
func UpdateDocument(db *gorm.DB, store storage.StorageAPI, id uint64, updated Document) (Document, error) {
	updated.Title = strings.TrimSpace(updated.Title)
	if updated.Title == "" {
		return Document{}, validationError("document title is required")
	}
	var document Document
	if err := db.First(&document, id).Error; err != nil {
		return document, ErrNotFound
	}
	oldPath := ""
	if updated.FilePath != "" && updated.FilePath != document.FilePath {
		oldPath = document.FilePath
		document.FilePath = updated.FilePath
		document.FileName = updated.FileName
		document.FileSize = updated.FileSize
	}
	document.Title = updated.Title
	document.Description = updated.Description
	document.Category = updated.Category
	if err := db.Save(&document).Error; err != nil {
		return document, repositoryError(err)
	}
	DeleteContentFile(store, oldPath)
	return document, nil
}

func DeleteDocument(db *gorm.DB, store storage.StorageAPI, id uint64) error {
	var document Document
	if err := db.First(&document, id).Error; err != nil {
		return ErrNotFound
	}
	if err := db.Delete(&Document{}, id).Error; err != nil {
		return repositoryError(err)
	}
	DeleteContentFile(store, document.FilePath)
	return nil
}

func GetDocuments(db *gorm.DB) ([]Document, error) {
	documents := []Document{}
	if err := db.Order("created_at DESC").Find(&documents).Error; err != nil {
		return nil, repositoryError(err)
	}
	return documents, nil
}

func GetDocumentByID(db *gorm.DB, id uint64) (Document, error) {
	var document Document
	if err := db.First(&document, id).Error; err != nil {
		return document, ErrNotFound
	}
	return document, nil
}
