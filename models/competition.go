package models

import (
	"strings"

	"clubserver/storage"

	"gorm.io/gorm"
)

const (
	CompetitionStatusUpcoming  = "upcoming"
	CompetitionStatusActive    = "active"
	CompetitionStatusCompleted = "completed"
)

type Competition struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
	Title       string `gorm:"type:varchar(300)" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Season      string `gorm:"type:varchar(50)" json:"season"`
	Status      string `gorm:"type:varchar(20)" json:"status"`
	StartsAt    int64  `json:"starts_at"`
	EndsAt      int64  `json:"ends_at"`
	ImagePath   string `gorm:"type:varchar(300)" json:"image_path"`
}

func validCompetitionStatus(status string) bool {
	switch status {
	case CompetitionStatusUpcoming, CompetitionStatusActive, CompetitionStatusCompleted, "":
		return true
	}
	return false
}

func CreateCompetition(db *gorm.DB, competition Competition) (Competition, error) {
	competition.ID = 0
	competition.Title = strings.TrimSpace(competition.Title)
	if competition.Title == "" {
		return competition, validationError("competition title is required")
	}
	if !validCompetitionStatus(competition.Status) {
		return competition, validationError("unknown competition status %q", competition.Status)
	}
	if competition.Status == "" {
		competition.Status = CompetitionStatusUpcoming
	}
	if err := db.Create(&competition).Error; err != nil {
		return competition, repositoryError(err)
	}
	return competition, nil
}

func UpdateCompetition(db *gorm.DB, id uint64, updated Competition) (Competition, error) {
	updated.Title = strings.TrimSpace(updated.Title)
	if updated.Title == "" {
		return Competition{}, validationError("competition title is required")
	}
	if !validCompetitionStatus(updated.Status) {
		return Competition{}, validationError("unknown competition status %q", updated.Status)
	}
	var competition Competition
	if err := db.First(&competition, id).Error; err != nil {
		return competition, ErrNotFound
	}
	competition.Title = updated.Title
	competition.Description = updated.Description
	competition.Season = updated.Season
	if updated.Status != "" {
		competition.Status = updated.Status
	}
	competition.StartsAt = updated.StartsAt
	competition.EndsAt = updated.EndsAt
	if updated.ImagePath != "" {
		competition.ImagePath = updated.ImagePath
	}
	if err := db.Save(&competition).Error; err != nil {
		return competition, repositoryError(err)
	}
	return competition, nil
}

func DeleteCompetition(db *gorm.DB, store storage.StorageAPI, id uint64) error {
	var competition Competition
	if err := db.First(&competition, id).Error; err != nil {
		return ErrNotFound
	}
	if err := db.Delete(&Competition{}, id).Error; err != nil {
		return repositoryError(err)
	}
	DeleteContentFile(store, competition.ImagePath)
	return nil
}

func GetCompetitions(db *gorm.DB) ([]Competition, error) {
	competitions := []Competition{}
	if err := db.Order("starts_at DESC").Find(&competitions).Error; err != nil {
		return nil, repositoryError(err)
	}
	return competitions, nil
}

func GetCompetitionByID(db *gorm.DB, id uint64) (Competition, error) {
	var competition Competition
	if err := db.First(&competition, id).Error; err != nil {
		return competition, ErrNotFound
	}
	return competition, nil
}
