package models

import (
	"strings"

	"gorm.io/gorm"
)

type Result struct {
	ID            uint64       `gorm:"primaryKey" json:"id"`
	CreatedAt     int64        `json:"created_at"`
	UpdatedAt     int64        `json:"updated_at"`
	Title         string       `gorm:"type:varchar(300)" json:"title"`
	CompetitionID *uint64      `json:"competition_id"`
	Competition   *Competition `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	PlayedAt      int64        `json:"played_at"`
	Notes         string       `gorm:"type:text" json:"notes"`
	Items         []ResultItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

type ResultItem struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	ResultID uint64 `gorm:"index" json:"result_id"`
	Place    int    `json:"place"`
	Name     string `gorm:"type:varchar(200)" json:"name"`
	Score    string `gorm:"type:varchar(100)" json:"score"`
}

func CreateResult(db *gorm.DB, result Result) (Result, error) {
	result.ID = 0
	result.Title = strings.TrimSpace(result.Title)
	if result.Title == "" {
		return result, validationError("result title is required")
	}
	if err := db.Create(&result).Error; err != nil {
		return result, repositoryError(err)
	}
	return result, nil
}

// UpdateResult replaces the result's fields and its item rows wholesale.
func UpdateResult(db *gorm.DB, id uint64, updated Result) (Result, error) {
	updated.Title = strings.TrimSpace(updated.Title)
	if updated.Title == "" {
		return Result{}, validationError("result title is required")
	}
	var result Result
	if err := db.First(&result, id).Error; err != nil {
		return result, ErrNotFound
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		result.Title = updated.Title
		result.CompetitionID = updated.CompetitionID
		result.PlayedAt = updated.PlayedAt
		result.Notes = updated.Notes
		if err := tx.Save(&result).Error; err != nil {
			return err
		}
		if err := tx.Where("result_id = ?", id).Delete(&ResultItem{}).Error; err != nil {
			return err
		}
		for i := range updated.Items {
			updated.Items[i].ID = 0
			updated.Items[i].ResultID = id
		}
		if len(updated.Items) > 0 {
			if err := tx.Create(&updated.Items).Error; err != nil {
				return err
			}
		}
		result.Items = updated.Items
		return nil
	})
	if err != nil {
		return result, repositoryError(err)
	}
	return result, nil
}

func DeleteResult(db *gorm.DB, id uint64) error {
	var result Result
	if err := db.First(&result, id).Error; err != nil {
		return ErrNotFound
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("result_id = ?", id).Delete(&ResultItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Result{}, id).Error
	})
	if err != nil {
		return repositoryError(err)
	}
	return nil
}

func GetResults(db *gorm.DB) ([]Result, error) {
	results := []Result{}
	if err := db.Preload("Items").Order("played_at DESC").Find(&results).Error; err != nil {
		return nil, repositoryError(err)
	}
	return results, nil
}

func GetResultByID(db *gorm.DB, id uint64) (Result, error) {
	var result Result
	if err := db.Preload("Items").First(&result, id).Error; err != nil {
		return result, ErrNotFound
	}
	return result, nil
}
