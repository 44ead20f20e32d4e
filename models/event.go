package models

import (
	"strings"

	"clubserver/storage"

	"gorm.io/gorm"
)

const (
	EventCategoryMatch    = "match"
	EventCategoryTraining = "training"
	EventCategorySocial   = "social"
	EventCategoryOther    = "other"
)

type Event struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
	Title       string `gorm:"type:varchar(300)" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"type:varchar(300)" json:"location"`
	Category    string `gorm:"type:varchar(50)" json:"category"`
	StartsAt    int64  `json:"starts_at"`
	EndsAt      int64  `json:"ends_at"`
	ImagePath   string `gorm:"type:varchar(300)" json:"image_path"`
}

func validEventCategory(category string) bool {
	switch category {
	case EventCategoryMatch, EventCategoryTraining, EventCategorySocial, EventCategoryOther, "":
		return true
	}
	return false
}

func CreateEvent(db *gorm.DB, event Event) (Event, error) {
	event.ID = 0
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return event, validationError("event title is required")
	}
	if !validEventCategory(event.Category) {
		return event, validationError("unknown event category %q", event.Category)
	}
	if err := db.Create(&event).Error; err != nil {
		return event, repositoryError(err)
	}
	return event, nil
}

func UpdateEvent(db *gorm.DB, id uint64, updated Event) (Event, error) {
	updated.Title = strings.TrimSpace(updated.Title)
	if updated.Title == "" {
		return Event{}, validationError("event title is required")
	}
	if !validEventCategory(updated.Category) {
		return Event{}, validationError("unknown event category %q", updated.Category)
	}
	var event Event
	if err := db.First(&event, id).Error; err != nil {
		return event, ErrNotFound
	}
	event.Title = updated.Title
	event.Description = updated.Description
	event.Location = updated.Location
	event.Category = updated.Category
	event.StartsAt = updated.StartsAt
	event.EndsAt = updated.EndsAt
	if updated.ImagePath != "" {
		event.ImagePath = updated.ImagePath
	}
	if err := db.Save(&event).Error; err != nil {
		return event, repositoryError(err)
	}
	return event, nil
}

// DeleteEvent removes the event; likes and comments go with it through
// their FK constraints. The image file delete is best-effort.
func DeleteEvent(db *gorm.DB, store storage.StorageAPI, id uint64) error {
	var event Event
	if err := db.First(&event, id).Error; err != nil {
		return ErrNotFound
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&EventLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&EventComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Event{}, id).Error
	})
	if err != nil {
		return repositoryError(err)
	}
	DeleteContentFile(store, event.ImagePath)
	return nil
}

func GetEvents(db *gorm.DB) ([]Event, error) {
	events := []Event{}
	if err := db.Order("starts_at DESC").Find(&events).Error; err != nil {
		return nil, repositoryError(err)
	}
	return events, nil
}

func GetEventByID(db *gorm.DB, id uint64) (Event, error) {
	var event Event
	if err := db.First(&event, id).Error; err != nil {
		return event, ErrNotFound
	}
	return event, nil
}
