package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventLike has (event_id, user_id) as its primary key, so the at-most-one
// invariant holds at the schema level and racing toggles cannot produce
// duplicate rows.
type EventLike struct {
	CreatedAt int64  `json:"created_at"`
	EventID   uint64 `gorm:"primaryKey" json:"event_id"`
	Event     Event  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint64 `gorm:"primaryKey" json:"user_id"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// ToggleLike removes the pair's like if present, otherwise inserts it.
// Each arm is a single statement; the insert ignores a conflicting row.
func ToggleLike(db *gorm.DB, eventID, userID uint64) (liked bool, err error) {
	if userID == 0 {
		return false, ErrAuth
	}
	result := db.Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&EventLike{})
	if result.Error != nil {
		return false, repositoryError(result.Error)
	}
	if result.RowsAffected > 0 {
		return false, nil
	}
	like := EventLike{EventID: eventID, UserID: userID}
	result = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if result.Error != nil {
		return false, repositoryError(result.Error)
	}
	return true, nil
}

func LikeCount(db *gorm.DB, eventID uint64) (int64, error) {
	var count int64
	if err := db.Model(&EventLike{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
		return 0, repositoryError(err)
	}
	return count, nil
}

func HasLiked(db *gorm.DB, eventID, userID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var count int64
	if err := db.Model(&EventLike{}).Where("event_id = ? AND user_id = ?", eventID, userID).Count(&count).Error; err != nil {
		return false, repositoryError(err)
	}
	return count > 0, nil
}
