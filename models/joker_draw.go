package models

import (
	"gorm.io/gorm"
)

// JokerDraw is the single current state of the joker-draw jackpot; every
// update also appends a JokerDrawHistory row in the same transaction, so
// past snapshots stay queryable without "take the latest" scans.
type JokerDraw struct {
	ID              uint64  `gorm:"primaryKey" json:"id"`
	UpdatedAt       int64   `json:"updated_at"`
	LastWinnerName  string  `gorm:"type:varchar(200)" json:"last_winner_name"`
	LastWinAmount   float64 `json:"last_win_amount"`
	CurrentJackpot  float64 `json:"current_jackpot"`
	WinnerImagePath string  `gorm:"type:varchar(300)" json:"winner_image_path"`
}

type JokerDrawHistory struct {
	ID              uint64  `gorm:"primaryKey" json:"id"`
	CreatedAt       int64   `json:"created_at"`
	WinnerName      string  `gorm:"type:varchar(200)" json:"winner_name"`
	WinAmount       float64 `json:"win_amount"`
	Jackpot         float64 `json:"jackpot"`
	WinnerImagePath string  `gorm:"type:varchar(300)" json:"winner_image_path"`
}

const jokerDrawRowID = 1

// CurrentJokerDraw returns the mutable current row, or ErrNotFound before
// the first update.
func CurrentJokerDraw(db *gorm.DB) (JokerDraw, error) {
	var draw JokerDraw
	if err := db.First(&draw, jokerDrawRowID).Error; err != nil {
		return draw, ErrNotFound
	}
	return draw, nil
}

// UpdateJokerDraw overwrites the current row and appends a history entry.
func UpdateJokerDraw(db *gorm.DB, winnerName string, winAmount, jackpot float64, winnerImagePath string) (JokerDraw, error) {
	if jackpot < 0 || winAmount < 0 {
		return JokerDraw{}, validationError("amounts cannot be negative")
	}
	draw := JokerDraw{
		ID:              jokerDrawRowID,
		LastWinnerName:  winnerName,
		LastWinAmount:   winAmount,
		CurrentJackpot:  jackpot,
		WinnerImagePath: winnerImagePath,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&draw).Error; err != nil {
			return err
		}
		history := JokerDrawHistory{
			WinnerName:      winnerName,
			WinAmount:       winAmount,
			Jackpot:         jackpot,
			WinnerImagePath: winnerImagePath,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return draw, repositoryError(err)
	}
	return draw, nil
}

func GetJokerDrawHistory(db *gorm.DB) ([]JokerDrawHistory, error) {
	history := []JokerDrawHistory{}
	if err := db.Order("id DESC").Find(&history).Error; err != nil {
		return nil, repositoryError(err)
	}
	return history, nil
}
