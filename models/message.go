package models

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// Triage states for inbound contact messages. Any state may be set from any
// other by explicit admin action; only unread -> read happens implicitly.
const (
	MessageStatusUnread  = "unread"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

type Message struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	FirstName string `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string `gorm:"type:varchar(100)" json:"last_name"`
	Email     string `gorm:"type:varchar(150)" json:"email"`
	Phone     string `gorm:"type:varchar(50)" json:"phone"`
	Body      string `gorm:"type:text" json:"body"`
	Status    string `gorm:"type:varchar(10)" json:"status"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validMessageStatus(status string) bool {
	return status == MessageStatusUnread || status == MessageStatusRead || status == MessageStatusReplied
}

// SubmitMessage records a contact-form submission. This is the only
// unauthenticated write in the system; new messages always start unread.
func SubmitMessage(db *gorm.DB, firstName, lastName, email, phone, body string) (Message, error) {
	message := Message{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Body:      strings.TrimSpace(body),
		Status:    MessageStatusUnread,
	}
	if message.FirstName == "" || message.LastName == "" || message.Body == "" {
		return message, validationError("first name, last name and message are required")
	}
	if !emailPattern.MatchString(message.Email) {
		return message, validationError("invalid email address")
	}
	if err := db.Create(&message).Error; err != nil {
		return message, repositoryError(err)
	}
	return message, nil
}

func GetMessages(db *gorm.DB) ([]Message, error) {
	messages := []Message{}
	if err := db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, repositoryError(err)
	}
	return messages, nil
}

// OpenMessage returns the message and, the first time it is opened, moves
// it from unread to read. Re-opening is a no-op.
func OpenMessage(db *gorm.DB, id uint64) (Message, error) {
	var message Message
	if err := db.First(&message, id).Error; err != nil {
		return message, ErrNotFound
	}
	if message.Status == MessageStatusUnread {
		message.Status = MessageStatusRead
		if err := db.Model(&message).Update("status", MessageStatusRead).Error; err != nil {
			return message, repositoryError(err)
		}
	}
	return message, nil
}

// SetMessageStatus overwrites the status with any of the three values.
func SetMessageStatus(db *gorm.DB, id uint64, status string) (Message, error) {
	if !validMessageStatus(status) {
		return Message{}, validationError("unknown status %q", status)
	}
	var message Message
	if err := db.First(&message, id).Error; err != nil {
		return message, ErrNotFound
	}
	message.Status = status
	if err := db.Save(&message).Error; err != nil {
		return message, repositoryError(err)
	}
	return message, nil
}

func DeleteMessage(db *gorm.DB, id uint64) error {
	result := db.Delete(&Message{}, id)
	if result.Error != nil {
		return repositoryError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
