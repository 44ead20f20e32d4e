package models

import (
	"strings"

	"gorm.io/gorm"
)

type EventComment struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"created_at"`
	EventID   uint64 `gorm:"index" json:"event_id"`
	Event     Event  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint64 `json:"user_id"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Body      string `gorm:"type:text" json:"body"`
}

// CommentInfo is a comment annotated with its author, resolved at read time.
type CommentInfo struct {
	ID           uint64 `json:"id"`
	EventID      uint64 `json:"event_id"`
	UserID       uint64 `json:"user_id"`
	Body         string `json:"body"`
	CreatedAt    int64  `json:"created_at"`
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`
}

const anonymousAuthor = "Anonymous User"

// AddComment inserts a comment for an authenticated actor. Comments are
// never edited afterwards.
func AddComment(db *gorm.DB, eventID, userID uint64, body string) (EventComment, error) {
	if userID == 0 {
		return EventComment{}, ErrAuth
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return EventComment{}, validationError("comment body is empty")
	}
	comment := EventComment{
		EventID: eventID,
		UserID:  userID,
		Body:    body,
	}
	if err := db.Create(&comment).Error; err != nil {
		return comment, repositoryError(err)
	}
	return comment, nil
}

// GetComments returns the event's comments in chronological reading order,
// oldest first, each with the author's display name and avatar.
func GetComments(db *gorm.DB, eventID uint64) ([]CommentInfo, error) {
	rows, err := db.
		Table("event_comments").
		Select("event_comments.id, event_comments.event_id, event_comments.user_id, event_comments.body, event_comments.created_at, users.name, users.avatar_path").
		Joins("left join users on users.id = event_comments.user_id").
		Where("event_comments.event_id = ?", eventID).
		Order("event_comments.created_at ASC").
		Rows()
	if err != nil {
		return nil, repositoryError(err)
	}
	defer rows.Close()
	result := []CommentInfo{}
	for rows.Next() {
		info := CommentInfo{}
		var name, avatar *string
		if err = rows.Scan(&info.ID, &info.EventID, &info.UserID, &info.Body, &info.CreatedAt, &name, &avatar); err != nil {
			return nil, repositoryError(err)
		}
		if name == nil || *name == "" {
			info.AuthorName = anonymousAuthor
		} else {
			info.AuthorName = *name
		}
		if avatar != nil {
			info.AuthorAvatar = *avatar
		}
		result = append(result, info)
	}
	return result, nil
}

// DeleteComment removes a comment on behalf of its author or an admin.
func DeleteComment(db *gorm.DB, commentID, actorID uint64) error {
	if actorID == 0 {
		return ErrAuth
	}
	var comment EventComment
	if err := db.First(&comment, commentID).Error; err != nil {
		return ErrNotFound
	}
	if comment.UserID != actorID && !UserIsAdmin(db, actorID) {
		return ErrAuthorization
	}
	if err := db.Delete(&EventComment{}, commentID).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}
