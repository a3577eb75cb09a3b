package store

import (
	"fmt"

	"gorm.io/gorm"

	"communify/internal/models"
)

// Mode selects the direction of a like adjustment.
type Mode string

const (
	Increment Mode = "Increment"
	Decrement Mode = "Decrement"
)

// ParseMode validates the wire form of a like mode. The two accepted values
// are case sensitive.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Increment, Decrement:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid like mode %q", s)
}

// Likes adjusts the counter column on post rows.
type Likes struct {
	db *gorm.DB
}

func NewLikes(db *gorm.DB) *Likes {
	return &Likes{db: db}
}

// Adjust applies a signed unit delta to post.likes in a single UPDATE. There
// is no existence check, updating zero rows is success, and there is no
// floor: the count may go negative.
func (l *Likes) Adjust(postID uint, mode Mode) error {
	delta := 1
	if mode == Decrement {
		delta = -1
	}
	return l.db.Model(&models.Post{}).
		Where("post_id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + ?", delta)).Error
}
