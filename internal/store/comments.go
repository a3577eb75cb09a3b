package store

import (
	"errors"

	"gorm.io/gorm"

	"communify/internal/models"
)

const commentColumns = `comment.comment_id, comment.post_id, comment.user_id, ` +
	`COALESCE("user".user_name, '') AS user_name, comment.data, comment.create_at`

// Comments is the append-only comment component: comments are listed per
// post and inserted, never updated or deleted.
type Comments struct {
	db  *gorm.DB
	dir *Directory
}

func NewComments(db *gorm.DB, dir *Directory) *Comments {
	return &Comments{db: db, dir: dir}
}

// ListByPost returns the comments on a post, newest first. An unknown post
// id simply yields an empty list.
func (c *Comments) ListByPost(postID uint) ([]models.CommentView, error) {
	var comments []models.CommentView
	err := c.db.Table("comment").
		Select(commentColumns).
		Joins(`LEFT JOIN "user" ON "user".user_id = comment.user_id`).
		Where("comment.post_id = ?", postID).
		Order("comment.comment_id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Create appends a comment authored by an existing directory user. The post
// id is stored as given; commenting on a missing post is not an error.
func (c *Comments) Create(postID uint, userID, data string) (*models.CommentView, error) {
	user, err := c.dir.Lookup(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comment := models.Comment{PostID: postID, UserID: userID, Data: data}
	if err := c.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &models.CommentView{
		CommentID: comment.CommentID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		UserName:  user.UserName,
		Data:      comment.Data,
		CreateAt:  comment.CreateAt,
	}, nil
}
