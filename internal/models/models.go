package models

import "time"

// User maps an external identity key to a display name. UserID is issued by
// the identity provider and never changes; UserName is free text and may be
// empty.
type User struct {
	UserID   string `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName string `gorm:"column:user_name" json:"user_name"`
}

func (User) TableName() string { return "user" }

type Post struct {
	PostID      uint      `gorm:"column:post_id;primaryKey;autoIncrement" json:"post_id"`
	UserID      string    `gorm:"column:user_id;not null" json:"user_id"`
	Title       string    `gorm:"column:title" json:"title"`
	Language    string    `gorm:"column:language" json:"language"`
	Data        string    `gorm:"column:data;type:text" json:"data"`
	Likes       int       `gorm:"column:likes;default:0" json:"likes"`
	ReportCount int       `gorm:"column:report_count;default:0" json:"report_count"`
	CreateAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (Post) TableName() string { return "post" }

type Comment struct {
	CommentID uint      `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	PostID    uint      `gorm:"column:post_id;not null" json:"post_id"`
	UserID    string    `gorm:"column:user_id;not null" json:"user_id"`
	Data      string    `gorm:"column:data;type:text" json:"data"`
	CreateAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (Comment) TableName() string { return "comment" }

// PostView is the wire shape of a post: the stored row plus the author's
// current display name. Names are not stored on the post row, so reads join
// the user table and an author removed from the directory shows up as "".
type PostView struct {
	PostID      uint      `json:"post_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Title       string    `json:"title"`
	Language    string    `json:"language"`
	Data        string    `json:"data"`
	Likes       int       `json:"likes"`
	ReportCount int       `json:"report_count"`
	CreateAt    time.Time `json:"create_at"`
}

type CommentView struct {
	CommentID uint      `json:"comment_id"`
	PostID    uint      `json:"post_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Data      string    `json:"data"`
	CreateAt  time.Time `json:"create_at"`
}
