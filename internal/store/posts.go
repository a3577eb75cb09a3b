package store

import (
	"errors"

	"gorm.io/gorm"

	"communify/internal/models"
)

// PREVIEW_LENGTH is how many characters of a post body the listing returns.
const PREVIEW_LENGTH = 35

// postColumns projects the post row plus the author's current display name.
// The user table is joined on every read so renames show up immediately; a
// deleted author degrades to the empty name. "user" needs quoting because it
// is a reserved word in PostgreSQL.
const postColumns = `post.post_id, post.user_id, COALESCE("user".user_name, '') AS user_name, ` +
	`post.title, post.language, post.data, post.likes, post.report_count, post.create_at`

// Posts is the post CRUD component. Creates resolve the author through the
// directory first.
type Posts struct {
	db  *gorm.DB
	dir *Directory
}

func NewPosts(db *gorm.DB, dir *Directory) *Posts {
	return &Posts{db: db, dir: dir}
}

// List returns every post, newest first, with data cut down to
// PREVIEW_LENGTH characters.
func (p *Posts) List() ([]models.PostView, error) {
	var posts []models.PostView
	err := p.db.Table("post").
		Select(postColumns).
		Joins(`LEFT JOIN "user" ON "user".user_id = post.user_id`).
		Order("post.post_id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Data = truncate(posts[i].Data, PREVIEW_LENGTH)
	}
	return posts, nil
}

// Fetch returns a single post with the full body, or ErrNotFound.
func (p *Posts) Fetch(postID uint) (*models.PostView, error) {
	var post models.PostView
	err := p.db.Table("post").
		Select(postColumns).
		Joins(`LEFT JOIN "user" ON "user".user_id = post.user_id`).
		Where("post.post_id = ?", postID).
		Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a post for an existing directory user and returns its view.
// The lookup and the insert are separate statements; the view keeps whatever
// name the lookup saw.
func (p *Posts) Create(userID, title, language, data string) (*models.PostView, error) {
	user, err := p.dir.Lookup(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	post := models.Post{
		UserID:   userID,
		Title:    title,
		Language: language,
		Data:     data,
	}
	if err := p.db.Create(&post).Error; err != nil {
		return nil, err
	}

	return &models.PostView{
		PostID:      post.PostID,
		UserID:      post.UserID,
		UserName:    user.UserName,
		Title:       post.Title,
		Language:    post.Language,
		Data:        post.Data,
		Likes:       post.Likes,
		ReportCount: post.ReportCount,
		CreateAt:    post.CreateAt,
	}, nil
}

// Delete removes the post matching the (user_id, post_id) pair. A pair that
// matches nothing still counts as success.
func (p *Posts) Delete(userID string, postID uint) error {
	return p.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Post{}).Error
}

// truncate cuts s to at most n characters without splitting a multi-byte
// rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
