package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"communify/internal/models"
)

// Directory maps opaque external user ids to display names.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// Lookup returns the directory entry for userID, or ErrNotFound.
func (d *Directory) Lookup(userID string) (*models.User, error) {
	var user models.User
	err := d.db.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert writes a directory entry with replace-by-key semantics: writing an
// existing user_id overwrites its user_name. The name is not validated, the
// empty string is a legal display name.
func (d *Directory) Upsert(userID, userName string) (*models.User, error) {
	user := models.User{UserID: userID, UserName: userName}
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_name"}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Remove deletes the entry if present; removing an absent user is a no-op.
// Posts and comments referencing the user are left in place.
func (d *Directory) Remove(userID string) error {
	return d.db.Where("user_id = ?", userID).Delete(&models.User{}).Error
}
