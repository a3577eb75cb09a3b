package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"communify/internal/config"
	"communify/internal/models"
)

// Connect opens the process-wide database handle. PostgreSQL is used when
// DB_HOST is configured; otherwise a local SQLite file keeps the server
// runnable without a database server.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}

// Migrate creates or updates the user, post and comment tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{})
}
