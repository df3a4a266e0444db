package repository

import (
	"fmt"
	"testing"

	"ripple/internal/database"
	"ripple/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database migrated with the full
// schema. Each test gets its own database, named after the test to keep the
// shared-cache connections isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// seedUser inserts a user with the given username and returns it.
func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    username + "@example.com",
		Password: "hashed-password",
		Username: username,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return user
}

// seedPost inserts a post authored by the given user and returns it.
func seedPost(t *testing.T, db *gorm.DB, author *models.User, content string) *models.Post {
	t.Helper()

	post := &models.Post{
		UserID:            author.ID,
		AuthorDisplayName: author.AuthorName(),
		AuthorUsername:    author.Username,
		Content:           content,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}
