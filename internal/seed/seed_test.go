package seed

import (
	"testing"

	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

func TestSeederRun(t *testing.T) {
	db := newSeedTestDB(t)

	seeder, err := NewSeeder(db)
	require.NoError(t, err)

	require.NoError(t, seeder.Run(Options{NumUsers: 5, NumPosts: 10, ShouldClean: true}))

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(10), postCount)

	// No self-follows and no duplicate edges.
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = following_id").
		Count(&selfFollows).Error)
	assert.Equal(t, int64(0), selfFollows)

	// Every post carries the author's snapshot.
	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	for _, p := range posts {
		assert.NotEmpty(t, p.AuthorUsername)
		assert.NotEmpty(t, p.Content)
		assert.LessOrEqual(t, len(p.Content), models.MaxContentLen*4)
	}
}

func TestSeederClearAll(t *testing.T) {
	db := newSeedTestDB(t)

	seeder, err := NewSeeder(db)
	require.NoError(t, err)

	require.NoError(t, seeder.Run(Options{NumUsers: 3, NumPosts: 5}))
	require.NoError(t, seeder.ClearAll())

	for _, model := range []any{&models.User{}, &models.Post{}, &models.Comment{}, &models.Like{}, &models.Follow{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestFactoryCreateUserOverrides(t *testing.T) {
	db := newSeedTestDB(t)

	factory, err := NewFactory(db)
	require.NoError(t, err)

	user, err := factory.CreateUser(func(u *models.User) {
		u.Username = "fixed_name"
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed_name", user.Username)
	assert.NotEmpty(t, user.Email)
	assert.NotEmpty(t, user.Password)
}
