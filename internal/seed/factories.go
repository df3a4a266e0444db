// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password shared by all seeded users.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	// hash is computed once; bcrypt per-user makes large seeds crawl.
	hash string
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	return &Factory{
		db:   db,
		hash: string(hashed),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:    fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:       gofakeit.Email(),
		Password:    f.hash,
		DisplayName: gofakeit.Name(),
		Bio:         gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post for the given author without persisting it,
// with a created_at spread over the past maxDays days.
func (f *Factory) BuildPost(author *models.User, maxDays int) *models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}

	age := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute

	return &models.Post{
		UserID:            author.ID,
		AuthorDisplayName: author.AuthorName(),
		AuthorUsername:    author.Username,
		Content:           shortContent(),
		CreatedAt:         time.Now().Add(-age),
	}
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment persists a comment by the given author on the given post.
func (f *Factory) CreateComment(author *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:            post.ID,
		UserID:            author.ID,
		AuthorDisplayName: author.AuthorName(),
		AuthorUsername:    author.Username,
		Content:           shortContent(),
		CreatedAt:         post.CreatedAt.Add(time.Duration(f.rng.Intn(72)) * time.Hour),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// shortContent generates a sentence that always fits the content limit.
func shortContent() string {
	content := gofakeit.Sentence(8 + gofakeit.Number(0, 12))
	if len(content) > models.MaxContentLen {
		content = content[:models.MaxContentLen]
	}
	return content
}
