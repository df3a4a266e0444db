package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with realistic demo data: users, a follow
// graph, posts and engagement (likes and comments).
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) (*Seeder, error) {
	factory, err := NewFactory(db)
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, factory: factory}, nil
}

// ClearAll deletes all seeded data. Engagement records go first so no
// orphaned likes or comments survive a partial failure.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// SeedUsers creates n users and returns them.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))
	return users, nil
}

// SeedFollowGraph creates a follow edge set over the users. Each user follows
// a random subset of the others; self-follows are never generated.
func (s *Seeder) SeedFollowGraph(users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	edges := 0
	for _, follower := range users {
		count := s.factory.rng.Intn(len(users) / 2)
		for _, target := range pickOthers(s.factory, users, follower, count) {
			res := s.db.Exec(
				`INSERT INTO follows (follower_id, following_id, created_at)
				 VALUES (?, ?, CURRENT_TIMESTAMP)
				 ON CONFLICT (follower_id, following_id) DO NOTHING`,
				follower.ID, target.ID,
			)
			if res.Error != nil {
				return edges, fmt.Errorf("follow edge: %w", res.Error)
			}
			edges += int(res.RowsAffected)
		}
	}
	log.Printf("seeded %d follow edges", edges)
	return edges, nil
}

// SeedPosts creates n posts spread across the users and returns them.
func (s *Seeder) SeedPosts(users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		posts = append(posts, s.factory.BuildPost(author, 90))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return nil, fmt.Errorf("create posts: %w", err)
	}
	log.Printf("seeded %d posts", len(posts))
	return posts, nil
}

// SeedEngagement adds likes and comments to the posts. Likes are inserted
// through the same conflict-ignoring statement the API uses, so the ledger
// stays a proper set.
func (s *Seeder) SeedEngagement(users []*models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	likes, comments := 0, 0
	for _, post := range posts {
		for _, fan := range pickOthers(s.factory, users, nil, s.factory.rng.Intn(len(users)/2+1)) {
			res := s.db.Exec(
				`INSERT INTO likes (post_id, user_id, created_at)
				 VALUES (?, ?, CURRENT_TIMESTAMP)
				 ON CONFLICT (post_id, user_id) DO NOTHING`,
				post.ID, fan.ID,
			)
			if res.Error != nil {
				return fmt.Errorf("like: %w", res.Error)
			}
			likes += int(res.RowsAffected)
		}

		for i := 0; i < s.factory.rng.Intn(4); i++ {
			author := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(author, post); err != nil {
				return fmt.Errorf("comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("seeded %d likes and %d comments", likes, comments)
	return nil
}

// Run executes a full seeding pass per the options.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return err
	}
	if _, err := s.SeedFollowGraph(users); err != nil {
		return err
	}
	posts, err := s.SeedPosts(users, opts.NumPosts)
	if err != nil {
		return err
	}
	return s.SeedEngagement(users, posts)
}

// pickOthers returns up to count distinct users, excluding the given one.
func pickOthers(f *Factory, users []*models.User, exclude *models.User, count int) []*models.User {
	available := len(users)
	if exclude != nil {
		available--
	}
	if count > available {
		count = available
	}

	picked := make([]*models.User, 0, count)
	seen := make(map[uint]bool)
	if exclude != nil {
		seen[exclude.ID] = true
	}

	for len(picked) < count {
		candidate := users[f.rng.Intn(len(users))]
		if seen[candidate.ID] {
			continue
		}
		seen[candidate.ID] = true
		picked = append(picked, candidate)
	}
	return picked
}
