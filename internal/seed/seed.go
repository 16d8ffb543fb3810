// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gsvblog/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with demo accounts, posts, comments and likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	factory := NewFactory(db)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[rnd.Intn(len(users))]
		posts = append(posts, factory.BuildPost(author))
	}
	if err := factory.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	comments := 0
	for _, post := range posts {
		for i := rnd.Intn(4); i > 0; i-- {
			commenter := users[rnd.Intn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("created %d comments", comments)

	// Each (post, user) pair is liked at most once; the unique index allows
	// no duplicates, so pick pairs without replacement.
	likes := 0
	for _, post := range posts {
		for _, idx := range rnd.Perm(len(users))[:rnd.Intn(len(users)+1)] {
			if _, err := factory.CreateLike(users[idx], post); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			likes++
		}
	}
	log.Printf("created %d likes", likes)

	log.Println("Seeding complete")
	return nil
}

// clearData removes all rows, dependents first so foreign keys hold
// throughout.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
