// Package seed creates demo data for development databases.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"scribe/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control how much demo data is generated.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	Password        string
}

// DefaultOptions returns a small, fast demo set.
func DefaultOptions() Options {
	return Options{
		Users:           5,
		PostsPerUser:    3,
		CommentsPerPost: 2,
		Password:        "demo1234",
	}
}

// Run populates the database with fake users, posts, and comments. All demo
// accounts share the same password so they can be logged into by hand.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hashed, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	var users []*models.User
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Nickname: fmt.Sprintf("%s%d", gofakeit.Username(), r.Intn(1000)),
			Password: string(hashed),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	var posts []*models.Post
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := &models.Post{
				UserID:  user.ID,
				Title:   gofakeit.Sentence(5),
				Content: gofakeit.Paragraph(1, 3, 5, "\n"),
				Likes:   r.Intn(50),
				// realistic created_at spread
				CreatedAt: time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour),
			}
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	for _, post := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			commenter := users[r.Intn(len(users))]
			comment := &models.Comment{
				PostID:    post.ID,
				UserID:    commenter.ID,
				Comment:   gofakeit.Sentence(10),
				CreatedAt: post.CreatedAt.Add(time.Duration(r.Intn(72)) * time.Hour),
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d posts, %d comments",
		len(users), len(posts), len(posts)*opts.CommentsPerPost)
	return nil
}
