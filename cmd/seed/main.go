// Seed tool: populates the blog with demo data.
// Creates categories, locations, a couple of users and a spread of posts
// (published, scheduled, hidden) with comments, so every listing has
// something to show.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"weblog/internal/config"
	"weblog/internal/core/category"
	"weblog/internal/core/comment"
	"weblog/internal/core/location"
	"weblog/internal/core/post"
	"weblog/internal/core/user"
)

func main() {
	var numPosts int
	var password string
	flag.IntVar(&numPosts, "posts", 30, "number of posts per user")
	flag.StringVar(&password, "password", "password", "password for the demo users")
	flag.Parse()

	config.InitLogger()
	config.Init()

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("seed: connect failed: %v", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&location.Location{},
		&post.Post{},
		&comment.Comment{},
	); err != nil {
		log.Fatalf("seed: migrate failed: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: hash failed: %v", err)
	}

	start := time.Now()

	users := []*user.User{
		{ID: uuid.Must(uuid.NewV4()), Username: "alice", FirstName: "Alice", Password: string(hashed)},
		{ID: uuid.Must(uuid.NewV4()), Username: "bob", FirstName: "Bob", Password: string(hashed)},
	}
	for _, u := range users {
		if err := db.Create(u).Error; err != nil {
			log.Fatalf("seed: user %s: %v", u.Username, err)
		}
	}

	categories := []*category.Category{
		{ID: uuid.Must(uuid.NewV4()), Title: "Travel", Description: "Trips and places", Slug: "travel", IsPublished: true},
		{ID: uuid.Must(uuid.NewV4()), Title: "Food", Description: "Recipes and restaurants", Slug: "food", IsPublished: true},
		{ID: uuid.Must(uuid.NewV4()), Title: "Drafts", Description: "Not public yet", Slug: "drafts", IsPublished: false},
	}
	for _, c := range categories {
		if err := db.Create(c).Error; err != nil {
			log.Fatalf("seed: category %s: %v", c.Slug, err)
		}
	}

	locations := []*location.Location{
		{ID: uuid.Must(uuid.NewV4()), Name: "Amsterdam", IsPublished: true},
		{ID: uuid.Must(uuid.NewV4()), Name: "Undisclosed", IsPublished: false},
	}
	for _, l := range locations {
		if err := db.Create(l).Error; err != nil {
			log.Fatalf("seed: location %s: %v", l.Name, err)
		}
	}

	now := time.Now()
	postCount := 0
	for _, u := range users {
		for i := 0; i < numPosts; i++ {
			p := &post.Post{
				ID:          uuid.Must(uuid.NewV4()),
				Title:       fmt.Sprintf("Post %d by %s", i+1, u.Username),
				Text:        fmt.Sprintf("Body of post %d.", i+1),
				PubDate:     now.Add(-time.Duration(i) * 24 * time.Hour),
				IsPublished: true,
				AuthorID:    u.ID,
				CategoryID:  &categories[i%len(categories)].ID,
				LocationID:  &locations[i%len(locations)].ID,
			}
			switch i % 10 {
			case 7:
				// Scheduled in the future.
				p.PubDate = now.Add(48 * time.Hour)
			case 8:
				// Hidden by the author.
				p.IsPublished = false
			}
			if err := db.Create(p).Error; err != nil {
				log.Fatalf("seed: post: %v", err)
			}
			postCount++

			if i%3 == 0 {
				other := users[(postCount)%len(users)]
				c := &comment.Comment{
					ID:       uuid.Must(uuid.NewV4()),
					Text:     fmt.Sprintf("Comment on post %d.", i+1),
					AuthorID: other.ID,
					PostID:   p.ID,
				}
				if err := db.Create(c).Error; err != nil {
					log.Fatalf("seed: comment: %v", err)
				}
			}
		}
	}

	log.Printf("seeded %d users, %d categories, %d posts in %s",
		len(users), len(categories), postCount, time.Since(start).Truncate(time.Millisecond))
}
