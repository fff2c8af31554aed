package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/prayash42/GamingCommunity/internal/database"
	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/repository"
)

func main() {
	ctx := context.Background()

	db, err := database.Connect("gamesocio.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children before parents)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM project_feedback")
	db.Exec("DELETE FROM collaborator_requests")
	db.Exec("DELETE FROM portfolio_items")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM media_posts")
	db.Exec("DELETE FROM game_ideas")
	db.Exec("DELETE FROM profiles")

	users := repository.NewUserRepository(db)
	ideas := repository.NewIdeaRepository(db)
	posts := repository.NewMediaPostRepository(db)
	events := repository.NewEventRepository(db)
	projects := repository.NewProjectRepository(db)
	collabs := repository.NewCollabRequestRepository(db)
	items := repository.NewPortfolioRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	seedUsers := []struct {
		email    string
		username string
		bio      string
		skills   []string
	}{
		{"mira@gamesocio.dev", "mira_dev", "Solo dev, mostly roguelikes.", []string{"godot", "pixel-art"}},
		{"leo@gamesocio.dev", "leo_sound", "Composer and sound designer.", []string{"fmod", "music"}},
		{"sana@gamesocio.dev", "sana3d", "3D artist looking for jams.", []string{"blender", "unity"}},
	}

	created := make([]*domain.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		u := &domain.User{
			Email:        su.email,
			PasswordHash: string(hash),
			Username:     su.username,
			Bio:          su.bio,
			Skills:       su.skills,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed user failed:", err)
		}
		created = append(created, u)
	}
	log.Println("Users created: mira@gamesocio.dev / leo@gamesocio.dev / sana@gamesocio.dev (password123)")

	mira, leo, sana := created[0], created[1], created[2]

	// ================== IDEAS ==================
	log.Println("Creating game ideas...")
	for i, idea := range []*domain.GameIdea{
		{CreatorID: mira.ID, Title: "Gardener of the deep", Description: "Grow coral mazes that double as tower defense.", Tags: []string{"roguelike", "underwater"}},
		{CreatorID: leo.ID, Title: "Echo courier", Description: "Navigate a blind city by sound alone.", Tags: []string{"audio", "puzzle"}},
	} {
		if err := ideas.Create(ctx, idea); err != nil {
			log.Fatal("seed idea failed:", err)
		}
		log.Printf("  idea %d: %s", i+1, idea.Title)
	}

	// ================== MEDIA POSTS ==================
	log.Println("Creating media posts...")
	for _, p := range []*domain.MediaPost{
		{AuthorID: sana.ID, Title: "Dungeon tileset WIP", Body: "First pass at the crypt tiles.", MediaURL: "https://img.gamesocio.dev/tiles-wip.png", Tags: []string{"pixel-art"}},
		{AuthorID: mira.ID, Title: "Boss fight teaser", Body: "Thirty seconds of the kraken fight.", MediaURL: "https://img.gamesocio.dev/kraken.gif", Tags: []string{"devlog"}},
	} {
		if err := posts.Create(ctx, p); err != nil {
			log.Fatal("seed post failed:", err)
		}
	}

	// ================== EVENTS ==================
	log.Println("Creating events...")
	for _, e := range []*domain.Event{
		{OrganizerID: leo.ID, Title: "Autumn audio jam", Description: "48h jam, sound-first games.", Location: "online", StartsAt: time.Now().AddDate(0, 0, 14)},
		{OrganizerID: sana.ID, Title: "Playtest night", Description: "Bring a build, get feedback.", Location: "Berlin", StartsAt: time.Now().AddDate(0, 1, 0)},
	} {
		if err := events.Create(ctx, e); err != nil {
			log.Fatal("seed event failed:", err)
		}
	}

	// ================== PROJECTS ==================
	log.Println("Creating projects...")
	proj := &domain.Project{
		CreatorID:   mira.ID,
		Title:       "Tidebound",
		Description: "The coral tower defense, now a real project.",
		Tags:        []string{"roguelike", "godot"},
	}
	if err := projects.Create(ctx, proj); err != nil {
		log.Fatal("seed project failed:", err)
	}

	for i, fb := range []*domain.Feedback{
		{ProjectID: proj.ID, UserID: leo.ID, Rating: 5, Content: "Love the loop."},
		{ProjectID: proj.ID, UserID: sana.ID, Rating: 4, Content: "Art needs polish, mechanics are there."},
	} {
		if err := projects.AddRating(ctx, fb); err != nil {
			log.Fatal("seed feedback failed:", err)
		}
		log.Printf("  feedback %d: rating %d", i+1, fb.Rating)
	}

	if err := collabs.Create(ctx, &domain.CollaboratorRequest{
		ProjectID: proj.ID,
		UserID:    sana.ID,
		Message:   "Happy to take over the 3D side.",
		Status:    domain.CollabPending,
	}); err != nil {
		log.Fatal("seed collab request failed:", err)
	}

	// ================== PORTFOLIO ==================
	log.Println("Creating portfolio items...")
	item := &domain.PortfolioItem{
		UserID:      sana.ID,
		Title:       "Crypt tileset",
		Description: "Complete 16x16 dungeon set.",
	}
	if err := items.Create(ctx, item); err != nil {
		log.Fatal("seed portfolio item failed:", err)
	}
	if err := items.SetAttachment(ctx, item.ID, &domain.Attachment{
		Kind:        domain.AttachmentLink,
		URL:         "https://sana3d.itch.io/crypt-tileset",
		DisplayName: "https://sana3d.itch.io/crypt-tileset",
	}); err != nil {
		log.Fatal("seed attachment failed:", err)
	}

	fmt.Println()
	log.Println("Seed completed!")
	log.Println("Test accounts: mira@gamesocio.dev / leo@gamesocio.dev / sana@gamesocio.dev, password123")
}
