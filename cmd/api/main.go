package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/prayash42/GamingCommunity/internal/config"
	"github.com/prayash42/GamingCommunity/internal/database"
	"github.com/prayash42/GamingCommunity/internal/middleware"
	"github.com/prayash42/GamingCommunity/internal/modules/auth"
	"github.com/prayash42/GamingCommunity/internal/modules/events"
	"github.com/prayash42/GamingCommunity/internal/modules/ideas"
	"github.com/prayash42/GamingCommunity/internal/modules/media"
	"github.com/prayash42/GamingCommunity/internal/modules/portfolio"
	"github.com/prayash42/GamingCommunity/internal/modules/profile"
	"github.com/prayash42/GamingCommunity/internal/modules/projects"
	jwtsvc "github.com/prayash42/GamingCommunity/internal/pkg/jwt"
	"github.com/prayash42/GamingCommunity/internal/repository"
	"github.com/prayash42/GamingCommunity/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewCloudinaryStore(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.UploadFolder,
	)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	postRepo := repository.NewMediaPostRepository(db)
	eventRepo := repository.NewEventRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	collabRepo := repository.NewCollabRequestRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	profileHandler := profile.NewHandler(profile.NewService(userRepo))
	ideasHandler := ideas.NewHandler(ideas.NewService(ideaRepo))
	mediaHandler := media.NewHandler(media.NewService(postRepo))
	eventsHandler := events.NewHandler(events.NewService(eventRepo))
	projectsHandler := projects.NewHandler(projects.NewService(projectRepo, feedbackRepo, collabRepo))
	portfolioHandler := portfolio.NewHandler(portfolio.NewService(portfolioRepo, store))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))

	authHandler.RegisterRoutes(v1, protected)
	profileHandler.RegisterRoutes(v1, protected)
	ideasHandler.RegisterRoutes(v1, protected)
	mediaHandler.RegisterRoutes(v1, protected)
	eventsHandler.RegisterRoutes(v1, protected)
	projectsHandler.RegisterRoutes(v1, protected)
	portfolioHandler.RegisterRoutes(v1, protected)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
