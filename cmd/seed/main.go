package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth"
	authRepository "portfolio-backend/internal/domains/auth/repository"
	"portfolio-backend/internal/domains/profile"
	profileRepository "portfolio-backend/internal/domains/profile/repository"
	"portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/pkg/logger"
)

// Seeds the admin account and a default profile so a fresh install has
// something to log in with. Running it twice is safe.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger.Init("development")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("failed to load database config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	if err := seedAdmin(ctx, db, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	if err := seedProfile(ctx, db, cfg); err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}

	logger.Info("seed complete", map[string]interface{}{"admin": cfg.Admin.Email})
}

func seedAdmin(ctx context.Context, db *database.PostgresDB, cfg *config.Config) error {
	repo := authRepository.NewPostgresRepository(db.Pool)

	exists, err := repo.ExistsByEmail(ctx, cfg.Admin.Email)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("admin user already exists, skipping", map[string]interface{}{"email": cfg.Admin.Email})
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), 12)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = repo.Create(ctx, &auth.User{
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil && !errors.Is(err, auth.ErrEmailAlreadyExists) {
		return err
	}

	logger.Info("admin user created", map[string]interface{}{"email": cfg.Admin.Email})
	return nil
}

func seedProfile(ctx context.Context, db *database.PostgresDB, cfg *config.Config) error {
	repo := profileRepository.NewPostgresRepository(db.Pool, cache.NewNoop())

	current, err := repo.GetCurrentProfile(ctx)
	if err != nil {
		return err
	}
	if current != nil {
		logger.Info("profile already configured, skipping", nil)
		return nil
	}

	_, err = repo.UpsertProfile(ctx, profile.CreateProfileRequest{
		Greeting:         "Hi, I'm",
		Name:             "Your Name",
		Title:            "Full Stack Developer",
		Description:      "I build things for the web.",
		AvailableForWork: true,
	})
	return err
}
