package main

// Seeds a local database with an admin account and a few pieces of
// equipment so the services are usable right after startup.

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"bikerental/internal/database"
	"bikerental/internal/domain"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Equipment{}, &domain.Rental{}, &domain.StatusSyncTask{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@kamk.fi"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var count int64
	db.Model(&domain.User{}).Where("email = ?", adminEmail).Count(&count)
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin password")
		}
		admin := &domain.User{
			Name:         "Admin",
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
		}
		if err := db.Create(admin).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to create admin user")
		}
		log.Info().Str("email", adminEmail).Msg("admin user created")
	} else {
		log.Info().Str("email", adminEmail).Msg("admin user already exists")
	}

	db.Model(&domain.Equipment{}).Count(&count)
	if count == 0 {
		items := []domain.Equipment{
			{Type: "bike", Status: domain.EquipmentAvailable, Location: "campus", HourlyRate: 4.0},
			{Type: "bike", Status: domain.EquipmentAvailable, Location: "dorm", HourlyRate: 4.0},
			{Type: "scooter", Status: domain.EquipmentAvailable, Location: "campus", HourlyRate: 6.5},
			{Type: "ski", Status: domain.EquipmentAvailable, Location: "dorm", HourlyRate: 3.0},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to seed equipment")
		}
		log.Info().Int("count", len(items)).Msg("equipment seeded")
	} else {
		log.Info().Msg("equipment already present, skipping")
	}
}
