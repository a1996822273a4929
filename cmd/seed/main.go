package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobdock/internal/config"
	"jobdock/internal/db"
	"jobdock/internal/model"
	"jobdock/internal/repository"
)

//go:embed seed_data.json
var seedData []byte

// SeedUser is a demo user entry from the fixture.
type SeedUser struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ExperienceLevel string `json:"experience_level"`
}

// SeedJob is a demo saved-job entry from the fixture.
type SeedJob struct {
	OwnerEmail string `json:"owner_email"`
	ID         string `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	URL        string `json:"url"`
	Salary     string `json:"salary"`
}

// SeedFixture is the embedded fixture layout.
type SeedFixture struct {
	Users     []SeedUser `json:"users"`
	SavedJobs []SeedJob  `json:"saved_jobs"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.SavedJob{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	var fixture SeedFixture
	if err := json.Unmarshal(seedData, &fixture); err != nil {
		log.Fatalf("Failed to parse seed fixture: %v", err)
	}
	log.Printf("Fixture loaded: %d users, %d saved jobs", len(fixture.Users), len(fixture.SavedJobs))

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	savedJobRepo := repository.NewSavedJobRepository(gormDB)

	created, skipped := seedUsers(ctx, userRepo, fixture.Users)
	log.Printf("Users: %d created, %d already present", created, skipped)

	created, skipped = seedSavedJobs(ctx, savedJobRepo, fixture.SavedJobs)
	log.Printf("Saved jobs: %d created, %d already present", created, skipped)

	log.Println("Seed completed successfully!")
}

// seedUsers inserts fixture users, skipping emails that already exist.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []SeedUser) (created, skipped int) {
	for _, item := range users {
		if _, err := repo.FindByEmail(ctx, item.Email); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error checking user %s: %v", item.Email, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing password for %s: %v", item.Email, err)
		}

		user := &model.User{
			Username:        item.Username,
			Email:           item.Email,
			PasswordHash:    string(hashed),
			ExperienceLevel: item.ExperienceLevel,
		}
		if err := repo.Create(ctx, user); err != nil {
			log.Fatalf("Error creating user %s: %v", item.Email, err)
		}
		created++
	}
	return created, skipped
}

// seedSavedJobs inserts fixture bookmarks, skipping pairs that already exist.
func seedSavedJobs(ctx context.Context, repo repository.SavedJobRepository, jobs []SeedJob) (created, skipped int) {
	for _, item := range jobs {
		if _, err := repo.FindByOwnerAndJobID(ctx, item.OwnerEmail, item.ID); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error checking saved job %s/%s: %v", item.OwnerEmail, item.ID, err)
		}

		salary := decimal.Zero
		if item.Salary != "" {
			parsed, err := decimal.NewFromString(item.Salary)
			if err != nil {
				log.Printf("Skipping saved job %s with invalid salary: %s", item.ID, item.Salary)
				skipped++
				continue
			}
			salary = parsed
		}

		job := &model.SavedJob{
			OwnerEmail: item.OwnerEmail,
			JobID:      item.ID,
			Title:      item.Title,
			Company:    item.Company,
			Location:   item.Location,
			URL:        item.URL,
			Salary:     salary,
		}
		if err := repo.Create(ctx, job); err != nil {
			log.Fatalf("Error creating saved job %s/%s: %v", item.OwnerEmail, item.ID, err)
		}
		created++
	}
	return created, skipped
}
