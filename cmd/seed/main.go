package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/htetarkarhlaing/share-book-api/internal/database"
	"github.com/htetarkarhlaing/share-book-api/internal/domain"
	"github.com/htetarkarhlaing/share-book-api/internal/repository"
)

// The bootstrap admin. Every other admin account is created through the
// admin-guarded register route, so a fresh database needs this one to exist.
const (
	defaultAdminLoginID  = "000000"
	defaultAdminName     = "admin"
	defaultAdminPassword = "000000"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "sharebook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	admins := repository.NewAdminRepository(db)

	exists, err := admins.ExistsByLoginID(ctx, defaultAdminLoginID)
	if err != nil {
		log.Fatal("admin lookup failed:", err)
	}
	if exists {
		log.Println("Default admin already present, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("password hash failed:", err)
	}

	admin := &domain.Admin{
		LoginID:      defaultAdminLoginID,
		Name:         defaultAdminName,
		PasswordHash: string(hash),
	}
	if err := admins.Create(ctx, admin); err != nil {
		log.Fatal("admin create failed:", err)
	}

	log.Println("Seed completed!")
	log.Printf("Default admin: %s / %s", defaultAdminLoginID, defaultAdminPassword)
}
