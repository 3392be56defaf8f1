package main

import (
	"context"
	"log"
	"os"

	"focusflow/internal/db"
	"focusflow/internal/domain"
	"focusflow/internal/repository"
	"focusflow/internal/service"
)

func main() {
	// expects DATABASE_URL env var
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	tasks := repository.NewTaskRepository(pool)
	ctx := context.Background()

	email := "demo@focusflow.app"

	// try to find existing user
	existing, err := users.GetByEmail(ctx, email)
	var u *domain.User
	if err == nil {
		u = existing
		log.Printf("user already exists id=%s\n", u.ID)
	} else {
		u = &domain.User{
			Name:  "Demo User",
			Email: email,
		}

		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create user failed: %v", err)
		}

		log.Printf("user created id=%s referral_code=%s\n", u.ID, u.ReferralCode)

		for _, title := range []string{"Plan the week", "Write project brief", "Review pull requests"} {
			t := &domain.Task{UserID: u.ID, Title: title}
			if err := tasks.Create(ctx, t); err != nil {
				log.Fatalf("create task failed: %v", err)
			}
		}
		log.Println("seeded 3 pending tasks")
	}

	// verify read
	u2, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("get by email failed: %v", err)
	}
	log.Printf("fetched user id=%s name=%s level=%d total_xp=%d\n", u2.ID, u2.Name, u2.Level, u2.TotalXP)

	// initialize JWT and print token
	service.InitJWT()
	token, err := service.GenerateJWT(u2.ID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
