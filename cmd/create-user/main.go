package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"expedientes_app_go/config"
	"expedientes_app_go/db"
	"expedientes_app_go/models"
	"expedientes_app_go/repository"

	"github.com/google/uuid"
)

// create-user adds a user to the stored dataset; users are read-only through the API.
func main() {
	// Load configuration
	cfg := config.Load()
	ctx := context.Background()

	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New User ===")
	fmt.Println()

	name := prompt(reader, "Name: ")
	if name == "" {
		log.Fatal("Name is required")
	}

	email := prompt(reader, "Email: ")
	if email == "" {
		log.Fatal("Email is required")
	}

	role := strings.ToUpper(prompt(reader, "Role (ADMIN/LAWYER/ASSISTANT) [LAWYER]: "))
	if role == "" {
		role = models.RoleLawyer
	}
	if !models.IsValidRole(role) {
		log.Fatalf("Invalid role: %s", role)
	}

	repo := repository.New(ctx, store)
	user, created := repo.SeedUser(ctx, models.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Role:  role,
	})
	if !created {
		log.Fatalf("A user with email %s already exists (ID: %s)", email, user.ID)
	}

	fmt.Println()
	fmt.Println("✅ User created successfully!")
	fmt.Printf("   ID:    %s\n", user.ID)
	fmt.Printf("   Name:  %s\n", user.Name)
	fmt.Printf("   Email: %s\n", user.Email)
	fmt.Printf("   Role:  %s\n", user.Role)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
