package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is not set")
	}

	connector := storage.NewConnector(cfg.MongoURI)
	store := storage.NewStorageService(connector, cfg.MongoDatabase)
	svc := complaint.NewService(store, nil) // no notifications from the CLI

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer connector.Disconnect(ctx)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list | status <id> <new-status> | delete <id>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		complaints, err := svc.List(ctx)
		if err != nil {
			log.Fatalf("failed to list complaints: %v", err)
		}
		if len(complaints) == 0 {
			fmt.Println("No complaints.")
			return
		}
		for _, c := range complaints {
			fmt.Printf("%s  [%-11s]  %-8s  %-7s  %s  %s\n",
				c.ID.Hex(), c.Status, c.Category, c.Priority,
				c.DateSubmitted.Format("2006-01-02 15:04"), c.Title)
		}

	case "status":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin status <id> <new-status>")
			os.Exit(1)
		}
		updated, err := svc.UpdateStatus(ctx, os.Args[2], models.Status(os.Args[3]))
		if err != nil {
			log.Fatalf("failed to update status: %v", err)
		}
		fmt.Printf("Complaint %s is now %s\n", updated.ID.Hex(), updated.Status)

	case "delete":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin delete <id>")
			os.Exit(1)
		}
		if err := svc.Delete(ctx, os.Args[2]); err != nil {
			log.Fatalf("failed to delete complaint: %v", err)
		}
		fmt.Printf("Complaint %s deleted\n", os.Args[2])

	default:
		fmt.Printf("Unknown command %q\n", os.Args[1])
		os.Exit(1)
	}
}
