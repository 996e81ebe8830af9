package main

import (
	"encoding/json"
	"log"
	"os"

	"resumeflow/internal/config"
	"resumeflow/internal/models"
)

// Seeds the job_postings catalog from a JSON file so a development
// environment has something for the similarity search to resolve against.
//
// Usage: go run scripts/seed_postings.go postings.json
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <postings.json>", os.Args[0])
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read postings file: %v", err)
	}

	var postings []models.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		log.Fatalf("failed to parse postings file: %v", err)
	}

	if len(postings) == 0 {
		log.Println("no postings to seed")
		return
	}

	cfg := config.Load()
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	seeded := 0
	for _, posting := range postings {
		if posting.JobID == 0 {
			log.Printf("skipping posting without job_id: %q", posting.PositionTitle)
			continue
		}

		if err := db.Save(&posting).Error; err != nil {
			log.Printf("failed to seed posting %d: %v", posting.JobID, err)
			continue
		}
		seeded++
	}

	log.Printf("seeded %d/%d postings", seeded, len(postings))
}
