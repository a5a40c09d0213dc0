// Command seed loads baseline and optional demo data into the database.
package main

import (
	"flag"
	"log"

	"deptsite/internal/config"
	"deptsite/internal/database"
	"deptsite/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	facultyCount := flag.Int("faculty", 0, "Number of random faculty members to create")
	researcherCount := flag.Int("researchers", 0, "Number of random researchers to create")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Baseline(db); err != nil {
		log.Fatalf("Baseline seeding failed: %v", err)
	}
	log.Println("Baseline data loaded")

	if *facultyCount > 0 || *researcherCount > 0 {
		f := seed.NewFactory(db)
		if err := f.Demo(*facultyCount, *researcherCount); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
		log.Printf("Demo data loaded: %d faculty, %d researchers", *facultyCount, *researcherCount)
	}
}
