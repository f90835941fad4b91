// Command generate_seed populates a database with randomized sample data.
// Usage: go run cmd/generate_seed/main.go [-db path/to/librarian.db] [-runs n]
package main

import (
	"flag"
	"log"

	"github.com/openshelf/librarian/internal/config"
	"github.com/openshelf/librarian/internal/database"
	"github.com/openshelf/librarian/internal/seed"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the database file")
	runs := flag.Int("runs", 1, "number of seed batches to generate")
	flag.Parse()

	log.Printf("Seeding database at %s...", *dbPath)

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	seeder := seed.NewSeeder(db.DB)

	total := seed.Result{}
	for i := 0; i < *runs; i++ {
		result, err := seeder.Seed()
		if err != nil {
			log.Fatalf("Seed run %d failed: %v", i+1, err)
		}
		total.Publishers += result.Publishers
		total.Authors += result.Authors
		total.Books += result.Books
		total.Branches += result.Branches
		total.Members += result.Members
		total.Copies += result.Copies
		total.Loans += result.Loans
	}

	log.Printf("Seed completed: %+v", total)
}
