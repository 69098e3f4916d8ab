package main

import (
	"fmt"
	"os"

	"github.com/driftlab/wakewise/internal/config"
	"github.com/driftlab/wakewise/internal/seed"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := seed.Run(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	fmt.Println("Sample user IDs for testing:")
	fmt.Println("  11111111-1111-1111-1111-111111111111 (Europe/Amsterdam)")
	fmt.Println("  22222222-2222-2222-2222-222222222222 (America/New_York)")
	fmt.Println("  33333333-3333-3333-3333-333333333333 (Asia/Tokyo)")
}
