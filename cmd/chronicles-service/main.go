package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/celestial/celestial-chronicles/chroniclesservice"
	"github.com/celestial/celestial-chronicles/internal/platform/logger"
)

func main() {
	// Optional store-driver flag override (sqlite | jsonfile)
	storeDriver := flag.String("store-driver", "", "Override CHRONICLES_STORE_DRIVER (sqlite, jsonfile)")
	flag.Parse()

	log := logger.New("chronicles-service")

	// .env is optional; absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Info().Msg(".env loaded")
	}
	if *storeDriver != "" {
		if err := os.Setenv("CHRONICLES_STORE_DRIVER", *storeDriver); err != nil {
			log.Fatal().Err(err).Msg("Invalid store-driver override")
		}
	}

	if err := chroniclesservice.Run(); err != nil {
		os.Exit(1)
	}
}
