// Command seed replaces a user's catalog with one of the demo wardrobes.
//
//	seed -username=admin -wardrobe=womens
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/closet-backend/internal/config"
	"github.com/tbourn/closet-backend/internal/repo"
	"github.com/tbourn/closet-backend/internal/seed"
	"github.com/tbourn/closet-backend/internal/sysutil"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	username := flag.String("username", "admin", "user whose catalog is replaced")
	wardrobe := flag.String("wardrobe", "mens", "wardrobe to load ("+strings.Join(seed.Names(), "|")+")")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	sysutil.InitLogger(cfg.LogLevel, true, nil)

	db, err := repo.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	n, err := seed.Replace(context.Background(), db, *username, *wardrobe)
	if err != nil {
		log.Error().Err(err).Str("username", *username).Str("wardrobe", *wardrobe).Msg("seed failed")
		os.Exit(1)
	}
	fmt.Printf("Successfully created %d %s clothing items for user %s\n", n, *wardrobe, *username)
}
