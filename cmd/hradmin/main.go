// hradmin is an operator tool for the hr-records database. The API exposes
// no account-creation endpoint, so new accounts are inserted directly:
//
//	hradmin -d postgres://... -u dquintero -p secret
//
// The database DSN falls back to the DATABASE_URI environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dquintero/hr-records/internal/config"
	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/store"
	"github.com/dquintero/hr-records/internal/utils"
	"github.com/dquintero/hr-records/models"
)

func main() {
	log := logger.NewLogger("hradmin")

	dsn := flag.String("d", os.Getenv("DATABASE_URI"), "PostgreSQL DSN")
	username := flag.String("u", "", "username of the new account")
	password := flag.String("p", "", "password of the new account")
	status := flag.String("status", models.StatusActive, "initial account status (active|inactive)")
	bcryptCost := flag.Int("bcrypt-cost", 0, "bcrypt cost factor, 0 means the library default")
	flag.Parse()

	if *dsn == "" || *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *status != models.StatusActive && *status != models.StatusInactive {
		log.Fatal().Str("status", *status).Msg("unknown account status")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{DSN: *dsn}}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	passwordHash, err := utils.HashPassword(*password, *bcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing password")
	}

	created, err := storages.UserRepository.CreateUser(ctx, models.User{
		Username:     *username,
		PasswordHash: passwordHash,
		Status:       *status,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Fatal().Str("username", *username).Msg("username already exists")
		}
		log.Fatal().Err(err).Msg("error creating account")
	}

	fmt.Printf("created account %d (%s, %s)\n", created.UserID, created.Username, created.Status)
}
