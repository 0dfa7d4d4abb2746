package main

import (
	"context"
	"fmt"

	"stockroom/internal/config"
	"stockroom/internal/crypto"
	"stockroom/internal/handler"
	"stockroom/internal/logger"
	"stockroom/internal/server"
	"stockroom/internal/service"
	"stockroom/internal/session"
	"stockroom/internal/store"
	"stockroom/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("stockroom-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	authority := session.NewAuthority()
	passwords := crypto.NewPasswordStore()
	userValidator := validators.NewUserValidator(storages.UserRepository)

	services := service.NewServices(storages, authority, passwords, userValidator, log)

	cookies := session.NewCookieCodec(cfg.App.CookieSignKey)
	handlers, err := handler.NewHandlers(services, cookies, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
