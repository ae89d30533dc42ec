package main

import (
	"net/http"
	"os"
	"time"

	"github.com/dtezcan/go-catalog/app/cmd"
	"github.com/dtezcan/go-catalog/app/configs"
	"github.com/dtezcan/go-catalog/app/models/migrations"
	"github.com/dtezcan/go-catalog/app/routes"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if configs.LoadENV.AppEnv == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := migrations.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	router, err := routes.NewRouter(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	server := http.Server{
		Addr:         configs.LoadENV.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Info().Str("addr", server.Addr).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
