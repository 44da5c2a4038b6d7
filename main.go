package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/centsible/backend/internal/bank"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, environment variables take precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate all models
	err = models.Connect(filepath.Join(dataDir, "centsible.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Bank sync is optional. With no Plaid credentials configured,
	// the bank endpoints return 503.
	client := bank.NewClient(bank.Config{
		ClientID:    os.Getenv("PLAID_CLIENT_ID"),
		Secret:      os.Getenv("PLAID_SECRET"),
		Environment: os.Getenv("PLAID_ENVIRONMENT"),
	})
	if client == nil {
		log.Info().Msg("PLAID_CLIENT_ID and PLAID_SECRET are not set, bank sync is disabled")
	}

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(client, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
