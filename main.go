package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SKnight-7/BudgetsApp/internal/api"
	"github.com/SKnight-7/BudgetsApp/internal/budget"
	"github.com/SKnight-7/BudgetsApp/internal/cli"
	"github.com/SKnight-7/BudgetsApp/internal/config"
	"github.com/SKnight-7/BudgetsApp/internal/finance"
	"github.com/SKnight-7/BudgetsApp/internal/router"
	"github.com/SKnight-7/BudgetsApp/internal/transactions"
)

func main() {
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

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Load both stores, bootstrapping missing ones with default data
	controller, err := finance.New(
		budget.NewManager(cfg.BudgetsPath()),
		transactions.NewManager(cfg.TransactionsPath()),
	)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.Mode == config.ModeServe {
		r := router.Router(api.New(controller))
		if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Fatal().Msg(err.Error())
		}
		return
	}

	if err := cli.New(controller, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
