package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"minimart/internal/config"
	"minimart/internal/infra"
	"minimart/internal/repository"
	"minimart/internal/service"
	"minimart/internal/session"
	"minimart/internal/tui"
)

// minimart run: start the interactive ordering session.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive ordering session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Structured logger: dev pretty, prod JSON. Logs go to stderr
		// so they never interleave with the drawn screens on stdout.
		if cfg.Env == "production" {
			log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		} else {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		}

		creds := repository.NewCredentialRepository(cfg.CredentialsPath())
		catalog := repository.NewCatalogRepository(cfg.DataDir)
		carts := repository.NewCartRepository(cfg.CartPath())

		controller := session.NewController(
			service.NewAuthService(creds),
			service.NewCatalogService(catalog),
			service.NewCartService(carts, catalog),
			service.NewCheckoutService(carts, infra.ReceiptPDFWriter{Dir: cfg.ReceiptDir}),
		)

		log.Info().Str("data_dir", cfg.DataDir).Msg("minimart starting")
		return tui.New(controller, os.Stdin, os.Stdout, cfg.TableWidth).Run()
	},
}
