package main

import (
	"context"
	"fmt"

	"github.com/pkruglov/chainvault-go/internal/adapter"
	"github.com/pkruglov/chainvault-go/internal/config"
	"github.com/pkruglov/chainvault-go/internal/logger"
	"github.com/pkruglov/chainvault-go/internal/service"
	"github.com/pkruglov/chainvault-go/internal/workers"
	"github.com/pkruglov/chainvault-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("chainvault-client")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	chainVault, err := adapter.NewHTTPAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create chainvault adapter")
	}

	services := service.NewClientServices(chainVault, cfg.App, log)

	ctx := context.Background()
	poller := workers.NewTransferPoller(ctx, services.Transfers, cfg.Workers.PollInterval, log)
	workers.NewWorkers(poller).Run()
	defer poller.Stop()

	// Smoke check: one authenticated read per lookup service.
	price, err := services.Market.Price(ctx, models.Bitcoin, "usd")
	if err != nil {
		log.Fatal().Err(err).Msg("fetch btc price")
	}
	log.Info().Str("chain", string(price.Chain)).Str("price", price.Price).Msg("price fetched")

	hooks, err := services.Webhooks.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list webhooks")
	}
	log.Info().Int("count", len(hooks)).Msg("webhooks listed")
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
