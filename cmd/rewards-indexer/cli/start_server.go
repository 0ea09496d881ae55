package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/keepthisthing/rewards-indexer/internal/clients/chainclient"
	"github.com/keepthisthing/rewards-indexer/internal/clients/claimclient"
	"github.com/keepthisthing/rewards-indexer/internal/config"
	"github.com/keepthisthing/rewards-indexer/internal/db"
	dbmodel "github.com/keepthisthing/rewards-indexer/internal/db/model"
	"github.com/keepthisthing/rewards-indexer/internal/observability/metrics"
	"github.com/keepthisthing/rewards-indexer/internal/observability/tracing"
	"github.com/keepthisthing/rewards-indexer/internal/queue"
	"github.com/keepthisthing/rewards-indexer/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the rewards indexer server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up rewards db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	chainClient, err := chainclient.NewClient(&cfg.Eth)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating chain client")
	}
	defer chainClient.Close()

	claimsClient := claimclient.NewClient(&cfg.Claims)

	queueManager, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating queue manager")
	}
	defer queueManager.Shutdown()

	service := services.NewService(cfg, dbClient, chainClient, claimsClient, queueManager, queueManager)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartRewardsSync(ctx)
	return nil
}
