package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/keepthisthing/rewards-indexer/internal/clients/claimclient"
	"github.com/keepthisthing/rewards-indexer/internal/config"
	"github.com/keepthisthing/rewards-indexer/internal/observability/tracing"
	"github.com/keepthisthing/rewards-indexer/internal/services"
	"github.com/keepthisthing/rewards-indexer/internal/types"
	"github.com/keepthisthing/rewards-indexer/pkg"
)

// CheckEligibilityCmd verifies a single address against the claim
// distribution without touching the database or the queue.
func CheckEligibilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-eligibility [address]",
		Short: "Verifies claim eligibility for an address and prints the proof",
		Args:  cobra.ExactArgs(1),
		RunE:  checkEligibility,
	}

	return cmd
}

func checkEligibility(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	address, err := pkg.ParseAddress(args[0])
	if err != nil {
		return err
	}

	claimsClient := claimclient.NewClient(&cfg.Claims)
	service := services.NewService(cfg, nil, nil, claimsClient, nil, discardNotifier{})

	claim, err := service.GetEligibility(ctx, address)
	if err != nil {
		if types.IsNotEligibleError(err) {
			fmt.Printf("%s is not eligible for a claim\n", address.Hex())
			return nil
		}
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(claim)
}

// discardNotifier drops notifications, the check command has no queue.
type discardNotifier struct{}

func (discardNotifier) NotifyEligibility(ctx context.Context, claim *types.EligibilityClaim) error {
	return nil
}

func (discardNotifier) NotifyReferral(ctx context.Context, notification *types.ReferralNotification) error {
	return nil
}
