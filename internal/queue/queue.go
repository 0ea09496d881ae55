package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/keepthisthing/rewards-indexer/internal/config"
	"github.com/keepthisthing/rewards-indexer/internal/types"
	"github.com/keepthisthing/rewards-indexer/pkg"
)

const (
	EligibilityQueueName = "rewards.eligibility"
	ReferralQueueName    = "rewards.referrals"
)

// QueueManager publishes the indexer's outbound notifications and consumes
// the account tracker's newly-tracked-account stream.
type QueueManager struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     *config.QueueConfig
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open queue channel: %w", err)
	}

	for _, name := range []string{EligibilityQueueName, ReferralQueueName, cfg.AccountsQueue} {
		if _, err := channel.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}

	return &QueueManager{
		conn:    conn,
		channel: channel,
		cfg:     cfg,
	}, nil
}

type eligibilityMessage struct {
	Index   uint64   `json:"index"`
	Account string   `json:"account"`
	Amount  string   `json:"amount"`
	Proof   []string `json:"proof"`
}

type referralMessage struct {
	Referrer      string `json:"referrer"`
	Network       string `json:"network"`
	TotalReferred uint64 `json:"total_referred"`
	TotalBonus    string `json:"total_bonus"`
}

type accountMessage struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

func (qm *QueueManager) NotifyEligibility(ctx context.Context, claim *types.EligibilityClaim) error {
	proof := make([]string, len(claim.Proof))
	for i, sibling := range claim.Proof {
		proof[i] = sibling.Hex()
	}
	return qm.publish(ctx, EligibilityQueueName, eligibilityMessage{
		Index:   claim.Index,
		Account: claim.Account.Hex(),
		Amount:  claim.Amount.String(),
		Proof:   proof,
	})
}

func (qm *QueueManager) NotifyReferral(ctx context.Context, notification *types.ReferralNotification) error {
	return qm.publish(ctx, ReferralQueueName, referralMessage{
		Referrer:      notification.Referrer.Hex(),
		Network:       notification.Network.String(),
		TotalReferred: notification.TotalReferred,
		TotalBonus:    notification.TotalBonus.String(),
	})
}

func (qm *QueueManager) publish(ctx context.Context, queueName string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", queueName, err)
	}

	return qm.channel.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		MessageId:    uuid.New().String(),
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// SubscribeNewAccounts consumes the newly-tracked-account stream. Messages
// that do not decode into a valid account are rejected and logged. The
// returned channel closes when ctx is cancelled.
func (qm *QueueManager) SubscribeNewAccounts(ctx context.Context) (<-chan types.WatchedAccount, error) {
	consumerTag := "rewards-indexer-" + uuid.New().String()
	deliveries, err := qm.channel.Consume(qm.cfg.AccountsQueue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume %s: %w", qm.cfg.AccountsQueue, err)
	}

	accounts := make(chan types.WatchedAccount)
	go func() {
		defer close(accounts)
		for {
			select {
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				account, err := decodeAccount(delivery.Body)
				if err != nil {
					log.Ctx(ctx).Warn().Err(err).Msg("Dropping undecodable tracked-account message")
					if err := delivery.Reject(false); err != nil {
						log.Ctx(ctx).Error().Err(err).Msg("Failed to reject tracked-account message")
					}
					continue
				}
				if err := delivery.Ack(false); err != nil {
					log.Ctx(ctx).Error().Err(err).Msg("Failed to ack tracked-account message")
				}

				select {
				case accounts <- account:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				if err := qm.channel.Cancel(consumerTag, false); err != nil {
					log.Ctx(ctx).Error().Err(err).Msg("Failed to cancel account consumer")
				}
				return
			}
		}
	}()

	return accounts, nil
}

func decodeAccount(body []byte) (types.WatchedAccount, error) {
	var msg accountMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return types.WatchedAccount{}, err
	}

	address, err := pkg.ParseAddress(msg.Address)
	if err != nil {
		return types.WatchedAccount{}, err
	}
	network, err := types.ParseNetwork(msg.Network)
	if err != nil {
		return types.WatchedAccount{}, err
	}

	return types.WatchedAccount{Address: address, Network: network}, nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")
	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close queue channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close queue connection")
	}
}
