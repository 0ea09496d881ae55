//go:build integration

package queue_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/keepthisthing/rewards-indexer/internal/config"
	"github.com/keepthisthing/rewards-indexer/internal/queue"
	"github.com/keepthisthing/rewards-indexer/internal/types"
	"github.com/keepthisthing/rewards-indexer/pkg"
	"github.com/keepthisthing/rewards-indexer/testutil"
)

const (
	rabbitUsername = "user"
	rabbitPassword = "password"

	// this version corresponds to docker tag for rabbitmq
	// it should be in sync with rabbitmq version used in production
	rabbitVersion = "3.13"

	accountsQueue = "rewards.accounts"
)

var queueCfg *config.QueueConfig

func TestMain(m *testing.M) {
	cfg, cleanup, err := setupRabbitContainer()
	if err != nil {
		log.Fatalf("failed to setup rabbitmq container: %v", err)
	}
	queueCfg = cfg

	code := m.Run()
	cleanup()

	os.Exit(code)
}

// setupRabbitContainer setups container with rabbitmq returning broker credentials
// through config.QueueConfig, cleanup function that MUST be called in the end to
// cleanup docker resources and an error if there is any
func setupRabbitContainer() (*config.QueueConfig, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, err
	}

	// there can be only 1 container with the same name, so we add
	// random string in the end in case there is still old container running
	containerName := "rabbit-integration-tests-" + pkg.RandString(3)
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       containerName,
		Repository: "rabbitmq",
		Tag:        rabbitVersion,
		Env: []string{
			"RABBITMQ_DEFAULT_USER=" + rabbitUsername,
			"RABBITMQ_DEFAULT_PASS=" + rabbitPassword,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		err := pool.Purge(resource)
		if err != nil {
			log.Fatalf("failed to purge resource: %v", err)
		}
	}

	hostPort := resource.GetPort("5672/tcp")
	cfg := &config.QueueConfig{
		URL:           fmt.Sprintf("amqp://%s:%s@localhost:%s/", rabbitUsername, rabbitPassword, hostPort),
		AccountsQueue: accountsQueue,
	}

	// the broker takes a while to accept connections after the container is up
	err = pool.Retry(func() error {
		conn, err := amqp.Dial(cfg.URL)
		if err != nil {
			return err
		}
		return conn.Close()
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return cfg, cleanup, nil
}

func consumeOne(t *testing.T, queueName string) []byte {
	t.Helper()

	conn, err := amqp.Dial(queueCfg.URL)
	require.NoError(t, err)
	defer conn.Close()
	channel, err := conn.Channel()
	require.NoError(t, err)

	deliveries, err := channel.Consume(queueName, "", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case delivery := <-deliveries:
		return delivery.Body
	case <-time.After(10 * time.Second):
		t.Fatalf("no message arrived on %s", queueName)
		return nil
	}
}

func TestQueueRoundTrip(t *testing.T) {
	ctx := t.Context()

	manager, err := queue.NewQueueManager(queueCfg)
	require.NoError(t, err)
	defer manager.Shutdown()

	t.Run("eligibility notification", func(t *testing.T) {
		claim := &types.EligibilityClaim{
			Index:   7,
			Amount:  big.NewInt(1_000_000),
			Account: testutil.RandomAddress(),
			Proof:   []common.Hash{testutil.RandomHash()},
		}
		require.NoError(t, manager.NotifyEligibility(ctx, claim))

		var msg struct {
			Index   uint64 `json:"index"`
			Account string `json:"account"`
			Amount  string `json:"amount"`
		}
		require.NoError(t, json.Unmarshal(consumeOne(t, queue.EligibilityQueueName), &msg))
		require.Equal(t, claim.Index, msg.Index)
		require.Equal(t, claim.Account.Hex(), msg.Account)
		require.Equal(t, "1000000", msg.Amount)
	})

	t.Run("referral notification", func(t *testing.T) {
		notification := &types.ReferralNotification{
			Referrer:      testutil.RandomAddress(),
			Network:       types.NetworkEthereum,
			TotalReferred: 3,
			TotalBonus:    big.NewInt(125),
		}
		require.NoError(t, manager.NotifyReferral(ctx, notification))

		var msg struct {
			Referrer      string `json:"referrer"`
			Network       string `json:"network"`
			TotalReferred uint64 `json:"total_referred"`
			TotalBonus    string `json:"total_bonus"`
		}
		require.NoError(t, json.Unmarshal(consumeOne(t, queue.ReferralQueueName), &msg))
		require.Equal(t, notification.Referrer.Hex(), msg.Referrer)
		require.Equal(t, "ethereum", msg.Network)
		require.Equal(t, uint64(3), msg.TotalReferred)
		require.Equal(t, "125", msg.TotalBonus)
	})

	t.Run("tracked account stream", func(t *testing.T) {
		streamCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		accounts, err := manager.SubscribeNewAccounts(streamCtx)
		require.NoError(t, err)

		address := testutil.RandomAddress()
		publishAccount(t, fmt.Sprintf(`{"address":%q,"network":"ethereum"}`, address.Hex()))
		// undecodable messages are rejected without breaking the stream
		publishAccount(t, `{"address":"not-an-address","network":"ethereum"}`)
		other := testutil.RandomAddress()
		publishAccount(t, fmt.Sprintf(`{"address":%q,"network":"polygon"}`, other.Hex()))

		first := receiveAccount(t, accounts)
		require.Equal(t, address, first.Address)
		require.Equal(t, types.NetworkEthereum, first.Network)

		second := receiveAccount(t, accounts)
		require.Equal(t, other, second.Address)
		require.Equal(t, types.NetworkPolygon, second.Network)
	})
}

func publishAccount(t *testing.T, body string) {
	t.Helper()

	conn, err := amqp.Dial(queueCfg.URL)
	require.NoError(t, err)
	defer conn.Close()
	channel, err := conn.Channel()
	require.NoError(t, err)

	err = channel.PublishWithContext(context.Background(), "", accountsQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        []byte(body),
	})
	require.NoError(t, err)
}

func receiveAccount(t *testing.T, accounts <-chan types.WatchedAccount) types.WatchedAccount {
	t.Helper()

	select {
	case account := <-accounts:
		return account
	case <-time.After(10 * time.Second):
		t.Fatal("no account arrived on the stream")
		return types.WatchedAccount{}
	}
}
