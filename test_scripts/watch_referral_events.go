package main

import (
	"context"
	"log"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

const referralEventJSON = `[{
	"anonymous": false,
	"inputs": [
		{"indexed": true, "internalType": "address", "name": "referrer", "type": "address"},
		{"indexed": true, "internalType": "address", "name": "claimant", "type": "address"},
		{"indexed": false, "internalType": "uint256", "name": "amountClaimed", "type": "uint256"},
		{"indexed": false, "internalType": "uint256", "name": "claimerBonus", "type": "uint256"},
		{"indexed": false, "internalType": "uint256", "name": "communityBonus", "type": "uint256"}
	],
	"name": "ReferralBonus",
	"type": "event"
}]`

// Manual tool for watching ReferralBonus events of a deployed contract on a
// live node. Useful for checking filter topics against real traffic before
// pointing the indexer at a new hunting ground.
func main() {
	rpcAddr := "wss://127.0.0.1:8546"
	contract := "0x0000000000000000000000000000000000000000"
	fromBlock := uint64(0)
	if len(os.Args) > 1 {
		rpcAddr = os.Args[1]
	}
	if len(os.Args) > 2 {
		contract = os.Args[2]
	}

	parsed, err := abi.JSON(strings.NewReader(referralEventJSON))
	if err != nil {
		log.Fatalf("Failed to parse event ABI: %v", err)
	}
	topic := parsed.Events["ReferralBonus"].ID

	client, err := ethclient.Dial(rpcAddr)
	if err != nil {
		log.Fatalf("Failed to dial %s: %v", rpcAddr, err)
	}
	defer client.Close()

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{common.HexToAddress(contract)},
		Topics:    [][]common.Hash{{topic}},
	}

	ctx := context.Background()
	logs := make(chan gethtypes.Log)
	sub, err := client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		log.Fatalf("Failed to subscribe to logs: %v", err)
	}
	defer sub.Unsubscribe()

	log.Printf("Watching ReferralBonus events of %s via %s\n", contract, rpcAddr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case entry := <-logs:
			values, err := parsed.Events["ReferralBonus"].Inputs.NonIndexed().Unpack(entry.Data)
			if err != nil {
				log.Printf("Undecodable event in tx %s: %v", entry.TxHash.Hex(), err)
				continue
			}
			log.Printf("Referral in block %d tx %s", entry.BlockNumber, entry.TxHash.Hex())
			log.Printf("  referrer: %s", common.BytesToAddress(entry.Topics[1].Bytes()).Hex())
			log.Printf("  claimant: %s", common.BytesToAddress(entry.Topics[2].Bytes()).Hex())
			log.Printf("  amounts: %v", values)
		case err := <-sub.Err():
			log.Fatalf("Subscription failed: %v", err)
		case <-sigChan:
			log.Println("Received interrupt signal, shutting down...")
			return
		}
	}
}
