package db

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/keepthisthing/rewards-indexer/internal/db/model"
)

const incrementStatsMaxRetries = 5

// GetReferrerStats returns the ledger entry for a referrer. A referrer with
// no history gets a zero-valued record, never an error.
func (db *Database) GetReferrerStats(
	ctx context.Context, referrer string, network string,
) (*model.ReferrerStatsDocument, error) {
	id := model.ReferrerStatsID(referrer, network)
	res := db.collection(model.ReferrerStatsCollection).FindOne(ctx, bson.M{"_id": id})

	var doc model.ReferrerStatsDocument
	err := res.Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return &model.ReferrerStatsDocument{
			ID:         id,
			Referrer:   referrer,
			Network:    network,
			TotalBonus: "0",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// IncrementReferrerStats appends one referral with the given bonus to a
// referrer's ledger entry and returns the refreshed snapshot. The update is
// all-or-nothing: a compare-and-swap on the current referral count, retried
// on contention, so concurrent credits for the same referrer both land.
// Crediting the same event again is a no-op: events for one referrer arrive
// in log order, so an interrupted registration resumed by a later delivery
// finds its own identity in last_event when the credit already landed.
func (db *Database) IncrementReferrerStats(
	ctx context.Context, referrer string, network string, eventID string, bonus *big.Int,
) (*model.ReferrerStatsDocument, error) {
	id := model.ReferrerStatsID(referrer, network)

	for attempt := 0; attempt < incrementStatsMaxRetries; attempt++ {
		current, err := db.GetReferrerStats(ctx, referrer, network)
		if err != nil {
			return nil, err
		}
		if current.LastEvent == eventID {
			return current, nil
		}

		currentBonus, ok := new(big.Int).SetString(current.TotalBonus, 10)
		if !ok {
			return nil, fmt.Errorf("corrupt total_bonus %q for referrer %s", current.TotalBonus, id)
		}

		updated := &model.ReferrerStatsDocument{
			ID:            id,
			Referrer:      referrer,
			Network:       network,
			TotalReferred: current.TotalReferred + 1,
			TotalBonus:    new(big.Int).Add(currentBonus, bonus).String(),
			LastEvent:     eventID,
			UpdatedAt:     time.Now().Unix(),
		}

		// match only the state we read; a lost race makes the filter miss
		// and the upsert collide on _id, both of which mean retry
		filter := bson.M{"_id": id, "total_referred": current.TotalReferred}
		update := bson.M{"$set": updated}
		opts := options.Update().SetUpsert(true)

		res, err := db.collection(model.ReferrerStatsCollection).UpdateOne(ctx, filter, update, opts)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return nil, err
		}
		if res.MatchedCount == 0 && res.UpsertedCount == 0 {
			continue
		}
		return updated, nil
	}

	return nil, fmt.Errorf("failed to increment stats for referrer %s after %d attempts", id, incrementStatsMaxRetries)
}
