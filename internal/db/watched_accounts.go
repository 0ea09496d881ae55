package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/keepthisthing/rewards-indexer/internal/db/model"
)

// GetWatchedAccounts returns every account the platform currently tracks.
func (db *Database) GetWatchedAccounts(ctx context.Context) ([]model.WatchedAccountDocument, error) {
	cursor, err := db.collection(model.WatchedAccountCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []model.WatchedAccountDocument
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpsertWatchedAccount records a newly announced account so a restart
// replays it during bootstrap.
func (db *Database) UpsertWatchedAccount(ctx context.Context, address string, network string) error {
	id := address + "|" + network
	doc := &model.WatchedAccountDocument{
		ID:      id,
		Address: address,
		Network: network,
		AddedAt: time.Now().Unix(),
	}

	filter := bson.M{"_id": id}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.WatchedAccountCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
