package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/keepthisthing/rewards-indexer/internal/db/model"
)

// MarkReferralProcessed records a referral log entry as seen but not yet
// credited. A second delivery of the same event fails with a
// DuplicateKeyError.
func (db *Database) MarkReferralProcessed(
	ctx context.Context, eventID string, referrer string, network string,
) error {
	doc := &model.ProcessedEventDocument{
		ID:       eventID,
		Referrer: referrer,
		Network:  network,
		Applied:  false,
		SeenAt:   time.Now().Unix(),
	}

	_, err := db.collection(model.ProcessedEventCollection).InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     eventID,
						Message: "referral event already processed",
					}
				}
			}
		}
		return err
	}
	return nil
}

// GetProcessedReferral loads a processed-event marker by its event identity.
func (db *Database) GetProcessedReferral(
	ctx context.Context, eventID string,
) (*model.ProcessedEventDocument, error) {
	res := db.collection(model.ProcessedEventCollection).FindOne(ctx, bson.M{"_id": eventID})

	var doc model.ProcessedEventDocument
	if err := res.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ConfirmReferralApplied flips a marker to applied once the ledger credit
// for the event has landed. An event whose marker never gets confirmed is
// resumed by the next delivery.
func (db *Database) ConfirmReferralApplied(ctx context.Context, eventID string) error {
	_, err := db.collection(model.ProcessedEventCollection).UpdateOne(ctx,
		bson.M{"_id": eventID},
		bson.M{"$set": bson.M{"applied": true}},
	)
	return err
}
