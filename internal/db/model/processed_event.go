package model

const ProcessedEventCollection = "processed_referral_events"

// ProcessedEventDocument marks a referral log entry as consumed into the
// ledger. The _id is the stable event identity (blockHash|txHash|logIndex),
// so a duplicate delivery fails its insert and is skipped. Applied flips to
// true only after the ledger credit for the event has landed; a marker that
// stays unapplied is picked up again by the next delivery of the event.
type ProcessedEventDocument struct {
	ID       string `bson:"_id"`
	Referrer string `bson:"referrer"`
	Network  string `bson:"network"`
	Applied  bool   `bson:"applied"`
	SeenAt   int64  `bson:"seen_at"`
}
