package model

const WatchedAccountCollection = "watched_accounts"

// WatchedAccountDocument is an account the platform tracks. The account
// tracker writes these; the indexer reads them at startup and upserts the
// ones announced while it runs.
type WatchedAccountDocument struct {
	ID      string `bson:"_id"` // "<address>|<network>"
	Address string `bson:"address"`
	Network string `bson:"network"`
	AddedAt int64  `bson:"added_at"`
}
