package model

import "fmt"

const ReferrerStatsCollection = "referrer_stats"

// ReferrerStatsDocument is the per-referrer ledger entry. Created lazily on
// first referral, never deleted, monotonically non-decreasing.
type ReferrerStatsDocument struct {
	ID            string `bson:"_id"` // "<referrer>|<network>"
	Referrer      string `bson:"referrer"`
	Network       string `bson:"network"`
	TotalReferred uint64 `bson:"total_referred"`
	TotalBonus    string `bson:"total_bonus"` // decimal string, arbitrary precision
	LastEvent     string `bson:"last_event"`  // identity of the last credited event
	UpdatedAt     int64  `bson:"updated_at"`  // Unix timestamp of last update
}

func ReferrerStatsID(referrer, network string) string {
	return fmt.Sprintf("%s|%s", referrer, network)
}
