package models

// Link is one stored link record. A record has no identity beyond the
// (user_id, link) pair, and the same pair may be stored more than once.
type Link struct {
	UserID int64  `db:"user_id"`
	URL    string `db:"link"`
}
