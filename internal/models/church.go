package models

// Church is the database row for a church.
type Church struct {
	ChurchID string `db:"church_id"`
	Nome     string `db:"nome"`
}
