package model

// Scope identifies who sent an inbound message.
type Scope struct {
	UserID    string // e.g. "telegram_12345"
	Username  string
	FirstName string
	ChatID    int64
}
