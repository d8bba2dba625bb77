package models

import (
	"time"
)

// Account holds a user's coin balance. Account lifecycle (signup, deletion)
// is owned by the user-management service; this module seeds accounts for
// tests and admin tooling and moves balances under transactional control.
type Account struct {
	UserId      string    `json:"user_id" dynamodbav:"user_id"`
	DisplayName string    `json:"display_name" dynamodbav:"display_name,omitempty"`
	Balance     int64     `json:"balance" dynamodbav:"balance"`
	Version     int64     `json:"version" dynamodbav:"version"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

// GiftType is the categorical tag attached to a gift.
type GiftType string

const (
	GiftTypeGeneral  GiftType = "general"
	GiftTypeBirthday GiftType = "birthday"
	GiftTypeThankYou GiftType = "thank_you"
)

// GiftRecord is the immutable audit entry for one completed transfer.
// It is written exactly once, inside the same atomic transaction that moves
// the balance, and is never mutated or deleted afterwards.
type GiftRecord struct {
	Id         string    `dynamodbav:"id"`
	SenderId   string    `dynamodbav:"sender_id"`
	ReceiverId string    `dynamodbav:"receiver_id"`
	Amount     int64     `dynamodbav:"amount"`
	Message    string    `dynamodbav:"message,omitempty"`
	GiftType   GiftType  `dynamodbav:"gift_type"`
	CreatedAt  time.Time `dynamodbav:"created_at"`
	GSI1PK     string    `dynamodbav:"gsi1pk"`
}

// GiftTotals aggregates one direction of a user's gift activity.
type GiftTotals struct {
	Count int64
	Total int64
}

// GiftStats is the all-time sent/received aggregate for a single user.
type GiftStats struct {
	Sent     GiftTotals
	Received GiftTotals
}

// LeaderboardRow is one aggregated row of a top-senders or top-receivers
// leaderboard.
type LeaderboardRow struct {
	UserId string
	Count  int64
	Total  int64
}

// Job is a marketplace job posting. Only the monetary fields matter to this
// module: the currency migration rescales Budget from USD to NPR.
type Job struct {
	Id         string     `dynamodbav:"id"`
	Title      string     `dynamodbav:"title,omitempty"`
	Budget     float64    `dynamodbav:"budget,omitempty"`
	BudgetUSD  float64    `dynamodbav:"budget_usd,omitempty"`
	Currency   string     `dynamodbav:"currency,omitempty"`
	MigratedAt *time.Time `dynamodbav:"migrated_at,omitempty"`
}

// UserProfile is a freelancer profile. The currency migration rescales
// HourlyRate from USD to NPR.
type UserProfile struct {
	UserId        string     `dynamodbav:"user_id"`
	HourlyRate    float64    `dynamodbav:"hourly_rate,omitempty"`
	HourlyRateUSD float64    `dynamodbav:"hourly_rate_usd,omitempty"`
	Currency      string     `dynamodbav:"currency,omitempty"`
	MigratedAt    *time.Time `dynamodbav:"migrated_at,omitempty"`
}
