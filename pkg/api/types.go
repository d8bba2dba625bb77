// Package api defines the transport-level request and response types for the
// SewaLink backend HTTP API and the image-proxy functions.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NewAccount is the request body for creating an account.
type NewAccount struct {
	UserId      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Balance     int64  `json:"balance,omitempty"`
}

// Account is the API representation of a user's coin account.
type Account struct {
	UserId      string    `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
	Balance     int64     `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGift is the request body for sending a gift.
type NewGift struct {
	SenderId   string  `json:"sender_id"`
	ReceiverId string  `json:"receiver_id"`
	Amount     int64   `json:"amount"`
	Message    *string `json:"message,omitempty"`
	GiftType   *string `json:"gift_type,omitempty"`
}

// Gift is the API representation of a completed gift transfer.
type Gift struct {
	Id         openapi_types.UUID `json:"id"`
	SenderId   string             `json:"sender_id"`
	ReceiverId string             `json:"receiver_id"`
	Amount     int64              `json:"amount"`
	Message    *string            `json:"message,omitempty"`
	GiftType   string             `json:"gift_type"`
	CreatedAt  time.Time          `json:"created_at"`
}

// GiftHistory is a user's gift history: gifts sent, gifts received, and a
// merged newest-first view of both.
type GiftHistory struct {
	Sent     []*Gift `json:"sent"`
	Received []*Gift `json:"received"`
	All      []*Gift `json:"all"`
}

// GiftTotals aggregates one direction of gift activity.
type GiftTotals struct {
	Count int64 `json:"count"`
	Total int64 `json:"total"`
}

// GiftStats is the all-time aggregate returned by the stats endpoint.
type GiftStats struct {
	Sent     GiftTotals `json:"sent"`
	Received GiftTotals `json:"received"`
}

// LeaderboardEntry is one row of a top-senders or top-receivers leaderboard.
type LeaderboardEntry struct {
	UserId string `json:"user_id"`
	Count  int64  `json:"count"`
	Total  int64  `json:"total"`
}

// UploadImageRequest is the body accepted by the image-upload function.
type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64"`
	FileName    string `json:"file_name,omitempty"`
}

// UploadImageResponse mirrors the fields the web client consumes from the
// image host.
type UploadImageResponse struct {
	Success    bool   `json:"success"`
	Url        string `json:"url"`
	DisplayUrl string `json:"display_url,omitempty"`
	DeleteUrl  string `json:"delete_url,omitempty"`
	ThumbUrl   string `json:"thumb_url,omitempty"`
}

// DeleteImageRequest is the body accepted by the image-delete function.
// Either identifier is accepted; only a delete URL triggers an upstream
// request, since the image host has no hash-based delete API.
type DeleteImageRequest struct {
	DeleteUrl  string `json:"delete_url,omitempty"`
	DeleteHash string `json:"delete_hash,omitempty"`
}

// DeleteImageResponse acknowledges an image deletion.
type DeleteImageResponse struct {
	Success bool `json:"success"`
}

// Error is the JSON error envelope returned by the cloud functions. Codes
// follow the callable-function convention: "unauthenticated",
// "invalid-argument", "internal".
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
