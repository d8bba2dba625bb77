package gifts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/sewalink/sewalink-functions/pkg/api"
	"github.com/sewalink/sewalink-functions/pkg/mapping"
	"github.com/sewalink/sewalink-functions/pkg/middleware"
	"github.com/sewalink/sewalink-functions/pkg/models"
	"github.com/sewalink/sewalink-functions/pkg/storage"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// GiftsHandler holds the dependencies for gift-related handlers.
type GiftsHandler struct {
	Store storage.GiftStore
}

// NewGiftsHandler creates a new GiftsHandler.
func NewGiftsHandler(store storage.GiftStore) *GiftsHandler {
	return &GiftsHandler{Store: store}
}

// SendGift handles the logic for sending a gift. The authenticated caller is
// always the sender; a request naming someone else's account is rejected.
func (h *GiftsHandler) SendGift(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r.Context())
	if callerID == "" {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var newGift api.NewGift
	if err := json.NewDecoder(r.Body).Decode(&newGift); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newGift.SenderId == "" {
		newGift.SenderId = callerID
	}
	if newGift.SenderId != callerID {
		http.Error(w, "Cannot send gifts from another user's account", http.StatusForbidden)
		return
	}

	domainGift := mapping.ToDomainNewGift(&newGift)

	createdGift, err := h.Store.TransferGift(r.Context(), domainGift)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAmount), errors.Is(err, storage.ErrSelfGift):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrAccountNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, storage.ErrInsufficientFunds):
			http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrTransferConflict):
			http.Error(w, "Transfer conflicted with concurrent activity, please retry", http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to send gift: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiGift := mapping.ToApiGift(createdGift)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiGift); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetGiftById handles the logic for retrieving a gift by its ID.
func (h *GiftsHandler) GetGiftById(w http.ResponseWriter, r *http.Request, giftId openapi_types.UUID) {
	domainGift, err := h.Store.GetGift(r.Context(), giftId.String())
	if err != nil {
		if errors.Is(err, storage.ErrGiftNotFound) {
			http.Error(w, "Gift not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve gift: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiGift := mapping.ToApiGift(domainGift)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiGift); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListRecentGifts handles the logic for the site-wide recent gifts feed.
func (h *GiftsHandler) ListRecentGifts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	domainGifts, err := h.Store.ListRecentGifts(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve recent gifts: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiGifts(domainGifts)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetGiftHistory handles the logic for a user's gift history: sent, received
// and a merged newest-first view of both.
func (h *GiftsHandler) GetGiftHistory(w http.ResponseWriter, r *http.Request, userId string) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sent, err := h.Store.ListGiftsSent(r.Context(), userId, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve sent gifts: %v", err), http.StatusInternalServerError)
		return
	}
	received, err := h.Store.ListGiftsReceived(r.Context(), userId, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve received gifts: %v", err), http.StatusInternalServerError)
		return
	}

	history := &api.GiftHistory{
		Sent:     mapping.ToApiGifts(sent),
		Received: mapping.ToApiGifts(received),
	}

	// Merge both directions into one newest-first timeline, capped at the
	// same limit as each side.
	all := make([]*api.Gift, 0, len(history.Sent)+len(history.Received))
	all = append(all, history.Sent...)
	all = append(all, history.Received...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if int32(len(all)) > limit {
		all = all[:limit]
	}
	history.All = all

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(history); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetGiftStats handles the logic for a user's all-time gift totals.
func (h *GiftsHandler) GetGiftStats(w http.ResponseWriter, r *http.Request, userId string) {
	stats, err := h.Store.GetGiftStats(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve gift stats: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiGiftStats(stats)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetTopSenders handles the logic for the top-senders leaderboard.
func (h *GiftsHandler) GetTopSenders(w http.ResponseWriter, r *http.Request) {
	h.leaderboard(w, r, h.Store.TopSenders)
}

// GetTopReceivers handles the logic for the top-receivers leaderboard.
func (h *GiftsHandler) GetTopReceivers(w http.ResponseWriter, r *http.Request) {
	h.leaderboard(w, r, h.Store.TopReceivers)
}

func (h *GiftsHandler) leaderboard(w http.ResponseWriter, r *http.Request, fetch func(context.Context, int32) ([]models.LeaderboardRow, error)) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := fetch(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve leaderboard: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiLeaderboard(rows)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func parseLimit(r *http.Request) (int32, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return int32(limit), nil
}
