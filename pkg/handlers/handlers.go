// Package handlers wires the HTTP surface of the gifting service onto a chi
// router.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/sewalink/sewalink-functions/pkg/handlers/accounts"
	"github.com/sewalink/sewalink-functions/pkg/handlers/gifts"
	"github.com/sewalink/sewalink-functions/pkg/storage"
)

// Mount registers every route of the gifting API on the given router.
func Mount(r chi.Router, store storage.ApiStore) {
	accountsHandler := accounts.NewAccountsHandler(store)
	giftsHandler := gifts.NewGiftsHandler(store)

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", accountsHandler.CreateAccount)
		r.Get("/", accountsHandler.ListAccounts)
		r.Get("/{userId}", func(w http.ResponseWriter, req *http.Request) {
			accountsHandler.GetAccountByUserId(w, req, chi.URLParam(req, "userId"))
		})
		r.Delete("/{userId}", func(w http.ResponseWriter, req *http.Request) {
			accountsHandler.DeleteAccount(w, req, chi.URLParam(req, "userId"))
		})
	})

	r.Route("/gifts", func(r chi.Router) {
		r.Post("/", giftsHandler.SendGift)
		r.Get("/recent", giftsHandler.ListRecentGifts)
		r.Get("/{giftId}", func(w http.ResponseWriter, req *http.Request) {
			giftID, err := uuid.Parse(chi.URLParam(req, "giftId"))
			if err != nil {
				http.Error(w, fmt.Sprintf("Invalid gift ID: %v", err), http.StatusBadRequest)
				return
			}
			giftsHandler.GetGiftById(w, req, openapi_types.UUID(giftID))
		})
	})

	r.Route("/users/{userId}/gifts", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			giftsHandler.GetGiftHistory(w, req, chi.URLParam(req, "userId"))
		})
		r.Get("/stats", func(w http.ResponseWriter, req *http.Request) {
			giftsHandler.GetGiftStats(w, req, chi.URLParam(req, "userId"))
		})
	})

	r.Route("/leaderboards", func(r chi.Router) {
		r.Get("/senders", giftsHandler.GetTopSenders)
		r.Get("/receivers", giftsHandler.GetTopReceivers)
	})
}
