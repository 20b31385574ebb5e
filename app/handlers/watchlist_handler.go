package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/helpers"
	"github.com/jainam01/four-kids-updated-sub000/app/services"
	"github.com/unrolled/render"
)

type WatchlistHandler struct {
	watchlistSvc *services.WatchlistService
	render       *render.Render
}

func NewWatchlistHandler(watchlistSvc *services.WatchlistService, r *render.Render) *WatchlistHandler {
	return &WatchlistHandler{watchlistSvc: watchlistSvc, render: r}
}

type addWatchlistRequest struct {
	ProductID int `json:"productId"`
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.watchlistSvc.List(r.Context(), sessionID(r))
	if err != nil {
		respondError(h.render, w, err, "WatchlistHandler.List")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, entries)
}

func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWatchlistRequest
	if err := helpers.DecodeJSONBody(w, r, &req); err != nil {
		respondError(h.render, w, apperrors.NewFieldError("body", "request body must be valid JSON."), "WatchlistHandler.Add")
		return
	}

	entry, err := h.watchlistSvc.Add(r.Context(), sessionID(r), req.ProductID)
	if err != nil {
		respondError(h.render, w, err, "WatchlistHandler.Add")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, entry)
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, apperrors.NewNotFoundError("watchlist item", mux.Vars(r)["id"]), "WatchlistHandler.Remove")
		return
	}

	entries, err := h.watchlistSvc.Remove(r.Context(), sessionID(r), itemID)
	if err != nil {
		respondError(h.render, w, err, "WatchlistHandler.Remove")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, entries)
}

func (h *WatchlistHandler) Check(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["productId"])
	if err != nil {
		// Membership of a non-id is simply false, the check never errors.
		_ = h.render.JSON(w, http.StatusOK, map[string]bool{"isInWatchlist": false})
		return
	}

	exists, err := h.watchlistSvc.IsInWatchlist(r.Context(), sessionID(r), productID)
	if err != nil {
		respondError(h.render, w, err, "WatchlistHandler.Check")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]bool{"isInWatchlist": exists})
}

func (h *WatchlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.watchlistSvc.Clear(r.Context(), sessionID(r)); err != nil {
		respondError(h.render, w, err, "WatchlistHandler.Clear")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, []interface{}{})
}
