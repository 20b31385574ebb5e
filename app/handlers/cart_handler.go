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

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, r *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: r}
}

type addCartItemRequest struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.GetCart(r.Context(), sessionID(r))
	if err != nil {
		respondError(h.render, w, err, "CartHandler.GetCart")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := helpers.DecodeJSONBody(w, r, &req); err != nil {
		respondError(h.render, w, apperrors.NewFieldError("body", "request body must be valid JSON."), "CartHandler.AddItem")
		return
	}

	cart, err := h.cartSvc.AddItem(r.Context(), sessionID(r), req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		respondError(h.render, w, err, "CartHandler.AddItem")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, apperrors.NewFieldError("id", "id must be an integer."), "CartHandler.UpdateItem")
		return
	}

	var req updateCartItemRequest
	if err := helpers.DecodeJSONBody(w, r, &req); err != nil {
		respondError(h.render, w, apperrors.NewFieldError("body", "request body must be valid JSON."), "CartHandler.UpdateItem")
		return
	}

	cart, err := h.cartSvc.UpdateItem(r.Context(), sessionID(r), itemID, req.Quantity)
	if err != nil {
		respondError(h.render, w, err, "CartHandler.UpdateItem")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, apperrors.NewNotFoundError("cart item", mux.Vars(r)["id"]), "CartHandler.RemoveItem")
		return
	}

	cart, err := h.cartSvc.RemoveItem(r.Context(), sessionID(r), itemID)
	if err != nil {
		respondError(h.render, w, err, "CartHandler.RemoveItem")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.ClearCart(r.Context(), sessionID(r))
	if err != nil {
		respondError(h.render, w, err, "CartHandler.ClearCart")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}
