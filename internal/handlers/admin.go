package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/jmercer/awardpool/internal/auth"
)

// handleAdminLogin validates the host secret and issues an admin session
func (h *Handlers) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, ok := h.Auth.Login(req.Secret)
	if !ok {
		respondError(w, Unauthorized("Invalid secret"))
		return
	}

	auth.SetSessionCookie(w, token)
	respondSuccess(w, "Logged in")
}

// handleAdminLogout invalidates the admin session
func (h *Handlers) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Auth.Logout(cookie.Value)
	}
	auth.ClearSessionCookie(w)
	respondSuccess(w, "Logged out")
}

// handleGetWinners returns every announced winner
func (h *Handlers) handleGetWinners(w http.ResponseWriter, r *http.Request) {
	winners, err := h.Winners.ListAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]interface{}{"winners": winners})
}

// handleSetWinner announces (or corrects) the winner for a category
func (h *Handlers) handleSetWinner(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	var req WinnerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Winners.SetWinner(r.Context(), categoryID, req.Nominee); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Winner announced")
}

// handleRemoveWinner retracts a winner announcement
func (h *Handlers) handleRemoveWinner(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	if err := h.Winners.RemoveWinner(r.Context(), categoryID); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleJoinQR renders the party join URL as a QR code PNG
func (h *Handlers) handleJoinQR(w http.ResponseWriter, r *http.Request) {
	if h.JoinURL == "" {
		respondError(w, NotFound("Join URL is not configured"))
		return
	}

	png, err := qrcode.Encode(h.JoinURL, qrcode.Medium, 256)
	if err != nil {
		respondError(w, InternalError(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
