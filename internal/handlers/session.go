package handlers

import (
	"net/http"

	"github.com/jmercer/awardpool/internal/identity"
	"github.com/jmercer/awardpool/internal/services"
)

// handleSignIn signs a participant in by display name and issues a session cookie
func (h *Handlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Provider.Resolve(req.DisplayName)
	if err != nil {
		respondError(w, BadRequest("Display name is required"))
		return
	}

	session, err := h.Sessions.SignIn(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	token := h.Store.Create(id)
	identity.SetCookie(w, token)

	respondOK(w, session.Snapshot())
}

// handleWhoAmI returns the signed-in participant's identity
func (h *Handlers) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	id, ok := h.Store.FromRequest(r)
	if !ok {
		respondError(w, services.ErrAuthRequired)
		return
	}
	respondOK(w, id)
}

// handleSignOut tears down the participant's session. Stored picks survive
// for the next sign-in.
func (h *Handlers) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(identity.CookieName); err == nil {
		if id, ok := h.Store.Get(cookie.Value); ok {
			h.Sessions.SignOut(id.ID)
		}
		h.Store.Delete(cookie.Value)
	}
	identity.ClearCookie(w)
	respondSuccess(w, "Signed out")
}

// sessionFromRequest resolves the live session for the request's cookie,
// rehydrating it from the store if the server restarted since sign-in
func (h *Handlers) sessionFromRequest(r *http.Request) (*services.Session, error) {
	id, ok := h.Store.FromRequest(r)
	if !ok {
		return nil, services.ErrAuthRequired
	}
	if session, ok := h.Sessions.Get(id.ID); ok {
		return session, nil
	}
	return h.Sessions.SignIn(r.Context(), id)
}
