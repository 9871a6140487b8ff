package handlers

import (
	"net/http"
)

// handleGetCatalog returns the category and nominee slates
func (h *Handlers) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]interface{}{
		"categories": h.Catalog.Categories(),
		"total":      h.Catalog.Total(),
	})
}

// handleGetState returns the signed-in participant's full game state
func (h *Handlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, session.Snapshot())
}

// handleSelectNominee records a pick for a category
func (h *Handlers) handleSelectNominee(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req PredictionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := session.SelectNominee(r.Context(), req.Category, req.Nominee); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, session.Snapshot())
}

// handleLock freezes the participant's picks
func (h *Handlers) handleLock(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := session.Lock(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, session.Snapshot())
}

// handleReset wipes the participant's picks and unlocks them
func (h *Handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := session.Reset(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, session.Snapshot())
}
