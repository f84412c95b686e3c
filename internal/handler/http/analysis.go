// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/utils"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// maxAnalysisBodySize bounds the JSON body of an analysis request, which may
// carry a base64 screenshot.
const maxAnalysisBodySize = 20 << 20

// analyze accepts {"text": "...", "image": {"mimeType": "...", "data": "<base64>"}}.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err, "no session")
		return
	}

	var request models.AnalysisRequest
	if err = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnalysisBodySize)).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	record, err := h.services.Orchestrator.Analyze(r.Context(), session, request)
	if err != nil {
		writeServiceError(w, r, err, "analysis failed")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) fetchRegistry(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err, "no session")
		return
	}

	entries, err := h.services.Orchestrator.FetchRegistry(r.Context(), session)
	if err != nil {
		writeServiceError(w, r, err, "registry fetch failed")
		return
	}

	utils.WriteJSON(w, models.RegistrySnapshot{Entries: entries}, http.StatusOK)
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Orchestrator.State(), http.StatusOK)
}

func (h *Handler) resetState(w http.ResponseWriter, r *http.Request) {
	h.services.Orchestrator.Reset()
	utils.WriteJSON(w, h.services.Orchestrator.State(), http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.Orchestrator.History(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error loading history")
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Orchestrator.ClearHistory(r.Context()); err != nil {
		writeServiceError(w, r, err, "error clearing history")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectHistory(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.Orchestrator.SelectHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "error selecting history record")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}
