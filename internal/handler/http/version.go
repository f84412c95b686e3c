package http

import (
	"net/http"

	"github.com/MKhiriev/go-fraud-guard/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetServiceInfo(r.Context()), http.StatusOK)
}
