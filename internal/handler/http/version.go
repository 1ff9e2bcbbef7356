package http

import (
	"net/http"

	"github.com/MKhiriev/go-screen-sync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, info, http.StatusOK)
}
