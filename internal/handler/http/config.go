package http

import (
	"net/http"

	"github.com/MKhiriev/extconfig/internal/app"
	"github.com/MKhiriev/extconfig/internal/logger"
	"github.com/MKhiriev/extconfig/internal/utils"
	"github.com/go-chi/chi/v5"
)

const keyParam = "key"

func (h *Handler) getConfiguration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	values := h.services.ConfigurationService.All(r.Context())
	if _, err := utils.WriteJSON(w, values, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getConfiguration").Msg("error writing configuration")
	}
}

func (h *Handler) getConfigurationValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, keyParam)

	value, ok := h.services.ConfigurationService.Get(r.Context(), key)
	if !ok {
		http.Error(w, app.MsgKeyNotFound, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(value))
}

// getReport returns the report of the last merge run, or 404 before the
// first run has finished.
func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, ok := h.services.ConfigurationService.LastReport(r.Context())
	if !ok {
		http.Error(w, app.MsgNoMergeReport, http.StatusNotFound)
		return
	}

	if _, err := utils.WriteJSON(w, report, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getReport").Msg("error writing report")
	}
}
