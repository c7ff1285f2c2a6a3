package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// downloadBlob writes the blob authorised by the blobToken middleware.
func (h *Handler) downloadBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	path, ok := utils.GetBlobPathFromContext(r.Context())
	if !ok {
		log.Error().Msg("download reached handler without an authorised path")
		utils.WriteError(w, http.StatusUnauthorized, ErrMissingBlobToken.Error())
		return
	}

	data, err := h.blobs.Read(r.Context(), path)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("path", path).Int("status", status).Msg("error reading blob")
		utils.WriteError(w, status, http.StatusText(status))
		return
	}

	w.Header().Set("Content-Type", store.ContentTypeFor(path))
	w.Header().Set("Cache-Control", "private, no-store")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(data); err != nil {
		log.Err(err).Str("path", path).Msg("error writing blob to response")
	}
}
